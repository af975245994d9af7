// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

package memory

import "fmt"

// LanguageCard is the state of the language card switches at $C080 to
// $C08F.
type LanguageCard struct {
	// bank 2 is selected for the $D000 to $DFFF area
	Bank2 bool

	// reads of $D000 to $FFFF come from RAM rather than ROM
	ReadRAM bool

	// writes to $D000 to $FFFF go to RAM. if not set, writes are dropped
	WriteRAM bool

	// the number of consecutive qualifying reads. writing is enabled when
	// the count reaches two
	preWrite int
}

// Reset the language card to the power-on state. Bank 2 is selected and
// reads come from ROM. Writing is disabled.
func (lc *LanguageCard) Reset() {
	*lc = LanguageCard{Bank2: true}
}

func (lc LanguageCard) String() string {
	bank := 1
	if lc.Bank2 {
		bank = 2
	}
	read := "ROM"
	if lc.ReadRAM {
		read = "RAM"
	}
	write := "disabled"
	if lc.WriteRAM {
		write = "enabled"
	}
	return fmt.Sprintf("bank %d, read %s, write %s (prewrite %d)", bank, read, write, lc.preWrite)
}

// access is called for every read or write of the language card switches.
// only the low nibble of the address is significant.
//
// bit 3 of the address selects bank 1 when set. bits 0 and 1 select whether
// reads come from RAM: the values 0 and 3 select RAM, 1 and 2 select ROM.
// bit 0 selects write enabling. an even address always disables writing. a
// read of an odd address counts towards write enabling and a write to an odd
// address resets the count, leaving the write enable flag unchanged.
func (lc *LanguageCard) access(address uint16, write bool) {
	sw := address & 0x0f

	lc.Bank2 = sw&0x08 == 0x00
	lc.ReadRAM = sw&0x03 == 0x00 || sw&0x03 == 0x03

	if sw&0x01 == 0x00 {
		lc.preWrite = 0
		lc.WriteRAM = false
		return
	}

	if write {
		lc.preWrite = 0
		return
	}

	if lc.preWrite < 2 {
		lc.preWrite++
	}
	if lc.preWrite >= 2 {
		lc.WriteRAM = true
	}
}
