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

import "strings"

// Switches is the state of the Apple IIe memory management soft switches.
type Switches struct {
	// PAGE2 selects aux memory for the text page (and the hires page if
	// HiRes is also set) rather than the display page
	Store80 bool

	// reads of $0200 to $BFFF come from aux memory
	RAMRd bool

	// writes to $0200 to $BFFF go to aux memory
	RAMWrt bool

	// $C100 to $CFFF are read from the internal ROM
	IntCXROM bool

	// zero page, stack and language card come from aux memory
	AltZP bool

	// $C300 to $C3FF are read from the slot 3 ROM. if clear the internal ROM
	// is used
	SlotC3ROM bool

	// display switches that affect memory mapping when Store80 is set
	Page2 bool
	HiRes bool
}

// Reset switches to the power-on state.
func (sw *Switches) Reset() {
	*sw = Switches{}
}

func (sw Switches) String() string {
	s := strings.Builder{}
	flag := func(label string, v bool) {
		if v {
			s.WriteString(strings.ToUpper(label))
		} else {
			s.WriteString(strings.ToLower(label))
		}
		s.WriteRune(' ')
	}
	flag("80store", sw.Store80)
	flag("ramrd", sw.RAMRd)
	flag("ramwrt", sw.RAMWrt)
	flag("intcxrom", sw.IntCXROM)
	flag("altzp", sw.AltZP)
	flag("slotc3rom", sw.SlotC3ROM)
	flag("page2", sw.Page2)
	flag("hires", sw.HiRes)
	return strings.TrimSpace(s.String())
}

// write handles writes to $C000 to $C00B. even addresses clear the switch
// and odd addresses set it. returns false if the address is not a switch.
func (sw *Switches) write(address uint16) bool {
	set := address&0x01 == 0x01
	switch address & 0xfffe {
	case 0xc000:
		sw.Store80 = set
	case 0xc002:
		sw.RAMRd = set
	case 0xc004:
		sw.RAMWrt = set
	case 0xc006:
		sw.IntCXROM = set
	case 0xc008:
		sw.AltZP = set
	case 0xc00a:
		sw.SlotC3ROM = set
	default:
		return false
	}
	return true
}

// display handles reads and writes of $C054 to $C057. returns false if the
// address is not a display switch handled by the memory.
func (sw *Switches) display(address uint16) bool {
	set := address&0x01 == 0x01
	switch address & 0xfffe {
	case 0xc054:
		sw.Page2 = set
	case 0xc056:
		sw.HiRes = set
	default:
		return false
	}
	return true
}

// status returns the value of the status register at the address in bit 7.
// returns false if the address is not a status register.
func (mem *Memory) status(address uint16) (uint8, bool) {
	var v bool
	switch address {
	case 0xc011:
		v = mem.LangCard.Bank2
	case 0xc012:
		v = mem.LangCard.ReadRAM
	case 0xc013:
		v = mem.Switches.RAMRd
	case 0xc014:
		v = mem.Switches.RAMWrt
	case 0xc015:
		v = mem.Switches.IntCXROM
	case 0xc016:
		v = mem.Switches.AltZP
	case 0xc017:
		v = mem.Switches.SlotC3ROM
	case 0xc018:
		v = mem.Switches.Store80
	case 0xc01c:
		v = mem.Switches.Page2
	case 0xc01d:
		v = mem.Switches.HiRes
	default:
		return 0, false
	}
	if v {
		return 0x80, true
	}
	return 0x00, true
}
