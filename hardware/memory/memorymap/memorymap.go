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

package memorymap

import (
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ZeroPage:
		return "Zero Page"
	case Stack:
		return "Stack"
	case RAM:
		return "RAM"
	case Text:
		return "Text"
	case HiRes:
		return "HiRes"
	case IO:
		return "IO"
	case SlotROM:
		return "Slot ROM"
	case LangCardBanked:
		return "Language Card (banked)"
	case LangCardHigh:
		return "Language Card"
	}

	return "undefined"
}

// The different memory areas in the Apple IIe.
const (
	Undefined Area = iota
	ZeroPage
	Stack
	RAM
	Text
	HiRes
	IO
	SlotROM
	LangCardBanked
	LangCardHigh
)

// The origin and memory top for each area of memory.
const (
	OriginZeroPage = uint16(0x0000)
	MemtopZeroPage = uint16(0x00ff)
	OriginStack    = uint16(0x0100)
	MemtopStack    = uint16(0x01ff)
	OriginText     = uint16(0x0400)
	MemtopText     = uint16(0x07ff)
	OriginHiRes    = uint16(0x2000)
	MemtopHiRes    = uint16(0x3fff)
	MemtopRAM      = uint16(0xbfff)
	OriginIO       = uint16(0xc000)
	MemtopIO       = uint16(0xc0ff)
	OriginSlotROM  = uint16(0xc100)
	MemtopSlotROM  = uint16(0xcfff)
	OriginLangCard = uint16(0xd000)
	MemtopBanked   = uint16(0xdfff)
	OriginHigh     = uint16(0xe000)
	Memtop         = uint16(0xffff)
)

// OriginROM is the address of the first byte of the ROM image. The ROM image
// covers the IO area but the IO area is never read from the ROM.
const OriginROM = OriginIO

// MapAddress returns the Area of the address.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopZeroPage:
		return ZeroPage
	case address <= MemtopStack:
		return Stack
	case address >= OriginText && address <= MemtopText:
		return Text
	case address >= OriginHiRes && address <= MemtopHiRes:
		return HiRes
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopIO:
		return IO
	case address <= MemtopSlotROM:
		return SlotROM
	case address <= MemtopBanked:
		return LangCardBanked
	}
	return LangCardHigh
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}

// IsAuxSwitched returns true if the area is subject to the RAMRD and RAMWRT
// switches. The zero page and stack are switched by ALTZP instead. The text
// and hires pages are also steered by 80STORE.
func (a Area) IsAuxSwitched() bool {
	return a == RAM || a == Text || a == HiRes
}

// Bank identifies the physical memory that an image is loaded into.
type Bank int

// List of banks.
const (
	Main Bank = iota
	Aux
	ROM
	LangCardBank1
	LangCardBank2
)

func (b Bank) String() string {
	switch b {
	case Main:
		return "main"
	case Aux:
		return "aux"
	case ROM:
		return "rom"
	case LangCardBank1:
		return "lc1"
	case LangCardBank2:
		return "lc2"
	}
	return "unknown bank"
}

// UnknownBank is returned by ParseBank when the name is not recognised.
const UnknownBank = "memorymap: unknown bank (%s)"

// ParseBank converts the name of a bank to a Bank.
func ParseBank(s string) (Bank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "main":
		return Main, nil
	case "aux":
		return Aux, nil
	case "rom":
		return ROM, nil
	case "lc1", "bank1":
		return LangCardBank1, nil
	case "lc2", "bank2":
		return LangCardBank2, nil
	}
	return Main, curated.Errorf(UnknownBank, s)
}
