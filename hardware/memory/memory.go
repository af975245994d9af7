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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/logger"
)

// Memory is the memory system of the Apple IIe.
type Memory struct {
	env *instance.Instance

	// main and aux memory. the $D000 to $DFFF area of each is bank 2 of the
	// language card and the $E000 to $FFFF area is the fixed part of the
	// language card. the $C000 to $CFFF area is never used
	main [0x10000]uint8
	aux  [0x10000]uint8

	// bank 1 of the language card for main and aux memory
	bank1Main [0x1000]uint8
	bank1Aux  [0x1000]uint8

	// the ROM image covers $C000 to $FFFF
	rom [0x4000]uint8

	// peripheral card ROMs for slots 1 to 7. index 0 is unused
	slotROM [8][0x100]uint8

	devices [0x100]Device
	tickers []cpubus.Ticker

	LangCard LanguageCard
	Switches Switches
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The contents of RAM are randomised if the RandomState preference is set.
func NewMemory(env *instance.Instance) *Memory {
	mem := &Memory{env: env}
	fill(mem.env, mem.main[:])
	fill(mem.env, mem.aux[:])
	fill(mem.env, mem.bank1Main[:])
	fill(mem.env, mem.bank1Aux[:])
	mem.Reset()
	return mem
}

// Reset the soft switches and the language card. The contents of RAM, the
// ROM image, slot ROMs and attached devices are unaffected.
func (mem *Memory) Reset() {
	mem.LangCard.Reset()
	mem.Switches.Reset()
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("switches: %s\n", mem.Switches))
	s.WriteString(fmt.Sprintf("language card: %s", mem.LangCard))
	return s.String()
}

// auxRAM returns true if an access of the area should use aux memory. only
// areas switched by RAMRD and RAMWRT are considered.
func (mem *Memory) auxRAM(area memorymap.Area, write bool) bool {
	if !area.IsAuxSwitched() {
		return false
	}
	if mem.Switches.Store80 {
		if area == memorymap.Text || (area == memorymap.HiRes && mem.Switches.HiRes) {
			return mem.Switches.Page2
		}
	}
	if write {
		return mem.Switches.RAMWrt
	}
	return mem.Switches.RAMRd
}

// lcRAM returns the RAM that backs the language card area for the address.
// the first return value is the memory and the second is the index into
// that memory.
func (mem *Memory) lcRAM(address uint16) ([]uint8, uint16) {
	if address <= memorymap.MemtopBanked && !mem.LangCard.Bank2 {
		if mem.Switches.AltZP {
			return mem.bank1Aux[:], address - memorymap.OriginLangCard
		}
		return mem.bank1Main[:], address - memorymap.OriginLangCard
	}
	if mem.Switches.AltZP {
		return mem.aux[:], address
	}
	return mem.main[:], address
}

// mapRead returns the location of the byte that a read of the address would
// return. the IO area is not handled and returns nil. a nil return from the
// slot ROM area means there is nothing to read.
func (mem *Memory) mapRead(address uint16) *uint8 {
	switch area := memorymap.MapAddress(address); area {
	case memorymap.ZeroPage, memorymap.Stack:
		if mem.Switches.AltZP {
			return &mem.aux[address]
		}
		return &mem.main[address]

	case memorymap.IO:
		return nil

	case memorymap.SlotROM:
		return mem.mapSlotROM(address)

	case memorymap.LangCardBanked, memorymap.LangCardHigh:
		if mem.LangCard.ReadRAM {
			ram, idx := mem.lcRAM(address)
			return &ram[idx]
		}
		return &mem.rom[address-memorymap.OriginROM]

	default:
		if mem.auxRAM(area, false) {
			return &mem.aux[address]
		}
		return &mem.main[address]
	}
}

func (mem *Memory) mapSlotROM(address uint16) *uint8 {
	internal := &mem.rom[address-memorymap.OriginROM]

	if mem.Switches.IntCXROM {
		return internal
	}

	slot := (address >> 8) & 0x0f
	if slot == 3 && !mem.Switches.SlotC3ROM {
		return internal
	}

	if slot >= 8 {
		// expansion ROM area. expansion ROMs are not emulated
		return nil
	}

	return &mem.slotROM[slot][address&0xff]
}

// mapWrite returns the location that a write to the address would change.
// returns nil if the write should be dropped. the IO area is not handled and
// returns nil.
func (mem *Memory) mapWrite(address uint16) *uint8 {
	switch area := memorymap.MapAddress(address); area {
	case memorymap.ZeroPage, memorymap.Stack:
		if mem.Switches.AltZP {
			return &mem.aux[address]
		}
		return &mem.main[address]

	case memorymap.IO, memorymap.SlotROM:
		return nil

	case memorymap.LangCardBanked, memorymap.LangCardHigh:
		if mem.LangCard.WriteRAM {
			ram, idx := mem.lcRAM(address)
			return &ram[idx]
		}
		return nil

	default:
		if mem.auxRAM(area, true) {
			return &mem.aux[address]
		}
		return &mem.main[address]
	}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	if memorymap.IsArea(address, memorymap.IO) {
		return mem.ioRead(address)
	}
	if p := mem.mapRead(address); p != nil {
		return *p
	}
	return 0
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	if memorymap.IsArea(address, memorymap.IO) {
		mem.ioWrite(address, data)
		return
	}
	if p := mem.mapWrite(address); p != nil {
		*p = data
	}
}

// Peek implements the cpubus.DebugBus interface. Peeking the IO area returns
// the value of a status register or zero. No switch is triggered.
func (mem *Memory) Peek(address uint16) uint8 {
	if memorymap.IsArea(address, memorymap.IO) {
		v, _ := mem.status(address)
		return v
	}
	if p := mem.mapRead(address); p != nil {
		return *p
	}
	return 0
}

// Poke implements the cpubus.DebugBus interface. The byte that would be
// returned by a Read() of the address is changed, even if that byte is in
// ROM. Poking the IO area has no effect.
func (mem *Memory) Poke(address uint16, data uint8) {
	if p := mem.mapRead(address); p != nil {
		*p = data
	}
}

// Load implements the cpubus.Loader interface.
//
// Images for the Main and Aux banks are loaded at the address, which can be
// anywhere in memory. The language card banks must be loaded in the $D000
// to $DFFF area. The ROM image is loaded relative to $C000, so a 12k Apple
// IIe ROM should be loaded at $D000 and a 16k ROM at $C000.
func (mem *Memory) Load(address uint16, data []uint8, bank memorymap.Bank, tag string) {
	switch bank {
	case memorymap.Main:
		load(mem.env, tag, mem.main[:], int(address), data)
	case memorymap.Aux:
		load(mem.env, tag, mem.aux[:], int(address), data)
	case memorymap.ROM:
		load(mem.env, tag, mem.rom[:], int(address)-int(memorymap.OriginROM), data)
	case memorymap.LangCardBank1:
		load(mem.env, tag, mem.bank1Main[:], int(address)-int(memorymap.OriginLangCard), data)
	case memorymap.LangCardBank2:
		if address < memorymap.OriginLangCard {
			load(mem.env, tag, nil, -1, data)
			return
		}
		load(mem.env, tag, mem.main[:memorymap.OriginHigh], int(address), data)
	default:
		logger.Logf(mem.env, tag, "cannot load to %s bank", bank)
	}
}
