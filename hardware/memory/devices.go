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
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
)

// Device is implemented by hardware that is accessed through the IO area
// ($C000 to $C0FF). The address argument is the full address of the access.
//
// Devices that also implement cpubus.Ticker are ticked once per instruction.
type Device interface {
	IORead(address uint16) uint8
	IOWrite(address uint16, data uint8)
}

// List of error patterns returned when attaching devices.
const (
	DeviceRange    = "memory: device range %#04x to %#04x is not in the IO area"
	DeviceReserved = "memory: device range %#04x to %#04x includes the language card switches"
	SlotRange      = "memory: slot %d does not exist"
)

// AttachDevice to the IO area for the inclusive address range. Any device
// already attached to an address in the range is replaced.
func (mem *Memory) AttachDevice(lo uint16, hi uint16, dev Device) error {
	if lo > hi || lo < memorymap.OriginIO || hi > memorymap.MemtopIO {
		return curated.Errorf(DeviceRange, lo, hi)
	}
	if lo <= 0xc08f && hi >= 0xc080 {
		return curated.Errorf(DeviceReserved, lo, hi)
	}

	for a := lo; a <= hi; a++ {
		mem.devices[a&0xff] = dev
	}

	mem.tickers = mem.tickers[:0]
	seen := make(map[Device]bool)
	for _, d := range mem.devices {
		if d == nil || seen[d] {
			continue
		}
		seen[d] = true
		if t, ok := d.(cpubus.Ticker); ok {
			mem.tickers = append(mem.tickers, t)
		}
	}

	return nil
}

// AttachSlotROM installs the 256 byte ROM for the slot at $Cn00. Data longer
// than 256 bytes is truncated.
func (mem *Memory) AttachSlotROM(slot int, data []uint8) error {
	if slot < 1 || slot > 7 {
		return curated.Errorf(SlotRange, slot)
	}
	clear(mem.slotROM[slot][:])
	load(mem.env, "memory", mem.slotROM[slot][:], 0, data)
	return nil
}

// Tick implements the cpubus.Ticker interface.
func (mem *Memory) Tick(cycles int) {
	for _, t := range mem.tickers {
		t.Tick(cycles)
	}
}

func (mem *Memory) ioRead(address uint16) uint8 {
	if address >= 0xc080 && address <= 0xc08f {
		mem.LangCard.access(address, false)
		return 0
	}

	if v, ok := mem.status(address); ok {
		if dev := mem.devices[address&0xff]; dev != nil {
			return v | dev.IORead(address)&0x7f
		}
		return v
	}

	mem.Switches.display(address)

	if dev := mem.devices[address&0xff]; dev != nil {
		return dev.IORead(address)
	}

	return 0
}

func (mem *Memory) ioWrite(address uint16, data uint8) {
	if address >= 0xc080 && address <= 0xc08f {
		mem.LangCard.access(address, true)
		return
	}

	if mem.Switches.write(address) {
		return
	}

	mem.Switches.display(address)

	if dev := mem.devices[address&0xff]; dev != nil {
		dev.IOWrite(address, data)
	}
}
