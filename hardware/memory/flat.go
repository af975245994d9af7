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
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/logger"
)

// Flat is 64k of RAM with no special areas.
type Flat struct {
	env *instance.Instance
	ram [0x10000]uint8
}

// NewFlat is the preferred method of initialisation for the Flat type. The
// contents of RAM are randomised if the RandomState preference is set.
func NewFlat(env *instance.Instance) *Flat {
	mem := &Flat{env: env}
	fill(mem.env, mem.ram[:])
	return mem
}

// Reset implements the hardware.Bus interface. Flat memory has no state other
// than the contents of RAM, which survive a reset.
func (mem *Flat) Reset() {
}

// Read implements the cpubus.Memory interface.
func (mem *Flat) Read(address uint16) uint8 {
	return mem.ram[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Flat) Write(address uint16, data uint8) {
	mem.ram[address] = data
}

// Peek implements the cpubus.DebugBus interface.
func (mem *Flat) Peek(address uint16) uint8 {
	return mem.ram[address]
}

// Poke implements the cpubus.DebugBus interface.
func (mem *Flat) Poke(address uint16, data uint8) {
	mem.ram[address] = data
}

// Load implements the cpubus.Loader interface. Flat memory has only one bank
// so data is always loaded to main memory at the address.
func (mem *Flat) Load(address uint16, data []uint8, bank memorymap.Bank, tag string) {
	if bank != memorymap.Main {
		logger.Logf(mem.env, tag, "flat memory has no %s bank: loading to main memory", bank)
	}
	load(mem.env, tag, mem.ram[:], int(address), data)
}

// fill the memory with zero or with random values.
func fill(env *instance.Instance, mem []uint8) {
	if env != nil && env.Prefs.RandomState.Get().(bool) {
		for i := range mem {
			mem[i] = uint8(env.Prefs.RandSrc.Intn(0x100))
		}
		return
	}
	clear(mem)
}

// load data into the memory at offset, truncating the data if necessary.
func load(env *instance.Instance, tag string, mem []uint8, offset int, data []uint8) {
	if offset < 0 || offset >= len(mem) {
		logger.Logf(env, tag, "load address out of range: ignoring %d bytes", len(data))
		return
	}
	n := copy(mem[offset:], data)
	if n < len(data) {
		logger.Logf(env, tag, "data truncated: %d of %d bytes loaded", n, len(data))
	}
}
