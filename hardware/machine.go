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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/hardware/memory"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/logger"
)

// Kind of machine to emulate.
type Kind int

// List of machine kinds.
const (
	// 64k of RAM and nothing else
	Flat Kind = iota

	// the memory system of the Apple IIe. main and auxiliary RAM, the
	// language card and the slot IO area
	AppleIIe
)

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case AppleIIe:
		return "iie"
	}
	return "unknown machine"
}

// UnknownKind is returned by ParseKind() when the string is not recognised.
const UnknownKind = "hardware: unknown machine kind (%s)"

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "iie", "apple2e", "appleiie":
		return AppleIIe, nil
	}
	return Flat, curated.Errorf(UnknownKind, s)
}

// Bus is the interface to the memory system required by the Machine.
type Bus interface {
	cpubus.Bus
	cpubus.DebugBus
	Reset()
}

// Machine is the top-level emulation type. It owns the CPU and the memory
// system.
type Machine struct {
	Env  *instance.Instance
	Kind Kind

	CPU *cpu.CPU
	Mem Bus

	// the Apple IIe memory system. nil if the machine is not an AppleIIe.
	// the same instance is referred to by the Mem field
	IIe *memory.Memory

	// number of cycles executed since the last reset
	cycles int64
}

// NewMachine creates a new Machine of the specified kind. The env argument
// can be nil, in which case an instance with default preferences is created.
func NewMachine(env *instance.Instance, kind Kind) (*Machine, error) {
	if env == nil {
		var err error
		env, err = instance.NewInstance(nil)
		if err != nil {
			return nil, curated.Errorf("hardware: %v", err)
		}
	}

	m := &Machine{
		Env:  env,
		Kind: kind,
	}

	switch kind {
	case Flat:
		m.Mem = memory.NewFlat(env)
	case AppleIIe:
		m.IIe = memory.NewMemory(env)
		m.Mem = m.IIe
	default:
		return nil, curated.Errorf(UnknownKind, kind)
	}

	m.CPU = cpu.NewCPU(env, m.Mem)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s machine [%s] %s", m.Kind, m.CPU.Variant(), m.CPU)
}

// Reset the machine. The memory system is reset before the CPU so that the
// reset vector is read from the reset state of the memory.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.CPU.Reset()
	m.cycles = 0
	logger.Logf(m.Env, "hardware", "reset %s machine. PC=%s", m.Kind, m.CPU.PC)
}

// Cycles returns the number of cycles executed since the last reset.
func (m *Machine) Cycles() int64 {
	return m.cycles
}

// LoadBinary installs data in main memory at the address.
func (m *Machine) LoadBinary(address uint16, data []uint8) {
	m.Mem.Load(address, data, memorymap.Main, "binary")
}

// LoadROM installs a ROM image so that it ends at $FFFF. A 16k image covers
// $C000 to $FFFF and a 12k image covers $D000 to $FFFF. On a flat machine the
// ROM is loaded into RAM.
//
// The machine should be reset after loading a ROM.
func (m *Machine) LoadROM(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf("hardware: empty rom image")
	}

	if len(data) > 0x10000 {
		return curated.Errorf("hardware: rom image too big (%d bytes)", len(data))
	}

	origin := uint16(0x10000 - len(data))

	switch m.Kind {
	case AppleIIe:
		if origin < memorymap.OriginROM {
			return curated.Errorf("hardware: rom image too big for apple iie (%d bytes)", len(data))
		}
		m.Mem.Load(origin, data, memorymap.ROM, "rom")
	default:
		m.Mem.Load(origin, data, memorymap.Main, "rom")
	}

	return nil
}

// Interrupt the CPU. Returns true if the interrupt was serviced. See
// cpu.Interrupt() for details.
func (m *Machine) Interrupt(nonMaskable bool) bool {
	if !m.CPU.Interrupt(nonMaskable) {
		return false
	}
	m.cycles += 7
	return true
}
