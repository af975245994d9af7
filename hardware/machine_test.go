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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/govern"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/test"
)

func newMachine(t *testing.T, kind hardware.Kind) *hardware.Machine {
	t.Helper()

	env, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	env.Label = instance.Test
	env.Normalise()

	m, err := hardware.NewMachine(env, kind)
	test.DemandSuccess(t, err)

	return m
}

func TestParseKind(t *testing.T) {
	k, err := hardware.ParseKind("IIE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, hardware.AppleIIe)

	k, err = hardware.ParseKind(" flat")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, hardware.Flat)

	_, err = hardware.ParseKind("c64")
	test.ExpectSuccess(t, curated.Is(err, hardware.UnknownKind))
}

func TestFlatMachine(t *testing.T) {
	m := newMachine(t, hardware.Flat)

	// LDA #$01; STA $0200; JMP $0600
	m.LoadBinary(0x0600, []uint8{0xa9, 0x01, 0x8d, 0x00, 0x02, 0x4c, 0x00, 0x06})
	m.LoadBinary(0xfffc, []uint8{0x00, 0x06})
	m.Reset()
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0600)
	test.ExpectEquality(t, m.Cycles(), 0)

	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.Cycles(), 2)
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.Cycles(), 6)
	test.ExpectEquality(t, m.Mem.Peek(0x0200), 0x01)
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.Cycles(), 9)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0600)
}

func TestRunBudget(t *testing.T) {
	m := newMachine(t, hardware.Flat)

	// JMP $0600
	m.LoadBinary(0x0600, []uint8{0x4c, 0x00, 0x06})
	m.LoadBinary(0xfffc, []uint8{0x00, 0x06})
	m.Reset()

	// every instruction takes three cycles so the budget is overspent by at
	// most two cycles
	used, err := m.Run(100, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 102)
	test.ExpectEquality(t, m.Cycles(), 102)

	// the continue check stops the emulation after five instructions
	ct := 0
	used, err = m.Run(0, func() (govern.State, error) {
		ct++
		if ct == 5 {
			return govern.Stopped, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, used, 15)

	// unsupported states are errors
	_, err = m.Run(0, func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestUnimplemented(t *testing.T) {
	m := newMachine(t, hardware.Flat)
	test.DemandSuccess(t, m.Env.Prefs.Set("cpu.variant", "6502"))

	// LDA #$01; JAM
	m.LoadBinary(0x0600, []uint8{0xa9, 0x01, 0x02})
	m.LoadBinary(0xfffc, []uint8{0x00, 0x06})
	m.Reset()

	used, err := m.Run(1000, nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, used, 2)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0602)
}

func TestAppleIIeROM(t *testing.T) {
	m := newMachine(t, hardware.AppleIIe)

	// 12k ROM with the reset vector pointing to $D000
	rom := make([]uint8, 0x3000)
	rom[0x2ffc] = 0x00
	rom[0x2ffd] = 0xd0

	// LDA $C011 at $D000
	rom[0x0000] = 0xad
	rom[0x0001] = 0x11
	rom[0x0002] = 0xc0

	test.ExpectSuccess(t, m.LoadROM(rom))
	m.Reset()
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xd000)

	// the language card is in the bank 2 state after reset
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.A.Value()&0x80, 0x80)

	// too big for the IIe
	test.ExpectFailure(t, m.LoadROM(make([]uint8, 0x5000)))
	test.ExpectFailure(t, m.LoadROM(nil))
}

func TestInterrupt(t *testing.T) {
	m := newMachine(t, hardware.Flat)
	m.LoadBinary(0xfffa, []uint8{0x00, 0x09, 0x00, 0x06, 0x00, 0x08})
	m.Reset()

	// interrupts are disabled after reset
	test.ExpectFailure(t, m.Interrupt(false))
	test.ExpectEquality(t, m.Cycles(), 0)

	test.ExpectSuccess(t, m.Interrupt(true))
	test.ExpectEquality(t, m.Cycles(), 7)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0900)
}
