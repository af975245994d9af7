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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, "65c02")
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	test.ExpectEquality(t, mc.String(), "PC=0600 A=00 X=00 Y=00 SP=fd SR=sv-bdIzc")
}

func TestRandomState(t *testing.T) {
	env := newEnv(t, "65c02")
	test.DemandSuccess(t, env.Prefs.RandomState.Set(true))

	mc, _ := newCPUWithEnv(t, env)
	regs := mc.String()

	// the same seed produces the same register values
	env.Prefs.Reseed(1)
	mc.Reset()
	test.ExpectEquality(t, mc.String(), regs)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0x0600, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// the break flag is set in the pushed value
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-BdIzc")
}

func TestLoadFlags(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	for v := 0; v <= 0xff; v++ {
		mem.putInstructions(0x0600, 0xa9, uint8(v)) // LDA #v
		mc.LoadPC(0x0600)
		r := step(t, mc)
		test.ExpectEquality(t, mc.A.Value(), uint8(v))
		test.ExpectEquality(t, mc.Status.Zero, v == 0, v)
		test.ExpectEquality(t, mc.Status.Sign, v&0x80 == 0x80, v)
		test.ExpectEquality(t, r.Cycles, 2)
		test.ExpectEquality(t, r.ByteCount, 2)
	}
}

// ADC and SBC in binary mode are the inverse of each other for every
// combination of operand and carry
func TestBinaryArithmetic(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, c := range []bool{false, true} {
				mem.putInstructions(0x0600, 0x69, uint8(b), 0xe9, uint8(b)) // ADC #b; SBC #b
				mc.LoadPC(0x0600)
				mc.A.Load(uint8(a))
				mc.Status.Carry = c

				ci := 0
				if c {
					ci = 1
				}
				sum := a + b + ci

				step(t, mc) // ADC
				if mc.A.Value() != uint8(sum) || mc.Status.Carry != (sum > 0xff) {
					t.Fatalf("ADC failed for %02x + %02x + %d: got %02x carry %v", a, b, ci, mc.A.Value(), mc.Status.Carry)
				}
				overflow := (a^sum)&(b^sum)&0x80 != 0
				if mc.Status.Overflow != overflow {
					t.Fatalf("ADC overflow wrong for %02x + %02x + %d", a, b, ci)
				}

				// a carry in to ADC is equivalent to a borrow in to SBC
				mc.Status.Carry = !c
				step(t, mc) // SBC
				if mc.A.Value() != uint8(a) {
					t.Fatalf("SBC is not the inverse of ADC for %02x and %02x carry %d: got %02x", a, b, ci, mc.A.Value())
				}
			}
		}
	}
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// LDA $12FF,X with X=1 crosses a page
	mem.putInstructions(0x0600, 0xbd, 0xff, 0x12)
	mem.Poke(0x1300, 0x99)
	mc.X.Load(1)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectSuccess(t, r.PageFault)

	// LDA $1234,X with X=$10 does not
	mem.putInstructions(0x0600, 0xbd, 0x34, 0x12)
	mem.Poke(0x1244, 0x99)
	mc.LoadPC(0x0600)
	mc.X.Load(0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectFailure(t, r.PageFault)

	// STA abs,X takes the same time regardless
	mem.putInstructions(0x0600, 0x9d, 0xff, 0x12)
	mc.LoadPC(0x0600)
	mc.X.Load(1)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectFailure(t, r.PageFault)
	mem.assert(t, 0x1300, 0x99)

	// LDA ($40),Y
	mem.putInstructions(0x0600, 0xb1, 0x40)
	mem.Poke(0x40, 0xff)
	mem.Poke(0x41, 0x12)
	mc.LoadPC(0x0600)
	mc.Y.Load(1)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, r.Cycles, 6)
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// LDA $F0,X with X=$20 reads from $10
	mem.putInstructions(0x0600, 0xb5, 0xf0)
	mem.Poke(0x0010, 0x55)
	mem.Poke(0x0110, 0xaa)
	mc.X.Load(0x20)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)

	// LDA ($FF,X) with X=0 takes the high byte of the pointer from $00
	mem.putInstructions(0x0600, 0xa1, 0xff)
	mem.Poke(0x00ff, 0x00)
	mem.Poke(0x0000, 0x20)
	mem.Poke(0x2000, 0x66)
	mc.LoadPC(0x0600)
	mc.X.Load(0)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x66)
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// BNE taken within the page
	mem.putInstructions(0x0600, 0xd0, 0x02)
	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0604)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectSuccess(t, r.BranchSuccess)

	// BEQ not taken
	mem.putInstructions(0x0600, 0xf0, 0x10)
	mc.LoadPC(0x0600)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0602)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectFailure(t, r.BranchSuccess)

	// BNE taken across a page boundary
	mem.putInstructions(0x06fd, 0xd0, 0x05)
	mc.LoadPC(0x06fd)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0704)
	test.ExpectEquality(t, r.Cycles, 4)

	// BNE taken backwards across a page boundary
	mem.putInstructions(0x0600, 0xd0, 0xfc)
	mc.LoadPC(0x0600)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x05fe)
	test.ExpectEquality(t, r.Cycles, 4)
}

func TestDecimalModeCMOS(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// SED; CLC; LDA #$49; ADC #$49
	mem.putInstructions(0x0600, 0xf8, 0x18, 0xa9, 0x49, 0x69, 0x49)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x98)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, r.DecimalPenalty)
	test.ExpectEquality(t, r.Cycles, 3)

	// SEC; SBC #$49
	mem.putInstructions(0x0606, 0x38, 0xe9, 0x49)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x49)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectEquality(t, r.Cycles, 3)

	// CLC; LDA #$00; SBC #$00. a zero operand with a borrow
	mem.putInstructions(0x0609, 0x18, 0xa9, 0x00, 0xe9, 0x00)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestDecimalModeNMOS(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	// SED; CLC; LDA #$99; ADC #$01
	mem.putInstructions(0x0600, 0xf8, 0x18, 0xa9, 0x99, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)

	// the zero flag comes from the binary result
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, r.DecimalPenalty)
	test.ExpectEquality(t, r.Cycles, 2)
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	mem.putInstructions(0x0600, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIZC")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")
	test.ExpectEquality(t, mc.A.Value(), 0x40)
}

func TestShifts(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// LDA #$81; ASL A; ROL $10; LSR $10; ROR A
	mem.putInstructions(0x0600, 0xa9, 0x81, 0x0a, 0x26, 0x10, 0x46, 0x10, 0x6a)
	mem.Poke(0x10, 0x80)
	step(t, mc)
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // ROL $10
	mem.assert(t, 0x10, 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // LSR $10
	mem.assert(t, 0x10, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
	r := step(t, mc) // ROR A
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectEquality(t, r.Cycles, 2)
}

func TestCMOSInstructions(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// STZ $10
	mem.Poke(0x10, 0xaa)
	mem.putInstructions(0x0600, 0x64, 0x10)
	step(t, mc)
	mem.assert(t, 0x10, 0x00)

	// LDA #$0F; TSB $11; TRB $11
	mem.Poke(0x11, 0xf0)
	mem.putInstructions(0x0602, 0xa9, 0x0f, 0x04, 0x11, 0x14, 0x11)
	step(t, mc)
	step(t, mc) // TSB
	mem.assert(t, 0x11, 0xff)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // TRB
	mem.assert(t, 0x11, 0xf0)
	test.ExpectFailure(t, mc.Status.Zero)

	// RMB3 $12; SMB3 $12
	mem.Poke(0x12, 0xff)
	mem.putInstructions(0x0608, 0x37, 0x12, 0xb7, 0x12)
	step(t, mc)
	mem.assert(t, 0x12, 0xf7)
	step(t, mc)
	mem.assert(t, 0x12, 0xff)

	// BBR3 $12,+2 is not taken because bit 3 is set
	mem.putInstructions(0x060c, 0x3f, 0x12, 0x02)
	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x060f)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.Defn.Mnemonic(), "BBR3")

	// BBS3 $12,+2 is taken
	mem.putInstructions(0x060f, 0xbf, 0x12, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0614)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.InstructionData, 0x0212)

	// BRA +2
	mem.putInstructions(0x0614, 0x80, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0618)
	test.ExpectEquality(t, r.Cycles, 3)

	// LDX #$42; PHX; PLY; INC A
	mem.putInstructions(0x0618, 0xa2, 0x42, 0xda, 0x7a, 0x1a)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x10)

	// LDA ($20)
	mem.Poke(0x20, 0x00)
	mem.Poke(0x21, 0x30)
	mem.Poke(0x3000, 0x77)
	mem.putInstructions(0x061d, 0xb2, 0x20)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, r.Cycles, 5)

	// BIT #$80 only affects the zero flag
	mem.putInstructions(0x061f, 0x89, 0x80)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)

	// LDX #$02; JMP ($1000,X)
	mem.Poke(0x1002, 0x00)
	mem.Poke(0x1003, 0x07)
	mem.putInstructions(0x0621, 0xa2, 0x02, 0x7c, 0x00, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
}

func TestUnimplementedInstruction(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	mem.putInstructions(0x0600, 0x02)
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	test.ExpectEquality(t, mc.LastResult.Address, 0x0600)
	test.ExpectFailure(t, mc.LastResult.Final)

	// the same opcode is a two byte NOP on the 65C02
	mc, mem = newCPU(t, "65c02")
	mem.putInstructions(0x0600, 0x02, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0602)
}

func TestUndocumentedNOP(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	mon := &accessLog{}
	mc.AttachMonitor(mon)

	// NOP $C030 does not touch memory
	mem.putInstructions(0x0600, 0x0c, 0x30, 0xc0, 0x1a)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, len(mon.log), 0)
	test.ExpectSuccess(t, r.Defn.Undocumented)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0604)
}

func TestBRKIntercept(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// BRK is executed by default
	mem.putInstructions(0x0600, 0x00)
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.BrkIntercept)

	// the preference is read when the BRK is encountered
	env := newEnv(t, "65c02")
	mc, mem = newCPUWithEnv(t, env)
	mem.putInstructions(0x0600, 0x00)
	test.DemandSuccess(t, env.Prefs.Set("debugger.brk", true))
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.BrkIntercept)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestBRK(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	mem.Poke(0xfffe, 0x00)
	mem.Poke(0xffff, 0x08)
	mem.putInstructions(0x0800, 0x40) // RTI

	// BRK; NOP
	mem.putInstructions(0x0600, 0x00, 0xea)
	mc.Status.DecimalMode = true
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0800)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x3c)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// the 65C02 clears the decimal flag
	test.ExpectFailure(t, mc.Status.DecimalMode)

	// RTI returns to the byte after the padding byte
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0602)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.DecimalMode)
}

func TestInterrupt(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	mem.Poke(0xfffe, 0x00)
	mem.Poke(0xffff, 0x08)
	mem.Poke(0xfffa, 0x00)
	mem.Poke(0xfffb, 0x09)

	// interrupts are disabled after reset
	test.ExpectFailure(t, mc.Interrupt(false))
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	test.ExpectEquality(t, mem.ticks, 0)

	mc.Status.InterruptDisable = false
	mc.Status.DecimalMode = true
	test.ExpectSuccess(t, mc.Interrupt(false))
	test.ExpectEquality(t, mc.PC.Address(), 0x0800)
	test.ExpectEquality(t, mem.ticks, 7)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x00)

	// break flag is clear in the pushed status
	mem.assert(t, 0x01fb, 0x28)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// the NMOS 6502 does not clear the decimal flag
	test.ExpectSuccess(t, mc.Status.DecimalMode)

	// NMI ignores the interrupt disable flag
	test.ExpectSuccess(t, mc.Interrupt(true))
	test.ExpectEquality(t, mc.PC.Address(), 0x0900)
	test.ExpectEquality(t, mc.SP.Value(), 0xf7)
}

func TestJMPIndirect(t *testing.T) {
	for _, variant := range []string{"6502", "65c02"} {
		mc, mem := newCPU(t, variant)

		mem.Poke(0x10ff, 0x34)
		mem.Poke(0x1100, 0x12)
		mem.Poke(0x1000, 0x56)
		mem.putInstructions(0x0600, 0x6c, 0xff, 0x10)
		r := step(t, mc)

		if variant == "6502" {
			test.ExpectEquality(t, mc.PC.Address(), 0x5634)
			test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
			test.ExpectEquality(t, r.Cycles, 5)
		} else {
			test.ExpectEquality(t, mc.PC.Address(), 0x1234)
			test.ExpectEquality(t, r.CPUBug, execution.NoBug)
			test.ExpectEquality(t, r.Cycles, 6)
		}
	}
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// JSR $0700
	mem.putInstructions(0x0600, 0x20, 0x00, 0x07)
	mem.putInstructions(0x0700, 0x60)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	test.ExpectEquality(t, mc.PredictRTS(), 0x0603)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0603)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestAccessMonitor(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	mon := &accessLog{}
	mc.AttachMonitor(mon)

	// LDA $1234; STA $1235; INC $10; JSR $0700
	mem.putInstructions(0x0600, 0xad, 0x34, 0x12, 0x8d, 0x35, 0x12, 0xe6, 0x10, 0x20, 0x00, 0x07)

	step(t, mc)
	test.ExpectEquality(t, mon.String(), "[R1234]")
	mon.log = mon.log[:0]

	step(t, mc)
	test.ExpectEquality(t, mon.String(), "[W1235]")
	mon.log = mon.log[:0]

	step(t, mc)
	test.ExpectEquality(t, mon.String(), "[R0010 W0010]")
	mon.log = mon.log[:0]

	step(t, mc)
	test.ExpectEquality(t, mon.String(), "[W01fd W01fc]")

	// instruction fetches are not reported. an immediate load has no data
	// access
	mon.log = mon.log[:0]
	mem.putInstructions(0x0700, 0xa9, 0x01)
	step(t, mc)
	test.ExpectEquality(t, len(mon.log), 0)

	// the monitor can be removed
	mc.AttachMonitor(nil)
	mem.putInstructions(0x0702, 0xad, 0x34, 0x12)
	step(t, mc)
	test.ExpectEquality(t, len(mon.log), 0)
}

func TestTick(t *testing.T) {
	mc, mem := newCPU(t, "65c02")

	// LDA #$01; LDA $1234; STA $12FF,X
	mem.putInstructions(0x0600, 0xa9, 0x01, 0xad, 0x34, 0x12, 0x9d, 0xff, 0x12)
	step(t, mc)
	test.ExpectEquality(t, mem.ticks, 2)
	step(t, mc)
	test.ExpectEquality(t, mem.ticks, 6)
	step(t, mc)
	test.ExpectEquality(t, mem.ticks, 11)
}

func TestRegisterAccess(t *testing.T) {
	mc, _ := newCPU(t, "65c02")

	test.ExpectSuccess(t, mc.SetRegister("a", 0x1ff))
	test.ExpectEquality(t, mc.A.Value(), 0xff)

	test.ExpectSuccess(t, mc.SetRegister("PC", 0x1234))
	v, err := mc.GetRegister("pc")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1234)

	test.ExpectSuccess(t, mc.SetRegister("c", 1))
	test.ExpectSuccess(t, mc.Status.Carry)
	v, _ = mc.GetRegister("C")
	test.ExpectEquality(t, v, 1)

	err = mc.SetRegister("Q", 0)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownRegister))
	_, err = mc.GetRegister("Q")
	test.ExpectFailure(t, err)
}
