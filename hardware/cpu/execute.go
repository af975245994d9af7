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

package cpu

import (
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
)

// UnimplementedInstruction is returned by ExecuteInstruction() when the
// opcode has no definition for the CPU variant. The PC is left pointing at
// the opcode.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

// ExecuteInstruction steps CPU forward one instruction. The memory is ticked
// with the number of cycles taken by the instruction once the instruction has
// completed.
//
// When the BRK interception preference is set, a BRK instruction is not
// executed. The PC is left pointing at the BRK opcode and LastResult has the
// BrkIntercept field set.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset(mc.PC.Address())

	operator := mc.read8BitPC(newOpcode)
	defn := mc.instructions[operator]
	if defn == nil {
		mc.PC.Load(mc.LastResult.Address)
		return curated.Errorf(UnimplementedInstruction, operator, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	if defn.Operator == instructions.Brk && mc.env != nil && mc.env.Prefs.InterceptBRK.Get().(bool) {
		mc.PC.Load(mc.LastResult.Address)
		mc.LastResult.BrkIntercept = true
		mc.LastResult.Final = true
		return nil
	}

	address, value := mc.resolve(defn)

	mc.execute(defn, address, value)

	cycles := defn.Cycles
	if defn.IsBranch() {
		if mc.LastResult.BranchSuccess {
			cycles++
			if mc.LastResult.PageFault {
				cycles++
			}
		}
	} else if mc.LastResult.PageFault {
		cycles++
	}
	if mc.LastResult.DecimalPenalty {
		cycles++
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	if mc.ticker != nil {
		mc.ticker.Tick(cycles)
	}

	return nil
}

// execute the operation of the instruction. address is the effective address
// of the operand and value is the operand, where those are meaningful for the
// addressing mode.
func (mc *CPU) execute(defn *instructions.Definition, address uint16, value uint8) {
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Phx:
		mc.push(mc.X.Value())

	case instructions.Phy:
		mc.push(mc.Y.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Plx:
		mc.X.Load(mc.pull())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ply:
		mc.Y.Load(mc.pull())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Php:
		// the break flag is always set in the pushed value
		sr := mc.Status
		sr.Break = true
		mc.push(sr.Value())

	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Stz:
		mc.write8Bit(address, 0)

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror,
		instructions.Inc, instructions.Dec:
		mc.readModifyWrite(defn, address, value)

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := registers.NewRegister(value, "")
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

		// the immediate form of BIT only affects the zero flag
		if defn.AddressingMode != instructions.Immediate {
			mc.Status.Sign = value&0x80 == 0x80
			mc.Status.Overflow = value&0x40 == 0x40
		}

	case instructions.Trb:
		mc.Status.Zero = value&mc.A.Value() == 0
		mc.write8Bit(address, value&^mc.A.Value())

	case instructions.Tsb:
		mc.Status.Zero = value&mc.A.Value() == 0
		mc.write8Bit(address, value|mc.A.Value())

	case instructions.Rmb:
		mc.write8Bit(address, value&^(0x01<<defn.BitNumber()))

	case instructions.Smb:
		mc.write8Bit(address, value|(0x01<<defn.BitNumber()))

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Bra:
		mc.branch(true, address)

	case instructions.Bbr:
		mc.branch(value&(0x01<<defn.BitNumber()) == 0, address)

	case instructions.Bbs:
		mc.branch(value&(0x01<<defn.BitNumber()) != 0, address)

	case instructions.Jsr:
		// the address pushed is the last byte of the JSR instruction
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pull16())
		mc.PC.Add(1)

	case instructions.Rti:
		mc.Status.Load(mc.pull())
		mc.PC.Load(mc.pull16())

	case instructions.Brk:
		// the return address skips the padding byte following the opcode
		mc.push16(mc.LastResult.Address + 2)

		sr := mc.Status
		sr.Break = true
		mc.push(sr.Value())

		mc.Status.InterruptDisable = true
		if mc.variant == instructions.CMOS {
			mc.Status.DecimalMode = false
		}

		mc.PC.Load(mc.read16Bit(cpubus.IRQ))
	}
}

// readModifyWrite performs the shift, rotate, increment and decrement
// instructions. the accumulator is the target for the accumulator addressing
// mode, otherwise the result is written back to memory.
func (mc *CPU) readModifyWrite(defn *instructions.Definition, address uint16, value uint8) {
	r := registers.NewRegister(value, "")

	switch defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
	case instructions.Inc:
		r.Add(1, false)
	case instructions.Dec:
		r.Add(0xff, false)
	}

	mc.Status.SetZN(r.Value())

	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(r.Value())
		return
	}

	mc.write8Bit(address, r.Value())
}

func (mc *CPU) adc(value uint8) {
	if !mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	if mc.variant == instructions.NMOS {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimalCMOS(value, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
	mc.LastResult.DecimalPenalty = true
}

func (mc *CPU) sbc(value uint8) {
	if !mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	if mc.variant == instructions.NMOS {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimalCMOS(value, mc.Status.Carry)
	mc.Status.SetZN(mc.A.Value())
	mc.LastResult.DecimalPenalty = true
}

// compare value with register. the register is not changed.
func (mc *CPU) compare(reg registers.Register, value uint8) {
	cmp := registers.NewRegister(reg.Value(), "")
	mc.Status.Carry, _ = cmp.Subtract(value, true)
	mc.Status.SetZN(cmp.Value())
}

// branch to the address if flag is true. the address has already been
// calculated from the displacement by resolve().
func (mc *CPU) branch(flag bool, address uint16) {
	if !flag {
		mc.LastResult.PageFault = false
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.PC.Load(address)
}
