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
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
)

// resolve the effective address and the operand value for the instruction.
// the PC is advanced past the operand bytes.
//
// for branch instructions the address is the branch destination and
// LastResult.PageFault records whether the destination is on a different page
// to the instruction that follows the branch.
func (mc *CPU) resolve(defn *instructions.Definition) (address uint16, value uint8) {
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		value = mc.read8BitPC(loByte)

	case instructions.Relative:
		disp := mc.read8BitPC(loByte)
		pc := mc.PC
		mc.LastResult.PageFault = pc.Relative(disp)
		address = pc.Address()

	case instructions.ZeroPageRelative:
		zp := mc.read8BitPC(loByte)
		disp := mc.read8BitPC(hiByte)

		value = mc.read8Bit(uint16(zp))

		pc := mc.PC
		mc.LastResult.PageFault = pc.Relative(disp)
		address = pc.Address()

		// the value has already been read
		return address, value

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC(loByte))

	case instructions.Indirect:
		indirect := mc.read16BitPC()

		// the NMOS 6502 does not carry into the high byte of the pointer when
		// the pointer is on the last byte of a page
		if mc.variant == instructions.NMOS && indirect&0x00ff == 0x00ff {
			lo := mc.read8Bit(indirect)
			hi := mc.read8Bit(indirect & 0xff00)
			address = uint16(hi)<<8 | uint16(lo)
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		} else {
			address = mc.read16Bit(indirect)
		}

	case instructions.AbsoluteIndexedIndirect:
		indirect := mc.read16BitPC() + mc.X.Address()
		address = mc.read16Bit(indirect)

	case instructions.IndexedIndirect:
		zp := mc.read8BitPC(loByte) + mc.X.Value()
		address = mc.read16BitZeroPage(zp)

	case instructions.IndirectIndexed:
		zp := mc.read8BitPC(loByte)
		base := mc.read16BitZeroPage(zp)
		address = base + mc.Y.Address()
		mc.pageFault(defn, base, address)

	case instructions.ZeroPageIndirect:
		zp := mc.read8BitPC(loByte)
		address = mc.read16BitZeroPage(zp)

	case instructions.AbsoluteIndexedX:
		base := mc.read16BitPC()
		address = base + mc.X.Address()
		mc.pageFault(defn, base, address)

	case instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		address = base + mc.Y.Address()
		mc.pageFault(defn, base, address)

	case instructions.ZeroPageIndexedX:
		zp := mc.read8BitPC(loByte)
		address = uint16(zp + mc.X.Value())
		if address < uint16(zp) {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		zp := mc.read8BitPC(loByte)
		address = uint16(zp + mc.Y.Value())
		if address < uint16(zp) {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
	}

	// read the operand for instructions that need it. NOP instructions with
	// an operand do not read memory so that soft switches are not triggered
	if defn.Operator == instructions.Nop {
		return address, value
	}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return address, value
	}

	if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
		value = mc.read8Bit(address)
	}

	return address, value
}

// pageFault records whether the indexed address is on a different page to the
// base address. the page fault is only recorded for instructions that are
// sensitive to it.
func (mc *CPU) pageFault(defn *instructions.Definition, base uint16, address uint16) {
	mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00
}
