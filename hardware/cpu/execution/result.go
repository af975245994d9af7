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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
)

// Bug records a known quirk of the CPU that affected the instruction.
type Bug string

// List of bugs that the CPU emulation will record.
const (
	NoBug Bug = ""

	// NMOS only. JMP (abs) does not carry into the high byte when the
	// pointer is at the end of a page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the zero page address wrapped around the end of the zero page rather
	// than advancing into page one
	ZeroPageIndexBug Bug = "zero page index bug"
)

// Result records the state of the most recently executed instruction.
type Result struct {
	// the definition of the instruction
	Defn *instructions.Definition

	// address of the opcode
	Address uint16

	// number of bytes read from the instruction stream, including the
	// opcode
	ByteCount int

	// the operand of the instruction. for two byte instructions only the low
	// byte is meaningful. BBR and BBS instructions store the zero page
	// address in the low byte and the branch displacement in the high byte
	InstructionData uint16

	// the number of cycles taken by the instruction, including any penalty
	Cycles int

	// whether the indexed address crossed a page boundary
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether the 65C02 decimal mode penalty cycle was taken
	DecimalPenalty bool

	// any bug that was triggered by the instruction
	CPUBug Bug

	// the instruction was a BRK that was intercepted and not executed
	BrkIntercept bool

	// whether the instruction has completed
	Final bool
}

// Reset the result for the instruction at the address.
func (r *Result) Reset(address uint16) {
	*r = Result{Address: address}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}
	return fmt.Sprintf("%04x %s", r.Address, r.Operand())
}

// Operand returns the instruction formatted as assembler source, without the
// address.
func (r Result) Operand() string {
	if r.Defn == nil {
		return "???"
	}

	m := r.Defn.Mnemonic()
	lo := uint8(r.InstructionData)

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return m
	case instructions.Accumulator:
		return fmt.Sprintf("%s A", m)
	case instructions.Immediate:
		return fmt.Sprintf("%s #$%02x", m, lo)
	case instructions.Relative:
		return fmt.Sprintf("%s $%04x", m, r.branchTarget(2, lo))
	case instructions.Absolute:
		return fmt.Sprintf("%s $%04x", m, r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("%s $%02x", m, lo)
	case instructions.Indirect:
		return fmt.Sprintf("%s ($%04x)", m, r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("%s ($%02x,X)", m, lo)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("%s ($%02x),Y", m, lo)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("%s $%04x,X", m, r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("%s $%04x,Y", m, r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s $%02x,X", m, lo)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s $%02x,Y", m, lo)
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("%s ($%02x)", m, lo)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("%s ($%04x,X)", m, r.InstructionData)
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("%s $%02x,$%04x", m, lo, r.branchTarget(3, uint8(r.InstructionData>>8)))
	}

	return m
}

func (r Result) branchTarget(length uint16, displacement uint8) uint16 {
	return r.Address + length + uint16(int16(int8(displacement)))
}
