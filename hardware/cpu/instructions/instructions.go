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

package instructions

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// AddressingMode describes how the operand for the instruction is found.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // branch instructions

	Absolute // abs
	ZeroPage // zp
	Indirect // (abs) JMP only

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y

	// 65C02 only
	ZeroPageIndirect        // (zp)
	AbsoluteIndexedIndirect // (abs,X) JMP only
	ZeroPageRelative        // zp,rel BBR and BBS only
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect"
	case IndirectIndexed:
		return "indirect indexed"
	case AbsoluteIndexedX:
		return "absolute,X"
	case AbsoluteIndexedY:
		return "absolute,Y"
	case ZeroPageIndexedX:
		return "zero page,X"
	case ZeroPageIndexedY:
		return "zero page,Y"
	case ZeroPageIndirect:
		return "zero page indirect"
	case AbsoluteIndexedIndirect:
		return "absolute indexed indirect"
	case ZeroPageRelative:
		return "zero page relative"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has on memory
// or on the flow of the program.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the branch and JMP instructions. branch instructions
	// specifically can be distinguished by the AddressingMode
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "read"
	case Write:
		return "write"
	case RMW:
		return "rmw"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Interrupt:
		return "interrupt"
	}
	return "unknown effect"
}

// Variant of the 6502 family.
type Variant int

// List of supported variants.
const (
	NMOS Variant = iota
	CMOS
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "6502"
	case CMOS:
		return "65C02"
	}
	return "unknown variant"
}

// UnknownVariant is returned by ParseVariant when the string is not
// recognised.
const UnknownVariant = "instructions: unknown cpu variant (%s)"

// ParseVariant converts a string to a Variant. The comparison is not case
// sensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "6502", "NMOS":
		return NMOS, nil
	case "65C02", "CMOS":
		return CMOS, nil
	}
	return NMOS, curated.Errorf(UnknownVariant, s)
}

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
}

// Mnemonic returns the assembler mnemonic for the definition. For the 65C02
// bit instructions the bit number is part of the mnemonic.
func (defn Definition) Mnemonic() string {
	switch defn.Operator {
	case Rmb, Smb, Bbr, Bbs:
		return fmt.Sprintf("%s%d", defn.Operator, defn.BitNumber())
	}
	return defn.Operator.String()
}

// BitNumber returns the bit operated on by RMB, SMB, BBR and BBS.
func (defn Definition) BitNumber() int {
	return int(defn.OpCode>>4) & 0x07
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles,
		defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a conditional or unconditional
// relative branch.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == ZeroPageRelative) && defn.Effect == Flow
}
