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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/test"
)

func TestDefinitionsNMOS(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.NMOS)

	var documented, undocumented, missing int
	for i, defn := range defs {
		if defn == nil {
			missing++
			continue
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		if defn.Undocumented {
			undocumented++
		} else {
			documented++
		}
	}

	test.ExpectEquality(t, documented, 151)
	test.ExpectEquality(t, undocumented, 28)
	test.ExpectEquality(t, missing, 256-151-28)

	// opcodes without a definition on the NMOS chip
	for _, op := range []uint8{0x02, 0x03, 0x07, 0x0b, 0x9e, 0xcb, 0xff} {
		test.ExpectSuccess(t, defs[op] == nil, op)
	}

	// JMP indirect is one cycle quicker than on the 65C02
	test.ExpectEquality(t, defs[0x6c].Cycles, 5)
}

func TestDefinitionsCMOS(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.CMOS)
	for i, defn := range defs {
		test.DemandSuccess(t, defn != nil, i)
		test.ExpectEquality(t, int(defn.OpCode), i)
	}

	test.ExpectEquality(t, defs[0x80].Operator, instructions.Bra)
	test.ExpectEquality(t, defs[0x6c].Cycles, 6)
	test.ExpectEquality(t, defs[0x7c].AddressingMode, instructions.AbsoluteIndexedIndirect)
	test.ExpectEquality(t, defs[0xb2].AddressingMode, instructions.ZeroPageIndirect)
	test.ExpectEquality(t, defs[0xeb].Operator, instructions.Nop)
	test.ExpectEquality(t, defs[0x5c].Cycles, 8)

	// shift instructions with absolute indexed addressing are page sensitive
	test.ExpectEquality(t, defs[0x1e].Cycles, 6)
	test.ExpectSuccess(t, defs[0x1e].PageSensitive)

	// but INC and DEC are not
	test.ExpectEquality(t, defs[0xfe].Cycles, 7)
	test.ExpectFailure(t, defs[0xfe].PageSensitive)
}

func TestDefinitionsShared(t *testing.T) {
	nmos := instructions.GetDefinitions(instructions.NMOS)
	cmos := instructions.GetDefinitions(instructions.CMOS)

	// documented instructions common to both chips
	for _, op := range []uint8{0xa9, 0xbd, 0x9d, 0x91, 0x20, 0x60, 0x00} {
		test.ExpectEquality(t, *nmos[op], *cmos[op], op)
	}

	// stores always pay for the indexed address fix-up
	test.ExpectEquality(t, nmos[0x9d].Cycles, 5)
	test.ExpectFailure(t, nmos[0x9d].PageSensitive)
	test.ExpectSuccess(t, nmos[0xbd].PageSensitive)
}

func TestMnemonic(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.CMOS)
	test.ExpectEquality(t, defs[0xa9].Mnemonic(), "LDA")
	test.ExpectEquality(t, defs[0x37].Mnemonic(), "RMB3")
	test.ExpectEquality(t, defs[0xf7].Mnemonic(), "SMB7")
	test.ExpectEquality(t, defs[0x0f].Mnemonic(), "BBR0")
	test.ExpectEquality(t, defs[0xcf].Mnemonic(), "BBS4")

	test.ExpectSuccess(t, defs[0xd0].IsBranch())
	test.ExpectSuccess(t, defs[0x8f].IsBranch())
	test.ExpectFailure(t, defs[0x4c].IsBranch())
}

func TestParseVariant(t *testing.T) {
	v, err := instructions.ParseVariant("65c02")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, instructions.CMOS)

	v, err = instructions.ParseVariant(" 6502 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, instructions.NMOS)

	_, err = instructions.ParseVariant("z80")
	test.ExpectFailure(t, err)
}
