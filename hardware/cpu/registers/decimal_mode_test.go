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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/test"
)

func TestDecimalModeCMOS(t *testing.T) {
	r8 := registers.NewRegister(0x49, "A")
	rcarry, _ := r8.AddDecimalCMOS(0x49, false)
	test.ExpectEquality(t, r8.Value(), 0x98)
	test.ExpectFailure(t, rcarry)

	r8.Load(0x99)
	rcarry, _ = r8.AddDecimalCMOS(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x58)
	rcarry, _ = r8.AddDecimalCMOS(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x05)
	rcarry, _ = r8.SubtractDecimalCMOS(0x06, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)

	r8.Load(0x50)
	rcarry, _ = r8.SubtractDecimalCMOS(0x25, true)
	test.ExpectEquality(t, r8.Value(), 0x25)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x10)
	rcarry, _ = r8.SubtractDecimalCMOS(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x09)
	test.ExpectSuccess(t, rcarry)

	// borrow in with a non-zero operand
	r8.Load(0x50)
	rcarry, _ = r8.SubtractDecimalCMOS(0x25, false)
	test.ExpectEquality(t, r8.Value(), 0x24)
	test.ExpectSuccess(t, rcarry)
}

func TestDecimalModeZeroOperand(t *testing.T) {
	// zero operand with borrow in
	r8 := registers.NewRegister(0x00, "A")
	rcarry, _ := r8.SubtractDecimalCMOS(0x00, false)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)

	r8.Load(0x50)
	rcarry, _ = r8.SubtractDecimalCMOS(0x00, false)
	test.ExpectEquality(t, r8.Value(), 0x49)
	test.ExpectSuccess(t, rcarry)

	// zero operand without borrow
	r8.Load(0x50)
	rcarry, _ = r8.SubtractDecimalCMOS(0x00, true)
	test.ExpectEquality(t, r8.Value(), 0x50)
	test.ExpectSuccess(t, rcarry)
}

func TestDecimalModeNMOS(t *testing.T) {
	r8 := registers.NewRegister(0x49, "A")
	rcarry, _, _, _ := r8.AddDecimal(0x49, false)
	test.ExpectEquality(t, r8.Value(), 0x98)
	test.ExpectFailure(t, rcarry)

	// the NMOS zero flag comes from the binary sum
	r8.Load(0x99)
	rcarry, zero, _, _ := r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)
	test.ExpectFailure(t, zero)

	r8.Load(0x05)
	rcarry, _, _, _ = r8.SubtractDecimal(0x06, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)

	r8.Load(0x46)
	rcarry, _, _, _ = r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectSuccess(t, rcarry)
}

// every valid pair of BCD values gives the decimal answer
func TestDecimalModeExhaustive(t *testing.T) {
	toBCD := func(v int) uint8 {
		return uint8((v/10)<<4 | v%10)
	}

	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for _, c := range []bool{false, true} {
				ci := 0
				if c {
					ci = 1
				}

				r8 := registers.NewRegister(toBCD(a), "A")
				rcarry, _ := r8.AddDecimalCMOS(toBCD(b), c)
				sum := a + b + ci
				test.ExpectEquality(t, r8.Value(), toBCD(sum%100), a, b, c)
				test.ExpectEquality(t, rcarry, sum > 99, a, b, c)

				r8.Load(toBCD(a))
				rcarry, _ = r8.SubtractDecimalCMOS(toBCD(b), c)
				diff := a - b - (1 - ci)
				test.ExpectEquality(t, r8.Value(), toBCD((diff+100)%100), a, b, c)
				test.ExpectEquality(t, rcarry, diff >= 0, a, b, c)
			}
		}
	}
}
