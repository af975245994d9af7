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

package registers

// AddDecimal adds val to the register as though both are binary coded
// decimal, using the flag semantics of the NMOS 6502. Returns new carry,
// zero, overflow and sign states.
//
// The NMOS chip computes Z from the binary sum and N and V after adjusting
// the low nibble but before adjusting the high nibble.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	zero = uint8(a+b+c) == 0

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo > 0x09 {
		lo += 0x06
	}

	hi := (a >> 4) + (b >> 4)
	if lo > 0x0f {
		hi++
	}

	sign = hi&0x08 == 0x08
	overflow = ((hi<<4)^a)&0x80 != 0 && (a^b)&0x80 == 0

	if hi > 0x09 {
		hi += 0x06
	}
	rcarry = hi > 0x0f

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts val from the register as though both are binary
// coded decimal, using the flag semantics of the NMOS 6502. All flags are
// taken from the equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	a := int(r.value)
	b := int(val)
	borrow := 1
	if carry {
		borrow = 0
	}

	lo := (a & 0x0f) - (b & 0x0f) - borrow
	hi := (a >> 4) - (b >> 4)
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, zero, overflow, sign
}

// AddDecimalCMOS adds val to the register as though both are binary coded
// decimal, as the 65C02 does it. Returns the carry and overflow states. The
// zero and sign flags should be taken from the register after the call.
//
// Invalid BCD digits are not an error. The result is whatever the nibble
// correction produces.
func (r *Register) AddDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	a := int(r.value)
	b := int(val)
	c := 0
	if carry {
		c = 1
	}

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo > 0x09 {
		lo += 0x06
	}

	hi := (a >> 4) + (b >> 4)
	if lo > 0x0f {
		hi++
	}
	lo &= 0x0f

	overflow = ((hi<<4)^a)&0x80 != 0 && (a^b)&0x80 == 0

	if hi > 0x09 {
		hi += 0x06
	}
	rcarry = hi > 0x0f

	r.value = uint8(hi<<4) | uint8(lo)

	return rcarry, overflow
}

// SubtractDecimalCMOS subtracts val from the register as though both are
// binary coded decimal, as the 65C02 does it. Returns the carry and overflow
// states. The zero and sign flags should be taken from the register after
// the call.
//
// The operand is subtracted by adding its nines complement, one nibble at a
// time, with the carry flag acting as the inverse of the borrow.
func (r *Register) SubtractDecimalCMOS(val uint8, carry bool) (rcarry, overflow bool) {
	bin := *r
	_, overflow = bin.Subtract(val, carry)

	a := int(r.value)
	b := int(val)

	// a zero operand with a pending borrow is treated as an operand of one
	// with the borrow consumed
	if b == 0 && !carry {
		b = 1
		carry = true
	}

	c := 0
	if carry {
		c = 1
	}

	lo := 0x09 - (b & 0x0f) + (a & 0x0f) + c
	hi := 0x09 - (b >> 4) + (a >> 4)

	if lo > 0x09 {
		lo -= 0x0a
		hi++
	}

	rcarry = hi > 0x09
	if rcarry {
		hi -= 0x0a
	}

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, overflow
}
