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

// Package registers implements the three types of register found in the
// 6502: the 8 bit Register (used for A, X, Y and SP), the ProgramCounter and
// the StatusRegister.
//
// Register arithmetic returns the carry and overflow results but never
// updates a StatusRegister. That is the job of the CPU, which decides which
// flags an instruction affects. For example:
//
//	a.Load(10)
//	carry, _ := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.SetZN(a.Value())
//
// Binary coded decimal arithmetic is provided in two flavours. AddDecimal()
// and SubtractDecimal() follow the NMOS 6502. The CMOS versions follow the
// 65C02, where N and Z reflect the corrected result.
package registers
