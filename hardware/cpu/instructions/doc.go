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

// Package instructions defines the instruction sets of the 6502 and 65C02.
// Each opcode has a Definition, which records the number of bytes in the
// instruction, the base cycle count and the addressing mode.
//
// The base cycle count includes any cycle that the instruction always
// takes. For example, stores with an indexed addressing mode always take the
// extra cycle for the address fix-up, so the cycle count for STA abs,X is 5
// and PageSensitive is false. Instructions that only take the extra cycle
// when the indexed address crosses a page have PageSensitive set.
//
// Branch instructions take an additional cycle when the branch succeeds and
// another when the branch target is on a different page. Neither is included
// in the base cycle count.
package instructions
