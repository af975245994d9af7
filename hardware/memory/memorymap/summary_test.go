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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/test"
)

const validMemMap = `0000 -> 00ff	Zero Page
0100 -> 01ff	Stack
0200 -> 03ff	RAM
0400 -> 07ff	Text
0800 -> 1fff	RAM
2000 -> 3fff	HiRes
4000 -> bfff	RAM
c000 -> c0ff	IO
c100 -> cfff	Slot ROM
d000 -> dfff	Language Card (banked)
e000 -> ffff	Language Card
`

func TestMemory(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)

	spans := memorymap.Spans()
	test.DemandEquality(t, len(spans), 11)
	test.ExpectEquality(t, spans[3].Area, memorymap.Text)
	test.ExpectEquality(t, spans[3].Origin, 0x0400)
	test.ExpectEquality(t, spans[3].Memtop, 0x07ff)
	test.ExpectEquality(t, spans[10].Memtop, memorymap.Memtop)
}

func TestAreas(t *testing.T) {
	test.ExpectSuccess(t, memorymap.IsArea(0xc08b, memorymap.IO))
	test.ExpectSuccess(t, memorymap.IsArea(0xfffc, memorymap.LangCardHigh))
	test.ExpectSuccess(t, memorymap.RAM.IsAuxSwitched())
	test.ExpectFailure(t, memorymap.Stack.IsAuxSwitched())
}

func TestParseBank(t *testing.T) {
	b, err := memorymap.ParseBank("AUX")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, memorymap.Aux)

	b, err = memorymap.ParseBank("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, memorymap.Main)

	_, err = memorymap.ParseBank("cartridge")
	test.ExpectFailure(t, err)
}
