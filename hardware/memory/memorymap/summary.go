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

package memorymap

import (
	"fmt"
	"strings"
)

// Span is a contiguous range of addresses in the same Area.
type Span struct {
	Area   Area
	Origin uint16
	Memtop uint16
}

func (sp Span) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", sp.Origin, sp.Memtop, sp.Area)
}

// Spans returns the memory map as a list of contiguous areas in address
// order.
func Spans() []Span {
	var spans []Span

	sp := Span{Area: MapAddress(0)}
	for a := 1; a <= int(Memtop); a++ {
		if area := MapAddress(uint16(a)); area != sp.Area {
			sp.Memtop = uint16(a - 1)
			spans = append(spans, sp)
			sp = Span{Area: area, Origin: uint16(a)}
		}
	}
	sp.Memtop = Memtop

	return append(spans, sp)
}

// Summary returns the memory map as a multiline string, one line per Span.
func Summary() string {
	s := strings.Builder{}
	for _, sp := range Spans() {
		s.WriteString(sp.String())
		s.WriteString("\n")
	}
	return s.String()
}
