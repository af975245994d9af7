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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// Kind of breakpoint. PC breakpoints halt execution before the instruction at
// the address is executed. The other kinds halt execution after the
// instruction that accessed the address.
type Kind int

// List of breakpoint kinds.
const (
	PC Kind = iota
	Read
	Write
	Access
)

func (k Kind) String() string {
	switch k {
	case PC:
		return "PC"
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	case Access:
		return "ACCESS"
	}
	return "unknown"
}

// Sentinal error patterns for the breakpoint functions.
const (
	UnknownKind        = "breakpoint: unknown kind (%s)"
	BreakpointExists   = "breakpoint: %s already exists"
	BreakpointNotFound = "breakpoint: %s does not exist"
	BreakpointRange    = "breakpoint: end address (%#04x) before start address (%#04x)"
)

// ParseKind converts a string to a Kind. The comparison is not case sensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PC":
		return PC, nil
	case "READ", "R":
		return Read, nil
	case "WRITE", "W":
		return Write, nil
	case "ACCESS", "A", "RW":
		return Access, nil
	}
	return PC, curated.Errorf(UnknownKind, s)
}

// Breakpoint specifies an inclusive range of addresses. A breakpoint on a
// single address has an End field equal to the Address field.
type Breakpoint struct {
	Kind    Kind
	Address uint16
	End     uint16
}

func (bp Breakpoint) String() string {
	if bp.Address == bp.End {
		return fmt.Sprintf("%s $%04x", bp.Kind, bp.Address)
	}
	return fmt.Sprintf("%s $%04x-$%04x", bp.Kind, bp.Address, bp.End)
}

func (bp Breakpoint) contains(address uint16) bool {
	return address >= bp.Address && address <= bp.End
}

// matches returns true if the data access triggers the breakpoint.
func (bp Breakpoint) matches(address uint16, write bool) bool {
	switch bp.Kind {
	case Read:
		if write {
			return false
		}
	case Write:
		if !write {
			return false
		}
	case Access:
	default:
		return false
	}
	return bp.contains(address)
}

// breakpoints keeps track of all the currently defined breakpoints. it also
// implements the cpu.AccessMonitor interface and records the first data
// breakpoint triggered by an instruction.
type breakpoints struct {
	entries []Breakpoint

	// the number of data breakpoints in the entries list
	numData int

	// the breakpoint triggered by the most recent instruction
	hit    Breakpoint
	hitAt  uint16
	hasHit bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{}
}

func (bps *breakpoints) find(bp Breakpoint) int {
	for i := range bps.entries {
		if bps.entries[i] == bp {
			return i
		}
	}
	return -1
}

func (bps *breakpoints) add(bp Breakpoint) error {
	if bp.End < bp.Address {
		return curated.Errorf(BreakpointRange, bp.End, bp.Address)
	}
	if bps.find(bp) != -1 {
		return curated.Errorf(BreakpointExists, bp)
	}
	bps.entries = append(bps.entries, bp)
	if bp.Kind != PC {
		bps.numData++
	}
	return nil
}

func (bps *breakpoints) remove(bp Breakpoint) error {
	i := bps.find(bp)
	if i == -1 {
		return curated.Errorf(BreakpointNotFound, bp)
	}
	bps.entries = append(bps.entries[:i], bps.entries[i+1:]...)
	if bp.Kind != PC {
		bps.numData--
	}
	return nil
}

func (bps *breakpoints) clear() {
	bps.entries = bps.entries[:0]
	bps.numData = 0
	bps.hasHit = false
}

// list returns a copy of the breakpoints in the order they were added.
func (bps *breakpoints) list() []Breakpoint {
	l := make([]Breakpoint, len(bps.entries))
	copy(l, bps.entries)
	return l
}

// checkPC returns true if there is a PC breakpoint for the address.
func (bps *breakpoints) checkPC(address uint16) bool {
	for _, bp := range bps.entries {
		if bp.Kind == PC && bp.contains(address) {
			return true
		}
	}
	return false
}

// arm prepares the breakpoints for the next instruction.
func (bps *breakpoints) arm() {
	bps.hasHit = false
}

// triggered returns the first data breakpoint matched since the most recent
// call to arm().
func (bps *breakpoints) triggered() (Breakpoint, uint16, bool) {
	return bps.hit, bps.hitAt, bps.hasHit
}

// DataAccess implements the cpu.AccessMonitor interface.
func (bps *breakpoints) DataAccess(address uint16, write bool) {
	if bps.hasHit || bps.numData == 0 {
		return
	}
	for _, bp := range bps.entries {
		if bp.matches(address, write) {
			bps.hit = bp
			bps.hitAt = address
			bps.hasHit = true
			return
		}
	}
}

func (bps *breakpoints) String() string {
	if len(bps.entries) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, bp := range bps.entries {
		s.WriteString(fmt.Sprintf("% 2d: %s\n", i, bp))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
