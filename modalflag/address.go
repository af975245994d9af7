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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// InvalidAddress is returned by Address.Set() for values that are not 16 bit
// numbers.
const InvalidAddress = "modalflag: invalid address (%s)"

// Address implements the flag.Value interface for 16 bit addresses. Values are
// decimal unless they have a $ or 0x prefix.
type Address struct {
	value     uint16
	specified bool
}

func (a *Address) String() string {
	if a == nil || !a.specified {
		return ""
	}
	return fmt.Sprintf("$%04x", a.value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	n := s
	if v, ok := strings.CutPrefix(n, "$"); ok {
		n = "0x" + v
	}
	v, err := strconv.ParseUint(n, 0, 16)
	if err != nil {
		return curated.Errorf(InvalidAddress, s)
	}
	a.value = uint16(v)
	a.specified = true
	return nil
}

// Value returns the address and whether the flag was specified on the
// command line.
func (a *Address) Value() (uint16, bool) {
	return a.value, a.specified
}
