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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/prefs"
	"github.com/jetsetilly/gopher65/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// surrounding space is removed and the unused entries are sorted
	prefs.PushCommandLineStack(" cpu.variant :: 6502 ;clock.mhz::1.023")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "clock.mhz::1.023; cpu.variant::6502")

	// malformed entries are ignored
	prefs.PushCommandLineStack("debugger.brk; a::b::c; hardware.randstate::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.randstate::true")

	ok, _ := prefs.GetCommandLinePref("cpu.variant")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineRegistry(t *testing.T) {
	prefs.PushCommandLineStack("clock.mhz::2.5; cpu.variant::6502")

	// only the top group is consulted
	prefs.PushCommandLineStack("clock.mhz::4")

	var mhz prefs.Float
	reg := prefs.NewRegistry()
	test.DemandSuccess(t, reg.Add("clock.mhz", &mhz))
	test.ExpectEquality(t, mhz.Get().(float64), 4.0)

	// the value was used so nothing remains in the top group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	var variant prefs.String
	reg = prefs.NewRegistry()
	test.DemandSuccess(t, reg.Add("cpu.variant", &variant))
	test.ExpectEquality(t, variant.Get().(string), "6502")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "clock.mhz::2.5")

	// a value that cannot be converted is an error
	prefs.PushCommandLineStack("clock.mhz::fast")
	reg = prefs.NewRegistry()
	test.ExpectFailure(t, reg.Add("clock.mhz", &mhz))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
