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

package govern

// State of the emulation as seen by the debugger.
type State int

// List of emulation states.
const (
	// the machine is being reset
	Initialising State = iota

	// no instructions are being executed
	Stopped

	// instructions are being executed for a step, step over or step out
	Stepping

	// instructions are being executed by RunTimeslice() or Run()
	Running

	// the debugging session has ended
	Ending
)

var stateNames = [...]string{"Initialising", "Stopped", "Stepping", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown state"
	}
	return stateNames[s]
}

// Executing returns true if instructions are being executed in this state.
func (s State) Executing() bool {
	return s == Running || s == Stepping
}
