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

package hardware

import (
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/govern"
)

// While the continueCheck() function only runs at the end of a CPU instruction
// it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run the emulation until the cycle budget has been spent or until
// continueCheck() returns a state other than Running. The check is made after
// every instruction. A nil continueCheck is the same as a function that always
// returns Running.
//
// A budget of zero or less means that there is no budget and the emulation
// will run until continueCheck() says otherwise.
//
// Returns the number of cycles used. An instruction that starts within the
// budget always completes so the number of cycles used can be slightly more
// than the budget.
func (m *Machine) Run(budget int, continueCheck func() (govern.State, error)) (int, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	start := m.cycles
	used := func() int {
		return int(m.cycles - start)
	}

	state := govern.Running
	for state == govern.Running {
		if budget > 0 && used() >= budget {
			break
		}

		err := m.Step()
		if err != nil {
			return used(), err
		}

		state, err = continueCheck()
		if err != nil {
			return used(), err
		}

		switch state {
		case govern.Running, govern.Stopped, govern.Ending:
		default:
			return used(), curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}
	}

	return used(), nil
}
