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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/govern"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/hardware/clocks"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the machine, unthrottled,
// for the specified duration. The machine should have been reset and loaded
// with a program.
//
// The effective clock speed of the emulation is written to the output along
// with the percentage of the clock speed set in the preferences.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var cycles int

	runner := func() error {
		timerChan := make(chan bool, 1)
		timer := time.AfterFunc(dur, func() {
			timerChan <- true
		})
		defer timer.Stop()

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		cycles, err = m.Run(0, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return govern.Ending, timedOut
				default:
				}
			}
			return govern.Running, nil
		})
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	mhz, accuracy := CalcMHz(cycles, dur.Seconds(), m.Env.Prefs.ClockMHz.Get().(float64))
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, dur.Seconds(), accuracy)

	return nil
}

// CalcMHz takes the number of cycles and duration and returns the effective
// clock speed in MHz. Also returns the accuracy of the measurement as a
// percentage of the target clock speed.
func CalcMHz(cycles int, seconds float64, target float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	mhz := float64(cycles) / seconds / 1000000
	if target <= 0 {
		target = clocks.Default
	}
	return mhz, mhz / target * 100
}
