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

// Package clocks defines the constant values for the speed of the CPU clock
// in the Apple II family, in MHz.
//
// The NTSC Apple II runs at 14.31818MHz divided by 14, with a long cycle
// every 65 cycles, giving an average of about 1.0205MHz. The PAL machines
// are derived from a 14.25MHz crystal.
package clocks

const (
	NTSC = 1.020484
	PAL  = 1.015625

	// the speed of the 65C02 in the enhanced Apple IIc+ and typical
	// accelerator cards
	Accelerated = 4.0
)

// Default clock speed.
const Default = NTSC

// Hz converts a speed in MHz to a whole number of cycles per second.
func Hz(mhz float64) int {
	return int(mhz * 1000000)
}
