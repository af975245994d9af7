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

// Package preferences collates the preference values that affect the
// emulated hardware.
package preferences

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jetsetilly/gopher65/hardware/clocks"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	reg *prefs.Registry

	// the 6502 variant to emulate. either "6502" or "65c02"
	CPUVariant prefs.String

	// speed of the CPU in MHz
	ClockMHz prefs.Float

	// initialise registers to an unknown state on reset and RAM to an
	// unknown state at power-on
	RandomState prefs.Bool

	// stop the emulation when a BRK instruction is encountered rather than
	// executing it. the debugger can then decide what to do with it
	InterceptBRK prefs.Bool

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.reg.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Any value present on the command line stack is used
// instead of the default value.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		reg: prefs.NewRegistry(),
	}

	p.Reseed(0)
	p.SetDefaults()

	p.CPUVariant.SetHookPre(func(v prefs.Value) error {
		_, err := instructions.ParseVariant(v.(string))
		return err
	})

	err := p.reg.Add("cpu.variant", &p.CPUVariant)
	if err != nil {
		return nil, err
	}
	err = p.reg.Add("clock.mhz", &p.ClockMHz)
	if err != nil {
		return nil, err
	}
	err = p.reg.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.reg.Add("debugger.brk", &p.InterceptBRK)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.CPUVariant.Set("65c02")
	p.ClockMHz.Set(clocks.Default)
	p.RandomState.Set(false)
	p.InterceptBRK.Set(false)
}

// Set the preference with the name.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.reg.Set(strings.ToLower(key), v)
}

// Variant returns the CPU variant as an instructions.Variant. The value has
// been validated when it was set.
func (p *Preferences) Variant() instructions.Variant {
	v, _ := instructions.ParseVariant(p.CPUVariant.String())
	return v
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = time.Now().UnixNano()
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}
