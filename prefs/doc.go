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

// Package prefs implements the preference value types used by the emulation.
// Each type supports a pre and post hook, called either side of the value
// being changed.
//
// Values are collated in a Registry, so that they can be set by name. When a
// value is added to the registry, the command line stack is consulted. The
// stack is populated from the command line, with a string of the form:
//
//	cpu.variant::65c02; clock.mhz::1.023
//
// Preferences are not saved to disk.
package prefs
