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

// Package hardware is the base package for the emulation. The Machine type
// owns the CPU and the memory system and is the entry point for running the
// emulation. It does not know about breakpoints or stepping modes, those are
// the concern of the debugger package.
//
// The two kinds of Machine differ only in the memory system. A Flat machine
// has 64k of RAM. An AppleIIe machine has the memory system of the Apple IIe,
// see the memory package for details.
//
//	m, _ := hardware.NewMachine(env, hardware.AppleIIe)
//	m.LoadROM(rom)
//	m.Reset()
//
//	for {
//		if err := m.Step(); err != nil {
//			break
//		}
//	}
package hardware
