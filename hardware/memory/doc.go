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

// Package memory implements the memory systems that the CPU can be attached
// to. Both types implement the cpubus.Bus and cpubus.DebugBus interfaces.
//
// The Flat type is 64k of RAM with no special areas and is useful for
// running bare 6502 programs and for testing.
//
// The Memory type is the memory system of the Apple IIe. The memory is
// divided into areas, as defined by the memorymap package:
//
//	                          ---- main RAM / aux RAM
//	                         |
//	                         |---- IO ---- soft switches, language card, devices
//	   CPU ---- cpu bus ---- *
//	                         |---- slot ROM / internal ROM
//	                         |
//	                          ---- language card RAM / ROM
//
//
//	                            |
//	                            |
//
//	                        debug bus
//
//	                            |
//	                            |
//
//	                        DEBUGGER
//
// Which of the physical memories services an access depends on the state of
// the soft switches. The state can be different for reads and writes. For
// example, with RAMRD clear and RAMWRT set, reads of $0200 to $BFFF come
// from main RAM and writes go to aux RAM.
//
// The language card is controlled by accesses to $C080 to $C08F. Writing to
// language card RAM is only enabled after two consecutive reads of an odd
// address in that range. The Memory type does not emulate the INTC8ROM
// switch, the $C800 to $CFFF area is only ever read from the internal ROM
// when INTCXROM is set.
//
// Devices are attached to the IO area with the AttachDevice() function. The
// address of each device register is used as an index into a table, so
// dispatch is quick.
package memory
