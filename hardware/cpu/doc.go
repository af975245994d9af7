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

// Package cpu emulates the 6502 and 65C02 microprocessors. Like all 8-bit
// processors of the era, the CPU executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table
// for the CPU variant. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. If
// the memory also implements cpubus.Ticker then it is told how many cycles
// each instruction took, once the instruction has completed. Individual
// cycles are not emulated and there are no dummy reads or writes.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
//
//	mc := cpu.NewCPU(env, mem)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			break
//		}
//		cycles += mc.LastResult.Cycles
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
//
// An AccessMonitor can be attached to the CPU with AttachMonitor(). The
// monitor is told about every data access made by an instruction, which is
// how the debugger implements read and write breakpoints.
package cpu
