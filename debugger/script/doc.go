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

// Package script runs Lua scripts that drive the debugger. It uses the
// gopher-lua interpreter.
//
// The following functions are available to a script:
//
//	step()                  execute one instruction. returns the stop reason
//	run(cycles)             run for a number of cycles. returns the stop reason
//	reg(name)               the value of a register or flag
//	setreg(name, value)     change a register or flag
//	peek(address)           read memory without side effects
//	poke(address, value)    change memory without side effects
//	breakpoint(kind, address [, end])
//	clear()                 remove all breakpoints
//	cycles()                the number of cycles since the last reset
//	log(message)            add a message to the log
//
// The print() function writes to the debugger's terminal.
//
// A script can define a global function called onbrk(pc, code). If it does,
// the function is called whenever the CPU meets a BRK instruction. The code
// argument is the byte following the BRK opcode. If onbrk() returns true
// then execution continues after the code byte. This allows a program to
// make requests of the script, in the manner of a system call.
//
// A Script is not safe for concurrent use. onbrk() is called from the
// goroutine running the emulation.
package script
