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

package debugger

import (
	"fmt"
)

// StopCause is the reason the scheduler stopped executing instructions.
type StopCause int

// List of stop causes.
const (
	// the cycle budget for the timeslice was spent
	Budget StopCause = iota

	// Pause() was called or the context for Run() was cancelled
	Paused

	// a breakpoint was triggered. the Kind and Address fields of the
	// StopReason say which
	Halted

	// the opcode at PC is not defined for the CPU variant. the Opcode field
	// has the value
	Unimplemented

	// a BRK instruction was intercepted and not executed
	Brk

	// the step, step over or step out operation completed
	StepComplete

	// an error occurred. the Err field has the error
	Error
)

func (c StopCause) String() string {
	switch c {
	case Budget:
		return "budget"
	case Paused:
		return "paused"
	case Halted:
		return "breakpoint"
	case Unimplemented:
		return "unimplemented"
	case Brk:
		return "brk"
	case StepComplete:
		return "step complete"
	case Error:
		return "error"
	}
	return "unknown"
}

// StopReason says why and where the scheduler stopped.
type StopReason struct {
	Cause StopCause

	// the program counter at the point the scheduler stopped. for
	// Unimplemented and Brk this is the address of the opcode
	PC uint16

	// the kind of breakpoint and the address that triggered it. for data
	// breakpoints the address is the accessed address, which may be anywhere
	// in the breakpoint's range
	Kind    Kind
	Address uint16

	// the unimplemented opcode
	Opcode uint8

	Err error
}

func (r StopReason) String() string {
	switch r.Cause {
	case Budget:
		return fmt.Sprintf("timeslice complete at $%04x", r.PC)
	case Paused:
		return fmt.Sprintf("paused at $%04x", r.PC)
	case Halted:
		if r.Kind == PC {
			return fmt.Sprintf("PC breakpoint at $%04x", r.PC)
		}
		return fmt.Sprintf("%s breakpoint on $%04x (PC=$%04x)", r.Kind, r.Address, r.PC)
	case Unimplemented:
		return fmt.Sprintf("unimplemented opcode $%02x at $%04x", r.Opcode, r.PC)
	case Brk:
		return fmt.Sprintf("BRK at $%04x", r.PC)
	case StepComplete:
		return fmt.Sprintf("stepped to $%04x", r.PC)
	case Error:
		return fmt.Sprintf("error at $%04x: %v", r.PC, r.Err)
	}
	return "unknown stop reason"
}
