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
	"context"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher65/debugger/govern"
	"github.com/jetsetilly/gopher65/debugger/script"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/logger"
)

// BrkHandler is called when a BRK instruction is intercepted. The code is the
// byte following the BRK opcode. If the handler returns true then execution
// resumes after the code byte. Otherwise the scheduler stops with a Brk
// StopReason.
type BrkHandler func(pc uint16, code uint8) (bool, error)

// Debugger is the basic debugging frontend for the emulation. It wraps a
// hardware.Machine with breakpoints, stepping and a throttled run loop.
//
// All functions are safe to call from any goroutine. Functions that execute
// instructions are serialised with a mutex that is held for the duration of
// a timeslice.
type Debugger struct {
	m *hardware.Machine

	// held for the duration of each timeslice and whenever the machine or
	// the breakpoints are changed
	crit sync.Mutex

	state atomic.Int32
	pause atomic.Bool

	bps *breakpoints

	brkHandler BrkHandler

	// the script with an onbrk() handler. the script is closed on reset or
	// when a new script is run
	script *script.Script

	// the value of the InterceptBRK preference before the script was
	// installed
	savedIntercept bool

	// the terminal used by the input loop. nil if the input loop is not
	// running
	term terminal.Terminal

	// the reason the scheduler last stopped
	lastStop StopReason

	// a data breakpoint triggered by the stack pushes of Interrupt(). it is
	// returned by the next timeslice before any instruction is executed
	interruptStop    StopReason
	hasInterruptStop bool

	// the context of the input loop. RUN commands are cancelled when this
	// context is done
	ctx context.Context
}

// NewDebugger creates a new Debugger for the machine. The machine should
// already be loaded and reset.
func NewDebugger(m *hardware.Machine) *Debugger {
	dbg := &Debugger{
		m:   m,
		bps: newBreakpoints(),
		ctx: context.Background(),
	}
	dbg.m.CPU.AttachMonitor(dbg.bps)
	dbg.lastStop = StopReason{Cause: Paused, PC: m.CPU.PC.Address()}
	dbg.setState(govern.Stopped)
	return dbg
}

func (dbg *Debugger) setState(state govern.State) {
	dbg.state.Store(int32(state))
}

// State returns the current state of the emulation.
func (dbg *Debugger) State() govern.State {
	return govern.State(dbg.state.Load())
}

// Machine returns the machine being debugged. The machine should not be
// changed while the emulation is running.
func (dbg *Debugger) Machine() *hardware.Machine {
	return dbg.m
}

// LastStop returns the reason the scheduler last stopped.
func (dbg *Debugger) LastStop() StopReason {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.lastStop
}

// SetBrkHandler sets the function called when a BRK instruction is
// intercepted. A nil handler removes the existing handler.
func (dbg *Debugger) SetBrkHandler(handler BrkHandler) {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.brkHandler = handler
}

// AddBreakpoint adds a breakpoint over the inclusive range of addresses.
// Adding a breakpoint that already exists is an error.
func (dbg *Debugger) AddBreakpoint(kind Kind, address uint16, end uint16) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.bps.add(Breakpoint{Kind: kind, Address: address, End: end})
}

// RemoveBreakpoint removes a breakpoint. The kind and the range must match
// exactly a breakpoint that has been added.
func (dbg *Debugger) RemoveBreakpoint(kind Kind, address uint16, end uint16) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.bps.remove(Breakpoint{Kind: kind, Address: address, End: end})
}

// ClearBreakpoints removes all breakpoints.
func (dbg *Debugger) ClearBreakpoints() {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.bps.clear()
}

// ListBreakpoints returns all breakpoints in the order they were added.
func (dbg *Debugger) ListBreakpoints() []Breakpoint {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.bps.list()
}

// GetRegister returns the value of the named CPU register.
func (dbg *Debugger) GetRegister(name string) (uint16, error) {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.m.CPU.GetRegister(name)
}

// SetRegister changes the value of the named CPU register.
func (dbg *Debugger) SetRegister(name string, value uint16) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.m.CPU.SetRegister(name, value)
}

// Peek returns the value at the address without triggering any soft
// switches.
func (dbg *Debugger) Peek(address uint16) uint8 {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.m.Mem.Peek(address)
}

// Poke changes the value at the address without triggering any soft
// switches.
func (dbg *Debugger) Poke(address uint16, value uint8) {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.m.Mem.Poke(address, value)
}

// Cycles returns the number of cycles executed since the last reset.
func (dbg *Debugger) Cycles() int64 {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.m.Cycles()
}

// Interrupt the CPU. Returns true if the interrupt was serviced.
//
// Data breakpoints matching the stack pushes of the interrupt stop the
// emulation at the start of the next timeslice, with the PC at the interrupt
// handler.
func (dbg *Debugger) Interrupt(nonMaskable bool) bool {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	dbg.bps.arm()
	serviced := dbg.m.Interrupt(nonMaskable)
	if bp, address, ok := dbg.bps.triggered(); ok {
		dbg.interruptStop = StopReason{Cause: Halted, Kind: bp.Kind, Address: address, PC: dbg.m.CPU.PC.Address()}
		dbg.hasInterruptStop = true
	}

	return serviced
}

// Reset the machine. Any running script is closed.
func (dbg *Debugger) Reset() {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	dbg.setState(govern.Initialising)
	dbg.closeScript()
	dbg.m.Reset()
	dbg.lastStop = StopReason{Cause: Paused, PC: dbg.m.CPU.PC.Address()}
	dbg.hasInterruptStop = false
	dbg.setState(govern.Stopped)
}

// closeScript must be called with the critical section locked.
func (dbg *Debugger) closeScript() {
	if dbg.script == nil {
		return
	}
	dbg.script.Close()
	dbg.script = nil
	dbg.brkHandler = nil
	_ = dbg.m.Env.Prefs.InterceptBRK.Set(dbg.savedIntercept)
}

// End the debugging session. Any running script is closed.
func (dbg *Debugger) End() {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.closeScript()
	dbg.setState(govern.Ending)
	logger.Log(dbg.m.Env, "debugger", "session ended")
}
