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

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/govern"
	"github.com/jetsetilly/gopher65/hardware/clocks"
	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/logger"
	"github.com/jetsetilly/gopher65/performance/limiter"
)

// the number of timeslices per second in the Run() function. the budget for
// each timeslice is the clock speed divided by this value
const timeslicesPerSecond = 100

// the budget of the timeslices used by the stepping functions. the stepping
// functions are not throttled so the value only affects how often the
// critical section is released
const steppingBudget = 10000

// InvalidClockSpeed is returned by SetClockSpeed() for a speed of zero or
// less.
const InvalidClockSpeed = "debugger: invalid clock speed (%.3f MHz)"

// SetClockSpeed changes the speed at which Run() executes instructions.
func (dbg *Debugger) SetClockSpeed(mhz float64) error {
	if mhz <= 0 {
		return curated.Errorf(InvalidClockSpeed, mhz)
	}
	return dbg.m.Env.Prefs.ClockMHz.Set(mhz)
}

// ClockSpeed returns the speed at which Run() executes instructions.
func (dbg *Debugger) ClockSpeed() float64 {
	return dbg.m.Env.Prefs.ClockMHz.Get().(float64)
}

func (dbg *Debugger) budget() int {
	mhz := dbg.ClockSpeed()
	if mhz <= 0 {
		mhz = clocks.Default
	}
	return max(clocks.Hz(mhz)/timeslicesPerSecond, 1)
}

// Pause a running emulation. The pause takes effect at the next instruction
// boundary. The pause flag is cleared by Run() and the stepping functions
// when they begin. RunTimeslice() does not clear the flag.
//
// Returns false if no instructions were being executed at the time of the
// call. The flag is set in either case.
func (dbg *Debugger) Pause() bool {
	dbg.pause.Store(true)
	return dbg.State().Executing()
}

// RunTimeslice executes instructions until the cycle budget has been spent or
// until a stop condition fires. If the previous stop was a PC breakpoint at
// the current PC then that breakpoint is ignored for the first instruction, so
// that execution can resume from it. A timeslice that ends on a breakpoint
// address because the budget was spent halts on the breakpoint in the next
// timeslice.
//
// A budget of zero or less means there is no budget.
func (dbg *Debugger) RunTimeslice(budget int) StopReason {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	dbg.setState(govern.Running)
	r := dbg.timeslice(budget, nil, dbg.resuming())
	dbg.setState(govern.Stopped)

	return r
}

// Run the emulation at the clock speed in the preferences until a stop
// condition fires or until the context is done. A cancelled context is
// reported as a Paused StopReason.
func (dbg *Debugger) Run(ctx context.Context) StopReason {
	dbg.pause.Store(false)

	lim := limiter.NewLimiter(timeslicesPerSecond)
	defer lim.Stop()

	dbg.setState(govern.Running)
	defer dbg.setState(govern.Stopped)

	first := true
	for {
		dbg.crit.Lock()
		r := dbg.timeslice(dbg.budget(), nil, first && dbg.resuming())
		dbg.crit.Unlock()

		if r.Cause != Budget {
			return r
		}
		first = false

		if err := lim.Wait(ctx); err != nil {
			return dbg.stopped(Paused)
		}
	}
}

// Step executes a single instruction. A PC breakpoint at the current PC
// never prevents the step.
func (dbg *Debugger) Step() StopReason {
	dbg.pause.Store(false)

	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	dbg.setState(govern.Stepping)
	r := dbg.timeslice(0, func() bool { return true }, true)
	dbg.setState(govern.Stopped)

	return r
}

// StepOver executes a single instruction unless the instruction is a JSR. In
// which case the emulation runs until the subroutine returns. Breakpoints
// inside the subroutine are honoured.
func (dbg *Debugger) StepOver() StopReason {
	dbg.crit.Lock()
	mc := dbg.m.CPU
	pc := mc.PC.Address()
	defn := mc.Definition(dbg.m.Mem.Peek(pc))
	dbg.crit.Unlock()

	if defn == nil || defn.Operator != instructions.Jsr {
		return dbg.Step()
	}

	target := pc + uint16(defn.Bytes)
	startSP := mc.SP.Value()

	return dbg.runUntil(func() bool {
		return mc.PC.Address() == target && int8(mc.SP.Value()-startSP) >= 0
	})
}

// StepOut runs the emulation until the current subroutine returns. The return
// address is predicted from the stack. Inner subroutines that return to the
// same address do not stop the emulation because the stack pointer must be
// above its depth at the start of the step.
func (dbg *Debugger) StepOut() StopReason {
	dbg.crit.Lock()
	mc := dbg.m.CPU
	target := mc.PredictRTS()
	startSP := mc.SP.Value()
	dbg.crit.Unlock()

	return dbg.runUntil(func() bool {
		return mc.PC.Address() == target && int8(mc.SP.Value()-startSP) > 0
	})
}

// runUntil runs the emulation, without throttling, until the done function
// returns true or another stop condition fires.
func (dbg *Debugger) runUntil(done func() bool) StopReason {
	dbg.pause.Store(false)

	dbg.setState(govern.Stepping)
	defer dbg.setState(govern.Stopped)

	first := true
	for {
		dbg.crit.Lock()
		r := dbg.timeslice(steppingBudget, done, first && dbg.resuming())
		dbg.crit.Unlock()

		if r.Cause != Budget {
			return r
		}
		first = false
	}
}

// resuming is true if the last stop was a PC breakpoint at the current PC.
// must be called with the critical section locked.
func (dbg *Debugger) resuming() bool {
	return dbg.lastStop.Cause == Halted && dbg.lastStop.Kind == PC &&
		dbg.lastStop.PC == dbg.m.CPU.PC.Address()
}

// stopped records a stop reason that did not come from timeslice().
func (dbg *Debugger) stopped(cause StopCause) StopReason {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	dbg.lastStop = StopReason{Cause: cause, PC: dbg.m.CPU.PC.Address()}
	return dbg.lastStop
}

// timeslice executes instructions until the budget is spent, the done
// function returns true or a stop condition fires. must be called with the
// critical section locked.
//
// if resume is true then a PC breakpoint at the current PC is ignored for the
// first instruction.
func (dbg *Debugger) timeslice(budget int, done func() bool, resume bool) StopReason {
	r := dbg.execute(budget, done, resume)
	dbg.lastStop = r

	switch r.Cause {
	case Budget, StepComplete:
	default:
		logger.Logf(dbg.m.Env, "debugger", "%s", r)
	}

	return r
}

func (dbg *Debugger) execute(budget int, done func() bool, resume bool) StopReason {
	mc := dbg.m.CPU
	start := dbg.m.Cycles()

	if dbg.hasInterruptStop {
		dbg.hasInterruptStop = false
		return dbg.interruptStop
	}

	for {
		pc := mc.PC.Address()

		if dbg.pause.Swap(false) {
			return StopReason{Cause: Paused, PC: pc}
		}

		if !resume && dbg.bps.checkPC(pc) {
			return StopReason{Cause: Halted, Kind: PC, Address: pc, PC: pc}
		}
		resume = false

		dbg.bps.arm()

		if err := dbg.m.Step(); err != nil {
			if curated.Is(err, cpu.UnimplementedInstruction) {
				return StopReason{Cause: Unimplemented, PC: pc, Opcode: dbg.m.Mem.Peek(pc), Err: err}
			}
			return StopReason{Cause: Error, PC: pc, Err: err}
		}

		if mc.LastResult.BrkIntercept {
			resumed, err := dbg.serviceBrk(pc)
			if err != nil {
				return StopReason{Cause: Error, PC: pc, Err: err}
			}
			if !resumed {
				return StopReason{Cause: Brk, PC: pc}
			}
		}

		if bp, address, ok := dbg.bps.triggered(); ok {
			return StopReason{Cause: Halted, Kind: bp.Kind, Address: address, PC: mc.PC.Address()}
		}

		if done != nil && done() {
			return StopReason{Cause: StepComplete, PC: mc.PC.Address()}
		}

		if budget > 0 && dbg.m.Cycles()-start >= int64(budget) {
			return StopReason{Cause: Budget, PC: mc.PC.Address()}
		}
	}
}

// serviceBrk calls the BRK handler for the intercepted BRK instruction at the
// address. if the handler wants to resume then the PC is moved past the BRK
// and the code byte that follows it.
func (dbg *Debugger) serviceBrk(pc uint16) (bool, error) {
	if dbg.brkHandler == nil {
		return false, nil
	}

	code := dbg.m.Mem.Peek(pc + 1)
	resume, err := dbg.brkHandler(pc, code)
	if err != nil || !resume {
		return false, err
	}

	dbg.m.CPU.LoadPC(pc + 2)
	return true, nil
}
