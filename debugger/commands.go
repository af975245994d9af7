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
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher65/hardware/clocks"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/logger"
)

// Sentinal error patterns for the command line.
const (
	InvalidAddress = "debugger: invalid address (%s)"
	InvalidValue   = "debugger: invalid value (%s)"
	InvalidCount   = "debugger: invalid count (%s)"
)

// the default number of bytes shown by the PEEK command
const peekDefault = 16

// addresses and values are decimal unless they have a $ or 0x prefix
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint16(v), nil
}

func parseValue(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, curated.Errorf(InvalidValue, s)
	}
	return v, nil
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, curated.Errorf(InvalidCount, s)
	}
	return v, nil
}

// parseBreakpoint reads the kind and range of a breakpoint from the tokens.
func parseBreakpoint(tokens *commandline.Tokens) (Kind, uint16, uint16, error) {
	s, _ := tokens.Get()
	kind, err := ParseKind(s)
	if err != nil {
		return PC, 0, 0, err
	}

	s, _ = tokens.Get()
	address, err := parseAddress(s)
	if err != nil {
		return PC, 0, 0, err
	}

	end := address
	if s, ok := tokens.Get(); ok {
		end, err = parseAddress(s)
		if err != nil {
			return PC, 0, 0, err
		}
	}

	return kind, address, end, nil
}

// interruptible runs the function in such a way that it can be interrupted
// by the user with CTRL-C. the function should honour the context or the
// Pause() function.
func (dbg *Debugger) interruptible(f func(ctx context.Context) StopReason) StopReason {
	ctx, stop := signal.NotifyContext(dbg.ctx, os.Interrupt)
	defer stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			// the context is also done once f() has returned
			select {
			case <-done:
			default:
				dbg.Pause()
			}
		case <-done:
		}
	}()

	// a stale pause would stop RunTimeslice() immediately
	dbg.pause.Store(false)

	return f(ctx)
}

// printStop prints the reason the scheduler stopped and the instruction that
// was last executed.
func (dbg *Debugger) printStop(r StopReason) {
	switch r.Cause {
	case Error, Unimplemented:
		dbg.printLine(terminal.StyleError, r.String())
	case StepComplete:
	default:
		dbg.printLine(terminal.StyleFeedback, r.String())
	}
}

func (dbg *Debugger) printLastResult() {
	dbg.crit.Lock()
	res := dbg.m.CPU.LastResult
	dbg.crit.Unlock()
	dbg.printf(terminal.StyleCPUStep, "%s [%d]", res, res.Cycles)
}

// parseCommand tokenises and runs the input. it returns true if the input
// loop should end.
func (dbg *Debugger) parseCommand(input string) (bool, error) {
	tokens := commandline.TokeniseInput(input)

	// empty input
	if tokens.Len() == 0 {
		return false, nil
	}

	cmd, err := debuggerCommands.Validate(tokens)
	if err != nil {
		return false, err
	}

	switch cmd.Keyword {
	case cmdHelp:
		if s, ok := tokens.Get(); ok {
			return false, dbg.printHelp(s)
		}
		dbg.printHelpList()

	case cmdQuit:
		return true, nil

	case cmdReset:
		dbg.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		var r StopReason
		if s, ok := tokens.Get(); ok {
			n, err := parseCount(s)
			if err != nil {
				return false, err
			}
			r = dbg.interruptible(func(_ context.Context) StopReason {
				return dbg.RunTimeslice(n)
			})
		} else {
			r = dbg.interruptible(dbg.Run)
		}
		dbg.printStop(r)

	case cmdStep:
		n := 1
		if s, ok := tokens.Get(); ok {
			n, err = parseCount(s)
			if err != nil {
				return false, err
			}
		}
		for i := 0; i < n; i++ {
			r := dbg.Step()
			if r.Cause != StepComplete {
				dbg.printStop(r)
				break
			}
			dbg.printLastResult()
		}

	case cmdOver:
		dbg.printStop(dbg.interruptible(func(_ context.Context) StopReason {
			return dbg.StepOver()
		}))
		dbg.printLastResult()

	case cmdOut:
		dbg.printStop(dbg.interruptible(func(_ context.Context) StopReason {
			return dbg.StepOut()
		}))
		dbg.printLastResult()

	case cmdBreak:
		kind, address, end, err := parseBreakpoint(tokens)
		if err != nil {
			return false, err
		}
		if err := dbg.AddBreakpoint(kind, address, end); err != nil {
			return false, err
		}
		dbg.printf(terminal.StyleFeedback, "breakpoint added: %s", Breakpoint{Kind: kind, Address: address, End: end})

	case cmdDrop:
		kind, address, end, err := parseBreakpoint(tokens)
		if err != nil {
			return false, err
		}
		if err := dbg.RemoveBreakpoint(kind, address, end); err != nil {
			return false, err
		}
		dbg.printf(terminal.StyleFeedback, "breakpoint dropped: %s", Breakpoint{Kind: kind, Address: address, End: end})

	case cmdClear:
		dbg.ClearBreakpoints()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdList:
		l := dbg.ListBreakpoints()
		if len(l) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		}
		for i, bp := range l {
			dbg.printf(terminal.StyleFeedback, "% 2d: %s", i, bp)
		}

	case cmdCPU:
		dbg.crit.Lock()
		s := dbg.m.CPU.String()
		dbg.crit.Unlock()
		dbg.printLine(terminal.StyleInstrument, s)

	case cmdSet:
		reg, _ := tokens.Get()
		s, _ := tokens.Get()
		v, err := parseValue(s, 16)
		if err != nil {
			return false, err
		}
		if err := dbg.SetRegister(reg, uint16(v)); err != nil {
			return false, err
		}

	case cmdPeek:
		s, _ := tokens.Get()
		address, err := parseAddress(s)
		if err != nil {
			return false, err
		}
		n := peekDefault
		if s, ok := tokens.Get(); ok {
			n, err = parseCount(s)
			if err != nil {
				return false, err
			}
		}
		dbg.printPeek(address, n)

	case cmdPoke:
		s, _ := tokens.Get()
		address, err := parseAddress(s)
		if err != nil {
			return false, err
		}
		for s, ok := tokens.Get(); ok; s, ok = tokens.Get() {
			v, err := parseValue(s, 8)
			if err != nil {
				return false, err
			}
			dbg.Poke(address, uint8(v))
			address++
		}

	case cmdClock:
		if s, ok := tokens.Get(); ok {
			var mhz float64
			switch strings.ToUpper(s) {
			case "NTSC":
				mhz = clocks.NTSC
			case "PAL":
				mhz = clocks.PAL
			case "FAST":
				mhz = clocks.Accelerated
			default:
				mhz, err = strconv.ParseFloat(s, 64)
				if err != nil {
					return false, curated.Errorf(InvalidValue, s)
				}
			}
			if err := dbg.SetClockSpeed(mhz); err != nil {
				return false, err
			}
		}
		dbg.printf(terminal.StyleFeedback, "clock speed %.6f MHz", dbg.ClockSpeed())

	case cmdIRQ, cmdNMI:
		if dbg.Interrupt(cmd.Keyword == cmdNMI) {
			dbg.printf(terminal.StyleFeedback, "%s serviced", cmd.Keyword)
		} else {
			dbg.printf(terminal.StyleFeedback, "%s ignored (interrupt disable flag is set)", cmd.Keyword)
		}

	case cmdMMU:
		if dbg.m.IIe == nil {
			dbg.printf(terminal.StyleFeedback, "%s machine has no MMU", dbg.m.Kind)
			break
		}
		dbg.crit.Lock()
		s := dbg.m.IIe.String()
		dbg.crit.Unlock()
		for _, l := range strings.Split(s, "\n") {
			dbg.printLine(terminal.StyleInstrument, l)
		}

	case cmdMemMap:
		for _, sp := range memorymap.Spans() {
			dbg.printLine(terminal.StyleInstrument, sp.String())
		}

	case cmdLog:
		s := strings.Builder{}
		if arg, ok := tokens.Get(); ok {
			if strings.ToUpper(arg) == "CLEAR" {
				logger.Clear()
				break
			}
			n, err := parseCount(arg)
			if err != nil {
				return false, err
			}
			logger.Tail(&s, n)
		} else {
			logger.Write(&s)
		}
		for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
			if l != "" {
				dbg.printLine(terminal.StyleLog, l)
			}
		}

	case cmdMemviz:
		filename, _ := tokens.Get()
		if err := dbg.memviz(filename); err != nil {
			return false, err
		}
		dbg.printf(terminal.StyleFeedback, "memviz written to %s", filename)

	case cmdScript:
		filename, _ := tokens.Get()
		dbg.interruptible(func(ctx context.Context) StopReason {
			err = dbg.RunScriptContext(ctx, filename)
			return dbg.LastStop()
		})
		if err != nil {
			return false, err
		}
		if dbg.Scripted() {
			dbg.printf(terminal.StyleFeedback, "%s: onbrk() installed", filename)
		}

	default:
		return false, fmt.Errorf("%s is not yet implemented", cmd.Keyword)
	}

	return false, nil
}

// printPeek prints n bytes of memory from the address. sixteen bytes per
// line.
func (dbg *Debugger) printPeek(address uint16, n int) {
	dbg.crit.Lock()
	data := make([]uint8, n)
	for i := range data {
		data[i] = dbg.m.Mem.Peek(address + uint16(i))
	}
	dbg.crit.Unlock()

	for i := 0; i < len(data); i += 16 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x:", address+uint16(i)))
		for _, v := range data[i:min(i+16, len(data))] {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())
	}
}
