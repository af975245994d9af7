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
	"errors"
	"io"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
)

// InputLoop reads commands from the terminal and runs them until the QUIT
// command, the end of input or until the context is done. The terminal is
// initialised and cleaned up by the function.
//
// Errors from commands are printed to the terminal and do not end the loop.
func (dbg *Debugger) InputLoop(ctx context.Context, term terminal.Terminal) error {
	if err := term.Initialise(); err != nil {
		return err
	}
	defer term.CleanUp()

	term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	dbg.crit.Lock()
	dbg.term = term
	dbg.ctx = ctx
	dbg.crit.Unlock()

	defer func() {
		dbg.crit.Lock()
		dbg.term = nil
		dbg.ctx = context.Background()
		dbg.crit.Unlock()
	}()

	dbg.printLine(terminal.StyleFeedback, dbg.LastStop().String())

	for ctx.Err() == nil {
		input, err := term.TermRead(dbg.buildPrompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
				break
			}
			return err
		}

		if !term.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, input)
		}

		quit, err := dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
		if quit {
			break
		}
	}

	dbg.End()

	return nil
}

// buildPrompt disassembles the instruction at the PC for use as the prompt.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	pc := dbg.m.CPU.PC.Address()
	res := execution.Result{
		Address: pc,
		Defn:    dbg.m.CPU.Definition(dbg.m.Mem.Peek(pc)),
	}
	if res.Defn != nil {
		for i := 1; i < res.Defn.Bytes; i++ {
			res.InstructionData |= uint16(dbg.m.Mem.Peek(pc+uint16(i))) << (8 * (i - 1))
		}
	}

	return terminal.Prompt{
		Type:     terminal.PromptTypeCPUStep,
		Content:  res.String(),
		Scripted: dbg.script != nil,
	}
}
