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
	"github.com/jetsetilly/gopher65/debugger/terminal/commandline"
)

// debugger keywords
const (
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdOver   = "OVER"
	cmdOut    = "OUT"
	cmdBreak  = "BREAK"
	cmdDrop   = "DROP"
	cmdClear  = "CLEAR"
	cmdList   = "LIST"
	cmdCPU    = "CPU"
	cmdSet    = "SET"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdClock  = "CLOCK"
	cmdIRQ    = "IRQ"
	cmdNMI    = "NMI"
	cmdMMU    = "MMU"
	cmdMemMap = "MEMMAP"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdScript = "SCRIPT"
)

var breakpointKinds = []string{"PC", "READ", "WRITE", "ACCESS"}

var commandTable = []commandline.Command{
	{Keyword: cmdHelp, MaxArgs: 1, Usage: "[command]"},
	{Keyword: cmdQuit, MaxArgs: 0},
	{Keyword: cmdReset, MaxArgs: 0},
	{Keyword: cmdRun, MaxArgs: 1, Usage: "[cycles]"},
	{Keyword: cmdStep, MaxArgs: 1, Usage: "[count]"},
	{Keyword: cmdOver, MaxArgs: 0},
	{Keyword: cmdOut, MaxArgs: 0},
	{Keyword: cmdBreak, MinArgs: 2, MaxArgs: 3, Options: breakpointKinds, Usage: "<kind> <address> [end]"},
	{Keyword: cmdDrop, MinArgs: 2, MaxArgs: 3, Options: breakpointKinds, Usage: "<kind> <address> [end]"},
	{Keyword: cmdClear, MaxArgs: 0},
	{Keyword: cmdList, MaxArgs: 0},
	{Keyword: cmdCPU, MaxArgs: 0},
	{Keyword: cmdSet, MinArgs: 2, MaxArgs: 2, Options: []string{"PC", "A", "X", "Y", "SP", "SR", "N", "V", "B", "D", "I", "Z", "C"}, Usage: "<register> <value>"},
	{Keyword: cmdPeek, MinArgs: 1, MaxArgs: 2, Usage: "<address> [count]"},
	{Keyword: cmdPoke, MinArgs: 2, MaxArgs: -1, Usage: "<address> <value> [value...]"},
	{Keyword: cmdClock, MaxArgs: 1, Options: []string{"NTSC", "PAL", "FAST"}, Usage: "[mhz|NTSC|PAL|FAST]"},
	{Keyword: cmdIRQ, MaxArgs: 0},
	{Keyword: cmdNMI, MaxArgs: 0},
	{Keyword: cmdMMU, MaxArgs: 0},
	{Keyword: cmdMemMap, MaxArgs: 0},
	{Keyword: cmdLog, MaxArgs: 1, Options: []string{"CLEAR"}, Usage: "[count|CLEAR]"},
	{Keyword: cmdMemviz, MinArgs: 1, MaxArgs: 1, Usage: "<file>"},
	{Keyword: cmdScript, MinArgs: 1, MaxArgs: 1, Usage: "<file>"},
}

// debuggerCommands is the validated form of the command table.
var debuggerCommands *commandline.Commands

func init() {
	var err error
	debuggerCommands, err = commandline.NewCommands(commandTable)
	if err != nil {
		panic(err)
	}
}
