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
	"strings"

	"github.com/jetsetilly/gopher65/debugger/terminal"
)

// help contains the help text for the debugger's top level commands
var help = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual debugger commands",
	cmdQuit:  "Exits the debugger",
	cmdReset: "Reset the machine. Any script with an onbrk() function is closed",

	cmdRun:  "Run the emulation at the current clock speed until a breakpoint or CTRL-C. With an argument, run as fast as possible for that many cycles",
	cmdStep: "Execute one instruction. The optional argument is the number of instructions to execute",
	cmdOver: "Execute one instruction. A JSR instruction is executed until the subroutine returns",
	cmdOut:  "Run until the current subroutine returns",

	cmdBreak: "Halt the emulation when the PC reaches an address or when an address is read, written or accessed. The end address makes the breakpoint a range",
	cmdDrop:  "Remove a breakpoint. The kind and the range must match the breakpoint exactly",
	cmdClear: "Remove all breakpoints",
	cmdList:  "List all breakpoints",

	cmdCPU:   "Display the current state of the CPU",
	cmdSet:   "Change a CPU register or status flag",
	cmdPeek:  "Display the contents of memory. Soft switches are not triggered",
	cmdPoke:  "Change the contents of memory. Soft switches are not triggered",
	cmdClock: "Display or change the clock speed used by the RUN command",
	cmdIRQ:   "Raise an interrupt request. The request is ignored if the interrupt disable flag is set",
	cmdNMI:   "Raise a non-maskable interrupt",
	cmdMMU:   "Display the state of the soft switches and the language card",
	cmdLog:   "Display the log. The optional argument is the number of most recent entries to display",

	cmdMemMap: "Display the areas of the Apple IIe memory map",
	cmdMemviz: "Write a graphviz diagram of the CPU and breakpoint state to a file",
	cmdScript: "Run a Lua script. A script that defines an onbrk() function stays installed and handles BRK instructions",
}

func (dbg *Debugger) printHelp(keyword string) error {
	cmd, err := debuggerCommands.Find(keyword)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleHelp, cmd.String())
	dbg.printLine(terminal.StyleHelp, help[cmd.Keyword])
	if cmd.Keyword == cmdHelp {
		dbg.printLine(terminal.StyleHelp, "Addresses and values are decimal unless prefixed with $ or 0x")
	}
	return nil
}

func (dbg *Debugger) printHelpList() {
	k := debuggerCommands.Keywords()
	for i := 0; i < len(k); i += 6 {
		dbg.printLine(terminal.StyleHelp, strings.Join(k[i:min(i+6, len(k))], "  "))
	}
}
