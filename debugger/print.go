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

	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/logger"
)

// printLine sends the string to the terminal. If there is no terminal the
// string is sent to the log.
func (dbg *Debugger) printLine(style terminal.Style, s string) {
	if dbg.term == nil {
		logger.Log(dbg.m.Env, "debugger", s)
		return
	}
	dbg.term.TermPrintLine(style, s)
}

func (dbg *Debugger) printf(style terminal.Style, format string, args ...any) {
	dbg.printLine(style, fmt.Sprintf(format, args...))
}
