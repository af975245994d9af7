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

package colorterm

import (
	"github.com/jetsetilly/gopher65/debugger/terminal"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input is echoed as it is typed
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(dimPens["white"])
		ct.EasyTerm.TermPrint("  ")
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(dimPens["white"])
	case terminal.StyleCPUStep:
		ct.EasyTerm.TermPrint(pens["yellow"])
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(pens["cyan"])
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(dimPens["green"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(normalPen)
	ct.EasyTerm.TermPrint("\n")
}
