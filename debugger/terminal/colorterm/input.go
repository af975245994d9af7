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
	"unicode"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm/easyterm"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	p := prompt.String()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept when we scroll through history so that the
	// user can return to it
	var buffInput []rune

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. move the cursor to its position in the input
	for {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(clearLine)
		ct.EasyTerm.TermPrint(penStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(normalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(cursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}
			continue

		case easyterm.KeyCtrlC:
			ct.EasyTerm.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCtrlD:
			// end of input only if the line is empty
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return "QUIT", nil
			}

		case easyterm.KeyCarriageReturn:
			s := string(input)

			// add to history if the input is not the same as the last entry
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}

			ct.EasyTerm.TermPrint("\r\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					// store current input if we're at the end of the history
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append([]rune{}, buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.EscDelete:
				// the delete sequence is terminated by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyCtrlA:
			cursor = 0

		case easyterm.KeyCtrlE:
			cursor = len(input)

		case easyterm.KeyCtrlU:
			input = append(input[:0], input[cursor:]...)
			cursor = 0
			history = len(ct.commandHistory)

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}

		if ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}
	}
}
