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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt. It
// implements the terminal.TabCompletion interface.
type TabCompletion struct {
	cmds *Commands

	options    []string
	lastOption int

	// the input before the word being completed
	prefix string

	// the last string returned by Complete(). if the next call to Complete()
	// has the same input then the next option is returned
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for
// TabCompletion.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to the closest match in the command table. Calling Complete()
// again with the result of the previous call cycles through the other
// matches.
func (tc *TabCompletion) Complete(input string) string {
	if tc.lastGuess != "" && input == tc.lastGuess {
		if len(tc.options) <= 1 {
			return input
		}
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		words := strings.Fields(input)
		if len(words) == 0 || strings.HasSuffix(input, " ") {
			words = append(words, "")
		}
		trigger := strings.ToUpper(words[len(words)-1])

		var candidates []string
		switch len(words) {
		case 1:
			candidates = tc.cmds.Keywords()
		case 2:
			if cmd, err := tc.cmds.Find(words[0]); err == nil {
				candidates = cmd.Options
			}
		}

		tc.options = tc.options[:0]
		tc.lastOption = 0
		for _, c := range candidates {
			if strings.HasPrefix(c, trigger) {
				tc.options = append(tc.options, c)
			}
		}

		// no completion options. return input unchanged
		if len(tc.options) == 0 {
			return input
		}

		tc.prefix = strings.Join(words[:len(words)-1], " ")
		if tc.prefix != "" {
			tc.prefix += " "
		}
	}

	tc.lastGuess = tc.prefix + tc.options[tc.lastOption] + " "
	return tc.lastGuess
}

// Reset is called whenever the input has changed in a way that is not the
// result of a call to Complete().
func (tc *TabCompletion) Reset() {
	tc.lastGuess = ""
	tc.options = tc.options[:0]
}
