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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher65/test"
)

func TestTokeniser(t *testing.T) {
	tk := commandline.TokeniseInput("  break   pc $0609  # comment")
	test.ExpectEquality(t, tk.String(), "break   pc $0609")
	test.ExpectEquality(t, tk.Len(), 3)

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "break")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "pc")
	test.ExpectEquality(t, tk.Remaining(), 2)
	test.ExpectEquality(t, tk.Remainder(), "pc 0x0609")

	tk.Get()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0x0609")
	test.ExpectSuccess(t, tk.IsEnd())

	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0x0609")

	// a lone dollar sign is not a hex value
	tk = commandline.TokeniseInput("$")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "$")
}

func newCommands(t *testing.T) *commandline.Commands {
	t.Helper()
	cmds, err := commandline.NewCommands([]commandline.Command{
		{Keyword: "step", MaxArgs: 0},
		{Keyword: "stepout", MaxArgs: 0},
		{Keyword: "break", MinArgs: 2, MaxArgs: 3, Options: []string{"pc", "read", "write", "access"}},
		{Keyword: "peek", MinArgs: 1, MaxArgs: 2},
		{Keyword: "help", MaxArgs: -1},
	})
	test.DemandSuccess(t, err)
	return cmds
}

func TestCommands(t *testing.T) {
	cmds := newCommands(t)
	test.ExpectEquality(t, cmds.String(), "BREAK HELP PEEK STEP STEPOUT")

	_, err := commandline.NewCommands([]commandline.Command{
		{Keyword: "step"}, {Keyword: "STEP"},
	})
	test.ExpectSuccess(t, curated.Is(err, commandline.DuplicateCommand))

	// exact match is preferred over the longer command
	cmd, err := cmds.Find("step")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.Keyword, "STEP")

	cmd, err = cmds.Find("stepo")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.Keyword, "STEPOUT")

	cmd, err = cmds.Find("b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.Keyword, "BREAK")

	_, err = cmds.Find("s")
	test.ExpectSuccess(t, curated.Is(err, commandline.AmbiguousCommand))
	test.ExpectEquality(t, err.Error(), "commandline: ambiguous command (S could be STEP or STEPOUT)")

	_, err = cmds.Find("x")
	test.ExpectSuccess(t, curated.Is(err, commandline.UnknownCommand))
}

func TestValidation(t *testing.T) {
	cmds := newCommands(t)

	tk := commandline.TokeniseInput("break pc $0609")
	cmd, err := cmds.Validate(tk)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd.Keyword, "BREAK")
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "pc")

	_, err = cmds.Validate(commandline.TokeniseInput("break pc"))
	test.ExpectSuccess(t, err)

	_, err = cmds.Validate(commandline.TokeniseInput("break"))
	test.ExpectSuccess(t, curated.Is(err, commandline.TooFewArguments))

	_, err = cmds.Validate(commandline.TokeniseInput("break pc 1 2 3"))
	test.ExpectSuccess(t, curated.Is(err, commandline.TooManyArguments))

	_, err = cmds.Validate(commandline.TokeniseInput("step 1"))
	test.ExpectSuccess(t, curated.Is(err, commandline.TooManyArguments))

	_, err = cmds.Validate(commandline.TokeniseInput("help a b c d e"))
	test.ExpectSuccess(t, err)

	_, err = cmds.Validate(commandline.TokeniseInput("   "))
	test.ExpectSuccess(t, curated.Is(err, commandline.NoCommandProvided))
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion(newCommands(t))

	test.ExpectEquality(t, tc.Complete("br"), "BREAK ")
	tc.Reset()

	// cycle through options
	s := tc.Complete("st")
	test.ExpectEquality(t, s, "STEP ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "STEPOUT ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "STEP ")
	tc.Reset()

	// options for the first argument
	test.ExpectEquality(t, tc.Complete("break r"), "break READ ")
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("b a"), "b ACCESS ")
	tc.Reset()

	// no completion
	test.ExpectEquality(t, tc.Complete("peek 0x"), "peek 0x")
	test.ExpectEquality(t, tc.Complete("zzz"), "zzz")

	// only one option so completing again does nothing
	s = tc.Complete("he")
	test.ExpectEquality(t, s, "HELP ")
	test.ExpectEquality(t, tc.Complete(s), "HELP ")
}
