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
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// Command describes one entry in the command table.
type Command struct {
	// the keyword is always upper case
	Keyword string

	// the number of arguments accepted by the command. a MaxArgs value less
	// than zero means there is no maximum
	MinArgs int
	MaxArgs int

	// the values that the first argument can take. used for tab completion
	// only. the values are always upper case
	Options []string

	// the arguments of the command as shown by the HELP command
	Usage string

	// one line description of the command
	Help string
}

func (cmd Command) String() string {
	if cmd.Usage == "" {
		return cmd.Keyword
	}
	return fmt.Sprintf("%s %s", cmd.Keyword, cmd.Usage)
}

// Sentinal error patterns for the Commands type.
const (
	DuplicateCommand  = "commandline: duplicate command (%s)"
	UnknownCommand    = "commandline: unrecognised command (%s)"
	AmbiguousCommand  = "commandline: ambiguous command (%s could be %s)"
	TooFewArguments   = "commandline: too few arguments for %s"
	TooManyArguments  = "commandline: too many arguments for %s"
	NoCommandProvided = "commandline: no command"
)

// Commands is a table of commands.
type Commands struct {
	cmds []Command
}

// NewCommands is the preferred method of initialisation for the Commands
// type. Keywords are converted to upper case. Duplicate keywords are an error.
func NewCommands(cmds []Command) (*Commands, error) {
	c := &Commands{}
	for _, cmd := range cmds {
		cmd.Keyword = strings.ToUpper(cmd.Keyword)
		if c.exact(cmd.Keyword) != nil {
			return nil, curated.Errorf(DuplicateCommand, cmd.Keyword)
		}
		for i := range cmd.Options {
			cmd.Options[i] = strings.ToUpper(cmd.Options[i])
		}
		c.cmds = append(c.cmds, cmd)
	}
	return c, nil
}

func (c *Commands) String() string {
	return strings.Join(c.Keywords(), " ")
}

// Keywords returns the keyword of every command in alphabetical order.
func (c *Commands) Keywords() []string {
	k := make([]string, 0, len(c.cmds))
	for _, cmd := range c.cmds {
		k = append(k, cmd.Keyword)
	}
	slices.Sort(k)
	return k
}

func (c *Commands) exact(keyword string) *Command {
	for i := range c.cmds {
		if c.cmds[i].Keyword == keyword {
			return &c.cmds[i]
		}
	}
	return nil
}

// Find the command for the word. The word can be an abbreviation of the
// keyword if the abbreviation is unique.
func (c *Commands) Find(word string) (*Command, error) {
	word = strings.ToUpper(word)

	if cmd := c.exact(word); cmd != nil {
		return cmd, nil
	}

	var found []*Command
	for i := range c.cmds {
		if strings.HasPrefix(c.cmds[i].Keyword, word) {
			found = append(found, &c.cmds[i])
		}
	}

	switch len(found) {
	case 0:
		return nil, curated.Errorf(UnknownCommand, word)
	case 1:
		return found[0], nil
	}

	k := make([]string, 0, len(found))
	for _, cmd := range found {
		k = append(k, cmd.Keyword)
	}
	slices.Sort(k)

	return nil, curated.Errorf(AmbiguousCommand, word, strings.Join(k, " or "))
}

// Validate the tokens against the command table. The tokens are left
// positioned after the command keyword.
func (c *Commands) Validate(tokens *Tokens) (*Command, error) {
	tokens.Reset()

	word, ok := tokens.Get()
	if !ok {
		return nil, curated.Errorf(NoCommandProvided)
	}

	cmd, err := c.Find(word)
	if err != nil {
		return nil, err
	}

	n := tokens.Remaining()
	if n < cmd.MinArgs {
		return nil, curated.Errorf(TooFewArguments, cmd.Keyword)
	}
	if cmd.MaxArgs >= 0 && n > cmd.MaxArgs {
		return nil, curated.Errorf(TooManyArguments, cmd.Keyword)
	}

	return cmd, nil
}
