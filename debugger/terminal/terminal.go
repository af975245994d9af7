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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to display the different styles in different ways.
type Style int

// List of terminal styles.
const (
	// the user input after it has been normalised. terminals that echo
	// input as it is typed do not need to print this
	StyleEcho Style = iota

	// information from the debugger about the command that was just run
	StyleFeedback

	// the instruction that has just been executed
	StyleCPUStep

	// the state of the machine. registers, memory dumps, etc.
	StyleInstrument

	// output from the HELP command
	StyleHelp

	// output from the log or from a script
	StyleLog

	// something went wrong. terminals should print errors even when they
	// have been silenced
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. The line does not include
	// the line terminator. An io.EOF error means that there will never be
	// any more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive returns true for implementations that require user
	// interaction. A script being fed to the input loop is not interactive.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. For example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// UserInterrupt is returned by TermRead() if the user pressed CTRL-C while
// the terminal was waiting for input. Not all terminals can detect this.
const UserInterrupt = "terminal: user interrupt"
