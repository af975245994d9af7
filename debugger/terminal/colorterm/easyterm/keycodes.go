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

package easyterm

// control characters recognised by the line editor. the names follow the
// readline bindings
const (
	KeyCtrlA          = 0x01 // start of line
	KeyCtrlC          = 0x03 // interrupt
	KeyCtrlD          = 0x04 // end of input on an empty line
	KeyCtrlE          = 0x05 // end of line
	KeyCtrlH          = 0x08 // backspace on some terminals
	KeyTab            = 0x09
	KeyCarriageReturn = 0x0d
	KeyCtrlU          = 0x15 // delete to start of line
	KeyEsc            = 0x1b
	KeyBackspace      = 0x7f
)

// the character following KeyEsc for cursor and editing sequences
const EscCursor = '['

// the final character of a cursor sequence. EscDelete is followed by a tilde
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorEnd      = 'F'
	CursorHome     = 'H'
	EscDelete      = '3'
)
