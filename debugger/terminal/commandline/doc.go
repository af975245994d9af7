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

// Package commandline divides user input into tokens and validates the
// tokens against a table of commands. It also provides tab completion for
// the commands in the table.
//
// Commands can be abbreviated to any prefix that is unique in the table. An
// exact match is always preferred so a command can be a prefix of another
// command.
//
// Hexadecimal values can be written with a leading $ and are normalised to
// the 0x notation by the tokeniser. This means that values can be parsed by
// strconv.ParseUint() with a base of zero.
package commandline
