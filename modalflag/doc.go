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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects a different
// mode of operation, with its own flags and arguments. The go command is the
// best known example: build, test, run, etc.
//
// Arguments are given to the Modes type with NewArgs(). Flags and sub-modes
// for the current layer of arguments are added before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "version")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default. Sub-mode comparisons are not case
// sensitive and Mode() always returns the upper case name:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		mhz := md.AddFloat64("mhz", 1.023, "clock speed")
//		pc := md.AddAddress("pc", "start address")
//		...
//	}
//
// Each call to NewMode() starts a new layer. The arguments that remain after
// the flags and the sub-mode of a layer are parsed by the next call to
// Parse(). Once the final layer has been parsed, the remaining arguments are
// available with RemainingArgs() and GetArg().
package modalflag
