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

// Package test contains helper functions that remove common boilerplate from
// tests written with the standard testing package.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions end the test on failure.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. An
// untyped nil is treated as success because that is how a nil error is
// usually interpreted.
//
// CompareWriter and CappedWriter are io.Writer implementations for capturing
// output.
package test
