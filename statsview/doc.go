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

// Package statsview is an optional package. It is only functional when the
// statsview build tag is present. Otherwise Launch() does nothing and
// Available() returns false.
//
// When available, the -statsview flag of the gopher65 command starts an HTTP
// server on the local machine offering runtime statistics of the emulator
// process. The graphical statistics are viewable at:
//
//	localhost:12650/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12650/debug/pprof/
package statsview
