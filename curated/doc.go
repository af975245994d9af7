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

// Package curated wraps the Go error type so that errors can be identified by
// the pattern that created them rather than by a sentinel value.
//
// Patterns are normally declared as string constants in the package that
// raises the error:
//
//	const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
//
//	return curated.Errorf(UnimplementedInstruction, opcode, pc)
//
// The caller can then test for that specific condition without parsing the
// message:
//
//	if curated.Is(err, cpu.UnimplementedInstruction) {
//		// halt the scheduler and report
//	}
//
// Has() performs the same test but looks through the whole chain of curated
// errors, which is useful when an error has been wrapped with additional
// context:
//
//	err = curated.Errorf("debugger: %v", err)
//	curated.Has(err, cpu.UnimplementedInstruction) // true
//	curated.Is(err, cpu.UnimplementedInstruction)  // false
//
// The Error() implementation removes duplicate adjacent parts of the message
// so that each layer can add its own prefix without worrying about whether
// the layer below has already done so.
package curated
