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

package test

import (
	"fmt"
	"strings"
)

// CompareWriter buffers everything written to it so that it can be compared
// against an expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with s.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

// Contains returns true if s occurs anywhere in the buffered output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(cw.buffer), s)
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}

// CappedWriter is an io.Writer that stops buffering once size bytes have
// been written. Useful for capturing the output of a program that may not
// terminate.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

// Write implements the io.Writer interface.
func (cw *CappedWriter) Write(p []byte) (int, error) {
	remaining := cw.size - len(cw.buffer)
	n := min(remaining, len(p))
	cw.buffer = append(cw.buffer, p[:n]...)
	return n, nil
}

// Reset empties the buffer.
func (cw *CappedWriter) Reset() {
	cw.buffer = cw.buffer[:0]
}

func (cw *CappedWriter) String() string {
	return string(cw.buffer)
}
