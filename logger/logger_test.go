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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65/logger"
	"github.com/jetsetilly/gopher65/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "bus", "rom loaded")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: rom loaded\n")
	w.Reset()

	log.Log(logger.Allow, "cpu", "reset")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: rom loaded\ncpu: reset\n")

	// asking for more entries than exist is fine
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "bus: rom loaded\ncpu: reset\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: reset\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "mmu", "write to rom")
	log.Log(logger.Allow, "mmu", "write to rom")
	log.Log(logger.Allow, "mmu", "write to rom")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mmu: write to rom (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
	test.ExpectEquality(t, len(log.Copy()), 2)
}

type quiet bool

func (q quiet) AllowLogging() bool {
	return !bool(q)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(quiet(true), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(quiet(false), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("error detail"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "pc=%#04x", 0x0600)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: error detail\ntag: stringer\ntag: 100\ntag: pc=0x0600\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	// a short write by the echo writer does not affect the log
	capped, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)
	log.SetEcho(capped)
	log.Log(logger.Allow, "tag", "a long entry")
	test.ExpectEquality(t, capped.String(), "tag: a l")
	test.ExpectEquality(t, log.Copy()[2].Detail, "a long entry")
}
