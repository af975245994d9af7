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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/test"
)

type mockMem struct {
	internal []uint8
	ticks    int
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)

	// reset vector points to $0600
	mem.internal[0xfffc] = 0x00
	mem.internal[0xfffd] = 0x06

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.Peek(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x", d, value, address)
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Poke(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Tick(cycles int) {
	mem.ticks += cycles
}

// access records the memory accesses reported by the CPU
type access struct {
	address uint16
	write   bool
}

func (a access) String() string {
	if a.write {
		return fmt.Sprintf("W%04x", a.address)
	}
	return fmt.Sprintf("R%04x", a.address)
}

type accessLog struct {
	log []access
}

func (l *accessLog) DataAccess(address uint16, write bool) {
	l.log = append(l.log, access{address: address, write: write})
}

func (l *accessLog) String() string {
	return fmt.Sprintf("%v", l.log)
}

func newEnv(t *testing.T, variant string) *instance.Instance {
	t.Helper()

	env, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	env.Label = instance.Test
	env.Normalise()
	test.DemandSuccess(t, env.Prefs.Set("cpu.variant", variant))

	return env
}

// newCPU returns a CPU of the specified variant that has been reset. the
// program counter will be $0600.
func newCPU(t *testing.T, variant string) (*cpu.CPU, *mockMem) {
	t.Helper()
	return newCPUWithEnv(t, newEnv(t, variant))
}

func newCPUWithEnv(t *testing.T, env *instance.Instance) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mc := cpu.NewCPU(env, mem)
	mc.Reset()

	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
