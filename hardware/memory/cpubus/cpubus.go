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

// Package cpubus defines the interfaces through which the CPU and the
// debugger access the memory system.
package cpubus

import "github.com/jetsetilly/gopher65/hardware/memory/memorymap"

// Memory defines the operations for the memory system when accessed from the
// CPU. Both functions are total: reads of an address that nothing backs
// return zero and writes to such an address are dropped.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Loader is implemented by memory systems that can have images installed
// in them. Data that does not fit in the bank is truncated and a warning is
// logged with the tag.
type Loader interface {
	Load(address uint16, data []uint8, bank memorymap.Bank, tag string)
}

// Bus is the complete interface of a machine's memory system.
type Bus interface {
	Memory
	Loader
}

// Ticker is an optional interface for memory systems with devices that need
// to know how much time has passed. The CPU calls Tick() once per instruction
// with the number of cycles the instruction took.
type Ticker interface {
	Tick(cycles int)
}

// DebugBus defines the meta-operations for the memory system. Neither
// function has any side effects on the state of the memory system. In
// particular, Peek() of a soft switch does not trigger the switch.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Addresses of the interrupt vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
