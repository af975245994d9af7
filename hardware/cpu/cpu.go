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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
)

// AccessMonitor is notified of every memory access made by an instruction,
// except for the reading of the instruction itself.
type AccessMonitor interface {
	DataAccess(address uint16, write bool)
}

// CPU implements the 6502 and the 65C02. Register logic is implemented by the
// Register type in the registers sub-package.
type CPU struct {
	env *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem     cpubus.Memory
	ticker  cpubus.Ticker
	monitor AccessMonitor

	variant      instructions.Variant
	instructions [256]*instructions.Definition

	// the result of the most recent instruction. the Address field is valid
	// even if the instruction could not be executed
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The env argument can be nil, in which case the CPU is a 65C02 and BRK
// instructions are never intercepted.
//
// If the memory implements the cpubus.Ticker interface then it is ticked
// once per instruction.
func NewCPU(env *instance.Instance, mem cpubus.Memory) *CPU {
	mc := &CPU{
		env:    env,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0xfd, "SP"),
		Status: registers.NewStatusRegister(),
	}
	mc.Plumb(mem)
	mc.SetVariant(instructions.CMOS)
	if env != nil {
		mc.SetVariant(env.Prefs.Variant())
	}
	return mc
}

// Plumb a new memory system into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
	mc.ticker, _ = mem.(cpubus.Ticker)
}

// AttachMonitor sets the AccessMonitor for the CPU. A nil argument removes
// the monitor.
func (mc *CPU) AttachMonitor(monitor AccessMonitor) {
	mc.monitor = monitor
}

// SetVariant changes the instruction set of the CPU.
func (mc *CPU) SetVariant(variant instructions.Variant) {
	mc.variant = variant
	mc.instructions = instructions.GetDefinitions(variant)
}

// Definition returns the instruction definition for the opcode. Returns nil if
// the opcode is not defined for the CPU variant.
func (mc *CPU) Definition(opcode uint8) *instructions.Definition {
	return mc.instructions[opcode]
}

// Variant returns the variant of the CPU being emulated.
func (mc *CPU) Variant() instructions.Variant {
	return mc.variant
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the reset vector.
// The variant is reread from the preferences.
//
// If the RandomState preference is set the A, X and Y registers are given
// random values.
func (mc *CPU) Reset() {
	mc.LastResult = execution.Result{}

	if mc.env != nil {
		mc.SetVariant(mc.env.Prefs.Variant())
	}

	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.env.Prefs.RandSrc.Intn(0x100)))
		mc.X.Load(uint8(mc.env.Prefs.RandSrc.Intn(0x100)))
		mc.Y.Load(uint8(mc.env.Prefs.RandSrc.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// UnknownRegister is returned by GetRegister() and SetRegister() when the
// name is not recognised.
const UnknownRegister = "cpu: unknown register (%s)"

// GetRegister returns the value of the named register. The names are the
// labels of the registers. The status register can also be named by flag:
// N, V, B, D, I, Z and C.
func (mc *CPU) GetRegister(name string) (uint16, error) {
	switch strings.ToUpper(name) {
	case "PC":
		return mc.PC.Address(), nil
	case "A":
		return mc.A.Address(), nil
	case "X":
		return mc.X.Address(), nil
	case "Y":
		return mc.Y.Address(), nil
	case "SP":
		return mc.SP.Address(), nil
	case "SR", "P":
		return uint16(mc.Status.Value()), nil
	}

	if f, ok := mc.flag(name); ok {
		if *f {
			return 1, nil
		}
		return 0, nil
	}

	return 0, curated.Errorf(UnknownRegister, name)
}

// SetRegister changes the value of the named register. See GetRegister() for
// the list of names. The value is truncated to the width of the register.
func (mc *CPU) SetRegister(name string, value uint16) error {
	switch strings.ToUpper(name) {
	case "PC":
		mc.PC.Load(value)
	case "A":
		mc.A.Load(uint8(value))
	case "X":
		mc.X.Load(uint8(value))
	case "Y":
		mc.Y.Load(uint8(value))
	case "SP":
		mc.SP.Load(uint8(value))
	case "SR", "P":
		mc.Status.Load(uint8(value))
	default:
		f, ok := mc.flag(name)
		if !ok {
			return curated.Errorf(UnknownRegister, name)
		}
		*f = value != 0
	}
	return nil
}

func (mc *CPU) flag(name string) (*bool, bool) {
	switch strings.ToUpper(name) {
	case "N":
		return &mc.Status.Sign, true
	case "V":
		return &mc.Status.Overflow, true
	case "B":
		return &mc.Status.Break, true
	case "D":
		return &mc.Status.DecimalMode, true
	case "I":
		return &mc.Status.InterruptDisable, true
	case "Z":
		return &mc.Status.Zero, true
	case "C":
		return &mc.Status.Carry, true
	}
	return nil, false
}

// read8Bit returns the 8bit value from the specified address. the access is
// reported to the monitor.
func (mc *CPU) read8Bit(address uint16) uint8 {
	v := mc.mem.Read(address)
	if mc.monitor != nil {
		mc.monitor.DataAccess(address, false)
	}
	return v
}

// write8Bit writes 8 bits to the specified address. the access is reported
// to the monitor.
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)
	if mc.monitor != nil {
		mc.monitor.DataAccess(address, true)
	}
}

// read16Bit returns the 16bit value from the specified address. the high
// byte is read from the next address, which may be on the next page.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16BitZeroPage returns the 16bit value from the zero page address. the
// high byte is read from the next address in the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.read8Bit(uint16(address))
	hi := mc.read8Bit(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loByte
	hiByte
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData for operand bytes
func (mc *CPU) read8BitPC(effect read8BitPCeffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	switch effect {
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
	case hiByte:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. the
// value is also stored in LastResult.InstructionData.
func (mc *CPU) read16BitPC() uint16 {
	mc.read8BitPC(loByte)
	mc.read8BitPC(hiByte)
	return mc.LastResult.InstructionData
}

// push value onto the stack. the stack pointer wraps around within page one.
func (mc *CPU) push(value uint8) {
	mc.write8Bit(0x0100|mc.SP.Address(), value)
	mc.SP.Add(0xff, false)
}

// pull value from the stack.
func (mc *CPU) pull() uint8 {
	mc.SP.Add(1, false)
	return mc.read8Bit(0x0100 | mc.SP.Address())
}

func (mc *CPU) push16(value uint16) {
	mc.push(uint8(value >> 8))
	mc.push(uint8(value))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Interrupt the CPU. An IRQ is ignored if the interrupt disable flag is set,
// in which case the function returns false. A non-maskable interrupt always
// succeeds.
//
// The interrupt takes seven cycles. The memory is ticked and LastResult is
// not changed.
func (mc *CPU) Interrupt(nonMaskable bool) bool {
	if !nonMaskable && mc.Status.InterruptDisable {
		return false
	}

	mc.push16(mc.PC.Address())

	sr := mc.Status
	sr.Break = false
	mc.push(sr.Value())

	mc.Status.InterruptDisable = true
	if mc.variant == instructions.CMOS {
		mc.Status.DecimalMode = false
	}

	if nonMaskable {
		mc.PC.Load(mc.read16Bit(cpubus.NMI))
	} else {
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))
	}

	if mc.ticker != nil {
		mc.ticker.Tick(interruptCycles)
	}

	return true
}

// the number of cycles taken to service an interrupt
const interruptCycles = 7

// PredictRTS returns the address that an RTS instruction would return to if
// it was executed now. The memory is peeked if it supports the
// cpubus.DebugBus interface, otherwise it is read.
func (mc *CPU) PredictRTS() uint16 {
	peek := mc.mem.Read
	if dbg, ok := mc.mem.(cpubus.DebugBus); ok {
		peek = dbg.Peek
	}

	sp := mc.SP.Value()
	lo := peek(0x0100 | uint16(sp+1))
	hi := peek(0x0100 | uint16(sp+2))

	return (uint16(hi)<<8 | uint16(lo)) + 1
}
