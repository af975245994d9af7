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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/hardware/memory"
	"github.com/jetsetilly/gopher65/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher65/logger"
	"github.com/jetsetilly/gopher65/test"
)

func newInstance(t *testing.T) *instance.Instance {
	t.Helper()
	env, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

func TestFlat(t *testing.T) {
	mem := memory.NewFlat(newInstance(t))

	mem.Write(0x1234, 0x56)
	test.ExpectEquality(t, mem.Read(0x1234), 0x56)
	test.ExpectEquality(t, mem.Peek(0x1234), 0x56)

	mem.Poke(0xffff, 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x01)

	mem.Load(0x0600, []uint8{0xa9, 0x05}, memorymap.Main, "test")
	test.ExpectEquality(t, mem.Read(0x0600), 0xa9)
	test.ExpectEquality(t, mem.Read(0x0601), 0x05)

	// RAM survives a reset
	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x0600), 0xa9)
}

func TestFlatTruncatedLoad(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	mem := memory.NewFlat(newInstance(t))
	mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03, 0x04}, memorymap.Main, "truncate")
	test.ExpectEquality(t, mem.Read(0xfffe), 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x02)

	// data does not wrap around to the zero page
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("truncate: data truncated: 2 of 4 bytes loaded"))
}

func TestRandomState(t *testing.T) {
	env := newInstance(t)
	env.Prefs.RandomState.Set(true)

	mem := memory.NewFlat(env)

	var nonzero bool
	for a := 0; a < 0x100; a++ {
		if mem.Read(uint16(a)) != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectSuccess(t, nonzero)
}

func TestLanguageCardDoubleRead(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	rom := make([]uint8, 0x3000)
	for i := range rom {
		rom[i] = 0xaa
	}
	mem.Load(0xd000, rom, memorymap.ROM, "rom")

	// power on state reads ROM
	test.ExpectEquality(t, mem.Read(0xd000), 0xaa)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)

	// a single read selects RAM for reading but does not enable writing
	mem.Read(0xc08b)
	test.ExpectSuccess(t, mem.LangCard.ReadRAM)
	test.ExpectFailure(t, mem.LangCard.Bank2)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)
	mem.Write(0xd000, 0x11)
	test.ExpectEquality(t, mem.Read(0xd000), 0x00)

	// the second read enables writing
	mem.Read(0xc08b)
	test.ExpectSuccess(t, mem.LangCard.WriteRAM)
	mem.Write(0xd000, 0x11)
	test.ExpectEquality(t, mem.Read(0xd000), 0x11)

	// an even address disables writing and selects ROM for reading
	mem.Read(0xc08a)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)
	test.ExpectFailure(t, mem.LangCard.ReadRAM)
	test.ExpectEquality(t, mem.Read(0xd000), 0xaa)

	// an intervening disabling access resets the count
	mem.Read(0xc08b)
	mem.Read(0xc08a)
	mem.Read(0xc08b)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)

	// as does a write to an odd address
	mem.Read(0xc08a)
	mem.Read(0xc08b)
	mem.Write(0xc08b, 0x00)
	mem.Read(0xc08b)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)

	// writing to an odd address does not disable writing
	mem.Read(0xc08b)
	test.ExpectSuccess(t, mem.LangCard.WriteRAM)
	mem.Write(0xc08b, 0x00)
	test.ExpectSuccess(t, mem.LangCard.WriteRAM)
}

func TestLanguageCardBanks(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	// bank 1, read and write RAM
	mem.Read(0xc08b)
	mem.Read(0xc08b)
	mem.Write(0xd000, 0x11)
	mem.Write(0xe000, 0x33)

	// bank 2, read and write RAM
	mem.Read(0xc083)
	mem.Read(0xc083)
	test.ExpectSuccess(t, mem.LangCard.Bank2)
	test.ExpectEquality(t, mem.Read(0xd000), 0x00)
	mem.Write(0xd000, 0x22)

	// $E000 is not banked
	test.ExpectEquality(t, mem.Read(0xe000), 0x33)

	mem.Read(0xc08b)
	test.ExpectEquality(t, mem.Read(0xd000), 0x11)
	mem.Read(0xc083)
	test.ExpectEquality(t, mem.Read(0xd000), 0x22)

	// status registers
	test.ExpectEquality(t, mem.Read(0xc011), 0x80)
	test.ExpectEquality(t, mem.Read(0xc012), 0x80)
	mem.Read(0xc08a)
	test.ExpectEquality(t, mem.Read(0xc011), 0x00)
	test.ExpectEquality(t, mem.Read(0xc012), 0x00)

	// a banked image can be loaded directly
	mem.Load(0xd000, []uint8{0x44}, memorymap.LangCardBank1, "lc1")
	mem.Read(0xc088)
	test.ExpectEquality(t, mem.Read(0xd000), 0x44)
}

func TestAuxMemory(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	mem.Write(0x0300, 0x01)

	// writes to aux
	mem.Write(0xc005, 0x00)
	test.ExpectEquality(t, mem.Read(0xc014), 0x80)
	mem.Write(0x0300, 0x02)
	test.ExpectEquality(t, mem.Read(0x0300), 0x01)

	// reads from aux
	mem.Write(0xc003, 0x00)
	test.ExpectEquality(t, mem.Read(0xc013), 0x80)
	test.ExpectEquality(t, mem.Read(0x0300), 0x02)

	// back to main
	mem.Write(0xc002, 0x00)
	mem.Write(0xc004, 0x00)
	test.ExpectEquality(t, mem.Read(0x0300), 0x01)

	// zero page is not affected by RAMRD but is by ALTZP
	mem.Write(0x0010, 0x05)
	mem.Write(0xc003, 0x00)
	test.ExpectEquality(t, mem.Read(0x0010), 0x05)
	mem.Write(0xc002, 0x00)

	// nor is the stack affected by RAMWRT
	mem.Write(0xc005, 0x00)
	mem.Write(0x01f0, 0x08)
	mem.Write(0xc004, 0x00)
	test.ExpectEquality(t, mem.Read(0x01f0), 0x08)

	mem.Write(0xc009, 0x00)
	test.ExpectEquality(t, mem.Read(0xc016), 0x80)
	test.ExpectEquality(t, mem.Read(0x0010), 0x00)
	mem.Write(0x0010, 0x06)
	mem.Write(0xc008, 0x00)
	test.ExpectEquality(t, mem.Read(0x0010), 0x05)

	mem.Load(0x0010, []uint8{0x07}, memorymap.Aux, "aux")
	mem.Write(0xc009, 0x00)
	test.ExpectEquality(t, mem.Read(0x0010), 0x07)
}

func TestStore80(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	mem.Write(0xc001, 0x00)
	test.ExpectEquality(t, mem.Read(0xc018), 0x80)

	// PAGE2 selects aux for the text page
	mem.Read(0xc055)
	mem.Write(0x0400, 0x01)
	mem.Write(0x2000, 0x02)
	mem.Read(0xc054)
	test.ExpectEquality(t, mem.Read(0x0400), 0x00)
	test.ExpectEquality(t, mem.Read(0x2000), 0x02)

	// and for the hires page when HIRES is set
	mem.Read(0xc057)
	mem.Write(0xc055, 0x00)
	test.ExpectEquality(t, mem.Read(0x0400), 0x01)
	test.ExpectEquality(t, mem.Read(0x2000), 0x00)

	// 80STORE overrides RAMRD
	mem.Write(0xc003, 0x00)
	mem.Read(0xc054)
	test.ExpectEquality(t, mem.Read(0x0400), 0x00)
}

type device struct {
	reads  int
	writes int
	last   uint8
	cycles int
}

func (dev *device) IORead(address uint16) uint8 {
	dev.reads++
	return uint8(address)
}

func (dev *device) IOWrite(address uint16, data uint8) {
	dev.writes++
	dev.last = data
}

func (dev *device) Tick(cycles int) {
	dev.cycles += cycles
}

func TestDevices(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))
	dev := &device{}

	test.ExpectSuccess(t, mem.AttachDevice(0xc0e0, 0xc0ef, dev))
	test.ExpectFailure(t, mem.AttachDevice(0xc070, 0xc08f, dev))
	test.ExpectFailure(t, mem.AttachDevice(0xc0f0, 0xc0e0, dev))
	test.ExpectFailure(t, mem.AttachDevice(0xbfff, 0xc000, dev))

	test.ExpectEquality(t, mem.Read(0xc0e5), 0xe5)
	mem.Write(0xc0ef, 0x99)
	test.ExpectEquality(t, dev.reads, 1)
	test.ExpectEquality(t, dev.writes, 1)
	test.ExpectEquality(t, dev.last, 0x99)

	// unattached IO addresses read as zero
	test.ExpectEquality(t, mem.Read(0xc0f0), 0x00)

	// peek does not touch the device
	mem.Peek(0xc0e5)
	test.ExpectEquality(t, dev.reads, 1)

	mem.Tick(4)
	mem.Tick(2)
	test.ExpectEquality(t, dev.cycles, 6)
}

func TestSlotROM(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	rom := make([]uint8, 0x4000)
	rom[0x0600] = 0xee
	rom[0x0300] = 0xcc
	mem.Load(0xc000, rom, memorymap.ROM, "rom")

	test.ExpectSuccess(t, mem.AttachSlotROM(6, []uint8{0x01, 0x02}))
	test.ExpectFailure(t, mem.AttachSlotROM(0, nil))
	test.ExpectEquality(t, mem.Read(0xc601), 0x02)

	// slot 3 reads the internal ROM unless SLOTC3ROM is set
	test.ExpectEquality(t, mem.Read(0xc300), 0xcc)
	mem.Write(0xc00b, 0x00)
	test.ExpectEquality(t, mem.Read(0xc300), 0x00)

	// INTCXROM selects the internal ROM for all slots
	mem.Write(0xc007, 0x00)
	test.ExpectEquality(t, mem.Read(0xc600), 0xee)
	test.ExpectEquality(t, mem.Read(0xc015), 0x80)

	// ROM cannot be written to
	mem.Write(0xc600, 0x00)
	test.ExpectEquality(t, mem.Read(0xc600), 0xee)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory(newInstance(t))

	// peeking the language card switches does not trigger them
	mem.Peek(0xc08b)
	mem.Peek(0xc08b)
	test.ExpectFailure(t, mem.LangCard.ReadRAM)
	test.ExpectFailure(t, mem.LangCard.WriteRAM)

	// poking ROM changes the ROM
	mem.Poke(0xfffc, 0x00)
	mem.Poke(0xfffd, 0x06)
	test.ExpectEquality(t, mem.Read(0xfffc), 0x00)
	test.ExpectEquality(t, mem.Read(0xfffd), 0x06)

	mem.Write(0xc009, 0x00)
	test.ExpectEquality(t, mem.Peek(0xc016), 0x80)
}
