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

package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher65/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/memory"
)

// memvizState is the part of the debugger state that is drawn by the MEMVIZ
// command. the memory arrays are left out because they would swamp the
// diagram.
type memvizState struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	LastResult  execution.Result
	Breakpoints []Breakpoint
	LastStop    StopReason

	Switches *memory.Switches
	LangCard *memory.LanguageCard
}

// memviz writes a graphviz description of the debugger state to the file.
func (dbg *Debugger) memviz(filename string) error {
	dbg.crit.Lock()
	mc := dbg.m.CPU
	state := &memvizState{
		PC:          mc.PC,
		A:           mc.A,
		X:           mc.X,
		Y:           mc.Y,
		SP:          mc.SP,
		Status:      mc.Status,
		LastResult:  mc.LastResult,
		Breakpoints: dbg.bps.list(),
		LastStop:    dbg.lastStop,
	}
	if dbg.m.IIe != nil {
		sw := dbg.m.IIe.Switches
		lc := dbg.m.IIe.LangCard
		state.Switches = &sw
		state.LangCard = &lc
	}
	dbg.crit.Unlock()

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	memviz.Map(f, state)
	return f.Close()
}
