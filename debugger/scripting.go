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
	"context"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/script"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/logger"
)

// ScriptReentry is returned when the onbrk() function of a script tries to
// execute instructions.
const ScriptReentry = "debugger: cannot %s from inside onbrk()"

// scriptBridge implements the script.Debugger interface.
//
// the onbrk() function of the script is called while the critical section
// is locked so the bridge must not try to lock it again.
type scriptBridge struct {
	dbg   *Debugger
	inBrk bool
}

func (br *scriptBridge) with(f func()) {
	if !br.inBrk {
		br.dbg.crit.Lock()
		defer br.dbg.crit.Unlock()
	}
	f()
}

func (br *scriptBridge) brk(pc uint16, code uint8) (bool, error) {
	br.inBrk = true
	defer func() {
		br.inBrk = false
	}()
	return br.dbg.script.Brk(pc, code)
}

func (br *scriptBridge) Step() (string, error) {
	if br.inBrk {
		return "", curated.Errorf(ScriptReentry, "step")
	}
	r := br.dbg.Step()
	return r.String(), r.Err
}

func (br *scriptBridge) Run(cycles int) (string, error) {
	if br.inBrk {
		return "", curated.Errorf(ScriptReentry, "run")
	}
	r := br.dbg.RunTimeslice(cycles)
	return r.String(), r.Err
}

func (br *scriptBridge) GetRegister(name string) (v uint16, err error) {
	br.with(func() {
		v, err = br.dbg.m.CPU.GetRegister(name)
	})
	return v, err
}

func (br *scriptBridge) SetRegister(name string, value uint16) (err error) {
	br.with(func() {
		err = br.dbg.m.CPU.SetRegister(name, value)
	})
	return err
}

func (br *scriptBridge) Peek(address uint16) (v uint8) {
	br.with(func() {
		v = br.dbg.m.Mem.Peek(address)
	})
	return v
}

func (br *scriptBridge) Poke(address uint16, value uint8) {
	br.with(func() {
		br.dbg.m.Mem.Poke(address, value)
	})
}

func (br *scriptBridge) AddBreakpoint(kind string, address uint16, end uint16) (err error) {
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	br.with(func() {
		err = br.dbg.bps.add(Breakpoint{Kind: k, Address: address, End: end})
	})
	return err
}

func (br *scriptBridge) ClearBreakpoints() {
	br.with(func() {
		br.dbg.bps.clear()
	})
}

func (br *scriptBridge) Cycles() (c int64) {
	br.with(func() {
		c = br.dbg.m.Cycles()
	})
	return c
}

func (br *scriptBridge) Log(s string) {
	logger.Log(br.dbg.m.Env, "script", s)
}

// RunScript runs the Lua script in the file. If the script defines an
// onbrk() function then the script stays open and BRK instructions are
// passed to that function. Otherwise the script is closed once it has run.
//
// Any script that was previously open is closed.
func (dbg *Debugger) RunScript(filename string) error {
	return dbg.RunScriptContext(context.Background(), filename)
}

// RunScriptContext is the same as RunScript() but the script is interrupted
// when the context is done.
func (dbg *Debugger) RunScriptContext(ctx context.Context, filename string) error {
	br := &scriptBridge{dbg: dbg}
	scr := script.NewScript(br, func(s string) {
		dbg.printLine(terminal.StyleLog, s)
	})

	// the script is installed before it is run so that it can use the
	// onbrk() function it defines
	dbg.crit.Lock()
	dbg.closeScript()
	dbg.script = scr
	dbg.brkHandler = br.brk
	dbg.savedIntercept = dbg.m.Env.Prefs.InterceptBRK.Get().(bool)
	err := dbg.m.Env.Prefs.InterceptBRK.Set(true)
	dbg.crit.Unlock()

	if err != nil {
		return err
	}

	err = scr.DoFile(ctx, filename)

	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	// another script may have been installed by the script
	if dbg.script != scr {
		scr.Close()
		return err
	}

	if err != nil || !scr.HasBrkHandler() {
		dbg.closeScript()
		return err
	}

	logger.Logf(dbg.m.Env, "script", "%s: onbrk() installed", filename)

	return nil
}

// Scripted returns true if a script with an onbrk() function is installed.
func (dbg *Debugger) Scripted() bool {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.script != nil
}
