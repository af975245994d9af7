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

package script

import (
	"context"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
	lua "github.com/yuin/gopher-lua"
)

// Debugger defines the debugger functions that are available to a script.
type Debugger interface {
	// execute one instruction and return a description of why the emulation
	// stopped
	Step() (string, error)

	// run for the number of cycles and return a description of why the
	// emulation stopped
	Run(cycles int) (string, error)

	GetRegister(name string) (uint16, error)
	SetRegister(name string, value uint16) error
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
	AddBreakpoint(kind string, address uint16, end uint16) error
	ClearBreakpoints()
	Cycles() int64
	Log(s string)
}

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
	BrkError    = "script: onbrk: %v"
	Interrupted = "script: interrupted"
)

// the name of the global function called on a BRK instruction
const brkHandler = "onbrk"

// Script is a Lua state connected to the debugger.
type Script struct {
	L      *lua.LState
	dbg    Debugger
	output func(string)
}

// NewScript is the preferred method of initialisation for the Script type.
// The output function receives the output of print(). Close() should be
// called when the script is no longer required.
func NewScript(dbg Debugger, output func(string)) *Script {
	scr := &Script{
		L:      lua.NewState(),
		dbg:    dbg,
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"step":       scr.step,
		"run":        scr.run,
		"reg":        scr.reg,
		"setreg":     scr.setreg,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"breakpoint": scr.breakpoint,
		"clear":      scr.clear,
		"cycles":     scr.cycles,
		"log":        scr.log,
		"print":      scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// DoFile runs the Lua script in the file. The script stops with the
// Interrupted error if the context is done before the script ends.
func (scr *Script) DoFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	if err := scr.L.DoFile(filename); err != nil {
		if ctx.Err() != nil {
			return curated.Errorf(Interrupted)
		}
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// DoString runs the Lua source.
func (scr *Script) DoString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// HasBrkHandler returns true if the script has defined the onbrk() function.
func (scr *Script) HasBrkHandler() bool {
	return scr.L.GetGlobal(brkHandler).Type() == lua.LTFunction
}

// Brk calls the onbrk() function of the script. The return value says
// whether the emulation should continue after the BRK instruction. If there
// is no onbrk() function then the return value is false.
func (scr *Script) Brk(pc uint16, code uint8) (bool, error) {
	fn := scr.L.GetGlobal(brkHandler)
	if fn.Type() != lua.LTFunction {
		return false, nil
	}

	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(pc), lua.LNumber(code))
	if err != nil {
		return false, curated.Errorf(BrkError, err)
	}

	ret := scr.L.Get(-1)
	scr.L.Pop(1)

	return lua.LVAsBool(ret), nil
}

// the functions below are called by the Lua interpreter. errors from the
// debugger are raised as Lua errors.

func (scr *Script) step(L *lua.LState) int {
	s, err := scr.dbg.Step()
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(s))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	cycles := L.CheckInt(1)
	if cycles < 1 {
		L.ArgError(1, "number of cycles must be one or more")
	}
	s, err := scr.dbg.Run(cycles)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(s))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	v, err := scr.dbg.GetRegister(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	err := scr.dbg.SetRegister(L.CheckString(1), uint16(L.CheckInt(2)))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dbg.Peek(uint16(L.CheckInt(1)))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.dbg.Poke(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (scr *Script) breakpoint(L *lua.LState) int {
	address := L.CheckInt(2)
	end := L.OptInt(3, address)
	err := scr.dbg.AddBreakpoint(L.CheckString(1), uint16(address), uint16(end))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) clear(L *lua.LState) int {
	scr.dbg.ClearBreakpoints()
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dbg.Cycles()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	scr.dbg.Log(L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	if scr.output != nil {
		scr.output(strings.Join(s, "\t"))
	}
	return 0
}
