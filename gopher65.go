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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher65/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/hardware/instance"
	"github.com/jetsetilly/gopher65/logger"
	"github.com/jetsetilly/gopher65/modalflag"
	"github.com/jetsetilly/gopher65/performance"
	"github.com/jetsetilly/gopher65/prefs"
	"github.com/jetsetilly/gopher65/statsview"
	"github.com/jetsetilly/gopher65/version"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// machineFlags are the flags shared by all modes that create a machine.
type machineFlags struct {
	machine *string
	variant *string
	mhz     *float64
	rom     *string
	load    *modalflag.Address
	pc      *modalflag.Address
	random  *bool
	prefs   *string
	log     *bool
	stats   *bool
	profile *string
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		machine: md.AddString("machine", "flat", "machine to emulate: flat, iie"),
		variant: md.AddString("variant", "", "cpu variant: 6502, 65c02"),
		mhz:     md.AddFloat64("mhz", 0, "clock speed in MHz"),
		rom:     md.AddString("rom", "", "rom image ending at $ffff"),
		load:    md.AddAddress("load", "address to load the program (default $0000)"),
		pc:      md.AddAddress("pc", "start address (default is the reset vector)"),
		random:  md.AddBool("random", false, "randomise registers and RAM at power-on"),
		prefs:   md.AddString("prefs", "", "preferences (eg. \"cpu.variant::6502; clock.mhz::1.023\")"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		stats:   md.AddBool("statsview", false, "run stats server"),
		profile: md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all"),
	}
}

// createMachine creates and loads the machine described by the flags and the
// program file in the remaining arguments. the machine is reset and ready to
// run.
func (mf *machineFlags) createMachine(md *modalflag.Modes) (*hardware.Machine, error) {
	if *mf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*mf.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher65", "unused preferences: %s", unused)
		}
	}()

	env, err := instance.NewInstance(nil)
	if err != nil {
		return nil, err
	}

	if *mf.variant != "" {
		if err := env.Prefs.CPUVariant.Set(*mf.variant); err != nil {
			return nil, err
		}
	}
	if *mf.mhz > 0 {
		if err := env.Prefs.ClockMHz.Set(*mf.mhz); err != nil {
			return nil, err
		}
	}
	if *mf.random {
		if err := env.Prefs.RandomState.Set(true); err != nil {
			return nil, err
		}
	}

	kind, err := hardware.ParseKind(*mf.machine)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(env, kind)
	if err != nil {
		return nil, err
	}

	if *mf.rom != "" {
		data, err := os.ReadFile(*mf.rom)
		if err != nil {
			return nil, curated.Errorf("rom: %v", err)
		}
		if err := m.LoadROM(data); err != nil {
			return nil, err
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		if *mf.rom == "" {
			return nil, curated.Errorf("program or rom required for %s mode", md)
		}
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, curated.Errorf("program: %v", err)
		}
		address, _ := mf.load.Value()
		m.LoadBinary(address, data)
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	m.Reset()

	if pc, ok := mf.pc.Value(); ok {
		m.CPU.LoadPC(pc)
	}

	logger.Logf(env, "gopher65", "%s machine ready. variant=%s clock=%.6f MHz PC=%s",
		m.Kind, m.CPU.Variant(), env.Prefs.ClockMHz.Get().(float64), m.CPU.PC)

	return m, nil
}

func (mf *machineFlags) launchStats(ctx context.Context) {
	if !*mf.stats {
		return
	}
	if !statsview.Available() {
		fmt.Println("! stats server not available in this build")
		return
	}
	statsview.Launch(ctx, os.Stdout)
}

// runScript runs the script if the filename is not empty.
func runScript(ctx context.Context, dbg *debugger.Debugger, filename string) error {
	if filename == "" {
		return nil
	}
	return dbg.RunScriptContext(ctx, filename)
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)
	cycles := md.AddInt("cycles", 0, "stop after the number of cycles, unthrottled (0 is no limit)")
	script := md.AddString("script", "", "lua script to run before the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfile(*mf.profile)
	if err != nil {
		return err
	}

	m, err := mf.createMachine(md)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mf.launchStats(sigCtx)

	dbg := debugger.NewDebugger(m)
	if err := runScript(sigCtx, dbg, *script); err != nil {
		return err
	}

	return performance.RunProfiler(profile, "run", func() error {
		runCtx, cancel := context.WithCancel(sigCtx)
		defer cancel()

		g, ctx := errgroup.WithContext(runCtx)

		var r debugger.StopReason
		g.Go(func() error {
			defer cancel()
			if *cycles > 0 {
				r = dbg.RunTimeslice(*cycles)
			} else {
				r = dbg.Run(ctx)
			}
			return r.Err
		})

		// RunTimeslice() does not watch the context so the watcher pauses
		// the emulation instead
		g.Go(func() error {
			<-ctx.Done()
			dbg.Pause()
			return nil
		})

		err := g.Wait()

		fmt.Println(r)
		fmt.Println(m.CPU)

		return err
	})
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type: AUTO, COLOR, PLAIN")
	script := md.AddString("script", "", "lua script to run on debugger start")
	brk := md.AddBool("brk", false, "stop at BRK instructions rather than executing them")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfile(*mf.profile)
	if err != nil {
		return err
	}

	m, err := mf.createMachine(md)
	if err != nil {
		return err
	}

	if *brk {
		if err := m.Env.Prefs.InterceptBRK.Set(true); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mf.launchStats(ctx)

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR", "COLOUR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	}

	dbg := debugger.NewDebugger(m)

	// CTRL-C interrupts the start-up script
	scriptCtx, stopScript := signal.NotifyContext(ctx, os.Interrupt)
	err = runScript(scriptCtx, dbg, *script)
	stopScript()
	if err != nil {
		return err
	}

	return performance.RunProfiler(profile, "debug", func() error {
		return dbg.InputLoop(ctx, trm)
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional s/m/h suffix)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfile(*mf.profile)
	if err != nil {
		return err
	}

	m, err := mf.createMachine(md)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mf.launchStats(ctx)

	return performance.Check(os.Stdout, profile, m, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Printf("%s %s\n", version.ApplicationName, v)
	}

	return nil
}
