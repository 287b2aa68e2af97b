// This file is part of mos6510.
//
// mos6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6510.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mos6510/debugger"
	"github.com/jetsetilly/mos6510/debugger/terminal"
	"github.com/jetsetilly/mos6510/debugger/terminal/colorterm"
	"github.com/jetsetilly/mos6510/debugger/terminal/plainterm"
	"github.com/jetsetilly/mos6510/disassembly"
	"github.com/jetsetilly/mos6510/hardware/cpu"
	"github.com/jetsetilly/mos6510/hardware/instance"
	"github.com/jetsetilly/mos6510/hardware/memory"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/hardware/preferences"
	"github.com/jetsetilly/mos6510/logger"
	"github.com/jetsetilly/mos6510/modalflag"
	"github.com/jetsetilly/mos6510/paths"
	"github.com/jetsetilly/mos6510/prefs"
	"github.com/jetsetilly/mos6510/scripting"
	"github.com/jetsetilly/mos6510/statsview"
)

const defaultOrigin = 0x0400

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the command line and runs the selected mode. the return value
// is the status code for os.Exit().
func launch(args []string, stdin io.Reader, stdout io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "SCRIPT", "DISASM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(stdout, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdin, stdout)

	case "STEP":
		err = step(md)

	case "SCRIPT":
		err = script(md, stdout)

	case "DISASM":
		err = disasm(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stdout, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// machine is the CPU and memory prepared by the common flags of each mode.
type machine struct {
	mc  *cpu.CPU
	mem *memory.Memory
}

// common flags of the RUN, STEP and SCRIPT modes.
type setup struct {
	md       *modalflag.Modes
	origin   *uint16
	start    *uint16
	vector   *bool
	romtop   *uint16
	prefs    *string
	prefFile *bool
	log      *bool
	stats    *bool
}

func newSetup(md *modalflag.Modes) *setup {
	return &setup{
		md:       md,
		origin:   md.AddAddress("origin", defaultOrigin, "address at which the binary is loaded"),
		start:    md.AddAddress("start", defaultOrigin, "address of first instruction to execute"),
		vector:   md.AddBool("vector", false, "start execution from the reset vector in the binary (overrides -start)"),
		romtop:   md.AddAddress("rom", 0x0000, "memory from this page to the top of memory is read-only. zero means all memory is writable"),
		prefs:    md.AddString("prefs", "", "preferences for this session. eg. cpu.decimal::false; cpu.magic::0xff"),
		prefFile: md.AddBool("preffile", false, "load and save preferences from the resource directory"),
		log:      md.AddBool("log", false, "echo log to stdout"),
		stats:    md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress)),
	}
}

// prepare memory and CPU according to the parsed flags. the binary to load is
// the first remaining argument.
func (s *setup) prepare(stdout io.Writer) (*machine, error) {
	switch len(s.md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("binary file required for %s mode", s.md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", s.md)
	}

	if *s.log {
		logger.SetEcho(stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *s.stats {
		if err := statsview.Launch(stdout, ""); err != nil {
			return nil, err
		}
	}

	prefs.PushCommandLineStack(*s.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "mos6510", "unused preferences: %s", unused)
		}
	}()

	var pth string
	if *s.prefFile {
		var err error
		pth, err = paths.ResourcePath("", "preferences")
		if err != nil {
			return nil, err
		}
	}

	hwPrefs, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(hwPrefs)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.md.GetArg(0))
	if err != nil {
		return nil, err
	}

	m := &machine{mem: memory.NewMemory()}

	err = m.mem.Load(*s.origin, data)
	if err != nil {
		return nil, err
	}

	if *s.romtop != 0x0000 {
		err = m.mem.AddRegion(memory.Region{
			Label:  "rom",
			Origin: *s.romtop,
			Memtop: 0xffff,
			Access: memory.ReadOnly,
		})
		if err != nil {
			return nil, err
		}
	}

	if !*s.vector {
		m.mem.SetVector(cpubus.Reset, *s.start)
	}

	m.mc = cpu.NewCPU(ins, m.mem)
	m.mc.Reset()

	err = m.mc.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func run(md *modalflag.Modes, stdin io.Reader, stdout io.Writer) error {
	md.NewMode()

	s := newSetup(md)
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	limit := md.AddUint64("limit", 0, "halt after this many cycles. zero means no limit")
	mvz := md.AddString("memviz", "", "write graph of final CPU state to file (dot format). AUTO creates a unique filename")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := s.prepare(stdout)
	if err != nil {
		return err
	}

	term := plainterm.NewPlainTerminal(stdin, stdout)
	err = term.Initialise()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	dbg := debugger.NewDebugger(m.mc, m.mem, term)
	dbg.SetTrace(*trace)
	dbg.SetCycleLimit(*limit)

	signal.Notify(dbg.Interrupt, os.Interrupt)
	defer signal.Stop(dbg.Interrupt)

	reason, err := dbg.Run()

	fmt.Fprintf(stdout, "halted: %s\n", reason)
	fmt.Fprintln(stdout, m.mc.String())
	fmt.Fprintf(stdout, "cycles: %d\n", m.mc.TotalCycles())

	if *mvz != "" {
		filename := *mvz
		if filename == "AUTO" {
			filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", "cpu"))
		}
		if mvzErr := writeMemviz(filename, m.mc); mvzErr != nil {
			return errors.Join(err, mvzErr)
		}
	}

	return err
}

// writeMemviz writes a graph of a snapshot of the CPU to the named file. the
// memory is unplumbed from the snapshot so that it isn't included in the
// graph.
func writeMemviz(filename string, mc *cpu.CPU) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshot := mc.Snapshot()
	snapshot.Plumb(nil)
	memviz.Map(f, snapshot)

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	s := newSetup(md)
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := s.prepare(os.Stdout)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		ct := &colorterm.ColorTerminal{}
		if ct.Initialise() == nil {
			ct.CleanUp()
			term = ct
		} else {
			logger.Log(logger.Allow, "mos6510", "color terminal not available. using plain terminal")
			term = plainterm.NewPlainTerminal(nil, nil)
		}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	default:
		return fmt.Errorf("unknown terminal type: %s", *termType)
	}

	dbg := debugger.NewDebugger(m.mc, m.mem, term)

	signal.Notify(dbg.Interrupt, os.Interrupt)
	defer signal.Stop(dbg.Interrupt)

	return dbg.Start()
}

func script(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := newSetup(md)
	scriptFile := md.AddString("script", "", "Lua script to run against the loaded binary")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *scriptFile == "" {
		return fmt.Errorf("-script flag required for %s mode", md)
	}

	m, err := s.prepare(stdout)
	if err != nil {
		return err
	}

	scr := scripting.NewScript(m.mc, m.mem, stdout)
	defer scr.Close()

	return scr.RunFile(*scriptFile)
}

func disasm(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the binary is loaded")
	count := md.AddInt("count", 0, "number of instructions to disassemble. zero means the entire binary")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.Load(*origin, data)
	if err != nil {
		return err
	}

	n := *count
	if n <= 0 {
		// every instruction is at least one byte long so this is enough to
		// cover the binary. Linear() stops at the end of data
		n = len(data)
	}

	entries, err := disassembly.Linear(mem, *origin, n)
	if err != nil {
		return err
	}

	end := uint32(*origin) + uint32(len(data))
	for _, e := range entries {
		if *count <= 0 && uint32(e.Result.Address) >= end {
			break // for loop
		}
		fmt.Fprintln(stdout, e.String())
	}

	return nil
}
