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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6510/debugger/terminal"
	"github.com/jetsetilly/mos6510/disassembly"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/logger"
)

// debugger keywords.
const (
	cmdStep  = "STEP"
	cmdRun   = "RUN"
	cmdRegs  = "REGS"
	cmdLast  = "LAST"
	cmdPeek  = "PEEK"
	cmdPoke  = "POKE"
	cmdList  = "LIST"
	cmdBreak = "BREAK"
	cmdTrap  = "TRAP"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"
	cmdReset = "RESET"
	cmdIRQ   = "IRQ"
	cmdNMI   = "NMI"
	cmdTrace = "TRACE"
	cmdLimit = "LIMIT"
	cmdPref  = "PREF"
	cmdLog   = "LOG"
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
)

var help = map[string]string{
	cmdStep:  "Execute the next instruction, or the number of instructions specified. An empty line is the same as STEP",
	cmdRun:   "Run until a breakpoint, a trap, a jump to self, a jammed CPU or the cycle limit",
	cmdRegs:  "Show the CPU registers",
	cmdLast:  "Show the result of the most recent instruction",
	cmdPeek:  "Show the contents of memory. PEEK <address> [<count>]",
	cmdPoke:  "Change a byte of memory. POKE <address> <value>",
	cmdList:  "Disassemble memory from the PC or from the specified address. LIST [<address>] [<count>]. LIST BREAKS and LIST TRAPS show the halting conditions",
	cmdBreak: "Halt execution when a target changes to the value. BREAK [<target>] <value>. The default target is PC",
	cmdTrap:  "Halt execution when a target changes. TRAP <target>",
	cmdDrop:  "Remove a breakpoint or trap by number. DROP BREAK|TRAP <number>",
	cmdClear: "Remove all breakpoints and traps",
	cmdReset: "Reset the CPU and load the PC from the reset vector",
	cmdIRQ:   "Raise an IRQ. The IRQ is ignored if the interrupt disable flag is set",
	cmdNMI:   "Raise an NMI",
	cmdTrace: "Show every instruction executed by RUN. TRACE [ON|OFF]",
	cmdLimit: "Show or set the number of cycles after which RUN halts. Zero means no limit",
	cmdPref:  "Show preferences or set a preference. PREF [<key> <value>]",
	cmdLog:   "Show the most recent log entries. LOG [<count>]",
	cmdHelp:  "Show help for a command",
	cmdQuit:  "Exit the debugger",
}

// targets are registers or memory addresses.
const targetHelp = "targets are PC, A, X, Y, SP, SR or an address in memory"

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		tokens = []string{cmdStep}
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("STEP requires a positive number: %s", args[0])
			}
		}

		for range n {
			reason, err := dbg.step(true)
			if err != nil {
				return err
			}
			if reason != HaltNone {
				dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("halted: %s", reason))
				break // for loop
			}
		}

	case cmdRun:
		reason, err := dbg.Run()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("halted: %s", reason))
		dbg.printLine(terminal.StyleInstrument, dbg.mc.String())

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, dbg.mc.String())

	case cmdLast:
		dbg.printLine(terminal.StyleCPUStep, disassembly.Format(dbg.mc.LastResult))
		dbg.printLine(terminal.StyleFeedback, dbg.mc.LastResult.String())

	case cmdPeek:
		if len(args) == 0 {
			return fmt.Errorf("PEEK requires an address")
		}
		address, err := parseValue(args[0], 16)
		if err != nil {
			return err
		}
		count := uint16(16)
		if len(args) > 1 {
			count, err = parseValue(args[1], 16)
			if err != nil {
				return err
			}
		}
		memtop := uint32(address) + uint32(max(count, 1)) - 1
		s := &strings.Builder{}
		dbg.mem.Dump(s, address, uint16(min(memtop, 0xffff)))
		for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
			dbg.printLine(terminal.StyleInstrument, l)
		}

	case cmdPoke:
		if len(args) != 2 {
			return fmt.Errorf("POKE requires an address and a value")
		}
		address, err := parseValue(args[0], 16)
		if err != nil {
			return err
		}
		value, err := parseValue(args[1], 8)
		if err != nil {
			return err
		}
		return dbg.mem.Poke(address, uint8(value))

	case cmdList:
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "BREAKS":
				dbg.breakpoints.list(func(s string) { dbg.printLine(terminal.StyleFeedback, s) })
				return nil
			case "TRAPS":
				dbg.traps.list(func(s string) { dbg.printLine(terminal.StyleFeedback, s) })
				return nil
			}
		}

		address := dbg.mc.PC.Address()
		count := uint16(10)
		var err error
		if len(args) > 0 {
			address, err = parseValue(args[0], 16)
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			count, err = parseValue(args[1], 16)
			if err != nil {
				return err
			}
		}

		entries, err := disassembly.Linear(dbg.mem, address, int(count))
		if err != nil {
			return err
		}
		for _, e := range entries {
			dbg.printLine(terminal.StyleFeedback, e.String())
		}

	case cmdBreak:
		var trg *target
		var value string
		var err error

		switch len(args) {
		case 1:
			trg, err = dbg.parseTarget("PC")
			value = args[0]
		case 2:
			trg, err = dbg.parseTarget(args[0])
			value = args[1]
		default:
			return fmt.Errorf("BREAK requires a value and an optional target")
		}
		if err != nil {
			return err
		}

		v, err := parseValue(value, trg.bits)
		if err != nil {
			return err
		}
		return dbg.breakpoints.add(trg, v)

	case cmdTrap:
		if len(args) != 1 {
			return fmt.Errorf("TRAP requires a target")
		}
		trg, err := dbg.parseTarget(args[0])
		if err != nil {
			return err
		}
		return dbg.traps.add(trg)

	case cmdDrop:
		if len(args) != 2 {
			return fmt.Errorf("DROP requires BREAK or TRAP and a number")
		}
		num, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("DROP requires a number: %s", args[1])
		}
		switch strings.ToUpper(args[0]) {
		case cmdBreak:
			return dbg.breakpoints.drop(num)
		case cmdTrap:
			return dbg.traps.drop(num)
		}
		return fmt.Errorf("can only DROP a BREAK or a TRAP")

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.traps.clear()

	case cmdReset:
		dbg.mc.Reset()
		if err := dbg.mc.LoadPCIndirect(cpubus.Reset); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, dbg.mc.String())

	case cmdIRQ, cmdNMI:
		cycles := dbg.mc.TotalCycles()
		if err := dbg.mc.Interrupt(cmd == cmdNMI, nil); err != nil {
			return err
		}
		if cycles == dbg.mc.TotalCycles() {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%s ignored", cmd))
			return nil
		}
		dbg.printLine(terminal.StyleCPUStep, disassembly.Format(dbg.mc.LastResult))

	case cmdTrace:
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.trace = true
			case "OFF":
				dbg.trace = false
			default:
				return fmt.Errorf("TRACE can only be ON or OFF")
			}
		} else {
			dbg.trace = !dbg.trace
		}
		if dbg.trace {
			dbg.printLine(terminal.StyleFeedback, "trace on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace off")
		}

	case cmdLimit:
		if len(args) > 0 {
			limit, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("LIMIT requires a number: %s", args[0])
			}
			dbg.cycleLimit = limit
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("cycle limit: %d", dbg.cycleLimit))

	case cmdPref:
		prefs := dbg.mc.Instance().Prefs
		switch len(args) {
		case 0:
			for _, l := range strings.Split(strings.TrimSuffix(prefs.String(), "\n"), "\n") {
				dbg.printLine(terminal.StyleFeedback, l)
			}
		case 2:
			return prefs.Set(args[0], args[1])
		default:
			return fmt.Errorf("PREF requires a key and a value")
		}

	case cmdLog:
		count := 10
		if len(args) > 0 {
			var err error
			count, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("LOG requires a number: %s", args[0])
			}
		}
		s := &strings.Builder{}
		logger.Tail(s, count)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
			return nil
		}
		for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
			dbg.printLine(terminal.StyleLog, l)
		}

	case cmdHelp:
		if len(args) == 0 {
			keywords := make([]string, 0, len(help))
			for k := range help {
				keywords = append(keywords, k)
			}
			sort.Strings(keywords)
			dbg.printLine(terminal.StyleHelp, strings.Join(keywords, " "))
			return nil
		}
		h, ok := help[strings.ToUpper(args[0])]
		if !ok {
			return fmt.Errorf("no help for %s", args[0])
		}
		dbg.printLine(terminal.StyleHelp, h)
		switch strings.ToUpper(args[0]) {
		case cmdBreak, cmdTrap:
			dbg.printLine(terminal.StyleHelp, targetHelp)
		}

	case cmdQuit:
		dbg.running = false

	default:
		return fmt.Errorf("unrecognised command: %s", tokens[0])
	}

	return nil
}
