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
	"errors"
	"fmt"
	"os"

	"github.com/jetsetilly/mos6510/debugger/terminal"
	"github.com/jetsetilly/mos6510/disassembly"
	"github.com/jetsetilly/mos6510/hardware/cpu"
	"github.com/jetsetilly/mos6510/hardware/memory"
)

// Debugger is the basic debugging frontend for the CPU.
type Debugger struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	term terminal.Terminal

	breakpoints breakpoints
	traps       traps

	// print the disassembly of every instruction executed by Run()
	trace bool

	// the number of cycles after which Run() will halt. zero means there is
	// no limit
	cycleLimit uint64

	// Interrupt signals from the operating system. the caller should use
	// signal.Notify() to route os.Interrupt to this channel
	Interrupt chan os.Signal

	// the input loop continues while running is true
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(mc *cpu.CPU, mem *memory.Memory, term terminal.Terminal) *Debugger {
	return &Debugger{
		mc:        mc,
		mem:       mem,
		term:      term,
		Interrupt: make(chan os.Signal, 1),
	}
}

// SetTrace sets whether every instruction executed by Run() is printed.
func (dbg *Debugger) SetTrace(trace bool) {
	dbg.trace = trace
}

// SetCycleLimit sets the maximum number of cycles executed by Run(). A value
// of zero means there is no limit.
func (dbg *Debugger) SetCycleLimit(limit uint64) {
	dbg.cycleLimit = limit
}

// Start the main debugger sequence. Returns when the QUIT command is entered
// or when the terminal has no more input.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.printLine(terminal.StyleInstrument, dbg.mc.String())

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(fmt.Sprintf("[$%04x] > ", dbg.mc.PC.Address()))
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) {
				continue // for loop
			}
			if errors.Is(err, terminal.UserAbort) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		dbg.printLine(terminal.StyleEcho, input)

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// Run the CPU until a halting condition is met.
func (dbg *Debugger) Run() (HaltReason, error) {
	// drain any interrupt signal that arrived before Run() started
	select {
	case <-dbg.Interrupt:
	default:
	}

	start := dbg.mc.TotalCycles()

	for {
		reason, err := dbg.step(dbg.trace)
		if err != nil || reason != HaltNone {
			return reason, err
		}

		if s := dbg.breakpoints.check(); s != "" {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("break on %s", s))
			return HaltBreakpoint, nil
		}

		if s := dbg.traps.check(); s != "" {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("trap on %s", s))
			return HaltTrap, nil
		}

		if dbg.cycleLimit > 0 && dbg.mc.TotalCycles()-start >= dbg.cycleLimit {
			return HaltCycleLimit, nil
		}

		select {
		case <-dbg.Interrupt:
			return HaltInterrupt, nil
		default:
		}
	}
}

// step executes one instruction. the disassembly of the instruction is
// printed if show is true. a jammed CPU is not stepped.
func (dbg *Debugger) step(show bool) (HaltReason, error) {
	if dbg.mc.Killed {
		return HaltJammed, nil
	}

	reason, err := Step(dbg.mc, nil)
	if show {
		dbg.printLine(terminal.StyleCPUStep, disassembly.Format(dbg.mc.LastResult))
	}

	return reason, err
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}
