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
	"github.com/jetsetilly/mos6510/hardware/cpu"
)

// HaltReason describes why execution of the CPU has stopped.
type HaltReason string

// List of valid HaltReason values.
const (
	HaltNone       HaltReason = ""
	HaltBreakpoint HaltReason = "breakpoint"
	HaltTrap       HaltReason = "trap"
	HaltLoop       HaltReason = "jump to self"
	HaltJammed     HaltReason = "CPU jammed"
	HaltCycleLimit HaltReason = "cycle limit"
	HaltInterrupt  HaltReason = "interrupted"
)

// Step executes a single instruction and reports whether execution should
// halt. A jammed CPU is not stepped.
//
// A program that has jumped or branched to itself can never escape without an
// interrupt. This is a common way for test programs to indicate success or
// failure and is reported as HaltLoop.
func Step(mc *cpu.CPU, cycleCallback func() error) (HaltReason, error) {
	if mc.Killed {
		return HaltJammed, nil
	}

	if err := mc.ExecuteInstruction(cycleCallback); err != nil {
		return HaltNone, err
	}

	if mc.Killed {
		return HaltJammed, nil
	}

	if !mc.LastResult.Interrupt && mc.PC.Address() == mc.LastResult.Address {
		return HaltLoop, nil
	}

	return HaltNone, nil
}
