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

// Package debugger implements an interactive monitor for the CPU. The
// debugger reads commands from an implementation of the terminal.Terminal
// interface and responds to them by stepping the CPU, inspecting registers
// and memory, and setting breakpoints and traps.
//
// Breakpoints halt execution when a target is changed to a specific value.
// Traps halt execution when a target changes from its current value to any
// other value. A target is a register or an address in memory.
//
// The Run() function can also be used without the command loop, for example
// to run a binary to completion:
//
//	dbg := debugger.NewDebugger(mc, mem, plainterm.NewPlainTerminal(nil, nil))
//	reason, err := dbg.Run()
//
// Execution stops when the CPU jams, when the program jumps to itself, when
// the cycle limit is reached or when an interrupt signal is received.
package debugger
