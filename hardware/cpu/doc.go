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

// Package cpu emulates the NMOS 6502 microprocessor and its close relative
// the 6510. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// Every one of the 256 opcodes is emulated, including the undocumented
// opcodes and the opcodes that jam the CPU.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the second argument to NewCPU(). The first argument is an instance of the
// instance.Instance type, which gives the CPU access to the preferences and to
// the random number generator. A nil instance is acceptable, in which case a
// default instance is created.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction. Every cycle of a 6502 instruction accesses the
// bus and the callback is called after the access has taken place.
//
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// 6502 instructions.
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//	mc.LoadPCIndirect(cpubus.Reset)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. A system emulation would use the callback to step the other
// chips in the system in lockstep with the CPU.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function. See the execution
// package for more information.
//
// Hardware interrupts are raised with the Interrupt() function. The function
// should be called between instructions and runs the seven cycle interrupt
// sequence, calling the callback function in the same way as
// ExecuteInstruction().
package cpu
