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

// Package scripting allows the CPU to be driven by a Lua script. The script
// has access to three globals:
//
//	cpu.step()            execute one instruction. returns the number of
//	                      cycles and the halt reason, or nil
//	cpu.run([limit])      run until halted or until the cycle limit is
//	                      reached. returns the halt reason
//	cpu.reset()           reset the CPU and load PC from the reset vector
//	cpu.irq(), cpu.nmi()  raise an interrupt. returns true if the
//	                      interrupt was serviced
//	cpu.regs()            returns a table with the fields pc, a, x, y, sp
//	                      and sr
//	cpu.set(reg, value)   set a register
//	cpu.cycles()          number of cycles executed
//	cpu.last()            disassembly of the most recent instruction
//
//	mem.peek(address)
//	mem.poke(address, value)
//	mem.word(address)     little-endian word at address
//
//	log(detail)           add an entry to the central log
//
// The standard Lua print() function writes to the output of the Script.
package scripting
