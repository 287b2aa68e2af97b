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

// Package disassembly turns the result of an executed instruction, or the
// bytes of an instruction in memory, into text suitable for a trace or for a
// listing.
//
// For tracing, the Format() function can be called from the cycle callback or
// after ExecuteInstruction() has returned:
//
//	mc.ExecuteInstruction(nil)
//	fmt.Println(disassembly.Format(mc.LastResult))
//
// Instructions that have not been executed can be decoded from any memory that
// implements the cpubus.Peeker interface. The Linear() function decodes a run
// of consecutive instructions, as though every instruction is followed by
// another instruction.
package disassembly
