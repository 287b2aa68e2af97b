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

// Package execution tracks the progress of an instruction through the CPU.
//
// The Result type is the execution context of the instruction. It is
// created fresh at the start of every instruction and is updated on every
// cycle. Once the instruction has completed the Final field is set and the
// IsValid() function can be used to check the result for consistency with the
// instruction definition.
//
// The Schedule type divides the cycles of an instruction into its phases and
// calculates the number of cycles an instruction will take, given whether a
// page fault occurred and whether a branch was taken.
package execution
