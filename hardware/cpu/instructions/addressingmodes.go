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

package instructions

// AddressingMode describes the method by which an instruction receives the
// data on which it operates.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // branch instructions only

	Absolute
	ZeroPage
	Indirect // JMP only

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteIndexedX
	AbsoluteIndexedY

	ZeroPageIndexedX
	ZeroPageIndexedY
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// HasAddress returns false for the addressing modes that never produce a
// memory address for their operand.
func (m AddressingMode) HasAddress() bool {
	switch m {
	case Implied, Accumulator, Immediate:
		return false
	}
	return true
}

// Bytes returns the number of bytes an instruction with the addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// FetchCycles returns the number of cycles, after the opcode has been read,
// that are spent on fetching operand bytes and on calculating the effective
// address. Any additional cycle caused by a page fault is not included.
func (m AddressingMode) FetchCycles() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, Relative, ZeroPage:
		return 1
	case Absolute, ZeroPageIndexedX, ZeroPageIndexedY, AbsoluteIndexedX, AbsoluteIndexedY:
		return 2
	case IndirectIndexed:
		return 3
	case Indirect, IndexedIndirect:
		return 4
	}
	return 0
}
