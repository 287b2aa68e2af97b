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

import "fmt"

// Category of an instruction describes its effect.
type Category int

// List of categories.
const (
	Read Category = iota
	Write
	RMW

	// the following categories have a variable effect on the program counter

	// flow consists of the branch instructions and JMP. branch instructions
	// are distinguished by the addressing mode
	Flow

	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown category"
}

// Definition defines each instruction in the instruction set. One per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// page sensitive instructions take an extra cycle when the effective
	// address is on a different page to the base address
	PageSensitive bool

	Effect Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsRMW returns true if the instruction reads a value from memory, writes it
// back unchanged and then writes the modified value.
func (defn Definition) IsRMW() bool {
	return defn.Effect == RMW
}

// IsUndocumented returns true if the instruction is not part of the
// published instruction set.
func (defn Definition) IsUndocumented() bool {
	if defn.Operator.IsUndocumented() {
		return true
	}

	// the only documented NOP is 0xea and the only documented SBC
	// immediate is 0xe9
	switch defn.Operator {
	case NOP:
		return defn.OpCode != 0xea
	case SBC:
		return defn.OpCode == 0xeb
	}

	return false
}
