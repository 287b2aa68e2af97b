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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6510/hardware/cpu/registers"
)

// Entry is a disassembled instruction. The string fields are the constituent
// parts of the disassembly and are derived from the Result field.
type Entry struct {
	// copy of the CPU execution. note that the Final field may be false if
	// the entry was created from inside the cycle callback
	Result execution.Result

	// whether the entry has been created from an executed instruction or
	// decoded from memory
	Executed bool

	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// NewEntry creates an Entry for the result of an executed instruction.
func NewEntry(result execution.Result) Entry {
	return newEntry(result, true)
}

func newEntry(result execution.Result, executed bool) Entry {
	e := Entry{
		Result:   result,
		Executed: executed,
		Address:  fmt.Sprintf("$%04x", result.Address),
	}

	// interrupt sequences and a jammed CPU have no definition
	if result.Defn == nil {
		switch {
		case result.Interrupt:
			e.Operator = "interrupt"
		case result.Halted:
			e.Operator = "halted"
		default:
			e.Operator = "???"
		}
		return e
	}

	e.Operator = result.Defn.Operator.String()

	// bytecode and operand strings are assembled depending on the number of
	// expected bytes and the number of bytes read so far. bytes that have not
	// been read yet are shown as question marks
	bytecode := []string{fmt.Sprintf("%02x", result.Defn.OpCode)}
	for i := 1; i < result.Defn.Bytes; i++ {
		if i < result.ByteCount {
			bytecode = append(bytecode, fmt.Sprintf("%02x", uint8(result.InstructionData>>(8*(i-1)))))
		} else {
			bytecode = append(bytecode, "??")
		}
	}
	e.Bytecode = strings.Join(bytecode, " ")

	var operand string

	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			operand = fmt.Sprintf("$%04x", result.InstructionData)
		case 2:
			operand = fmt.Sprintf("$??%02x", result.InstructionData&0x00ff)
		default:
			operand = "$????"
		}
	case 2:
		if result.ByteCount >= 2 {
			if result.Defn.IsBranch() {
				operand = fmt.Sprintf("$%04x", absoluteBranchDestination(result.Address, result.InstructionData))
			} else {
				operand = fmt.Sprintf("$%02x", result.InstructionData&0x00ff)
			}
		} else {
			operand = "$??"
		}
	}

	if result.Defn.AddressingMode == instructions.Accumulator {
		operand = "A"
	}

	e.Operand = addrModeDecoration(operand, result.Defn.AddressingMode)

	return e
}

// Format returns a single line describing the result of an executed
// instruction. Intended for use as a line in an execution trace.
func Format(result execution.Result) string {
	return NewEntry(result).String()
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s  %-8s  %s %-7s  %3s  %s", e.Address, e.Bytecode, e.Operator, e.Operand, e.Cycles(), e.Notes())
	return strings.TrimRight(s, " ")
}

// Cycles returns the number of cycles of the entry. For entries that have not
// been executed the value from the instruction definition is returned, with a
// plus sign if the number of cycles can be greater. Executed instructions
// that are not yet final are annotated with the expected number of cycles.
func (e Entry) Cycles() string {
	if e.Result.Defn == nil {
		if e.Executed {
			return fmt.Sprintf("%d", e.Result.Cycles)
		}
		return "?"
	}

	if !e.Executed {
		if e.Result.Defn.PageSensitive || e.Result.Defn.IsBranch() {
			return fmt.Sprintf("%d+", e.Result.Defn.Cycles)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	if e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	return fmt.Sprintf("%d of %d", e.Result.Cycles, e.Result.Defn.Cycles)
}

// Notes returns a string describing the most recent execution. The
// information is made up of the BranchSuccess, PageFault, CPUBug, Halted and
// Error fields.
func (e Entry) Notes() string {
	if !e.Executed {
		return ""
	}

	s := strings.Builder{}

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}

		if e.Result.PageFault {
			s.WriteString("with page-fault ")
		}
	} else if e.Result.PageFault {
		s.WriteString("page-fault ")
	}

	if e.Result.ZeroPageWrap {
		s.WriteString("zero page wrap ")
	}

	if e.Result.CPUBug != execution.NoBug {
		s.WriteString(string(e.Result.CPUBug))
		s.WriteString(" ")
	}

	if e.Result.Halted && e.Result.Defn != nil {
		s.WriteString("jammed ")
	}

	if e.Result.Error != nil {
		s.WriteString(fmt.Sprintf("[%v]", e.Result.Error))
	}

	return strings.TrimSpace(s.String())
}

// add decoration to operand according to the addressing mode of the entry.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Accumulator:
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absolute branch destination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	// create a mock register with the instruction's address as the initial value
	pc := registers.NewProgramCounter(addr)

	// all 6502 branch instructions are 2 bytes in length
	pc.Add(2)

	// sign extend the 8bit offset
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	} else {
		operand &= 0x00ff
	}

	pc.Add(operand)

	return pc.Address()
}
