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

package cpu

import (
	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
)

// resolve reads the operand bytes of the instruction and calculates the
// effective address according to the addressing mode. The phantom reads that
// the 6502 performs while calculating the address are included.
//
// For the immediate and relative modes the operand is stored in
// LastResult.InstructionData and not as an address. The operand address of a
// relative instruction is the branch destination.
func (mc *CPU) resolve(defn *instructions.Definition) error {
	res := &mc.LastResult

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// the byte following the opcode is read but the PC is not
		// incremented. BRK increments the PC after the read
		// +1 cycle
		return mc.phantomRead8Bit(mc.PC.Address())

	case instructions.Immediate:
		// +1 cycle
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(v)

	case instructions.Relative:
		// +1 cycle
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(v)

		// offset is signed and relative to the address of the following
		// instruction
		res.IndexAddress = mc.PC.Address()
		res.OperandAddress = mc.PC.Address() + uint16(int16(int8(v)))

	case instructions.ZeroPage:
		// +1 cycle
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(v)
		res.OperandAddress = uint16(v)

	case instructions.ZeroPageIndexedX:
		return mc.resolveZeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		return mc.resolveZeroPageIndexed(mc.Y.Value())

	case instructions.Absolute:
		// +1 cycle
		lo, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(lo)

		// the high byte of the JSR address is read after the return address
		// has been pushed to the stack
		if defn.Operator == instructions.JSR {
			return nil
		}

		// +1 cycle
		hi, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData |= uint16(hi) << 8
		res.OperandAddress = res.InstructionData

	case instructions.Indirect:
		// +2 cycles
		ptr, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = ptr
		res.IndexAddress = ptr

		// +1 cycle
		lo, err := mc.read8Bit(ptr)
		if err != nil {
			return err
		}

		// the high byte of the pointer is not incremented so the second byte
		// is read from the start of the same page when the pointer is at the
		// end of a page
		// +1 cycle
		hiPtr := (ptr & 0xff00) | uint16(uint8(ptr)+1)
		if ptr&0x00ff == 0x00ff {
			res.CPUBug = execution.JmpIndirectAddressingBug
		}
		hi, err := mc.read8Bit(hiPtr)
		if err != nil {
			return err
		}
		res.OperandAddress = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		// +1 cycle
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(zp)

		// the unindexed pointer is read while X is being added
		// +1 cycle
		if err := mc.phantomRead8Bit(uint16(zp)); err != nil {
			return err
		}

		ptr := zp + mc.X.Value()
		res.IndexAddress = uint16(ptr)
		if ptr < zp {
			res.ZeroPageWrap = true
			res.CPUBug = execution.ZeroPageIndexBug
		}

		// +2 cycles
		address, err := mc.readZeroPagePointer(ptr, execution.IndexedIndirectAddressingBug)
		if err != nil {
			return err
		}
		res.OperandAddress = address

	case instructions.IndirectIndexed:
		// +1 cycle
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = uint16(zp)

		// +2 cycles
		base, err := mc.readZeroPagePointer(zp, execution.IndirectIndexedAddressingBug)
		if err != nil {
			return err
		}

		// +1 cycle (if page fault or not a read instruction)
		return mc.resolveIndexed(defn, base, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		base, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = base

		// +1 cycle (if page fault or not a read instruction)
		return mc.resolveIndexed(defn, base, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		base, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		res.InstructionData = base

		// +1 cycle (if page fault or not a read instruction)
		return mc.resolveIndexed(defn, base, mc.Y.Value())
	}

	return nil
}

// read16BitPC reads two bytes from the instruction stream, low byte first.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// readZeroPagePointer reads a 16bit pointer from the zero page. The address
// of the high byte wraps around to the start of the zero page.
func (mc *CPU) readZeroPagePointer(ptr uint8, bug execution.Bug) (uint16, error) {
	lo, err := mc.read8Bit(uint16(ptr))
	if err != nil {
		return 0, err
	}

	if ptr == 0xff {
		mc.LastResult.ZeroPageWrap = true
		mc.LastResult.CPUBug = bug
	}

	hi, err := mc.read8Bit(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// resolveZeroPageIndexed for the zero page indexed modes. The indexed address
// never leaves the zero page.
func (mc *CPU) resolveZeroPageIndexed(idx uint8) error {
	res := &mc.LastResult

	// +1 cycle
	zp, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	res.InstructionData = uint16(zp)
	res.IndexAddress = uint16(zp)

	// the unindexed address is read while the index is being added
	// +1 cycle
	if err := mc.phantomRead8Bit(uint16(zp)); err != nil {
		return err
	}

	address := zp + idx
	if address < zp {
		res.ZeroPageWrap = true
		res.CPUBug = execution.ZeroPageIndexBug
	}
	res.OperandAddress = uint16(address)

	return nil
}

// resolveIndexed adds the index to the base address. The 6502 adds the index
// to the low byte first and reads from the resulting address. If there was no
// carry into the high byte then the read was from the correct address and
// read instructions can use the value. Otherwise the high byte is corrected
// and the read repeated.
//
// Write and read-modify-write instructions always perform the first read and
// always take the extra cycle.
func (mc *CPU) resolveIndexed(defn *instructions.Definition, base uint16, idx uint8) error {
	res := &mc.LastResult

	res.IndexAddress = base
	res.OperandAddress = base + uint16(idx)

	crossed := base&0xff00 != res.OperandAddress&0xff00
	if crossed && defn.PageSensitive {
		res.PageFault = true
	}

	if crossed || defn.Effect != instructions.Read {
		// +1 cycle
		uncorrected := (base & 0xff00) | (res.OperandAddress & 0x00ff)
		if err := mc.phantomRead8Bit(uncorrected); err != nil {
			return err
		}
	}

	return nil
}
