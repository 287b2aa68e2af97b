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
	"fmt"

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6510/hardware/cpu/registers"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/logger"
)

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run. The callback can be nil.
//
// LastResult is finalised even if an error is returned.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final {
		return fmt.Errorf("cpu: execute instruction: %w", ErrMidInstruction)
	}

	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset(mc.PC.Address())
	defer func() {
		mc.LastResult.Final = true
	}()

	// a jammed CPU does nothing but still consumes time
	if mc.Killed {
		mc.LastResult.Halted = true
		return mc.endCycle()
	}

	// +1 cycle
	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	mc.LastResult.Defn = defn
	mc.LastResult.Schedule = execution.NewSchedule(defn)

	err = mc.resolve(defn)
	if err != nil {
		return err
	}

	// the value for read instructions. immediate mode instructions take the
	// value from the instruction stream
	var value uint8

	if defn.Effect == instructions.Read {
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
		case instructions.Immediate:
			value = uint8(mc.LastResult.InstructionData)
		default:
			// +1 cycle
			value, err = mc.read8Bit(mc.LastResult.OperandAddress)
			if err != nil {
				return err
			}
		}
	}

	return mc.execute(defn, value)
}

// execute performs the operation of the instruction. The addressing mode has
// been resolved and for read instructions the value has been read.
func (mc *CPU) execute(defn *instructions.Definition, value uint8) error {
	res := &mc.LastResult

	var err error

	switch defn.Operator {
	case instructions.NOP:
		// the value of NOP instructions with an operand has already been read

	case instructions.CLI:
		mc.Status.InterruptDisable = false

	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.CLC:
		mc.Status.Carry = false

	case instructions.SEC:
		mc.Status.Carry = true

	case instructions.CLD:
		mc.Status.DecimalMode = false

	case instructions.SED:
		mc.Status.DecimalMode = true

	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.PHA:
		// +1 cycle
		err = mc.push(mc.A.Value())

	case instructions.PLA:
		// +2 cycles
		value, err = mc.pullAfterIncrement()
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.PHP:
		// +1 cycle
		err = mc.push(mc.Status.Push(true))

	case instructions.PLP:
		// +2 cycles
		value, err = mc.pullAfterIncrement()
		mc.Status.Load(value)

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.TXS:
		// no flags are affected
		mc.SP.Load(mc.X.Value())

	case instructions.EOR:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.ORA:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.AND:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.LDA:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.LDX:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.LDY:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.STA:
		// +1 cycle
		err = mc.write8Bit(res.OperandAddress, mc.A.Value())

	case instructions.STX:
		// +1 cycle
		err = mc.write8Bit(res.OperandAddress, mc.X.Value())

	case instructions.STY:
		// +1 cycle
		err = mc.write8Bit(res.OperandAddress, mc.Y.Value())

	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X)

	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y)

	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X)

	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y)

	case instructions.ASL:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
			mc.setZN(*r)
		})

	case instructions.LSR:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
			mc.setZN(*r)
		})

	case instructions.ROL:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			mc.setZN(*r)
		})

	case instructions.ROR:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			mc.setZN(*r)
		})

	case instructions.INC:
		err = mc.modify(defn, func(r *registers.Register) {
			r.Load(r.Value() + 1)
			mc.setZN(*r)
		})

	case instructions.DEC:
		err = mc.modify(defn, func(r *registers.Register) {
			r.Load(r.Value() - 1)
			mc.setZN(*r)
		})

	case instructions.ADC:
		mc.adc(value)

	case instructions.SBC:
		mc.sbc(value)

	case instructions.CMP:
		mc.compare(mc.A, value)

	case instructions.CPX:
		mc.compare(mc.X, value)

	case instructions.CPY:
		mc.compare(mc.Y, value)

	case instructions.BIT:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&registers.Sign == registers.Sign
		mc.Status.Overflow = value&registers.Overflow == registers.Overflow

	case instructions.JMP:
		mc.PC.Load(res.OperandAddress)

	case instructions.BCC:
		err = mc.branch(!mc.Status.Carry)

	case instructions.BCS:
		err = mc.branch(mc.Status.Carry)

	case instructions.BEQ:
		err = mc.branch(mc.Status.Zero)

	case instructions.BNE:
		err = mc.branch(!mc.Status.Zero)

	case instructions.BMI:
		err = mc.branch(mc.Status.Sign)

	case instructions.BPL:
		err = mc.branch(!mc.Status.Sign)

	case instructions.BVC:
		err = mc.branch(!mc.Status.Overflow)

	case instructions.BVS:
		err = mc.branch(mc.Status.Overflow)

	case instructions.JSR:
		err = mc.jsr()

	case instructions.RTS:
		err = mc.rts()

	case instructions.BRK:
		err = mc.brk()

	case instructions.RTI:
		err = mc.rti()

	default:
		err = mc.executeUndocumented(defn, value)
	}

	return err
}

// setZN sets the zero and sign flags according to the value in the register.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	var cmp uint8
	mc.Status.Carry, cmp = r.Compare(value)
	mc.Status.Zero = cmp == 0
	mc.Status.Sign = cmp&0x80 == 0x80
}

// decimal returns true if ADC and SBC should operate in decimal mode.
func (mc *CPU) decimal() bool {
	return mc.Status.DecimalMode && mc.instance.Prefs.DecimalMode.Get().(bool)
}

func (mc *CPU) adc(value uint8) {
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

func (mc *CPU) sbc(value uint8) {
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

// modify applies f to the accumulator or, for the memory addressing modes, to
// the value at the operand address.
//
// The 6502 writes the unmodified value back to memory before writing the
// modified value.
func (mc *CPU) modify(defn *instructions.Definition, f func(r *registers.Register)) error {
	if defn.AddressingMode == instructions.Accumulator {
		f(&mc.A)
		return nil
	}

	res := &mc.LastResult

	// +1 cycle
	v, err := mc.read8Bit(res.OperandAddress)
	if err != nil {
		return err
	}
	res.RMWBuffer = v

	// +1 cycle
	err = mc.write8Bit(res.OperandAddress, v)
	if err != nil {
		return err
	}

	r := registers.NewRegister(v, "RMW")
	f(&r)

	// +1 cycle
	return mc.write8Bit(res.OperandAddress, r.Value())
}

// pullAfterIncrement is the stack read for the PLA and PLP instructions. The
// stack is read before the stack pointer is incremented.
func (mc *CPU) pullAfterIncrement() (uint8, error) {
	// +1 cycle
	if err := mc.phantomRead8Bit(mc.SP.Address()); err != nil {
		return 0, err
	}
	// +1 cycle
	return mc.pull()
}

func (mc *CPU) branch(flag bool) error {
	if !flag {
		return nil
	}

	res := &mc.LastResult
	res.BranchSuccess = true

	// +1 cycle
	if err := mc.phantomRead8Bit(mc.PC.Address()); err != nil {
		return err
	}

	// the low byte of the PC is adjusted first. if the destination is on a
	// different page then the high byte is adjusted in an additional cycle
	if res.OperandAddress&0xff00 != mc.PC.Address()&0xff00 {
		res.PageFault = true

		// +1 cycle
		if err := mc.phantomRead8Bit((mc.PC.Address() & 0xff00) | (res.OperandAddress & 0x00ff)); err != nil {
			return err
		}
	}

	mc.PC.Load(res.OperandAddress)

	return nil
}

func (mc *CPU) jsr() error {
	res := &mc.LastResult

	// the low byte of the address has been read by the resolver. the stack is
	// read while the low byte is stored internally
	// +1 cycle
	if err := mc.phantomRead8Bit(mc.SP.Address()); err != nil {
		return err
	}

	// the PC is pointing at the high byte of the address. this is the value
	// that is pushed to the stack
	// +1 cycle
	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}

	// +1 cycle
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	res.InstructionData |= uint16(hi) << 8
	res.OperandAddress = res.InstructionData

	mc.PC.Load(res.OperandAddress)

	return nil
}

func (mc *CPU) rts() error {
	// +1 cycle
	if err := mc.phantomRead8Bit(mc.SP.Address()); err != nil {
		return err
	}

	// +2 cycles
	address, err := mc.pull16Bit()
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	// the address on the stack is the last byte of the JSR instruction. the
	// PC is incremented in the final cycle
	// +1 cycle
	if err := mc.phantomRead8Bit(mc.PC.Address()); err != nil {
		return err
	}
	mc.PC.Increment()

	return nil
}

func (mc *CPU) brk() error {
	// the byte following the BRK opcode was read by the resolver. it is
	// skipped over by the return address
	mc.PC.Increment()

	// +3 cycles
	if err := mc.pushInterruptFrame(true); err != nil {
		return err
	}

	// +2 cycles
	return mc.loadVector(cpubus.IRQ)
}

func (mc *CPU) rti() error {
	// +1 cycle
	if err := mc.phantomRead8Bit(mc.SP.Address()); err != nil {
		return err
	}

	// +1 cycle
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v)

	// +2 cycles
	address, err := mc.pull16Bit()
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	return nil
}

// pull16Bit pulls the low byte then the high byte from the stack.
func (mc *CPU) pull16Bit() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// pushInterruptFrame pushes the PC and the status register to the stack and
// sets the interrupt disable flag. The break bit of the status register is
// set for the BRK instruction.
func (mc *CPU) pushInterruptFrame(brk bool) error {
	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}
	if err := mc.push(mc.Status.Push(brk)); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true
	return nil
}

// loadVector loads the PC from the vector in two cycles.
func (mc *CPU) loadVector(vector uint16) error {
	lo, err := mc.read8Bit(vector)
	if err != nil {
		return err
	}
	hi, err := mc.read8Bit(vector + 1)
	if err != nil {
		return err
	}
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	return nil
}

// Interrupt runs the hardware interrupt sequence. The sequence is the same as
// for the BRK instruction except that the break bit of the status register
// pushed to the stack is clear and the vector depends on the type of
// interrupt. An IRQ is ignored if the interrupt disable flag is set. A jammed
// CPU ignores all interrupts.
//
// The cycleCallback() function is called in the same way as for
// ExecuteInstruction().
func (mc *CPU) Interrupt(nmi bool, cycleCallback func() error) error {
	if !mc.LastResult.Final {
		return fmt.Errorf("cpu: interrupt: %w", ErrMidInstruction)
	}

	if mc.Killed {
		return nil
	}

	if !nmi && mc.Status.InterruptDisable {
		return nil
	}

	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset(mc.PC.Address())
	mc.LastResult.Interrupt = true
	defer func() {
		mc.LastResult.Final = true
	}()

	// +2 cycles
	if err := mc.phantomRead8Bit(mc.PC.Address()); err != nil {
		return err
	}
	if err := mc.phantomRead8Bit(mc.PC.Address()); err != nil {
		return err
	}

	// +3 cycles
	if err := mc.pushInterruptFrame(false); err != nil {
		return err
	}

	vector := cpubus.IRQ
	if nmi {
		vector = cpubus.NMI
	}

	// +2 cycles
	return mc.loadVector(vector)
}

// halt the CPU. only a Reset() will restart the CPU.
func (mc *CPU) halt() {
	mc.Killed = true
	mc.LastResult.Halted = true
	logger.Logf(mc.instance, "cpu", "KIL instruction (%#02x) at %04x", mc.LastResult.Defn.OpCode, mc.LastResult.Address)
}
