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
)

// executeUndocumented performs the operation of the undocumented
// instructions. Undocumented NOP and SBC instructions are handled by
// execute() along with the documented instructions.
func (mc *CPU) executeUndocumented(defn *instructions.Definition, value uint8) error {
	var err error

	switch defn.Operator {
	case instructions.SLO:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
			mc.A.ORA(r.Value())
			mc.setZN(mc.A)
		})

	case instructions.RLA:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			mc.A.AND(r.Value())
			mc.setZN(mc.A)
		})

	case instructions.SRE:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
			mc.A.EOR(r.Value())
			mc.setZN(mc.A)
		})

	case instructions.RRA:
		err = mc.modify(defn, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			mc.adc(r.Value())
		})

	case instructions.DCP:
		err = mc.modify(defn, func(r *registers.Register) {
			r.Load(r.Value() - 1)
			mc.compare(mc.A, r.Value())
		})

	case instructions.ISC:
		err = mc.modify(defn, func(r *registers.Register) {
			r.Load(r.Value() + 1)
			mc.sbc(r.Value())
		})

	case instructions.SAX:
		// +1 cycle
		err = mc.write8Bit(mc.LastResult.OperandAddress, mc.A.Value()&mc.X.Value())

	case instructions.LAX:
		// the immediate form is unstable
		if defn.AddressingMode == instructions.Immediate {
			value &= mc.A.Value() | mc.magic()
		}
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(mc.A)

	case instructions.ANC:
		mc.A.AND(value)
		mc.setZN(mc.A)
		mc.Status.Carry = mc.Status.Sign

	case instructions.ALR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A)

	case instructions.ARR:
		mc.arr(value)

	case instructions.XAA:
		mc.A.Load((mc.A.Value() | mc.magic()) & mc.X.Value() & value)
		mc.setZN(mc.A)

	case instructions.AXS:
		// a compare rather than a subtraction. the carry flag is not an input
		// and the overflow flag is unaffected
		ax := registers.NewRegister(mc.A.Value()&mc.X.Value(), "AX")
		var v uint8
		mc.Status.Carry, v = ax.Compare(value)
		mc.X.Load(v)
		mc.setZN(mc.X)

	case instructions.AHX:
		// +1 cycle
		err = mc.unstableStore(mc.A.Value() & mc.X.Value())

	case instructions.SHX:
		// +1 cycle
		err = mc.unstableStore(mc.X.Value())

	case instructions.SHY:
		// +1 cycle
		err = mc.unstableStore(mc.Y.Value())

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())

		// +1 cycle
		err = mc.unstableStore(mc.SP.Value())

	case instructions.LAS:
		value &= mc.SP.Value()
		mc.A.Load(value)
		mc.X.Load(value)
		mc.SP.Load(value)
		mc.setZN(mc.A)

	case instructions.KIL:
		mc.halt()

	default:
		return fmt.Errorf("cpu: unimplemented operator %s (%#02x)", defn.Operator, defn.OpCode)
	}

	return err
}

// magic returns the constant used by the unstable XAA and LAX immediate
// instructions.
func (mc *CPU) magic() uint8 {
	return uint8(mc.instance.Prefs.UnstableMagic.Get().(int))
}

// arr is AND followed by ROR but with flags that reflect the internal workings
// of the ALU. In decimal mode the result is further adjusted.
func (mc *CPU) arr(value uint8) {
	t := mc.A.Value() & value

	r := t >> 1
	if mc.Status.Carry {
		r |= 0x80
	}

	if !mc.decimal() {
		mc.A.Load(r)
		mc.setZN(mc.A)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = ((r>>6)^(r>>5))&0x01 == 0x01
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (r^t)&0x40 == 0x40

	if int(t&0x0f)+int(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}

	mc.Status.Carry = int(t&0xf0)+int(t&0x10) > 0x50
	if mc.Status.Carry {
		r += 0x60
	}

	mc.A.Load(r)
}

// unstableStore writes the value ANDed with the high byte of the base address
// plus one. If indexing crossed a page boundary then the high byte of the
// effective address is replaced by the value being written.
func (mc *CPU) unstableStore(value uint8) error {
	res := &mc.LastResult

	value &= uint8(res.IndexAddress>>8) + 1

	if res.IndexAddress&0xff00 != res.OperandAddress&0xff00 {
		res.OperandAddress = (uint16(value) << 8) | (res.OperandAddress & 0x00ff)
		res.CPUBug = execution.UnstableAddressBug
	}

	return mc.write8Bit(res.OperandAddress, value)
}
