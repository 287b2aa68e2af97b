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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/test"
)

func TestInterrupt(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	mem.setVector(cpubus.IRQ, 0x0600)
	mem.setVector(cpubus.NMI, 0x0700)
	test.DemandSuccess(t, mc.LoadPC(origin))

	var cycles int
	callback := func() error {
		cycles++
		return nil
	}

	// IRQ is masked by the interrupt disable flag, which is set on reset
	test.ExpectSuccess(t, mc.Interrupt(false, callback))
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, cycles, 0)

	mc.Status.InterruptDisable = false
	mc.Status.Carry = true
	test.ExpectSuccess(t, mc.Interrupt(false, callback))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.LastResult.Interrupt, true)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	mem.assert(t, 0x01fd, 0x04)
	mem.assert(t, 0x01fc, 0x00)

	// the break bit is clear in the pushed status register
	mem.assert(t, 0x01fb, 0x21)

	// NMI is not affected by the interrupt disable flag
	cycles = 0
	test.ExpectSuccess(t, mc.Interrupt(true, callback))
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
	test.ExpectEquality(t, mc.SP.Value(), 0xf7)
	mem.assert(t, 0x01fa, 0x06)
	mem.assert(t, 0x01f9, 0x00)
	mem.assert(t, 0x01f8, 0x25)

	// return from the NMI and then from the IRQ
	mem.putInstructions(0x0700, 0x40)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0600)
	mem.putInstructions(0x0600, 0x40)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestHalt(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)

	for _, opcode := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		mc.Reset()
		test.DemandSuccess(t, mc.LoadPC(origin))
		mem.putInstructions(origin, opcode, 0xea)

		step(t, mc)
		test.ExpectEquality(t, mc.Killed, true, opcode)
		test.ExpectEquality(t, mc.LastResult.Halted, true, opcode)
		test.ExpectEquality(t, mc.LastResult.Cycles, 2, opcode)
		test.ExpectEquality(t, mc.PC.Address(), origin+1, opcode)

		// the halted CPU idles one cycle at a time
		for range 3 {
			step(t, mc)
			test.ExpectEquality(t, mc.LastResult.Halted, true, opcode)
			test.ExpectEquality(t, mc.LastResult.Cycles, 1, opcode)
			test.ExpectEquality(t, mc.LastResult.Defn == nil, true, opcode)
			test.ExpectEquality(t, mc.PC.Address(), origin+1, opcode)
		}

		// interrupts are ignored
		test.ExpectSuccess(t, mc.Interrupt(true, nil))
		test.ExpectEquality(t, mc.PC.Address(), origin+1, opcode)
	}

	mc.Reset()
	test.ExpectEquality(t, mc.Killed, false)
	test.DemandSuccess(t, mc.LoadPC(origin+1))
	step(t, mc) // NOP
	test.ExpectEquality(t, mc.LastResult.Halted, false)
}
