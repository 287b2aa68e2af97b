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
	"errors"
	"testing"

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/test"
)

func TestOverflowVector(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(origin))

	mc.A.Load(0x7f)
	mc.Status.Carry = false
	mem.putInstructions(origin, 0x69, 0x01)
	step(t, mc) // ADC #$01

	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Zero, false)
}

func TestCompareEqualVector(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(origin))

	mc.A.Load(0x10)
	mem.putInstructions(origin, 0xc9, 0x10)
	step(t, mc) // CMP #$10

	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Sign, false)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
}

func TestBranchPageCross(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)

	// the address following the branch is 0x20fe. the destination is on the
	// next page
	mem.putInstructions(0x20fc, 0xd0, 0x04)
	test.DemandSuccess(t, mc.LoadPC(0x20fc))
	step(t, mc) // BNE +4
	test.ExpectEquality(t, mc.PC.Address(), 0x2102)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// same offset without crossing a page
	mem.putInstructions(0x2000, 0xd0, 0x04)
	test.DemandSuccess(t, mc.LoadPC(0x2000))
	step(t, mc) // BNE +4
	test.ExpectEquality(t, mc.PC.Address(), 0x2006)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
}

func TestZeroPageWraparound(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(origin))

	mem.internal[0x0000] = 0xaa
	mem.internal[0x0100] = 0xbb
	mc.X.Load(0x01)
	mem.putInstructions(origin, 0xb5, 0xff)
	step(t, mc) // LDA $ff,X

	test.ExpectEquality(t, mc.LastResult.OperandAddress, 0x0000)
	test.ExpectEquality(t, mc.A.Value(), 0xaa)

	address, err := mc.LastResult.EffectiveAddress()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, address, 0x0000)
}

func TestSubroutineRoundTrip(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(0x1000))

	sp := mc.SP.Value()
	mem.putInstructions(0x1000, 0x20, 0x00, 0x40)
	mem.putInstructions(0x4000, 0x60)

	step(t, mc) // JSR $4000
	test.ExpectEquality(t, mc.PC.Address(), 0x4000)
	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x1003)
	test.ExpectEquality(t, mc.SP.Value(), sp)
}

func TestInterruptRoundTrip(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(0x1000))
	mem.setVector(cpubus.IRQ, 0x3000)

	mc.Status.Load(0xcb)
	mc.Status.InterruptDisable = false
	status := mc.Status
	sp := mc.SP.Value()

	mem.putInstructions(0x1000, 0x00, 0xea)
	mem.putInstructions(0x3000, 0x40)

	step(t, mc) // BRK
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	step(t, mc) // RTI

	// the return address skips the padding byte
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)
	test.ExpectEquality(t, mc.Status, status)
	test.ExpectEquality(t, mc.SP.Value(), sp)
}

func TestSAXFlags(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(origin))

	mc.A.Load(0x80)
	mc.X.Load(0x00)
	mc.Status.Load(0x00)
	status := mc.Status

	mem.internal[0x1234] = 0xff
	mem.putInstructions(origin, 0x8f, 0x34, 0x12)
	step(t, mc) // SAX $1234

	mem.assert(t, 0x1234, 0x00)
	test.ExpectEquality(t, mc.Status, status)
}

func TestNoAddressForImmediate(t *testing.T) {
	mem := newMockMem()
	mc := newCPU(t, mem)
	test.DemandSuccess(t, mc.LoadPC(origin))

	mem.putInstructions(origin, 0xa9, 0x01)
	step(t, mc) // LDA #$01

	_, err := mc.LastResult.EffectiveAddress()
	test.ExpectSuccess(t, errors.Is(err, execution.ErrNoAddress))
}
