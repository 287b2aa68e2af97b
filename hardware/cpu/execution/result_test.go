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

package execution_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/test"
)

func TestEffectiveAddress(t *testing.T) {
	var r execution.Result

	_, err := r.EffectiveAddress()
	test.ExpectSuccess(t, errors.Is(err, execution.ErrNoAddress))

	// LDA immediate
	r.Defn = decode(t, 0xa9)
	_, err = r.EffectiveAddress()
	test.ExpectSuccess(t, errors.Is(err, execution.ErrNoAddress))

	// ROL accumulator
	r.Defn = decode(t, 0x2a)
	_, err = r.EffectiveAddress()
	test.ExpectSuccess(t, errors.Is(err, execution.ErrNoAddress))

	// LDA zp,X
	r.Defn = decode(t, 0xb5)
	r.OperandAddress = 0x0010
	address, err := r.EffectiveAddress()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, address, 0x0010)
}

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X with page fault
	r.Reset(0x1000)
	r.Defn = decode(t, 0xbd)
	r.Schedule = execution.NewSchedule(r.Defn)
	r.ByteCount = 3
	r.Cycles = 5
	r.PageFault = true
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = false
	test.ExpectFailure(t, r.IsValid())

	// STA abs,X cannot report a page fault
	r.Defn = decode(t, 0x9d)
	r.Schedule = execution.NewSchedule(r.Defn)
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())

	// wrong byte count
	r.PageFault = false
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	// interrupt sequence
	r.Reset(0x1000)
	r.Interrupt = true
	r.Cycles = 7
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	// idling while halted
	r.Reset(0x1000)
	r.Halted = true
	r.Cycles = 1
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 2
	test.ExpectFailure(t, r.IsValid())
}
