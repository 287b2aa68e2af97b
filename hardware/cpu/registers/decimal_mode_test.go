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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/mos6510/hardware/cpu/registers"
	"github.com/jetsetilly/mos6510/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectFailure(t, rcarry)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (no borrow)
	r8.Load(0x09)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (borrow)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// tens boundary
	r8.Load(0x09)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x09)

	// hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)

	// 58 + 46 + 1 = 105
	r8.Load(0x58)
	rcarry, _, _, _ = r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, rcarry)

	// 46 - 12 = 34
	r8.Load(0x46)
	rcarry, _, _, _ = r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectSuccess(t, rcarry)
}

func TestDecimalModeZero(t *testing.T) {
	var zero bool

	r8 := registers.NewRegister(0x02, "test")
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectFailure(t, zero)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectSuccess(t, zero)
}

// the zero flag of a decimal addition comes from the binary sum
func TestDecimalModeInvalid(t *testing.T) {
	var rcarry, zero bool

	r8 := registers.NewRegister(0x99, "test")
	rcarry, zero, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)
	test.ExpectFailure(t, zero)
}

func TestDecimalModeFlags(t *testing.T) {
	var overflow, sign bool

	// 79 + 00 + 1 = 80. sign and overflow follow the intermediate result
	r8 := registers.NewRegister(0x79, "test")
	_, _, overflow, sign = r8.AddDecimal(0x00, true)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, sign)
}
