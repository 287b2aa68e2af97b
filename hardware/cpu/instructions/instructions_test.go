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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6510/test"
)

func TestTotality(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		defn, err := instructions.Decode(uint8(i))
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
		test.ExpectInequality(t, defn.Operator.String(), "???", defn)
		test.ExpectEquality(t, instructions.Mnemonic(uint8(i)), defn.Operator.String())
	}
}

func TestOperators(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i <= 0xff; i++ {
		defn, _ := instructions.Decode(uint8(i))
		seen[defn.Operator.String()] = true
	}

	// 56 documented operators, 18 undocumented operators and KIL
	test.ExpectEquality(t, len(seen), 75)
}

func TestJamOpcodes(t *testing.T) {
	jams := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2}
	count := 0
	for i := 0; i <= 0xff; i++ {
		defn, _ := instructions.Decode(uint8(i))
		if defn.Operator == instructions.KIL {
			count++
		}
	}
	test.ExpectEquality(t, count, len(jams))
	for _, j := range jams {
		defn, _ := instructions.Decode(j)
		test.ExpectEquality(t, defn.Operator, instructions.KIL, j)
		test.ExpectSuccess(t, defn.IsUndocumented())
	}
}

func TestSelectedDefinitions(t *testing.T) {
	type expected struct {
		opcode        uint8
		operator      instructions.Operator
		mode          instructions.AddressingMode
		cycles        int
		pageSensitive bool
		effect        instructions.Category
	}

	for _, e := range []expected{
		{0x00, instructions.BRK, instructions.Implied, 7, false, instructions.Interrupt},
		{0x0a, instructions.ASL, instructions.Accumulator, 2, false, instructions.Read},
		{0x20, instructions.JSR, instructions.Absolute, 6, false, instructions.Subroutine},
		{0x44, instructions.NOP, instructions.ZeroPage, 3, false, instructions.Read},
		{0x6b, instructions.ARR, instructions.Immediate, 2, false, instructions.Read},
		{0x6c, instructions.JMP, instructions.Indirect, 5, false, instructions.Flow},
		{0x73, instructions.RRA, instructions.IndirectIndexed, 8, false, instructions.RMW},
		{0x87, instructions.SAX, instructions.ZeroPage, 3, false, instructions.Write},
		{0x91, instructions.STA, instructions.IndirectIndexed, 6, false, instructions.Write},
		{0x9d, instructions.STA, instructions.AbsoluteIndexedX, 5, false, instructions.Write},
		{0xb1, instructions.LDA, instructions.IndirectIndexed, 5, true, instructions.Read},
		{0xb6, instructions.LDX, instructions.ZeroPageIndexedY, 4, false, instructions.Read},
		{0xbb, instructions.LAS, instructions.AbsoluteIndexedY, 4, true, instructions.Read},
		{0xd0, instructions.BNE, instructions.Relative, 2, true, instructions.Flow},
		{0xeb, instructions.SBC, instructions.Immediate, 2, false, instructions.Read},
		{0xfe, instructions.INC, instructions.AbsoluteIndexedX, 7, false, instructions.RMW},
	} {
		defn, err := instructions.Decode(e.opcode)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, defn.Operator, e.operator, defn)
		test.ExpectEquality(t, defn.AddressingMode, e.mode, defn)
		test.ExpectEquality(t, defn.Cycles, e.cycles, defn)
		test.ExpectEquality(t, defn.PageSensitive, e.pageSensitive, defn)
		test.ExpectEquality(t, defn.Effect, e.effect, defn)
	}
}

func TestPageSensitivity(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		defn, _ := instructions.Decode(uint8(i))
		if !defn.PageSensitive {
			continue
		}

		// only branches and indexed reads can take an extra cycle
		switch defn.AddressingMode {
		case instructions.Relative:
			test.ExpectSuccess(t, defn.IsBranch(), defn)
		case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
		default:
			t.Errorf("page sensitive instruction with unexpected addressing mode: %s", defn)
		}
	}
}

func TestUndocumented(t *testing.T) {
	defn, _ := instructions.Decode(0xea)
	test.ExpectFailure(t, defn.IsUndocumented())
	defn, _ = instructions.Decode(0x1a)
	test.ExpectSuccess(t, defn.IsUndocumented())
	defn, _ = instructions.Decode(0xe9)
	test.ExpectFailure(t, defn.IsUndocumented())
	defn, _ = instructions.Decode(0xeb)
	test.ExpectSuccess(t, defn.IsUndocumented())
	defn, _ = instructions.Decode(0xa7)
	test.ExpectSuccess(t, defn.IsUndocumented())

	documented := 0
	for i := 0; i <= 0xff; i++ {
		defn, _ := instructions.Decode(uint8(i))
		if !defn.IsUndocumented() {
			documented++
		}
	}
	test.ExpectEquality(t, documented, 151)
}

func TestAddressingModes(t *testing.T) {
	test.ExpectFailure(t, instructions.Implied.HasAddress())
	test.ExpectFailure(t, instructions.Accumulator.HasAddress())
	test.ExpectFailure(t, instructions.Immediate.HasAddress())
	test.ExpectSuccess(t, instructions.ZeroPageIndexedX.HasAddress())
	test.ExpectSuccess(t, instructions.Relative.HasAddress())
	test.ExpectEquality(t, instructions.IndirectIndexed.String(), "IndirectIndexed")
}
