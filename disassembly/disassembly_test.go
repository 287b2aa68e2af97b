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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mos6510/disassembly"
	"github.com/jetsetilly/mos6510/hardware/cpu"
	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6510/hardware/instance"
	"github.com/jetsetilly/mos6510/hardware/memory"
	"github.com/jetsetilly/mos6510/test"
)

func TestLinear(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.Load(0x0400, []uint8{
		0xa9, 0x10,       // LDA #$10
		0x0a,             // ASL A
		0x6c, 0xff, 0x02, // JMP ($02ff)
		0xf0, 0xfc,       // BEQ $0404
		0xb1, 0x20,       // LDA ($20),Y
	}))

	entries, err := disassembly.Linear(mem, 0x0400, 5)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 5)

	test.ExpectEquality(t, entries[0].Address, "$0400")
	test.ExpectEquality(t, entries[0].Bytecode, "a9 10")
	test.ExpectEquality(t, entries[0].Operator, "LDA")
	test.ExpectEquality(t, entries[0].Operand, "#$10")
	test.ExpectEquality(t, entries[0].Cycles(), "2")

	test.ExpectEquality(t, entries[1].Operand, "A")
	test.ExpectEquality(t, entries[2].Bytecode, "6c ff 02")
	test.ExpectEquality(t, entries[2].Operand, "($02ff)")

	test.ExpectEquality(t, entries[3].Operand, "$0404")
	test.ExpectEquality(t, entries[3].Cycles(), "2+")
	test.ExpectEquality(t, entries[3].String(), "$0406  f0 fc     BEQ $0404     2+")

	test.ExpectEquality(t, entries[4].Address, "$0408")
	test.ExpectEquality(t, entries[4].Operand, "($20),Y")
	test.ExpectEquality(t, entries[4].Cycles(), "5+")

	// entries that have not been executed have no notes
	for _, e := range entries {
		test.ExpectEquality(t, e.Notes(), "")
		test.ExpectEquality(t, e.Executed, false)
	}
}

func TestLinearTopOfMemory(t *testing.T) {
	mem := memory.NewMemory()
	entries, err := disassembly.Linear(mem, 0xfffe, 10)
	test.DemandSuccess(t, err)

	// memory is zero so every instruction is a BRK
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[1].Address, "$ffff")
	test.ExpectEquality(t, entries[1].Operator, "BRK")
}

func TestFormat(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.Load(0x0400, []uint8{
		0xa9, 0x10,       // LDA #$10
		0x0a,             // ASL A
		0x6c, 0xff, 0x02, // JMP ($02ff)
	}))
	test.DemandSuccess(t, mem.Load(0x0600, []uint8{
		0xf0, 0x10,       // BEQ $0612
		0xa2, 0x01,       // LDX #$01
		0xbd, 0xff, 0x05, // LDA $05ff,X
		0x02,             // KIL
	}))
	test.DemandSuccess(t, mem.Poke(0x0200, 0x06))
	test.DemandSuccess(t, mem.Poke(0x02ff, 0x00))
	test.DemandSuccess(t, mem.Poke(0x0300, 0x99))

	ins, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	ins.Normalise()
	ins.Label = instance.Test

	mc := cpu.NewCPU(ins, mem)
	mc.Reset()
	test.DemandSuccess(t, mc.LoadPC(0x0400))

	expected := []string{
		"$0400  a9 10     LDA #$10       2",
		"$0402  0a        ASL A          2",
		"$0403  6c ff 02  JMP ($02ff)    5  indirect addressing bug",
		"$0600  f0 10     BEQ $0612      2  branch failed",
		"",
		"$0604  bd ff 05  LDA $05ff,X    5  page-fault",
		"$0607  02        KIL            2  jammed",
	}

	for i, s := range expected {
		test.DemandSuccess(t, mc.ExecuteInstruction(nil))
		if s != "" {
			test.ExpectEquality(t, disassembly.Format(mc.LastResult), s, i)
		}
	}

	// the jammed CPU produces results with no instruction definition
	test.DemandSuccess(t, mc.ExecuteInstruction(nil))
	fields := strings.Fields(disassembly.Format(mc.LastResult))
	test.DemandEquality(t, len(fields), 3)
	test.ExpectEquality(t, fields[0], "$0608")
	test.ExpectEquality(t, fields[1], "halted")
	test.ExpectEquality(t, fields[2], "1")
}

func TestPartialResult(t *testing.T) {
	defn, err := instructions.Decode(0xbd)
	test.DemandSuccess(t, err)

	e := disassembly.NewEntry(execution.Result{
		Address:         0x1000,
		Defn:            defn,
		ByteCount:       2,
		InstructionData: 0x00ff,
		Cycles:          2,
	})

	test.ExpectEquality(t, e.Bytecode, "bd ff ??")
	test.ExpectEquality(t, e.Operand, "$??ff,X")
	test.ExpectEquality(t, e.Cycles(), "2 of 4")
}
