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

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
)

// Decode the instruction at address. Memory is read with Peek() so decoding
// has no side effects.
func Decode(mem cpubus.Peeker, address uint16) (Entry, error) {
	opcode, err := mem.Peek(address)
	if err != nil {
		return Entry{}, fmt.Errorf("disassembly: %w", err)
	}

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return Entry{}, fmt.Errorf("disassembly: %w", err)
	}

	result := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: 1,
		Schedule:  execution.NewSchedule(defn),
	}

	for i := 1; i < defn.Bytes; i++ {
		v, err := mem.Peek(address + uint16(i))
		if err != nil {
			return Entry{}, fmt.Errorf("disassembly: %w", err)
		}
		result.InstructionData |= uint16(v) << (8 * (i - 1))
		result.ByteCount++
	}

	return newEntry(result, false), nil
}

// Linear decodes count instructions starting at origin. Each instruction is
// assumed to begin immediately after the previous instruction. Decoding stops
// at the top of memory.
func Linear(mem cpubus.Peeker, origin uint16, count int) ([]Entry, error) {
	entries := make([]Entry, 0, count)

	address := int(origin)
	for range count {
		if address > 0xffff {
			break
		}

		e, err := Decode(mem, uint16(address))
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)

		address += e.Result.Defn.Bytes
	}

	return entries, nil
}
