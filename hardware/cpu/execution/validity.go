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

package execution

import (
	"fmt"
)

// the number of cycles taken by the hardware interrupt sequence
const interruptCycles = 7

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Interrupt {
		if r.Cycles != interruptCycles {
			return fmt.Errorf("cpu: number of cycles wrong for interrupt (%d instead of %d)", r.Cycles, interruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		// a jammed CPU idles one cycle at a time
		if r.Halted {
			if r.Cycles != 1 {
				return fmt.Errorf("cpu: number of cycles wrong for halted CPU (%d instead of 1)", r.Cycles)
			}
			return nil
		}
		return fmt.Errorf("cpu: execution finalised without a definition")
	}

	if !r.Defn.PageSensitive && r.PageFault {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	if !r.Defn.IsBranch() && r.BranchSuccess {
		return fmt.Errorf("cpu: branch success for non-branch instruction")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if expected := r.Schedule.Realize(r.PageFault, r.BranchSuccess); r.Cycles != expected {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
