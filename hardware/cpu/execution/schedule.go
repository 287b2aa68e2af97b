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
	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
)

// Phase of an instruction.
type Phase int

// List of phases.
const (
	// the opcode is being read
	Decode Phase = iota

	// operand bytes are being read and the effective address calculated
	Fetch

	// the operand is read and written back unchanged
	ReadModifyWrite

	// the instruction is being executed
	Execute
)

func (p Phase) String() string {
	switch p {
	case Decode:
		return "decode"
	case Fetch:
		return "fetch"
	case ReadModifyWrite:
		return "rmw"
	case Execute:
		return "execute"
	}
	return "unknown phase"
}

// Schedule divides the base number of cycles of an instruction into the
// fetch, read-modify-write and execute phases. The first cycle of every
// instruction is the opcode fetch and is not counted in any of the phases.
type Schedule struct {
	Fetch   int
	RMW     int
	Execute int

	base          int
	branch        bool
	pageSensitive bool
}

// NewSchedule creates a schedule for the instruction definition.
func NewSchedule(defn *instructions.Definition) Schedule {
	s := Schedule{
		Fetch:         defn.AddressingMode.FetchCycles(),
		base:          defn.Cycles,
		branch:        defn.IsBranch(),
		pageSensitive: defn.PageSensitive,
	}
	if defn.IsRMW() {
		s.RMW = 2
	}
	s.Execute = s.base - 1 - s.Fetch - s.RMW
	return s
}

// Realize returns the number of cycles the instruction takes. A page fault
// adds one cycle to page sensitive instructions. A taken branch adds one
// cycle and a further cycle if the branch crosses a page.
func (s Schedule) Realize(pageFault bool, branchTaken bool) int {
	n := s.base
	if s.branch {
		if branchTaken {
			n++
			if pageFault {
				n++
			}
		}
	} else if pageFault && s.pageSensitive {
		n++
	}
	return n
}

// Phase returns the phase the instruction is in during cycle. Cycles are
// counted from one. An extra cycle for a page fault belongs to the fetch
// phase and the extra cycles of a taken branch to the execute phase.
func (s Schedule) Phase(cycle int, pageFault bool) Phase {
	fetch := s.Fetch
	if pageFault && s.pageSensitive && !s.branch {
		fetch++
	}

	switch {
	case cycle <= 1:
		return Decode
	case cycle <= 1+fetch:
		return Fetch
	case cycle <= 1+fetch+s.RMW:
		return ReadModifyWrite
	}
	return Execute
}
