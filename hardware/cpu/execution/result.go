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
	"errors"
	"fmt"

	"github.com/jetsetilly/mos6510/hardware/cpu/instructions"
)

// ErrNoAddress is returned when the effective address of an instruction is
// requested but the addressing mode of the instruction has no address.
var ErrNoAddress = errors.New("addressing mode has no address")

// Result records the state and outcome of the most recent instruction. The
// values of fields may be undefined until Final is true.
type Result struct {
	// address of the opcode
	Address uint16

	// nil until the opcode has been decoded. nil also for the result of a
	// hardware interrupt
	Defn *instructions.Definition

	// number of bytes read from the instruction stream, including the opcode
	ByteCount int

	// the operand of the instruction. for example, the offset of a branch
	// instruction. one byte operands are stored in the low byte
	InstructionData uint16

	// the number of cycles taken so far by the instruction
	Cycles int

	// the phase of the instruction at the most recent cycle
	Phase Phase

	// the schedule of the instruction. valid once Defn is not nil
	Schedule Schedule

	// effective address of the operand
	OperandAddress uint16

	// address before indexing. for the indirect modes this is the address of
	// the pointer
	IndexAddress uint16

	// value read during the read-modify-write phase
	RMWBuffer uint8

	// zero page indexing or a zero page pointer wrapped around the end of the
	// zero page
	ZeroPageWrap bool

	// whether an extra cycle was required because the effective address is on
	// a different page to the base address. for branch instructions a page
	// fault means that the destination is on a different page to the address
	// following the branch
	PageFault bool

	// whether a branch instruction succeeded
	BranchSuccess bool

	// whether a known quirk of the addressing logic was triggered
	CPUBug Bug

	// the result is for a hardware interrupt sequence rather than an
	// instruction
	Interrupt bool

	// the CPU is jammed
	Halted bool

	// most recent bus fault. bus faults are not returned as errors unless the
	// CPU has been configured to do so
	Error error

	// whether the instruction has completed
	Final bool
}

// Reset the result for a new instruction at address.
func (r *Result) Reset(address uint16) {
	*r = Result{Address: address}
}

// EffectiveAddress returns the address of the instruction's operand. An
// ErrNoAddress error is returned for the implied, accumulator and immediate
// addressing modes.
func (r Result) EffectiveAddress() (uint16, error) {
	if r.Defn == nil {
		return 0, fmt.Errorf("cpu: %w: instruction not decoded", ErrNoAddress)
	}
	if !r.Defn.AddressingMode.HasAddress() {
		return 0, fmt.Errorf("cpu: %w: %s", ErrNoAddress, r.Defn.AddressingMode)
	}
	return r.OperandAddress, nil
}

func (r Result) String() string {
	if r.Interrupt {
		return fmt.Sprintf("%04x interrupt (%d cycles)", r.Address, r.Cycles)
	}
	if r.Defn == nil {
		if r.Halted {
			return fmt.Sprintf("%04x halted", r.Address)
		}
		return fmt.Sprintf("%04x ???", r.Address)
	}
	return fmt.Sprintf("%04x %s %s (%d cycles)", r.Address, r.Defn.Operator, r.Defn.AddressingMode, r.Cycles)
}
