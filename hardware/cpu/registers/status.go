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

package registers

import (
	"strings"
)

// Bits of the status register as they appear in memory.
const (
	Sign             = 0x80
	Overflow         = 0x40
	Unused           = 0x20
	Break            = 0x10
	DecimalMode      = 0x08
	InterruptDisable = 0x04
	Zero             = 0x02
	Carry            = 0x01
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. There is no break flag or unused bit in the register itself.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for
// StatusRegister.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name of the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters in bit order. Upper case
// letters indicate a set flag. The break flag is always shown as clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(false, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value returns the status register as it is read by the CPU. The unused bit
// is always set and the break bit always clear.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v | Unused
}

// Push returns the value of the status register as it is written to the
// stack. The break bit is set for PHP and BRK and clear for hardware
// interrupts.
func (sr StatusRegister) Push(brk bool) uint8 {
	if brk {
		return sr.Value() | Break
	}
	return sr.Value()
}

// Load sets the flags from an 8-bit value, taken from the stack for example.
// The break and unused bits are ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
