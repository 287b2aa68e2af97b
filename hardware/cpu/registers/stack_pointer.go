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
	"fmt"

	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
)

// StackPointer is the S register. The stack occupies page one of memory and
// the stack pointer wraps around within it.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name of the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the page one address the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return cpubus.Stack | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push moves the stack pointer down after a byte has been written to the
// stack.
func (sp *StackPointer) Push() {
	sp.value--
}

// Pull moves the stack pointer up before a byte is read from the stack.
func (sp *StackPointer) Pull() {
	sp.value++
}
