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

// Package registers implements the register and flag state of the 6502/6510.
//
// The Register type is used for the accumulator and the two index registers.
// Arithmetic and logical operations are methods of the Register type and
// return the side effects of the operation (carry, overflow) rather than
// altering the status register directly. The CPU decides which flags to
// change. For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// The StatusRegister type does not latch the break flag or the unused bit.
// Both are synthesised when the register is pushed to the stack, the break
// flag being set only by PHP and BRK.
package registers
