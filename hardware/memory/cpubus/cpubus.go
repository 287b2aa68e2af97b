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

package cpubus

import (
	"errors"
	"fmt"
)

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// A Read() or Write() that fails because the address is unmapped or read-only
// should return an error that wraps AddressError. The CPU treats any other
// error as fatal.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peeker is implemented by memory that can be read without side effects.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// AddressError is the sentinel error for accesses to unmapped or read-only
// addresses.
var AddressError = errors.New("inaccessible address")

// ReadWord reads a little-endian word from memory. There is no zero page
// wraparound: a word at 0x00ff is read from 0x00ff and 0x0100.
func ReadWord(mem Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// PeekWord is the same as ReadWord except that memory is read without side
// effects.
func PeekWord(mem Peeker, address uint16) (uint16, error) {
	lo, err := mem.Peek(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Peek(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// NewAddressError wraps AddressError with the address and the kind of
// access.
func NewAddressError(address uint16, write bool) error {
	if write {
		return fmt.Errorf("%w: write to %#04x", AddressError, address)
	}
	return fmt.Errorf("%w: read from %#04x", AddressError, address)
}
