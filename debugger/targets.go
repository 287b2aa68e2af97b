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

package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// target is a value that can be monitored by a breakpoint or a trap.
type target struct {
	label string
	value func() uint16

	// number of bits in the target value. used for formatting
	bits int
}

func (trg *target) format(v uint16) string {
	if trg.bits == 8 {
		return fmt.Sprintf("$%02x", v)
	}
	return fmt.Sprintf("$%04x", v)
}

// parseTarget returns a target for the named register or for the address in
// memory.
func (dbg *Debugger) parseTarget(s string) (*target, error) {
	switch strings.ToUpper(s) {
	case "PC":
		return &target{label: "PC", bits: 16, value: func() uint16 {
			return dbg.mc.PC.Address()
		}}
	case "A":
		return &target{label: "A", bits: 8, value: func() uint16 {
			return uint16(dbg.mc.A.Value())
		}}
	case "X":
		return &target{label: "X", bits: 8, value: func() uint16 {
			return uint16(dbg.mc.X.Value())
		}}
	case "Y":
		return &target{label: "Y", bits: 8, value: func() uint16 {
			return uint16(dbg.mc.Y.Value())
		}}
	case "SP":
		return &target{label: "SP", bits: 8, value: func() uint16 {
			return uint16(dbg.mc.SP.Value())
		}}
	case "SR":
		return &target{label: "SR", bits: 8, value: func() uint16 {
			return uint16(dbg.mc.Status.Value())
		}}
	}

	address, err := parseValue(s, 16)
	if err != nil {
		return nil, fmt.Errorf("unrecognised target: %s", s)
	}

	return &target{label: fmt.Sprintf("$%04x", address), bits: 8, value: func() uint16 {
		v, _ := dbg.mem.Peek(address)
		return uint16(v)
	}}, nil
}

// parseValue accepts values in decimal, or in hexadecimal with either the 0x
// or $ prefix.
func parseValue(s string, bits int) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("not a %d bit value: %s", bits, s)
	}
	return uint16(v), nil
}
