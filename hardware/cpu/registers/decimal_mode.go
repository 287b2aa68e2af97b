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

// AddDecimal adds value to register as though both are packed BCD. Returns
// the carry, zero, overflow and sign flags as they are produced by the NMOS
// 6502.
//
// The zero flag is taken from the binary sum. The sign and overflow flags are
// taken after the low nibble has been adjusted but before the high nibble is
// adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	zero = uint8(int(r.value)+int(val)+c) == 0

	lo := int(r.value&0x0f) + int(val&0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	s := int(r.value&0xf0) + int(val&0xf0) + lo
	sign = s&0x80 == 0x80
	overflow = (^(r.value ^ val) & (r.value ^ uint8(s)) & 0x80) != 0

	if s >= 0xa0 {
		s += 0x60
	}
	rcarry = s >= 0x100

	r.value = uint8(s)
	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are packed
// BCD. Returns the carry, zero, overflow and sign flags. On the NMOS 6502 the
// flags are the same as for a binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	bin := int(r.value) - int(val) - (1 - c)
	rcarry = bin >= 0
	zero = uint8(bin) == 0
	sign = uint8(bin)&0x80 == 0x80
	overflow = ((r.value ^ val) & (r.value ^ uint8(bin)) & 0x80) != 0

	lo := int(r.value&0x0f) - int(val&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	s := int(r.value&0xf0) - int(val&0xf0) + lo
	if s < 0 {
		s -= 0x60
	}

	r.value = uint8(s)
	return rcarry, zero, overflow, sign
}
