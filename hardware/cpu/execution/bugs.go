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

// Bug is a known quirk of the 6502 address logic that can catch people out.
type Bug string

// List of known bugs.
const (
	NoBug                        Bug = ""
	JmpIndirectAddressingBug     Bug = "indirect addressing bug"
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"
	ZeroPageIndexBug             Bug = "zero page index bug"
	UnstableAddressBug           Bug = "unstable high byte"
)
