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

// Package memory is a flat 64KiB implementation of the cpubus.Memory
// interface. Regions of memory can be marked as read-only, in which case
// writes from the CPU are rejected with an error wrapping
// cpubus.AddressError, or as unmapped, in which case reads are also rejected.
//
// Peek() and Poke() bypass the region checks and are intended for loaders,
// debuggers and scripts.
package memory
