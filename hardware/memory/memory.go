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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
)

// Access describes how the CPU may access a region of memory.
type Access int

// List of access types.
const (
	ReadWrite Access = iota
	ReadOnly
	Unmapped
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read/write"
	case ReadOnly:
		return "read-only"
	case Unmapped:
		return "unmapped"
	}
	return "unknown access"
}

// Region is an area of memory with the same type of access.
type Region struct {
	Label  string
	Origin uint16
	Memtop uint16
	Access Access
}

func (r Region) String() string {
	return fmt.Sprintf("%s %04x-%04x (%s)", r.Label, r.Origin, r.Memtop, r.Access)
}

// Memory is 64KiB of memory addressable by the CPU.
type Memory struct {
	data [0x10000]uint8

	// access type for every page of memory
	access [0x100]Access

	regions []Region
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All memory is read/write until regions are added.
func NewMemory() *Memory {
	return &Memory{}
}

// AddRegion sets the access type for a region of memory. The origin and
// memtop of the region must be aligned to page boundaries.
func (mem *Memory) AddRegion(r Region) error {
	if r.Origin&0x00ff != 0x00 || r.Memtop&0x00ff != 0xff {
		return fmt.Errorf("memory: region %s is not aligned to page boundaries", r)
	}
	if r.Memtop < r.Origin {
		return fmt.Errorf("memory: region %s ends before it begins", r)
	}
	for p := r.Origin >> 8; p <= r.Memtop>>8; p++ {
		mem.access[p] = r.Access
		if p == 0xff {
			break
		}
	}
	mem.regions = append(mem.regions, r)
	return nil
}

// Regions returns the list of regions added with AddRegion().
func (mem *Memory) Regions() []Region {
	return mem.regions
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if mem.access[address>>8] == Unmapped {
		return 0, cpubus.NewAddressError(address, false)
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface. Writes to read-only or
// unmapped memory are not performed.
func (mem *Memory) Write(address uint16, data uint8) error {
	if mem.access[address>>8] != ReadWrite {
		return cpubus.NewAddressError(address, true)
	}
	mem.data[address] = data
	return nil
}

// Peek implements the cpubus.Peeker interface. The access type of the region
// is ignored.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Poke writes to memory regardless of the access type of the region.
func (mem *Memory) Poke(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

// Load copies data into memory starting at origin, regardless of the access
// type of the regions it is loaded into.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.data) {
		return fmt.Errorf("memory: %d bytes at %#04x will not fit in memory", len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}

// SetVector stores address at the interrupt vector. The vector is written
// regardless of the access type of the region.
func (mem *Memory) SetVector(vector uint16, address uint16) {
	mem.data[vector] = uint8(address)
	mem.data[vector+1] = uint8(address >> 8)
}

// Clear sets all bytes in memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}

// Dump writes a hex dump of memory from origin to memtop inclusive.
func (mem *Memory) Dump(w io.Writer, origin uint16, memtop uint16) {
	s := strings.Builder{}
	for a := int(origin) &^ 0x0f; a <= int(memtop); a += 16 {
		s.WriteString(fmt.Sprintf("%04x |", a))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}
