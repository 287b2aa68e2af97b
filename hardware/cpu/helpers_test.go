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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/mos6510/hardware/cpu"
	"github.com/jetsetilly/mos6510/hardware/instance"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
)

// reads and writes to this page fail with an AddressError
const unmappedPage = 0xfe00

// reads and writes to this page fail with an error that is not an
// AddressError
const brokenPage = 0xfd00

var errBroken = errors.New("broken memory")

// access is a single bus access
type access struct {
	address uint16
	data    uint8
	write   bool
}

type mockMem struct {
	internal []uint8

	// record of bus accesses since the last call to clearTrace()
	trace []access
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) clear() {
	clear(mem.internal)
	mem.clearTrace()
}

func (mem *mockMem) clearTrace() {
	mem.trace = mem.trace[:0]
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	switch address & 0xff00 {
	case unmappedPage:
		return 0, cpubus.NewAddressError(address, false)
	case brokenPage:
		return 0, errBroken
	}
	mem.trace = append(mem.trace, access{address: address, data: mem.internal[address]})
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	switch address & 0xff00 {
	case unmappedPage:
		return cpubus.NewAddressError(address, true)
	case brokenPage:
		return errBroken
	}
	mem.trace = append(mem.trace, access{address: address, data: data, write: true})
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

// newCPU creates a CPU in a normalised test instance. The CPU is reset and
// the PC is zero.
func newCPU(t *testing.T, mem cpubus.Memory) *cpu.CPU {
	t.Helper()

	ins, err := instance.NewInstance(nil)
	if err != nil {
		t.Fatal(err)
	}
	ins.Normalise()
	ins.Label = instance.Test

	mc := cpu.NewCPU(ins, mem)
	mc.Reset()

	return mc
}

// step executes one instruction and checks that the result is valid. The
// number of calls to the cycle callback must match the number of cycles in
// the result.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	var cycles int
	err := mc.ExecuteInstruction(func() error {
		cycles++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}

	if cycles != mc.LastResult.Cycles {
		t.Fatalf("cycle callback called %d times for a %d cycle instruction", cycles, mc.LastResult.Cycles)
	}
}
