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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/mos6510/hardware/cpu/execution"
	"github.com/jetsetilly/mos6510/hardware/cpu/registers"
	"github.com/jetsetilly/mos6510/hardware/instance"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/logger"
)

// ErrMidInstruction is returned when an operation that is only valid between
// instructions is attempted while an instruction is in progress. For example,
// calling ExecuteInstruction() from inside the cycle callback.
var ErrMidInstruction = errors.New("invalid mid-instruction")

// CPU implements the NMOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// cycleCallback is called after every bus access
	cycleCallback func() error

	// the number of cycles since the CPU was created. not affected by Reset()
	totalCycles uint64

	// last result. the Final field is false only while an instruction is in
	// progress
	LastResult execution.Result

	// the CPU has encountered a KIL instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. If
// ins is nil then a default instance is created. The CPU should be Reset()
// before use.
func NewCPU(ins *instance.Instance, mem cpubus.Memory) *CPU {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(nil)
		if err != nil {
			// a volatile preferences instance does not touch the disk
			panic(err)
		}
	}

	mc := &CPU{
		instance: ins,
		mem:      mem,
		PC:       registers.NewProgramCounter(0),
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		SP:       registers.NewStackPointer(0),
		Status:   registers.NewStatusRegister(),
	}
	mc.LastResult.Final = true
	ins.Random.SetClock(mc)

	return mc
}

// Instance returns the instance the CPU was created with.
func (mc *CPU) Instance() *instance.Instance {
	return mc.instance
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.cycleCallback = nil
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// TotalCycles returns the number of cycles executed since the CPU was
// created. Implements the random.Clock interface.
func (mc *CPU) TotalCycles() uint64 {
	return mc.totalCycles
}

// Reset reinitialises all registers. Does not load PC with the RESET vector.
// Use LoadPCIndirect(cpubus.Reset) when appropriate.
//
// The registers are randomised if the RandomState preference is set.
// Otherwise A, X and Y are zero, the stack pointer is 0xfd and only the
// interrupt disable flag is set.
func (mc *CPU) Reset() {
	mc.LastResult.Reset(0)
	mc.LastResult.Final = true
	mc.Killed = false
	mc.cycleCallback = nil

	if mc.instance.Prefs.RandomState.Get().(bool) {
		v := mc.instance.Random.Uint64()
		mc.PC.Load(uint16(v))
		mc.A.Load(uint8(v >> 16))
		mc.X.Load(uint8(v >> 24))
		mc.Y.Load(uint8(v >> 32))
		mc.SP.Load(uint8(v >> 40))
		mc.Status.Load(uint8(v >> 48))
	} else {
		mc.PC.Load(0)
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
		mc.SP.Load(0xfd)
		mc.Status.Reset()
	}

	mc.Status.InterruptDisable = true
}

// HasReset checks whether the CPU has been reset and has not yet executed an
// instruction.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil && mc.LastResult.Cycles == 0
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The
// memory accesses do not count as CPU cycles. If the bus fault is ignored the
// PC is loaded with zero.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if !mc.LastResult.Final {
		return fmt.Errorf("cpu: load PC indirect: %w", ErrMidInstruction)
	}

	address, err := cpubus.ReadWord(mc.mem, indirectAddress)
	if err != nil {
		if err := mc.busFault(err); err != nil {
			return err
		}
	}

	mc.PC.Load(address)

	return nil
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.LastResult.Final {
		return fmt.Errorf("cpu: load PC: %w", ErrMidInstruction)
	}
	mc.PC.Load(directAddress)
	return nil
}

// busFault decides whether an error from the memory implementation should
// halt execution. Errors that do not wrap cpubus.AddressError are always
// returned. An AddressError is noted in LastResult and returned only if the
// StrictBus preference is set.
func (mc *CPU) busFault(err error) error {
	if !errors.Is(err, cpubus.AddressError) {
		return fmt.Errorf("cpu: %w", err)
	}

	mc.LastResult.Error = err
	if mc.instance.Prefs.StrictBus.Get().(bool) {
		return fmt.Errorf("cpu: %w", err)
	}
	logger.Logf(mc.instance, "cpu", "%04x: %v", mc.LastResult.Address, err)

	return nil
}

// endCycle is called at the end of every bus access.
func (mc *CPU) endCycle() error {
	mc.LastResult.Cycles++
	mc.totalCycles++
	if mc.LastResult.Defn != nil {
		mc.LastResult.Phase = mc.LastResult.Schedule.Phase(mc.LastResult.Cycles, mc.LastResult.PageFault)
	}
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

// read8Bit returns the 8bit value at the specified address.
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		if err := mc.busFault(err); err != nil {
			return 0, err
		}
	}

	return val, mc.endCycle()
}

// phantomRead8Bit is a read whose value is discarded.
func (mc *CPU) phantomRead8Bit(address uint16) error {
	_, err := mc.read8Bit(address)
	return err
}

// write8Bit writes an 8bit value to the specified address.
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		if err := mc.busFault(err); err != nil {
			return err
		}
	}

	return mc.endCycle()
}

// read8BitPC reads the byte at the PC and advances the PC. The byte is part
// of the instruction stream.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	return v, nil
}

func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	mc.SP.Push()
	return err
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Pull()
	return mc.read8Bit(mc.SP.Address())
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Returns false if the memory implementation does not
// implement the cpubus.Peeker interface.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(cpubus.Peeker)
	if !ok {
		return 0, false
	}

	SP := mc.SP
	SP.Pull()
	lo, err := predict.Peek(SP.Address())
	if err != nil {
		return 0, false
	}

	SP.Pull()
	hi, err := predict.Peek(SP.Address())
	if err != nil {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
