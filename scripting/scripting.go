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

package scripting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/mos6510/debugger"
	"github.com/jetsetilly/mos6510/disassembly"
	"github.com/jetsetilly/mos6510/hardware/cpu"
	"github.com/jetsetilly/mos6510/hardware/memory"
	"github.com/jetsetilly/mos6510/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6510/logger"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua interpreter bound to a CPU and its memory.
type Script struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	output io.Writer

	L *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer
// required.
func NewScript(mc *cpu.CPU, mem *memory.Memory, output io.Writer) *Script {
	scr := &Script{
		mc:     mc,
		mem:    mem,
		output: output,
		L:      lua.NewState(),
	}

	scr.L.SetGlobal("cpu", scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"step":   scr.step,
		"run":    scr.run,
		"reset":  scr.reset,
		"irq":    scr.irq,
		"nmi":    scr.nmi,
		"regs":   scr.regs,
		"set":    scr.set,
		"cycles": scr.cycles,
		"last":   scr.last,
	}))

	scr.L.SetGlobal("mem", scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"peek": scr.peek,
		"poke": scr.poke,
		"word": scr.word,
	}))

	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile executes the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return nil
}

// RunString executes the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return nil
}

func (scr *Script) step(L *lua.LState) int {
	cycles := scr.mc.TotalCycles()

	reason, err := debugger.Step(scr.mc, nil)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(scr.mc.TotalCycles() - cycles))
	if reason == debugger.HaltNone {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LString(reason))
	}
	return 2
}

func (scr *Script) run(L *lua.LState) int {
	limit := uint64(L.OptInt64(1, 0))
	start := scr.mc.TotalCycles()

	for {
		reason, err := debugger.Step(scr.mc, nil)
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}

		if reason == debugger.HaltNone && limit > 0 && scr.mc.TotalCycles()-start >= limit {
			reason = debugger.HaltCycleLimit
		}

		if reason != debugger.HaltNone {
			L.Push(lua.LString(reason))
			return 1
		}
	}
}

func (scr *Script) reset(L *lua.LState) int {
	scr.mc.Reset()
	if err := scr.mc.LoadPCIndirect(cpubus.Reset); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) interrupt(L *lua.LState, nmi bool) int {
	cycles := scr.mc.TotalCycles()
	if err := scr.mc.Interrupt(nmi, nil); err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LBool(cycles != scr.mc.TotalCycles()))
	return 1
}

func (scr *Script) irq(L *lua.LState) int {
	return scr.interrupt(L, false)
}

func (scr *Script) nmi(L *lua.LState) int {
	return scr.interrupt(L, true)
}

func (scr *Script) regs(L *lua.LState) int {
	tbl := L.NewTable()
	L.SetField(tbl, "pc", lua.LNumber(scr.mc.PC.Address()))
	L.SetField(tbl, "a", lua.LNumber(scr.mc.A.Value()))
	L.SetField(tbl, "x", lua.LNumber(scr.mc.X.Value()))
	L.SetField(tbl, "y", lua.LNumber(scr.mc.Y.Value()))
	L.SetField(tbl, "sp", lua.LNumber(scr.mc.SP.Value()))
	L.SetField(tbl, "sr", lua.LNumber(scr.mc.Status.Value()))
	L.Push(tbl)
	return 1
}

func (scr *Script) set(L *lua.LState) int {
	reg := L.CheckString(1)
	v := L.CheckInt(2)

	if strings.ToLower(reg) == "pc" {
		if v < 0 || v > 0xffff {
			L.ArgError(2, "value must be a 16 bit address")
			return 0
		}
		if err := scr.mc.LoadPC(uint16(v)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}

	if v < 0 || v > 0xff {
		L.ArgError(2, "value must be a byte")
		return 0
	}

	switch strings.ToLower(reg) {
	case "a":
		scr.mc.A.Load(uint8(v))
	case "x":
		scr.mc.X.Load(uint8(v))
	case "y":
		scr.mc.Y.Load(uint8(v))
	case "sp":
		scr.mc.SP.Load(uint8(v))
	case "sr":
		scr.mc.Status.Load(uint8(v))
	default:
		L.ArgError(1, fmt.Sprintf("unknown register: %s", reg))
	}

	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mc.TotalCycles()))
	return 1
}

func (scr *Script) last(L *lua.LState) int {
	L.Push(lua.LString(disassembly.Format(scr.mc.LastResult)))
	return 1
}

func (scr *Script) checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address must be 16 bit")
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.mem.Peek(scr.checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := scr.checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value must be a byte")
		return 0
	}
	if err := scr.mem.Poke(address, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) word(L *lua.LState) int {
	address := scr.checkAddress(L, 1)
	w, err := cpubus.PeekWord(scr.mem, address)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(w))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.mc.Instance(), "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
