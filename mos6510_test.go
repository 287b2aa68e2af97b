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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6510/test"
)

var countProgram = []uint8{
	0xa2, 0x00,       // LDX #$00
	0xe8,             // INX
	0xe0, 0x05,       // CPX #$05
	0xd0, 0xfb,       // BNE $0402
	0x4c, 0x07, 0x04, // JMP $0407
}

func writeFile(t *testing.T, name string, data []uint8) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0600))
	return pth
}

func expectContains(t *testing.T, output string, s string) {
	t.Helper()
	if !strings.Contains(output, s) {
		t.Errorf("output does not contain %q:\n%s", s, output)
	}
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, nil, &out), 0)
	expectContains(t, out.String(), "RUN")
	expectContains(t, out.String(), "SCRIPT")
}

func TestMissingBinary(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN"}, nil, &out), 20)
	expectContains(t, out.String(), "* error in RUN mode: binary file required for RUN mode")
}

func TestRunMode(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-trace", bin}, strings.NewReader(""), &out), 0)

	expectContains(t, out.String(), "$0400  a2 00     LDX #$00       2")
	expectContains(t, out.String(), "$0407  4c 07 04  JMP $0407      3")
	expectContains(t, out.String(), "halted: jump to self")

	// LDX (2) five iterations of INX CPX (4) four taken branches (3) one
	// branch not taken (2) and the final JMP (3)
	expectContains(t, out.String(), "cycles: 39")
}

func TestRunModeLimit(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-limit", "10", bin}, strings.NewReader(""), &out), 0)
	expectContains(t, out.String(), "halted: cycle limit")
	expectContains(t, out.String(), "cycles: 11")
}

func TestRunModeOrigin(t *testing.T) {
	// the program is position dependent so the JMP is never reached
	bin := writeFile(t, "count.bin", countProgram)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "$0800", "-start", "$0800", "-limit", "6", bin}, strings.NewReader(""), &out), 0)
	expectContains(t, out.String(), "halted: cycle limit")
}

func TestRunModeMemviz(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)
	dot := filepath.Join(t.TempDir(), "cpu.dot")

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-memviz", dot, bin}, strings.NewReader(""), &out), 0)

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	expectContains(t, string(data), "digraph")
}

func TestRunModeMemvizAuto(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "-memviz", "AUTO", bin}, strings.NewReader(""), &out), 0)

	matches, err := filepath.Glob("memviz_cpu_*.dot")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(matches), 1)
}

func TestScriptMode(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)
	lua := writeFile(t, "step.lua", []uint8("print(cpu.step())\nprint(cpu.run())\n"))

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"SCRIPT", "-script", lua, bin}, nil, &out), 0)
	test.ExpectEquality(t, out.String(), "2\tnil\njump to self\n")
}

func TestDisasmMode(t *testing.T) {
	bin := writeFile(t, "count.bin", countProgram)

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"DISASM", bin}, nil, &out), 0)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.ExpectEquality(t, len(lines), 5)
	test.ExpectEquality(t, lines[0], "$0400  a2 00     LDX #$00       2")
	test.ExpectEquality(t, lines[1], "$0402  e8        INX            2")
	test.ExpectEquality(t, lines[4], "$0407  4c 07 04  JMP $0407      3")
}
