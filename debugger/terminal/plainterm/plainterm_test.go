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

package plainterm_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6510/debugger/terminal"
	"github.com/jetsetilly/mos6510/debugger/terminal/plainterm"
	"github.com/jetsetilly/mos6510/test"
)

func TestPlainTerminal(t *testing.T) {
	tw := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nregs\nquit"), tw)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectEquality(t, pt.IsInteractive(), false)

	for _, expected := range []string{"step", "regs", "quit"} {
		s, err := pt.TermRead("> ")
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead("> ")
	test.ExpectEquality(t, errors.Is(err, terminal.UserAbort), true)

	// the prompt is not printed if the input is not a real terminal
	test.ExpectEquality(t, tw.String(), "")

	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, tw.String(), "ok\n* bad\n")
}
