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

//go:build !windows

// Package colorterm implements the Terminal interface for the mos6510
// debugger. It supports color output and command history.
package colorterm

import (
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/mos6510/debugger/terminal"
	"github.com/jetsetilly/mos6510/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/mos6510/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader  *bufio.Reader
	history history
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.EasyTerm.CBreakMode()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// user input has already been echoed
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleCPUStep:
		ct.EasyTerm.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}

// TermRead implements the terminal.Input interface. The terminal is in cbreak
// mode so input is handled one key at a time. The cursor up and cursor down
// keys move through the command history.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	var input []rune

	redraw := func() {
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(prompt)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
	}

	ct.history.rewind()
	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyEndOfTransmit:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", terminal.UserAbort
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			s := strings.TrimSpace(string(input))
			ct.history.add(s)
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			var s string
			var ok bool

			switch r {
			case easyterm.CursorUp:
				s, ok = ct.history.back()
			case easyterm.CursorDown:
				s, ok = ct.history.forward()
			}

			if ok {
				input = []rune(s)
				redraw()
			}

		default:
			if r >= ' ' {
				input = append(input, r)
				ct.EasyTerm.TermPrint(string(r))
			}
		}
	}
}
