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

package terminal

import "errors"

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit, the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// the input typed by the user. some terminals will not need to print this
	StyleEcho Style = iota

	// the disassembly of the most recent instruction
	StyleCPUStep

	// the state of registers and memory
	StyleInstrument

	// the response to a command
	StyleFeedback

	// help text
	StyleHelp

	// a log entry
	StyleLog

	// an error
	StyleError
)

// Sentinel errors returned by TermRead().
var (
	// the user has pressed the interrupt key while a line was being read
	UserInterrupt = errors.New("user interrupt")

	// the user has indicated the end of input (ctrl-d on an empty line)
	UserAbort = errors.New("user abort")
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line terminator.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()
}
