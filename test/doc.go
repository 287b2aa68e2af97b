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

// Package test contains helper functions to remove common boilerplate from
// the package tests of the emulator.
//
// The Expect functions report a test error and return false on failure. The
// Demand functions stop the test immediately. Both accept optional tags which
// are prefixed to the failure message, useful when a test is run inside a
// loop and the iteration needs identifying.
//
// The nil type is considered a success value. This follows from how errors
// are returned in Go, with nil indicating no error.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
