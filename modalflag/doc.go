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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "SCRIPT")
//	trace := md.AddBool("trace", false, "print every instruction")
//	_, _ = md.Parse()
//
// The first argument after the flags is checked against the list of
// sub-modes. If it matches, the mode is selected and the argument is
// consumed. Otherwise the first sub-mode in the list is the default. Sub-mode
// comparisons are case insensitive.
//
// Once the mode is known, NewMode() prepares for the flags of that mode and
// Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		load := md.AddAddress("load", 0x0400, "load address of binary")
//		p, err := md.Parse()
//		...
//		run(md.GetArg(0), *load, *trace)
//	}
//
// Arguments that are neither flags nor a sub-mode are returned by
// RemainingArgs() and GetArg().
package modalflag
