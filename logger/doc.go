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

// Package logger is the central log for the emulator. Entries are tagged and
// are stored in a ring so that the log never grows without bound. Consecutive
// entries with the same tag and detail are folded into a single entry with a
// repeat count.
//
// Logging is gated by the Permission interface. Code that always wants to log
// can use the Allow value. Other code can pass a type that decides at the
// moment of logging whether the entry should be kept, for example an emulation
// instance that is running a speculative step.
//
// The package level functions operate on a central logger created at program
// start. Independent loggers can be created with NewLogger().
package logger
