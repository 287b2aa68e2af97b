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

// Package prefs facilitates the storage and retrieval of preference values.
//
// Preference values are of type Bool, Int or String. Values are safe to read
// from one goroutine while being set from another. Hooks can be attached to
// a value so that a change can be vetted before it is stored (SetHookPre)
// or acted on after it has been stored (SetHookPost).
//
// The Disk type associates values with keys and saves them to a file in the
// following format:
//
//	key :: value
//
// Saving a Disk does not remove entries in the file that the Disk does not
// know about. This means that more than one Disk instance can share the same
// file.
//
// Preferences can also be given on the command line as a single string of
// key/value pairs separated by semi-colons:
//
//	cpu.strictbus::true; cpu.decimal::false
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Values on the stack override values loaded from
// file the next time a Disk is loaded.
package prefs
