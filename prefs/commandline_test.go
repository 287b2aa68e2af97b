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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/mos6510/prefs"
	"github.com/jetsetilly/mos6510/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// additional space is trimmed
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid entries are ignored
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("cpu.strictbus::true; cpu.magic::0xef")
	prefs.PushCommandLineStack("cpu.decimal::false")

	// only the top of the stack is visible
	ok, _ := prefs.GetCommandLinePref("cpu.strictbus")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("cpu.decimal")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "false")

	// values are consumed when they are retrieved
	ok, _ = prefs.GetCommandLinePref("cpu.decimal")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	ok, v = prefs.GetCommandLinePref("cpu.magic")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "0xef")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.strictbus::true")
}
