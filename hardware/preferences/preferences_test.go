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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6510/hardware/preferences"
	"github.com/jetsetilly/mos6510/prefs"
	"github.com/jetsetilly/mos6510/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.StrictBus.Get().(bool), false)
	test.ExpectEquality(t, p.DecimalMode.Get().(bool), true)
	test.ExpectEquality(t, p.UnstableMagic.Get().(int), 0xee)

	// the magic value must fit in a byte
	test.ExpectFailure(t, p.UnstableMagic.Set(0x100))
	test.ExpectEquality(t, p.UnstableMagic.Get().(int), 0xee)

	// saving volatile preferences does nothing
	test.ExpectSuccess(t, p.Save())
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.strictbus::true; cpu.magic::0xff")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StrictBus.Get().(bool), true)
	test.ExpectEquality(t, p.UnstableMagic.Get().(int), 0xff)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.DecimalMode.Set(false))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.DecimalMode.Get().(bool), false)
	test.ExpectEquality(t, q.String(), "cpu.decimal :: false\ncpu.magic :: 238\ncpu.randstate :: false\ncpu.strictbus :: false\n")
}

func TestSetByName(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Set("cpu.decimal", "false"))
	test.ExpectEquality(t, p.DecimalMode.Get().(bool), false)

	test.ExpectSuccess(t, p.Set("cpu.magic", "0x11"))
	test.ExpectEquality(t, p.UnstableMagic.Get().(int), 0x11)

	test.ExpectFailure(t, p.Set("cpu.magic", "300"))
	test.ExpectFailure(t, p.Set("cpu.nonexistent", "true"))
}
