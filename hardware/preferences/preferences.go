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

// Package preferences contains the preferences of the emulated hardware.
package preferences

import (
	"errors"

	"github.com/jetsetilly/mos6510/prefs"
)

// the value used by XAA and LAX immediate in the absence of a preference
const defaultUnstableMagic = 0xee

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// preferences are not backed by a file
	volatile bool

	// initialise registers to an unknown state on reset
	RandomState prefs.Bool

	// bus faults (writes to read-only memory, reads from unmapped memory) are
	// returned as errors rather than being recorded and ignored
	StrictBus prefs.Bool

	// ADC and SBC honour the decimal flag. the 2A03 variant of the 6502 has
	// no decimal mode
	DecimalMode prefs.Bool

	// the magic constant of the unstable XAA and LAX immediate instructions.
	// the value differs between chips and even with temperature
	UnstableMagic prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If pth is empty the preferences are not backed by a file
// but values are still taken from the command line stack.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{volatile: pth == ""}
	p.SetDefaults()

	p.UnstableMagic.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0x00 || v.(int) > 0xff {
			return errors.New("unstable magic value must be a byte")
		}
		return nil
	})

	var err error

	// a volatile disk is never loaded or saved but is still required to
	// apply command line values
	dskPath := pth
	if p.volatile {
		dskPath = "volatile"
	}

	p.dsk, err = prefs.NewDisk(dskPath)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cpu.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cpu.strictbus", &p.StrictBus); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cpu.decimal", &p.DecimalMode); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cpu.magic", &p.UnstableMagic); err != nil {
		return nil, err
	}

	if p.volatile {
		return p, p.dsk.ApplyCommandLine()
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.StrictBus.Set(false)
	p.DecimalMode.Set(true)
	p.UnstableMagic.Set(defaultUnstableMagic)
}

// Set the named preference. The value is converted from a string as it would
// be if it was read from the preferences file.
func (p *Preferences) Set(key string, value string) error {
	return p.dsk.Set(key, value)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.volatile {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.volatile {
		return nil
	}
	return p.dsk.Save()
}
