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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the CPU, but are not actually the CPU itself.
package instance

import (
	"github.com/jetsetilly/mos6510/hardware/preferences"
	"github.com/jetsetilly/mos6510/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main   Label = ""
	Script Label = "script"
	Test   Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the CPU type.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. the preferences can be shared
	// with other running instances
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// If prefs is nil a volatile preferences instance is created. Providing a
// non-nil value allows the preferences of more than one instance to be
// synchronised. The clock of the random number generator is set when the
// instance is attached to a CPU.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(nil),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Test instances do
// not create log entries.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Test
}
