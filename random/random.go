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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation. Random numbers are derived
// from the emulated time so that two emulations with the same seed and the
// same inputs produce the same numbers.
package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is implemented by any type that can report the emulated time.
type Clock interface {
	TotalCycles() uint64
}

// Random is a random number generator that is sensitive to emulated time.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock can be nil, in which case emulated time is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the source of emulated time.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.clock != nil {
		t = rnd.clock.TotalCycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(0, t))
	}
	return rand.New(rand.NewPCG(baseSeed, t))
}

// IntN returns a random number in the range [0,n).
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().UintN(0x100))
}

// Uint64 returns a random 64bit value.
func (rnd *Random) Uint64() uint64 {
	return rnd.rand().Uint64()
}
