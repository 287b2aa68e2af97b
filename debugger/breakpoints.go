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

package debugger

import (
	"fmt"
	"strings"
)

// breaker defines a specific break condition.
type breaker struct {
	target *target
	value  uint16

	// the breaker has fired and will not fire again until the target value
	// changes
	ignore bool
}

func (bk breaker) String() string {
	return fmt.Sprintf("%s->%s", bk.target.label, bk.target.format(bk.value))
}

// check the break condition against the current value of the target.
func (bk *breaker) check() bool {
	if bk.target.value() != bk.value {
		bk.ignore = false
		return false
	}

	if bk.ignore {
		return false
	}

	bk.ignore = true

	return true
}

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	breaks []breaker
}

func (bp *breakpoints) add(trg *target, value uint16) error {
	for _, bk := range bp.breaks {
		if bk.target.label == trg.label && bk.value == value {
			return fmt.Errorf("breakpoint already exists (%s)", bk)
		}
	}

	// a breakpoint that matches the current state will not fire until the
	// target has changed
	bp.breaks = append(bp.breaks, breaker{
		target: trg,
		value:  value,
		ignore: trg.value() == value,
	})

	return nil
}

func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return fmt.Errorf("breakpoint #%d is not defined", num)
	}
	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)
	return nil
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

// check all breakers. returns a description of the breakers that have fired
// or the empty string if none have.
func (bp *breakpoints) check() string {
	var fired []string
	for i := range bp.breaks {
		if bp.breaks[i].check() {
			fired = append(fired, bp.breaks[i].String())
		}
	}
	return strings.Join(fired, ", ")
}

func (bp *breakpoints) list(output func(s string)) {
	if len(bp.breaks) == 0 {
		output("no breakpoints")
		return
	}
	for i, bk := range bp.breaks {
		output(fmt.Sprintf("% 2d: %s", i, bk))
	}
}
