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

// trapper defines a trap condition. the trap fires when the value of the
// target differs from the value it had at the last check.
type trapper struct {
	target    *target
	origValue uint16
}

func (tr trapper) String() string {
	return tr.target.label
}

type traps struct {
	traps []trapper
}

func (tr *traps) add(trg *target) error {
	for _, t := range tr.traps {
		if t.target.label == trg.label {
			return fmt.Errorf("trap already exists (%s)", t)
		}
	}

	tr.traps = append(tr.traps, trapper{
		target:    trg,
		origValue: trg.value(),
	})

	return nil
}

func (tr *traps) drop(num int) error {
	if num < 0 || num >= len(tr.traps) {
		return fmt.Errorf("trap #%d is not defined", num)
	}
	tr.traps = append(tr.traps[:num], tr.traps[num+1:]...)
	return nil
}

func (tr *traps) clear() {
	tr.traps = tr.traps[:0]
}

// check all traps. returns a description of the traps that have fired or the
// empty string if none have.
func (tr *traps) check() string {
	var fired []string
	for i := range tr.traps {
		t := &tr.traps[i]
		v := t.target.value()
		if v != t.origValue {
			fired = append(fired, fmt.Sprintf("%s %s->%s", t.target.label, t.target.format(t.origValue), t.target.format(v)))
			t.origValue = v
		}
	}
	return strings.Join(fired, ", ")
}

func (tr *traps) list(output func(s string)) {
	if len(tr.traps) == 0 {
		output("no traps")
		return
	}
	for i, t := range tr.traps {
		output(fmt.Sprintf("% 2d: %s", i, t))
	}
}
