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

package colorterm

// history of commands entered at the terminal. the history is navigated with
// back() and forward(), and rewind() returns the cursor to the most recent end
// of the history.
type history struct {
	entries []string
	cursor  int
}

// maximum number of entries kept in the history
const maxHistory = 100

// add an entry to the history. empty strings and repeats of the most recent
// entry are not added.
func (h *history) add(s string) {
	if s == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == s {
		return
	}
	h.entries = append(h.entries, s)
	if len(h.entries) > maxHistory {
		h.entries = h.entries[1:]
	}
}

func (h *history) rewind() {
	h.cursor = len(h.entries)
}

func (h *history) back() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

func (h *history) forward() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		h.cursor = len(h.entries)
		return "", true
	}
	h.cursor++
	return h.entries[h.cursor], true
}
