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

// Package thomharte contains 6502 single-step tests in the format created and
// maintained by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// A small number of handmade tests in the same format are in the testdata
// directory. The full tests are large and are not included in the
// repository. Add the instructions you want to test from the 6502/v1
// directory on Github to the 6502/v1 directory in this package.
package thomharte
