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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// ansi color.
const (
	colRed    = 1
	colGreen  = 2
	colYellow = 3
	colBlue   = 4
	colCyan   = 6
	colWhite  = 7
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold = 1
	attrDim  = 2
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to clear the current line and return the
// cursor to the start of the line.
const ClearLine = "\r\033[2K"

func csi(params ...int) string {
	s := "\033["
	for i, p := range params {
		if i > 0 {
			s += ";"
		}
		s += fmt.Sprintf("%d", p)
	}
	return s + "m"
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{
	"red":    csi(targetBrightPen*10 + colRed),
	"green":  csi(targetBrightPen*10 + colGreen),
	"yellow": csi(targetBrightPen*10 + colYellow),
	"blue":   csi(targetBrightPen*10 + colBlue),
	"cyan":   csi(targetBrightPen*10 + colCyan),
	"white":  csi(targetBrightPen*10 + colWhite),
}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{
	"red":    csi(attrDim, targetPen*10+colRed),
	"yellow": csi(attrDim, targetPen*10+colYellow),
	"white":  csi(attrDim, targetPen*10+colWhite),
}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{
	"bold": csi(attrBold),
}
