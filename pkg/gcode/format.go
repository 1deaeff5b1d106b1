package gcode

import (
	"math"
	"strconv"
)

// Decimal places used for emitted words
const (
	CoordinateDecimals = 3
	ExtrusionDecimals  = 5
	FeedrateDecimals   = 1
)

// FormatNumber rounds v to the given number of decimals and prints it without
// trailing zeros, e.g. 12.50000 -> "12.5", 3.0 -> "3".
func FormatNumber(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ExtrusionCommand formats a G1 move to (x, y) extruding e. A non-positive
// feedrate is omitted.
func ExtrusionCommand(x, y, e, feedrate float64) string {
	s := "G1 X" + FormatNumber(x, CoordinateDecimals) +
		" Y" + FormatNumber(y, CoordinateDecimals) +
		" E" + FormatNumber(e, ExtrusionDecimals)
	if feedrate > 0 {
		s += " F" + FormatNumber(feedrate, FeedrateDecimals)
	}
	return s
}
