/*
Package font converts a black and white font sheet into the glyph table used
by the POV display firmware.

Glyphs are laid out left to right on the sheet and separated by at least one
entirely white column. Each column of a glyph is packed into an integer with
one bit per image row, bit 0 being the bottom row, which matches the order
the LEDs are wired on the display arm.
*/
package font

import (
	"errors"
	"image/color"
)

const (
	// Terminator is the firmware macro that ends every glyph row
	Terminator = "LETTER_TERM"

	// blankColumns is the width of the reserved space glyph at index 0
	blankColumns = 7
)

// ErrEmpty is returned when a sheet contains no complete glyphs.
var ErrEmpty = errors.New("font: no glyphs found")

// InkFunc reports whether a pixel is part of a glyph.
type InkFunc func(color.Color) bool

// IsInk is the default InkFunc. Any pixel that is not exactly white is ink,
// there is no tolerance for anti-aliasing. Alpha is ignored.
func IsInk(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R != 0xff || n.G != 0xff || n.B != 0xff
}

// Glyph is the sequence of column bitmasks making up one character, ordered
// left to right.
type Glyph []uint32

// Sheet is the result of scanning a font sheet.
type Sheet struct {
	Glyphs []Glyph
	// Widest is the number of columns in the widest glyph
	Widest int
}
