/*
Package frame converts an image into the colour tables used by the POV
display firmware.

The display is a column of RGB LEDs spun around a vertical axis, so an image
is a fixed number of columns each made up of one pixel per LED. Each colour
channel is stored separately and packed in the 12-bit grayscale layout of the
LED driver: every pair of LEDs shares three bytes, the first holding the even
LED's 8-bit value and the next two holding the odd LED's value split into its
high and low nibbles.
*/
package frame

import "errors"

// Size describes the geometry of the display.
type Size struct {
	// Columns is the number of columns drawn per revolution
	Columns int
	// Rows is the number of LEDs on the arm
	Rows int
}

// DefaultSize matches NO_OF_COLUMNS and NO_OF_RGB_LEDS in the firmware.
var DefaultSize = Size{
	Columns: 80,
	Rows:    64,
}

var (
	// ErrWrongSize is returned when encoding an image that does not match
	// the display geometry.
	ErrWrongSize = errors.New("frame: image is wrong size")

	// ErrOddRows is returned when the number of rows cannot be packed in
	// pairs.
	ErrOddRows = errors.New("frame: odd number of rows")
)

// Slots returns the number of bytes per column per colour channel, this is
// NO_OF_BYTES_PER_COLOUR in the firmware.
func (s Size) Slots() int {
	return s.Rows * 12 / 8
}
