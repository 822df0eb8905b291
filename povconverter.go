/*
Package povconverter converts images and font sheets into C source for a
persistence of vision display.
*/
package povconverter

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shaisc/povconverter/frame"
)

// Mode selects the type of conversion.
type Mode int

const (
	// Font converts a black and white font sheet into letterData
	Font Mode = iota + 1
	// Image converts a picture into dataRed, dataGreen and dataBlue
	Image
)

func (m Mode) String() string {
	switch m {
	case Font:
		return "FONT"
	case Image:
		return "IMAGE"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrUsage is returned for an unrecognised mode.
var ErrUsage = errors.New("povconverter: invalid mode")

// ParseMode returns the Mode named by s, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "FONT":
		return Font, nil
	case "IMAGE":
		return Image, nil
	}
	return 0, ErrUsage
}

// DefaultPreview is where the composited image is written by default.
const DefaultPreview = "temp.png"

// Converter turns input files into C source.
type Converter struct {
	logger *log.Logger

	// Size is the display geometry used in Image mode
	Size frame.Size
	// Preview is the file the composited image is written to in Image
	// mode, empty to disable
	Preview string
	// Colors limits the number of colours in Image mode, zero to disable
	Colors int
}

// New returns a Converter with the default display geometry.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger:  logger,
		Size:    frame.DefaultSize,
		Preview: DefaultPreview,
	}
}
