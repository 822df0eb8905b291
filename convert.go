package povconverter

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/shaisc/povconverter/font"
	"github.com/shaisc/povconverter/frame"
	_ "golang.org/x/image/bmp"
)

func decode(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

func writePreview(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Convert converts file using the given mode, writing the result to w.
func (c *Converter) Convert(w io.Writer, mode Mode, file string) error {
	switch mode {
	case Font:
		return c.ConvertFont(w, file)
	case Image:
		return c.ConvertImage(w, file)
	default:
		return ErrUsage
	}
}

// ConvertFont writes the letterData table for the font sheet in file to w.
func (c *Converter) ConvertFont(w io.Writer, file string) error {
	m, err := decode(file)
	if err != nil {
		return err
	}

	b := m.Bounds()
	c.logger.Printf("Scanning %dx%d font sheet \"%s\"\n", b.Dx(), b.Dy(), file)

	s, err := font.Scan(m, nil)
	if err != nil {
		return err
	}

	c.logger.Printf("Found %d glyphs, widest is %d columns\n", len(s.Glyphs), s.Widest)

	return font.Encode(w, s)
}

// ConvertImage writes the colour tables for the image in file to w. If a
// preview file is configured the composited image is also written there.
func (c *Converter) ConvertImage(w io.Writer, file string) error {
	m, err := decode(file)
	if err != nil {
		return err
	}

	b := m.Bounds()
	fw, fh := c.Size.Fit(b.Dx(), b.Dy())
	c.logger.Printf("Fitting %dx%d image \"%s\" as %dx%d\n", b.Dx(), b.Dy(), file, fw, fh)

	canvas := c.Size.Composite(m)
	if c.Colors > 0 {
		c.logger.Printf("Reducing to %d colors\n", c.Colors)
		canvas = frame.Quantize(canvas, c.Colors)
	}

	if c.Preview != "" {
		if err := writePreview(c.Preview, canvas); err != nil {
			return err
		}
		c.logger.Printf("Wrote preview to \"%s\"\n", c.Preview)
	}

	t, err := c.Size.Encode(canvas)
	if err != nil {
		return err
	}

	return t.Write(w)
}
