package frame

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// Fit returns the dimensions an image of w by h pixels is drawn at. An image
// that already fits is left alone, otherwise it is scaled down preserving
// the aspect ratio until it fits.
func (s Size) Fit(w, h int) (int, int) {
	if w <= s.Columns && h <= s.Rows {
		return w, h
	}

	aspect := float64(w) / float64(h)
	if aspect > float64(s.Columns)/float64(s.Rows) {
		return s.Columns, int(float64(s.Columns) / aspect)
	}
	return int(float64(s.Rows) * aspect), s.Rows
}

// Composite draws m centred on a black canvas the size of the display,
// scaling it to fit if necessary.
func (s Size) Composite(m image.Image) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, s.Columns, s.Rows))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	b := m.Bounds()
	w, h := s.Fit(b.Dx(), b.Dy())
	r := image.Rect(0, 0, w, h).Add(image.Pt((s.Columns-w)/2, (s.Rows-h)/2))

	if w == b.Dx() && h == b.Dy() {
		draw.Draw(canvas, r, m, b.Min, draw.Over)
	} else {
		draw.BiLinear.Scale(canvas, r, m, b, draw.Over, nil)
	}

	return canvas
}

// Quantize reduces m to at most colors distinct colours using median cut.
// If colors is zero or negative m is returned unchanged.
func Quantize(m *image.RGBA, colors int) *image.RGBA {
	if colors <= 0 {
		return m
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	dup := image.NewRGBA(b)
	draw.Draw(dup, b, pm, b.Min, draw.Src)
	return dup
}
