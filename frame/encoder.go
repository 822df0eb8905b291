package frame

import (
	"image"
	"image/color"
	"io"

	"github.com/shaisc/povconverter/literal"
)

// Channel is one colour's worth of data, indexed by column then byte.
type Channel [][]byte

// Tables holds the three colour channels of an encoded image. Columns are in
// the order the firmware draws them, so Red[0] is the rightmost column of the
// image.
type Tables struct {
	Red   Channel
	Green Channel
	Blue  Channel
}

func (s Size) newChannel() Channel {
	c := make(Channel, s.Columns)
	for i := range c {
		c[i] = make([]byte, 0, s.Slots())
	}
	return c
}

// pack appends the value of one pixel to column. Even rows occupy a whole
// byte, odd rows are split across two.
func pack(column []byte, row int, v uint8) []byte {
	if row%2 == 0 {
		return append(column, v)
	}
	return append(column, v>>4, v&0x0f<<4)
}

// Encode packs m, which must be exactly the size of the display, into
// colour tables. The columns are emitted right to left to suit the way the
// display is wired.
func (s Size) Encode(m image.Image) (*Tables, error) {
	if s.Rows%2 != 0 {
		return nil, ErrOddRows
	}

	b := m.Bounds()
	if b.Dx() != s.Columns || b.Dy() != s.Rows {
		return nil, ErrWrongSize
	}

	t := &Tables{
		Red:   s.newChannel(),
		Green: s.newChannel(),
		Blue:  s.newChannel(),
	}

	for i := 0; i < s.Columns; i++ {
		x := b.Max.X - 1 - i
		for row := 0; row < s.Rows; row++ {
			c := color.RGBAModel.Convert(m.At(x, b.Min.Y+row)).(color.RGBA)
			t.Red[i] = pack(t.Red[i], row, c.R)
			t.Green[i] = pack(t.Green[i], row, c.G)
			t.Blue[i] = pack(t.Blue[i], row, c.B)
		}
	}

	return t, nil
}

func writeChannel(w *literal.Writer, name string, c Channel) {
	w.Printf("PROGMEM const prog_uint8_t %s[NO_OF_COLUMNS][NO_OF_BYTES_PER_COLOUR] = {", name)
	for i, column := range c {
		if i > 0 {
			w.String(", ")
		}
		w.String("\n{ ")
		for j, v := range column {
			if j > 0 {
				w.String(", ")
			}
			w.Byte(v)
		}
		w.String(" }")
	}
	w.String("\n};")
}

// Write writes the tables to w as the dataRed, dataGreen and dataBlue
// arrays.
func (t *Tables) Write(w io.Writer) error {
	lw := literal.NewWriter(w)

	writeChannel(lw, "dataRed", t.Red)
	lw.String("\n\n")
	writeChannel(lw, "dataGreen", t.Green)
	lw.String("\n\n")
	writeChannel(lw, "dataBlue", t.Blue)
	lw.String("\n")

	return lw.Flush()
}
