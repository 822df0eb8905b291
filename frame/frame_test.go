package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func TestSlots(t *testing.T) {
	assert.Equal(t, 96, DefaultSize.Slots())
}

func TestFit(t *testing.T) {
	tables := []struct {
		w, h          int
		width, height int
	}{
		{80, 64, 80, 64},
		{10, 10, 10, 10},
		{80, 1, 80, 1},
		{160, 64, 80, 32},
		{160, 100, 80, 50},
		{100, 128, 50, 64},
		{64, 100, 40, 64},
		{300, 200, 80, 53},
		{81, 64, 80, 63},
	}

	for _, table := range tables {
		w, h := DefaultSize.Fit(table.w, table.h)
		assert.Equal(t, table.width, w, "%dx%d", table.w, table.h)
		assert.Equal(t, table.height, h, "%dx%d", table.w, table.h)
	}
}

func TestCompositeCentres(t *testing.T) {
	canvas := DefaultSize.Composite(uniform(10, 4, color.White))
	require.Equal(t, image.Rect(0, 0, 80, 64), canvas.Bounds())

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0, 0, 0, 0xff}

	assert.Equal(t, white, canvas.RGBAAt(35, 30))
	assert.Equal(t, white, canvas.RGBAAt(44, 33))
	assert.Equal(t, black, canvas.RGBAAt(34, 30))
	assert.Equal(t, black, canvas.RGBAAt(45, 30))
	assert.Equal(t, black, canvas.RGBAAt(35, 29))
	assert.Equal(t, black, canvas.RGBAAt(35, 34))
	assert.Equal(t, black, canvas.RGBAAt(0, 0))
}

func TestCompositeScales(t *testing.T) {
	canvas := DefaultSize.Composite(uniform(320, 128, color.White))

	// 320x128 fits as 80x32, centred vertically
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, canvas.RGBAAt(40, 15))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, canvas.RGBAAt(40, 32))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, canvas.RGBAAt(40, 48))
}

func TestCompositeOffsetSource(t *testing.T) {
	m := uniform(20, 20, color.White)
	m.Set(5, 5, color.RGBA{0xff, 0, 0, 0xff})
	sub := m.SubImage(image.Rect(5, 5, 10, 10))

	canvas := DefaultSize.Composite(sub)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, canvas.RGBAAt(37, 29))
}

func TestQuantize(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 0x80, 0xff})
		}
	}

	assert.Equal(t, m, Quantize(m, 0))

	q := Quantize(m, 4)
	require.Equal(t, m.Bounds(), q.Bounds())

	colors := make(map[color.RGBA]struct{})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			colors[q.RGBAAt(x, y)] = struct{}{}
		}
	}
	assert.True(t, len(colors) <= 4, "%d colors", len(colors))
}

func TestPack(t *testing.T) {
	assert.Equal(t, []byte{0xab}, pack(nil, 0, 0xab))
	assert.Equal(t, []byte{0x0a, 0xb0}, pack(nil, 1, 0xab))
	assert.Equal(t, []byte{0x12, 0x03, 0x40}, pack(pack(nil, 2, 0x12), 3, 0x34))
}

func TestEncodeBlack(t *testing.T) {
	tables, err := DefaultSize.Encode(uniform(80, 64, color.Black))
	require.Nil(t, err)

	zero := make([]byte, 96)
	for _, c := range []Channel{tables.Red, tables.Green, tables.Blue} {
		require.Len(t, c, 80)
		for _, column := range c {
			assert.Equal(t, zero, column)
		}
	}
}

func TestEncodeColumnOrder(t *testing.T) {
	m := uniform(80, 64, color.Black)
	for y := 0; y < 64; y++ {
		m.Set(79, y, color.RGBA{0xff, 0, 0, 0xff})
		m.Set(0, y, color.RGBA{0, 0, 0xff, 0xff})
	}

	tables, err := DefaultSize.Encode(m)
	require.Nil(t, err)

	assert.Equal(t, byte(0xff), tables.Red[0][0])
	assert.Equal(t, byte(0x0f), tables.Red[0][1])
	assert.Equal(t, byte(0xf0), tables.Red[0][2])
	assert.Equal(t, byte(0), tables.Blue[0][0])

	assert.Equal(t, byte(0xff), tables.Blue[79][0])
	assert.Equal(t, byte(0), tables.Red[79][0])
}

func TestEncodeChannels(t *testing.T) {
	m := uniform(80, 64, color.RGBA{0x12, 0x34, 0x56, 0xff})
	tables, err := DefaultSize.Encode(m)
	require.Nil(t, err)

	assert.Equal(t, []byte{0x12, 0x01, 0x20}, tables.Red[40][:3])
	assert.Equal(t, []byte{0x34, 0x03, 0x40}, tables.Green[40][:3])
	assert.Equal(t, []byte{0x56, 0x05, 0x60}, tables.Blue[40][:3])
}

func TestEncodeWrongSize(t *testing.T) {
	_, err := DefaultSize.Encode(uniform(79, 64, color.Black))
	assert.Equal(t, ErrWrongSize, err)

	_, err = Size{Columns: 2, Rows: 3}.Encode(uniform(2, 3, color.Black))
	assert.Equal(t, ErrOddRows, err)
}

func TestWrite(t *testing.T) {
	s := Size{Columns: 2, Rows: 2}
	m := uniform(2, 2, color.Black)
	m.Set(1, 0, color.RGBA{0xff, 0x01, 0xab, 0xff})
	m.Set(1, 1, color.RGBA{0xab, 0x10, 0x05, 0xff})

	tables, err := s.Encode(m)
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tables.Write(b))

	expected := strings.Join([]string{
		"PROGMEM const prog_uint8_t dataRed[NO_OF_COLUMNS][NO_OF_BYTES_PER_COLOUR] = {",
		"{ 0xff, 0x0a, 0xb0 }, ",
		"{ 0x00, 0x00, 0x00 }",
		"};",
		"",
		"PROGMEM const prog_uint8_t dataGreen[NO_OF_COLUMNS][NO_OF_BYTES_PER_COLOUR] = {",
		"{ 0x01, 0x01, 0x00 }, ",
		"{ 0x00, 0x00, 0x00 }",
		"};",
		"",
		"PROGMEM const prog_uint8_t dataBlue[NO_OF_COLUMNS][NO_OF_BYTES_PER_COLOUR] = {",
		"{ 0xab, 0x00, 0x50 }, ",
		"{ 0x00, 0x00, 0x00 }",
		"};",
		"",
	}, "\n")
	assert.Equal(t, expected, b.String())
}

func TestWriteDefaultSize(t *testing.T) {
	tables, err := DefaultSize.Encode(uniform(80, 64, color.Black))
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tables.Write(b))

	out := b.String()
	assert.Equal(t, 3, strings.Count(out, "PROGMEM"))
	assert.Equal(t, 3*80, strings.Count(out, "{ "))
	assert.Equal(t, 3*80*96, strings.Count(out, "0x"))
}
