package font

import "image"

// column packs the pixels of column x into a bitmask. Rows are scanned from
// the bottom up and given ascending bits, so the bottom row is bit 0.
func column(m image.Image, x int, ink InkFunc) uint32 {
	b := m.Bounds()
	var col uint32
	for i, y := 0, b.Max.Y-1; y >= b.Min.Y; i, y = i+1, y-1 {
		if ink(m.At(x, y)) {
			col |= 1 << uint(i)
		}
	}
	return col
}

// Scan reads the glyphs from m. A nil ink uses IsInk.
//
// A glyph is only recorded once a blank column follows it, so a sheet that
// ends on an inked column loses its last glyph.
func Scan(m image.Image, ink InkFunc) (*Sheet, error) {
	if ink == nil {
		ink = IsInk
	}

	b := m.Bounds()
	s := new(Sheet)

	var tmp Glyph
	for x := b.Min.X; x < b.Max.X; x++ {
		col := column(m, x, ink)
		if col != 0 {
			tmp = append(tmp, col)
			continue
		}

		// Blank column, close off any glyph in progress
		if len(tmp) == 0 {
			continue
		}

		g := make(Glyph, len(tmp))
		copy(g, tmp)
		s.Glyphs = append(s.Glyphs, g)
		if len(g) > s.Widest {
			s.Widest = len(g)
		}
		tmp = tmp[:0]
	}

	if len(s.Glyphs) == 0 {
		return nil, ErrEmpty
	}

	return s, nil
}
