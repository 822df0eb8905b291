package font

import (
	"io"

	"github.com/shaisc/povconverter/literal"
)

func writeRow(w *literal.Writer, g Glyph) {
	w.String("  { ")
	for _, c := range g {
		w.Word(c)
		w.String(", ")
	}
	w.String(Terminator)
	w.String(" }")
}

// Encode writes s to w as the letterData array. Glyph 0 is always an
// additional blank glyph used for a space.
func Encode(w io.Writer, s *Sheet) error {
	if s == nil || len(s.Glyphs) == 0 {
		return ErrEmpty
	}

	lw := literal.NewWriter(w)

	// One slot of margin plus one for the terminator
	lw.Printf("const uint16_t letterData[][%d] = {\n", s.Widest+2)

	writeRow(lw, make(Glyph, blankColumns))
	for _, g := range s.Glyphs {
		lw.String(",\n")
		writeRow(lw, g)
	}
	lw.String("\n};\n")

	return lw.Flush()
}
