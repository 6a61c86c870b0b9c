package grid

// Color is an 8-bit terminal palette index
type Color uint8

// Cell is a styled grid unit
type Cell struct {
	Glyph Glyph
	Fg    Color
	Bg    Color
}

// NewCell creates a cell
func NewCell(glyph Glyph, fg, bg Color) Cell {
	return Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// IsEmpty reports whether the cell holds no glyph
func (c Cell) IsEmpty() bool {
	return c.Glyph.IsBlank()
}
