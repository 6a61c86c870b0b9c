package grid

import "github.com/mattn/go-runewidth"

// Glyph is the displayable content of a cell
type Glyph rune

// Blank is the glyph of an empty cell
const Blank Glyph = ' '

// IsBlank reports whether the glyph marks an empty cell
// NUL is treated as blank so zero-value cells read as empty
func (g Glyph) IsBlank() bool {
	return g == Blank || g == 0
}

// String returns the glyph as a printable string, blank for NUL
func (g Glyph) String() string {
	if g == 0 {
		return string(Blank)
	}
	return string(rune(g))
}

// Width returns the number of terminal columns the glyph occupies, minimum 1
func (g Glyph) Width() int {
	if g == 0 {
		return 1
	}
	w := runewidth.RuneWidth(rune(g))
	if w < 1 {
		return 1
	}
	return w
}
