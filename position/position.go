// Package position converts compact board strings to glyph sequences and back.
//
// A position string is a placement field optionally followed by a space and
// arbitrary trailing fields, as in FEN. In the placement field a digit 1-9
// expands to that many blank cells, '/' separates rows and occupies no cell,
// and every other rune occupies exactly one cell. Parse keeps runes as they
// are; GlyphFor translates chess piece letters for display.
package position

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/vi-chess/grid"
)

// ErrInvalidPosition is returned for malformed position strings
var ErrInvalidPosition = errors.New("invalid position")

// Separator delimits rows in the placement field
const Separator = '/'

// maxRun is the longest blank run a single digit encodes
const maxRun = 9

// Chess piece letters to unicode symbols
var pieceGlyphs = map[rune]grid.Glyph{
	'K': '♔', 'Q': '♕', 'R': '♖', 'B': '♗', 'N': '♘', 'P': '♙',
	'k': '♚', 'q': '♛', 'r': '♜', 'b': '♝', 'n': '♞', 'p': '♟',
}

// GlyphFor returns the display glyph for a placement rune
func GlyphFor(r rune) grid.Glyph {
	if g, ok := pieceGlyphs[r]; ok {
		return g
	}
	return grid.Glyph(r)
}

// Placement returns the placement field of a position string
func Placement(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		return text[:i]
	}
	return text
}

// Parse expands the placement field of text into exactly rows*cols glyphs
func Parse(text string, rows, cols int) ([]grid.Glyph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrInvalidDimensions, rows, cols)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: not valid utf-8", ErrInvalidPosition)
	}

	want := rows * cols
	out := make([]grid.Glyph, 0, want)
	for i, r := range Placement(text) {
		switch {
		case r == Separator:
			continue
		case r == '0':
			return nil, fmt.Errorf("%w: zero run at offset %d", ErrInvalidPosition, i)
		case r >= '1' && r <= '9':
			for n := int(r - '0'); n > 0; n-- {
				out = append(out, grid.Blank)
			}
		case r <= ' ':
			return nil, fmt.Errorf("%w: control rune %U at offset %d", ErrInvalidPosition, r, i)
		default:
			out = append(out, grid.Glyph(r))
		}
		if len(out) > want {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidPosition, want)
		}
	}

	if len(out) != want {
		return nil, fmt.Errorf("%w: %d cells, want %d", ErrInvalidPosition, len(out), want)
	}
	return out, nil
}

// Encode compresses glyphs into a placement field with cols cells per row
func Encode(glyphs []grid.Glyph, cols int) (string, error) {
	if cols < 1 || len(glyphs) == 0 || len(glyphs)%cols != 0 {
		return "", fmt.Errorf("%w: %d glyphs in rows of %d", grid.ErrInvalidDimensions, len(glyphs), cols)
	}

	var b strings.Builder
	for row := 0; row < len(glyphs)/cols; row++ {
		if row > 0 {
			b.WriteRune(Separator)
		}
		run := 0
		for _, g := range glyphs[row*cols : (row+1)*cols] {
			if g.IsBlank() {
				run++
				if run == maxRun {
					b.WriteByte('0' + maxRun)
					run = 0
				}
				continue
			}
			if run > 0 {
				b.WriteByte(byte('0' + run))
				run = 0
			}
			l := rune(g)
			if l == Separator || (l >= '0' && l <= '9') {
				return "", fmt.Errorf("%w: glyph %q cannot be encoded", ErrInvalidPosition, l)
			}
			b.WriteRune(l)
		}
		if run > 0 {
			b.WriteByte(byte('0' + run))
		}
	}
	return b.String(), nil
}
