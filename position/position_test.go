package position

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/grid"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseStartPosition(t *testing.T) {
	glyphs, err := Parse(startFEN, 8, 8)
	require.NoError(t, err)
	require.Len(t, glyphs, 64)

	assert.Equal(t, grid.Glyph('r'), glyphs[0])
	assert.Equal(t, grid.Glyph('k'), glyphs[4])
	assert.Equal(t, grid.Glyph('p'), glyphs[8])
	assert.Equal(t, grid.Glyph('P'), glyphs[48])
	assert.Equal(t, grid.Glyph('K'), glyphs[60])
	for i := 16; i < 48; i++ {
		assert.True(t, glyphs[i].IsBlank(), "index %d", i)
	}
}

func TestParseDigitExpandsToBlanks(t *testing.T) {
	for n := 1; n <= 9; n++ {
		text := strconv.Itoa(n) + strings.Repeat("x", 9-n)
		glyphs, err := Parse(text, 1, 9)
		require.NoError(t, err, "digit %d", n)

		blanks := 0
		for _, g := range glyphs[:n] {
			if g.IsBlank() {
				blanks++
			}
		}
		assert.Equal(t, n, blanks)
		for _, g := range glyphs[n:] {
			assert.Equal(t, grid.Glyph('x'), g)
		}
	}
}

func TestParseSeparatorsOccupyNoCell(t *testing.T) {
	a, err := Parse("ab/cd", 2, 2)
	require.NoError(t, err)
	b, err := Parse("abcd", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Parse("//ab//cd//", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestParseCellCount(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"short", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN"},
		{"long", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR"},
		{"empty", ""},
		{"zero run", "0rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"control", "rnbq\tbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"utf8", "\xff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text, 8, 8)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}

	_, err := Parse("a", 0, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestParseNonChessRunes(t *testing.T) {
	glyphs, err := Parse("*2#/3@", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []grid.Glyph{'*', grid.Blank, grid.Blank, '#', grid.Blank, grid.Blank, grid.Blank, '@'}, glyphs)
}

func TestEncodeInvertsParse(t *testing.T) {
	cases := []struct {
		text       string
		rows, cols int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", 8, 8},
		{"r3k2r/8/8/3Pp3/8/8/8/R3K2R", 8, 8},
		{"*2#/3@", 2, 4},
		{"9/9", 2, 9},
		{"9x/x9", 2, 10},
		{"93/x92", 2, 12},
	}
	for _, tc := range cases {
		glyphs, err := Parse(tc.text, tc.rows, tc.cols)
		require.NoError(t, err, tc.text)
		enc, err := Encode(glyphs, tc.cols)
		require.NoError(t, err)
		assert.Equal(t, tc.text, enc)
	}
}

func TestEncodeRejectsUnencodable(t *testing.T) {
	_, err := Encode([]grid.Glyph{'7', 'a'}, 2)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = Encode([]grid.Glyph{'a', 'b', 'c'}, 2)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestPlacement(t *testing.T) {
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", Placement(startFEN))
	assert.Equal(t, "abc", Placement("  abc  "))
}

func TestParseKeepsPieceLetters(t *testing.T) {
	glyphs, err := Parse("kbxQ", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []grid.Glyph{'k', 'b', 'x', 'Q'}, glyphs)

	enc, err := Encode([]grid.Glyph{'♚', 'b'}, 2)
	require.NoError(t, err)
	assert.Equal(t, "♚b", enc, "symbols are not folded back to letters")
}

func TestGlyphFor(t *testing.T) {
	seen := map[grid.Glyph]bool{}
	for _, l := range "KQRBNPkqrbnp" {
		g := GlyphFor(l)
		assert.NotEqual(t, grid.Glyph(l), g)
		assert.False(t, seen[g], "duplicate symbol for %q", l)
		seen[g] = true
	}
	assert.Equal(t, grid.Glyph('x'), GlyphFor('x'))
}
