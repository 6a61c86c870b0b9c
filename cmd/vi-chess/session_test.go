package main

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/position"
	"github.com/lixenwraith/vi-chess/selection"
)

func TestNewSessionDefaults(t *testing.T) {
	s, err := newSession(config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 8, s.grid.RowCount())
	assert.Equal(t, 8, s.grid.ColCount())
	assert.Equal(t, grid.Format{CellWidth: 7, CellHeight: 3}, s.format)
	assert.Equal(t, 'q', s.quit.Rune)

	// a8 is a light square holding a black rook
	a8, err := s.grid.At(0)
	require.NoError(t, err)
	assert.Equal(t, grid.NewCell(position.GlyphFor('r'), 33, 7), a8)

	b8, err := s.grid.At(1)
	require.NoError(t, err)
	assert.Equal(t, grid.Color(0), b8.Bg)

	// e1 is the white king
	e1, err := s.grid.At(60)
	require.NoError(t, err)
	assert.Equal(t, position.GlyphFor('K'), e1.Glyph)

	empty, err := s.grid.At(27)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	// 7x3 cells: screen (3,1) is the centre of cell 0
	idx, err := s.mapper.IndexAt(3, 1)
	require.NoError(t, err)
	assert.Zero(t, idx)
	assert.Equal(t, image.Rect(0, 0, 56, 24), s.mapper.Bounds())
}

func TestNewSessionPlaysMoves(t *testing.T) {
	s, err := newSession(config.DefaultConfig())
	require.NoError(t, err)

	// e2 -> e4
	out, _, err := s.controller.Click(52)
	require.NoError(t, err)
	require.Equal(t, selection.OutcomeSelected, out)
	out, _, err = s.controller.Click(36)
	require.NoError(t, err)
	assert.Equal(t, selection.OutcomeMoved, out)
	assert.True(t, strings.HasPrefix(s.controller.Board().String(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b"))
}

func TestNewSessionSandbox(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules = "sandbox"
	cfg.Rows, cfg.Cols = 2, 3
	cfg.Position = "ab1/3"
	cfg.Format.Border = "simple"
	cfg.Origin = config.OriginConfig{X: 4, Y: 2}

	s, err := newSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, s.grid.RowCount())
	assert.Equal(t, 3, s.grid.ColCount())
	assert.Equal(t, image.Pt(4, 2), s.renderer.Origin())

	// Border inset shifts content by one cell
	idx, err := s.mapper.IndexAt(5, 3)
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestNewSessionErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Position = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP"
	_, err := newSession(cfg)
	assert.ErrorIs(t, err, position.ErrInvalidPosition)

	cfg = config.DefaultConfig()
	cfg.Colors.Highlight = "nope"
	_, err = newSession(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.DefaultConfig()
	cfg.Rules = "sandbox"
	cfg.Rows, cfg.Cols = 2, 2
	_, err = newSession(cfg)
	assert.ErrorIs(t, err, position.ErrInvalidPosition, "chess start does not fit 2x2")
}
