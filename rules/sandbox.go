package rules

import (
	"fmt"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/position"
)

// Sandbox lets any occupied cell move onto any other cell
type Sandbox struct {
	rows, cols int
}

// SandboxBoard is a plain glyph board
type SandboxBoard struct {
	rows, cols int
	glyphs     []grid.Glyph
}

// NewSandbox creates a sandbox engine for rows x cols boards
func NewSandbox(rows, cols int) (*Sandbox, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrInvalidDimensions, rows, cols)
	}
	return &Sandbox{rows: rows, cols: cols}, nil
}

// ParsePosition expands a run-length position string
func (s *Sandbox) ParsePosition(text string) (Board, error) {
	glyphs, err := position.Parse(text, s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	return &SandboxBoard{rows: s.rows, cols: s.cols, glyphs: glyphs}, nil
}

// IsLegal accepts any move of an occupied cell to a different cell
func (s *Sandbox) IsLegal(b Board, from, to int) bool {
	sb, ok := b.(*SandboxBoard)
	if !ok || from == to {
		return false
	}
	n := len(sb.glyphs)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	return !sb.glyphs[from].IsBlank()
}

// Apply moves the glyph, replacing whatever occupied the target
func (s *Sandbox) Apply(b Board, from, to int) Board {
	if !s.IsLegal(b, from, to) {
		return b
	}
	sb := b.(*SandboxBoard)
	next := &SandboxBoard{rows: sb.rows, cols: sb.cols, glyphs: make([]grid.Glyph, len(sb.glyphs))}
	copy(next.glyphs, sb.glyphs)
	next.glyphs[to] = next.glyphs[from]
	next.glyphs[from] = grid.Blank
	return next
}

func (b *SandboxBoard) Rows() int { return b.rows }
func (b *SandboxBoard) Cols() int { return b.cols }

func (b *SandboxBoard) Glyph(index int) grid.Glyph {
	if index < 0 || index >= len(b.glyphs) {
		return grid.Blank
	}
	return b.glyphs[index]
}

// String encodes the board, or reports why it cannot be encoded
func (b *SandboxBoard) String() string {
	s, err := position.Encode(b.glyphs, b.cols)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}
