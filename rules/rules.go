// Package rules provides the board engines consulted by the selection
// controller: a chess engine and a free-move sandbox.
package rules

import (
	"fmt"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/position"
)

// ErrInvalidPosition is returned by ParsePosition for malformed input
var ErrInvalidPosition = position.ErrInvalidPosition

// Board is an immutable board snapshot projected onto a row-major grid
type Board interface {
	Rows() int
	Cols() int
	// Glyph returns the display glyph at a flat grid index, Blank if empty
	Glyph(index int) grid.Glyph
	// String returns the board as a position string
	String() string
}

// Engine parses positions and judges transitions between grid indices
type Engine interface {
	ParsePosition(text string) (Board, error)
	IsLegal(b Board, from, to int) bool
	// Apply returns the board after the transition, b itself if it is not legal
	Apply(b Board, from, to int) Board
}

// Engine names accepted by New
const (
	NameChess   = "chess"
	NameSandbox = "sandbox"
)

// New returns the engine registered under name
// rows and cols size sandbox boards, chess is always 8x8
func New(name string, rows, cols int) (Engine, error) {
	switch name {
	case NameChess, "":
		return Chess{}, nil
	case NameSandbox:
		return NewSandbox(rows, cols)
	}
	return nil, fmt.Errorf("unknown rules engine %q", name)
}

// Glyphs returns every glyph of b in index order
func Glyphs(b Board) []grid.Glyph {
	out := make([]grid.Glyph, b.Rows()*b.Cols())
	for i := range out {
		out[i] = b.Glyph(i)
	}
	return out
}

// Status is implemented by boards that report a game result
type Status interface {
	Status() string
}
