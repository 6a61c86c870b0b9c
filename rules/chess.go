package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/position"
)

// Board side length
const chessSide = 8

// Missing FEN fields are filled from these defaults
var fenDefaults = []string{"", "w", "-", "-", "0", "1"}

// Chess judges moves with standard chess rules
// Grid row 0 is rank 8 and grid column 0 is file a
type Chess struct{}

// ChessBoard is a chess position
type ChessBoard struct {
	pos *chess.Position
}

// ParsePosition accepts a FEN string or a bare placement field
func (Chess) ParsePosition(text string) (Board, error) {
	if _, err := position.Parse(text, chessSide, chessSide); err != nil {
		return nil, err
	}

	fields := strings.Fields(text)
	if len(fields) > len(fenDefaults) {
		return nil, fmt.Errorf("%w: %d fen fields", ErrInvalidPosition, len(fields))
	}
	fields = append(fields, fenDefaults[len(fields):]...)

	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	return &ChessBoard{pos: chess.NewGame(opt).Position()}, nil
}

// IsLegal reports whether a legal move leads from one index to the other
func (c Chess) IsLegal(b Board, from, to int) bool {
	_, ok := c.move(b, from, to)
	return ok
}

// Apply makes the move, promoting to a queen when a pawn reaches the last rank
func (c Chess) Apply(b Board, from, to int) Board {
	m, ok := c.move(b, from, to)
	if !ok {
		return b
	}
	return &ChessBoard{pos: b.(*ChessBoard).pos.Update(m)}
}

func (Chess) move(b Board, from, to int) (*chess.Move, bool) {
	cb, ok := b.(*ChessBoard)
	if !ok || from == to {
		return nil, false
	}
	s1, ok1 := square(from)
	s2, ok2 := square(to)
	if !ok1 || !ok2 {
		return nil, false
	}

	var found *chess.Move
	for _, m := range cb.pos.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		switch m.Promo() {
		case chess.NoPieceType, chess.Queen:
			return m, true
		}
		found = m
	}
	return found, found != nil
}

// square converts a grid index to a board square
func square(index int) (chess.Square, bool) {
	if index < 0 || index >= chessSide*chessSide {
		return chess.NoSquare, false
	}
	file := index % chessSide
	rank := chessSide - 1 - index/chessSide
	return chess.Square(rank*chessSide + file), true
}

func (*ChessBoard) Rows() int { return chessSide }
func (*ChessBoard) Cols() int { return chessSide }

// Glyph returns the unicode symbol of the piece at index
func (b *ChessBoard) Glyph(index int) grid.Glyph {
	sq, ok := square(index)
	if !ok {
		return grid.Blank
	}
	p := b.pos.Board().Piece(sq)
	if p == chess.NoPiece {
		return grid.Blank
	}
	return position.GlyphFor(pieceLetter(p))
}

// String returns the FEN of the position
func (b *ChessBoard) String() string {
	return b.pos.String()
}

// Status names the game result, empty while the game is in progress
func (b *ChessBoard) Status() string {
	switch b.pos.Status() {
	case chess.Checkmate:
		return "checkmate"
	case chess.Stalemate:
		return "stalemate"
	}
	return ""
}

func pieceLetter(p chess.Piece) rune {
	var r rune
	switch p.Type() {
	case chess.King:
		r = 'k'
	case chess.Queen:
		r = 'q'
	case chess.Rook:
		r = 'r'
	case chess.Bishop:
		r = 'b'
	case chess.Knight:
		r = 'n'
	case chess.Pawn:
		r = 'p'
	default:
		return ' '
	}
	if p.Color() == chess.White {
		r -= 'a' - 'A'
	}
	return r
}
