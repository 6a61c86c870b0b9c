// Package selection implements the select-then-act click state machine.
//
// The first click on an occupied cell highlights it. The second click clears
// the highlight and, unless it hits the same cell, asks the rules engine to
// move from the first cell to the second.
package selection

import (
	"fmt"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/rules"
)

// Controller owns the selection state and mutates grid styling for it
type Controller struct {
	grid      *grid.Grid
	engine    rules.Engine
	board     rules.Board
	highlight grid.Color

	state     State
	selection Selection
}

// NewController creates an idle controller over g, whose glyphs are loaded from board
func NewController(g *grid.Grid, engine rules.Engine, board rules.Board, highlight grid.Color) (*Controller, error) {
	if board.Rows() != g.RowCount() || board.Cols() != g.ColCount() {
		return nil, fmt.Errorf("%w: board %dx%d, grid %dx%d",
			grid.ErrInvalidDimensions, board.Rows(), board.Cols(), g.RowCount(), g.ColCount())
	}
	c := &Controller{
		grid:      g,
		engine:    engine,
		board:     board,
		highlight: highlight,
		state:     StateIdle,
	}
	if err := c.reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Selection returns the active selection, ok is false while idle
func (c *Controller) Selection() (Selection, bool) {
	return c.selection, c.state == StateSelected
}

// Board returns the current board
func (c *Controller) Board() rules.Board {
	return c.board
}

// Click processes a click on a flat grid index
// Returns whether the grid must be repainted
// An index outside the grid is an error and leaves state untouched
func (c *Controller) Click(index int) (Outcome, bool, error) {
	cell, err := c.grid.At(index)
	if err != nil {
		return OutcomeNone, false, err
	}

	switch c.state {
	case StateIdle:
		if cell.Glyph.IsBlank() {
			return OutcomeNone, false, nil
		}
		c.selection = Selection{Index: index, SavedBg: cell.Bg}
		if err := c.setBackground(index, c.highlight); err != nil {
			return OutcomeNone, false, err
		}
		c.state = StateSelected
		return OutcomeSelected, true, nil

	case StateSelected:
		prev := c.selection
		c.state = StateIdle
		c.selection = Selection{}
		if err := c.setBackground(prev.Index, prev.SavedBg); err != nil {
			return OutcomeNone, true, err
		}

		if index == prev.Index {
			return OutcomeDeselected, true, nil
		}
		if !c.engine.IsLegal(c.board, prev.Index, index) {
			return OutcomeRejected, true, nil
		}
		c.board = c.engine.Apply(c.board, prev.Index, index)
		if err := c.reload(); err != nil {
			return OutcomeMoved, true, err
		}
		return OutcomeMoved, true, nil
	}
	return OutcomeNone, false, fmt.Errorf("selection: invalid state %d", c.state)
}

// Reset clears any selection, restoring its background
// Returns whether the grid changed
func (c *Controller) Reset() (bool, error) {
	if c.state != StateSelected {
		return false, nil
	}
	prev := c.selection
	c.state = StateIdle
	c.selection = Selection{}
	return true, c.setBackground(prev.Index, prev.SavedBg)
}

func (c *Controller) setBackground(index int, color grid.Color) error {
	row, col, err := c.grid.Coords(index)
	if err != nil {
		return err
	}
	return c.grid.SetBackground(row, col, color)
}

// reload copies every board glyph into the grid
func (c *Controller) reload() error {
	return c.grid.Load(rules.Glyphs(c.board))
}
