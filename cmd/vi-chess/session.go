package main

import (
	"fmt"
	"image"

	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/layout"
	"github.com/lixenwraith/vi-chess/render"
	"github.com/lixenwraith/vi-chess/rules"
	"github.com/lixenwraith/vi-chess/selection"
	"github.com/lixenwraith/vi-chess/terminal"
)

// session is everything the event loop needs except the terminal
type session struct {
	grid       *grid.Grid
	format     grid.Format
	mapper     *layout.Mapper
	renderer   *render.Renderer
	controller *selection.Controller
	quit       terminal.KeySpec
}

// newSession parses the starting position and builds the board state
func newSession(cfg *config.Config) (*session, error) {
	format, err := cfg.GridFormat()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	quit, err := cfg.QuitKey()
	if err != nil {
		return nil, err
	}

	engine, err := rules.New(cfg.Rules, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	board, err := engine.ParsePosition(cfg.Position)
	if err != nil {
		return nil, fmt.Errorf("starting position: %w", err)
	}

	g, err := checkerboard(board.Rows(), board.Cols(), palette)
	if err != nil {
		return nil, err
	}
	controller, err := selection.NewController(g, engine, board, palette.Highlight)
	if err != nil {
		return nil, err
	}

	origin := image.Pt(cfg.Origin.X, cfg.Origin.Y)
	mapper, err := layout.NewMapper(format, g.RowCount(), g.ColCount(), origin)
	if err != nil {
		return nil, err
	}

	return &session{
		grid:       g,
		format:     format,
		mapper:     mapper,
		renderer:   render.NewRenderer(origin),
		controller: controller,
		quit:       quit,
	}, nil
}

// checkerboard builds an empty grid, light where row+col is even
func checkerboard(rows, cols int, p config.Palette) (*grid.Grid, error) {
	g, err := grid.New(rows, cols, grid.NewCell(grid.Blank, p.Foreground, p.Dark))
	if err != nil {
		return nil, err
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 == 0 {
				if err := g.SetBackground(row, col, p.Light); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
