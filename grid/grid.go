// Package grid holds the fixed-shape cell container drawn by the renderer.
//
// Cells are stored row-major in a flat slice: index i is (i / cols, i % cols).
// The shape is fixed at construction; only cell fields change afterwards.
package grid

import (
	"fmt"
	"iter"
)

// Grid is a rows x cols matrix of cells
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New creates a grid with every cell set to fill
func New(rows, cols int, fill Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromCells creates a grid over a copy of cells, len(cells) must be rows*cols
func FromCells(rows, cols int, cells []Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimensions, len(cells), rows, cols)
	}
	c := make([]Cell, len(cells))
	copy(c, cells)
	return &Grid{rows: rows, cols: cols, cells: c}, nil
}

// RowCount returns the number of logical rows
func (g *Grid) RowCount() int {
	return g.rows
}

// ColCount returns the number of logical columns
func (g *Grid) ColCount() int {
	return g.cols
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index converts (row, col) to a flat index
func (g *Grid) Index(row, col int) (int, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, row, col, g.rows, g.cols)
	}
	return row*g.cols + col, nil
}

// Coords converts a flat index to (row, col)
func (g *Grid) Coords(index int) (row, col int, err error) {
	if index < 0 || index >= len(g.cells) {
		return 0, 0, fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, index, len(g.cells))
	}
	return index / g.cols, index % g.cols, nil
}

// Get returns the cell at (row, col)
func (g *Grid) Get(row, col int) (Cell, error) {
	i, err := g.Index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// At returns the cell at a flat index
func (g *Grid) At(index int) (Cell, error) {
	if index < 0 || index >= len(g.cells) {
		return Cell{}, fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, index, len(g.cells))
	}
	return g.cells[index], nil
}

// SetBackground changes the background of the cell at (row, col)
func (g *Grid) SetBackground(row, col int, color Color) error {
	i, err := g.Index(row, col)
	if err != nil {
		return err
	}
	g.cells[i].Bg = color
	return nil
}

// SetGlyph changes the glyph of the cell at a flat index
func (g *Grid) SetGlyph(index int, glyph Glyph) error {
	if index < 0 || index >= len(g.cells) {
		return fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, index, len(g.cells))
	}
	g.cells[index].Glyph = glyph
	return nil
}

// Load replaces every glyph in index order, colors are kept
func (g *Grid) Load(glyphs []Glyph) error {
	if len(glyphs) != len(g.cells) {
		return fmt.Errorf("%w: %d glyphs for %d cells", ErrGlyphCountMismatch, len(glyphs), len(g.cells))
	}
	for i, gl := range glyphs {
		g.cells[i].Glyph = gl
	}
	return nil
}

// Rows yields each row index with its cells
// The slices alias grid storage and must be treated as read-only
// Each call restarts from row 0
func (g *Grid) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for r := 0; r < g.rows; r++ {
			start := r * g.cols
			end := start + g.cols
			if !yield(r, g.cells[start:end:end]) {
				return
			}
		}
	}
}
