package layout

import (
	"errors"
	"fmt"
	"image"

	"github.com/lixenwraith/vi-chess/grid"
)

// ErrOutOfBounds is returned for screen positions outside the grid footprint
var ErrOutOfBounds = errors.New("screen position outside grid")

// Mapper converts between 0-indexed screen cells and logical grid coordinates
// It mirrors the renderer's placement: cell (c, r) covers columns
// [c*CellWidth, (c+1)*CellWidth) and rows [r*CellHeight, (r+1)*CellHeight)
// relative to the content origin
type Mapper struct {
	format grid.Format
	rows   int
	cols   int
	// Top-left screen cell of logical cell (0, 0), border inset applied
	content image.Point
}

// NewMapper creates a mapper for a grid rendered at origin
// origin is where the renderer starts drawing, the border frame included
func NewMapper(f grid.Format, rows, cols int, origin image.Point) (*Mapper, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrInvalidDimensions, rows, cols)
	}
	return &Mapper{
		format:  f,
		rows:    rows,
		cols:    cols,
		content: ContentOrigin(origin, f),
	}, nil
}

// ContentOrigin returns the screen cell where logical cell (0, 0) starts
func ContentOrigin(origin image.Point, f grid.Format) image.Point {
	inset := f.Inset()
	return origin.Add(image.Pt(inset, inset))
}

// Bounds returns the screen rectangle covered by cells, border excluded
func (m *Mapper) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: m.content,
		Max: m.content.Add(image.Pt(m.cols*m.format.CellWidth, m.rows*m.format.CellHeight)),
	}
}

// ToIndex maps a screen position to the logical (col, row) under it
func (m *Mapper) ToIndex(screenCol, screenRow int) (col, row int, err error) {
	p := image.Pt(screenCol, screenRow)
	if !p.In(m.Bounds()) {
		return 0, 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, screenCol, screenRow)
	}
	rel := p.Sub(m.content)
	return rel.X / m.format.CellWidth, rel.Y / m.format.CellHeight, nil
}

// IndexAt maps a screen position to a flat row-major grid index
func (m *Mapper) IndexAt(screenCol, screenRow int) (int, error) {
	col, row, err := m.ToIndex(screenCol, screenRow)
	if err != nil {
		return 0, err
	}
	return row*m.cols + col, nil
}

// ToScreen returns the leftmost screen cell of the content row of (col, row)
func (m *Mapper) ToScreen(col, row int) (screenCol, screenRow int, err error) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return 0, 0, fmt.Errorf("%w: (%d,%d) in %dx%d", grid.ErrIndexOutOfRange, col, row, m.cols, m.rows)
	}
	above, _ := Padding(m.format.CellHeight, 1)
	return m.content.X + col*m.format.CellWidth, m.content.Y + row*m.format.CellHeight + above, nil
}

// Footprint returns the screen rectangle painted for (col, row)
func (m *Mapper) Footprint(col, row int) (image.Rectangle, error) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return image.Rectangle{}, fmt.Errorf("%w: (%d,%d) in %dx%d", grid.ErrIndexOutOfRange, col, row, m.cols, m.rows)
	}
	topLeft := m.content.Add(image.Pt(col*m.format.CellWidth, row*m.format.CellHeight))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(m.format.CellWidth, m.format.CellHeight))}, nil
}
