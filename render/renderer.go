// Package render paints a grid to a terminal byte stream.
//
// A frame is accumulated in memory and written with a single Write call.
// Every cell span is wrapped in its own SGR set/reset pair, so terminal areas
// outside the grid keep their attributes.
package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/layout"
)

// Box drawing runes for BorderSimple
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// styleKey identifies a fg/bg palette pair
type styleKey struct {
	fg, bg grid.Color
}

// Renderer writes full frames of a grid at a fixed screen origin
// The frame buffer and style cache are reused between frames
type Renderer struct {
	origin image.Point
	frame  []byte
	styles map[styleKey]string
}

// NewRenderer creates a renderer drawing with its top-left corner at origin
// origin is 0-indexed and includes the border frame if any
func NewRenderer(origin image.Point) *Renderer {
	return &Renderer{
		origin: origin,
		frame:  make([]byte, 0, 8192),
		styles: make(map[styleKey]string),
	}
}

// Origin returns the top-left screen cell of the rendered area
func (r *Renderer) Origin() image.Point {
	return r.origin
}

// Render paints g with format f and writes the frame to w
// Write failures are returned, nothing is retried
func (r *Renderer) Render(w io.Writer, g *grid.Grid, f grid.Format) error {
	if err := f.Validate(); err != nil {
		return err
	}

	r.frame = r.frame[:0]
	r.frame = append(r.frame, ansi.EraseEntireScreen...)
	r.frame = append(r.frame, ansi.CursorHomePosition...)

	inset := f.Inset()
	innerWidth := g.ColCount() * f.CellWidth
	y := r.origin.Y

	if f.Border == grid.BorderSimple {
		r.moveTo(r.origin.X, y)
		r.borderLine(borderTopLeft, borderTopRight, innerWidth)
		y++
	}

	above, _ := layout.Padding(f.CellHeight, 1)

	for _, row := range g.Rows() {
		for p := 0; p < f.CellHeight; p++ {
			r.moveTo(r.origin.X, y)
			if inset > 0 {
				r.frame = append(r.frame, string(borderVertical)...)
			}

			if p == above {
				r.contentRow(row, f.CellWidth)
			} else {
				r.paddingRow(row, f.CellWidth)
			}

			if inset > 0 {
				r.frame = append(r.frame, string(borderVertical)...)
			}
			y++
		}
	}

	if f.Border == grid.BorderSimple {
		r.moveTo(r.origin.X, y)
		r.borderLine(borderBottomLeft, borderBottomRight, innerWidth)
		y++
	}

	// Park the cursor under the grid so stray output cannot overwrite cells
	r.moveTo(r.origin.X, y)

	n, err := w.Write(r.frame)
	if err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	if n != len(r.frame) {
		return fmt.Errorf("render: write frame: %w (%d of %d bytes)", io.ErrShortWrite, n, len(r.frame))
	}
	return nil
}

// moveTo positions the cursor at a 0-indexed screen cell
func (r *Renderer) moveTo(x, y int) {
	r.frame = append(r.frame, ansi.CursorPosition(x+1, y+1)...)
}

// contentRow writes one physical row holding each cell's centered glyph
func (r *Renderer) contentRow(cells []grid.Cell, width int) {
	for _, c := range cells {
		glyph := c.Glyph
		// A glyph wider than the cell would push every later cell right
		if glyph == 0 || glyph.Width() > width {
			glyph = grid.Blank
		}
		before, after := layout.Padding(width, glyph.Width())

		r.frame = append(r.frame, r.style(c.Fg, c.Bg)...)
		r.fill(before)
		r.frame = append(r.frame, glyph.String()...)
		r.fill(after)
		r.frame = append(r.frame, ansi.ResetStyle...)
	}
}

// paddingRow writes one physical row of blank filler in each cell's background
func (r *Renderer) paddingRow(cells []grid.Cell, width int) {
	for _, c := range cells {
		r.frame = append(r.frame, r.style(c.Fg, c.Bg)...)
		r.fill(width)
		r.frame = append(r.frame, ansi.ResetStyle...)
	}
}

// borderLine writes a horizontal frame edge spanning the cell area
func (r *Renderer) borderLine(left, right rune, width int) {
	r.frame = append(r.frame, string(left)...)
	r.frame = append(r.frame, strings.Repeat(string(borderHorizontal), width)...)
	r.frame = append(r.frame, string(right)...)
}

func (r *Renderer) fill(n int) {
	for i := 0; i < n; i++ {
		r.frame = append(r.frame, ' ')
	}
}

// style returns the SGR sequence selecting a palette fg/bg pair
func (r *Renderer) style(fg, bg grid.Color) string {
	k := styleKey{fg: fg, bg: bg}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := ansi.Style{}.
		ForegroundColor(ansi.IndexedColor(fg)).
		BackgroundColor(ansi.IndexedColor(bg)).
		String()
	r.styles[k] = s
	return s
}
