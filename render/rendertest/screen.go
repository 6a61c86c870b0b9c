// Package rendertest decodes rendered frames into a virtual screen for tests.
//
// Only the sequences the renderer emits are understood: CUP, ED 2, and SGR
// with 38;5;N / 48;5;N / reset. Anything else fails decoding.
package rendertest

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Unset marks a color that was never selected by SGR
const Unset = -1

// Cell is one decoded screen position
type Cell struct {
	Rune rune
	Fg   int
	Bg   int
}

// Screen is a sparse virtual terminal, 0-indexed
type Screen struct {
	Cells  map[image.Point]Cell
	Cursor image.Point
	// Number of ED 2 sequences seen
	Clears int
	// Number of cursor positioning sequences seen
	Moves int
	// Screen cells written while fg or bg were Unset
	Unstyled int

	fg, bg int
}

// NewScreen creates an empty screen
func NewScreen() *Screen {
	return &Screen{Cells: make(map[image.Point]Cell), fg: Unset, bg: Unset}
}

// Decode creates a screen from one or more frames
func Decode(frames ...[]byte) (*Screen, error) {
	s := NewScreen()
	for _, f := range frames {
		if err := s.Write(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Write applies a byte stream to the screen
func (s *Screen) Write(data []byte) error {
	i := 0
	for i < len(data) {
		if data[i] == 0x1b {
			n, err := s.escape(data[i:])
			if err != nil {
				return fmt.Errorf("offset %d: %w", i, err)
			}
			i += n
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("offset %d: invalid utf-8", i)
		}
		if r < 0x20 {
			return fmt.Errorf("offset %d: unexpected control byte %#x", i, r)
		}
		if s.fg == Unset || s.bg == Unset {
			s.Unstyled++
		}
		s.Cells[s.Cursor] = Cell{Rune: r, Fg: s.fg, Bg: s.bg}
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		s.Cursor.X += w
		i += size
	}
	return nil
}

func (s *Screen) escape(data []byte) (int, error) {
	if len(data) < 2 || data[1] != '[' {
		return 0, fmt.Errorf("unsupported escape %q", data[:min(len(data), 4)])
	}
	end := 2
	for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
		end++
	}
	if end >= len(data) {
		return 0, fmt.Errorf("truncated escape %q", data)
	}
	params := string(data[2:end])
	switch data[end] {
	case 'H':
		return end + 1, s.cup(params)
	case 'J':
		if params != "2" {
			return 0, fmt.Errorf("unsupported erase %q", params)
		}
		s.Clears++
		s.Cells = make(map[image.Point]Cell)
		return end + 1, nil
	case 'm':
		return end + 1, s.sgr(params)
	}
	return 0, fmt.Errorf("unsupported sequence %q", data[:end+1])
}

func (s *Screen) cup(params string) error {
	s.Moves++
	if params == "" {
		s.Cursor = image.Point{}
		return nil
	}
	row, col, ok := strings.Cut(params, ";")
	if !ok {
		return fmt.Errorf("bad cursor position %q", params)
	}
	y, err := atoiDefault(row)
	if err != nil {
		return err
	}
	x, err := atoiDefault(col)
	if err != nil {
		return err
	}
	s.Cursor = image.Pt(x-1, y-1)
	return nil
}

func (s *Screen) sgr(params string) error {
	if params == "" || params == "0" {
		s.fg, s.bg = Unset, Unset
		return nil
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); {
		if i+2 >= len(parts) || parts[i+1] != "5" {
			return fmt.Errorf("unsupported sgr %q", params)
		}
		v, err := strconv.Atoi(parts[i+2])
		if err != nil {
			return err
		}
		switch parts[i] {
		case "38":
			s.fg = v
		case "48":
			s.bg = v
		default:
			return fmt.Errorf("unsupported sgr %q", params)
		}
		i += 3
	}
	return nil
}

func atoiDefault(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	return strconv.Atoi(s)
}

// At returns the cell at (x, y), zero Cell if never written
func (s *Screen) At(x, y int) Cell {
	return s.Cells[image.Pt(x, y)]
}

// Line returns the runes written on row y between columns x0 and x1
// Unwritten positions read as NUL
func (s *Screen) Line(y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		c, ok := s.Cells[image.Pt(x, y)]
		if !ok {
			b.WriteRune(0)
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Diff returns the positions whose content differs between two screens
func Diff(a, b *Screen) []image.Point {
	var out []image.Point
	for p, ca := range a.Cells {
		if cb, ok := b.Cells[p]; !ok || cb != ca {
			out = append(out, p)
		}
	}
	for p := range b.Cells {
		if _, ok := a.Cells[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}
