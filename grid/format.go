package grid

import "fmt"

// BorderStyle selects the frame drawn around the grid
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSimple
)

// String returns the config name of the border style
func (b BorderStyle) String() string {
	switch b {
	case BorderSimple:
		return "simple"
	default:
		return "none"
	}
}

// ParseBorderStyle resolves a config name to a border style
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "", "none":
		return BorderNone, nil
	case "simple":
		return BorderSimple, nil
	}
	return BorderNone, fmt.Errorf("%w: unknown border style %q", ErrInvalidFormat, name)
}

// Format holds the physical sizing of a logical cell
// CellWidth is in terminal columns, CellHeight in terminal rows
type Format struct {
	CellWidth  int
	CellHeight int
	Border     BorderStyle
}

// NewFormat creates a validated format
func NewFormat(cellWidth, cellHeight int, border BorderStyle) (Format, error) {
	f := Format{CellWidth: cellWidth, CellHeight: cellHeight, Border: border}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// Validate checks the format invariants
func (f Format) Validate() error {
	if f.CellWidth < 1 || f.CellHeight < 1 {
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidFormat, f.CellWidth, f.CellHeight)
	}
	if f.Border > BorderSimple {
		return fmt.Errorf("%w: border style %d", ErrInvalidFormat, f.Border)
	}
	return nil
}

// Inset returns the columns/rows consumed by the border on each side
func (f Format) Inset() int {
	if f.Border == BorderSimple {
		return 1
	}
	return 0
}
