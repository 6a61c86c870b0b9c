package grid

import "errors"

var (
	ErrIndexOutOfRange    = errors.New("grid index out of range")
	ErrInvalidDimensions  = errors.New("invalid grid dimensions")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrGlyphCountMismatch = errors.New("glyph count does not match grid size")
)
