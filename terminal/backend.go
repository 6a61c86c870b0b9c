package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned by Init when the input is not a tty
var ErrNotTerminal = errors.New("not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available or timeout elapses
	// A negative timeout blocks indefinitely
	// Returns nil data on timeout and io.EOF when input is closed
	// Backends that cannot time out block regardless of timeout
	Read(timeout time.Duration) ([]byte, error)
}
