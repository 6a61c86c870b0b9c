package terminal

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"
)

var errUnsupported = errors.New("no terminal backend for " + runtime.GOOS)

// unsupportedBackend stands in on platforms without a tty driver
// Init always fails, so the loop never starts
type unsupportedBackend struct{}

func (unsupportedBackend) Init() error {
	return fmt.Errorf("%w: %w", ErrNotTerminal, errUnsupported)
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int) { return 80, 24 }

func (unsupportedBackend) Write([]byte) (int, error) { return 0, errUnsupported }

func (unsupportedBackend) Read(time.Duration) ([]byte, error) { return nil, io.EOF }
