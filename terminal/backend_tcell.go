//go:build unix

package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// tcellBackend drives the controlling tty through tcell's Tty abstraction
// Only the raw byte stream is used, rendering and parsing stay in this package
type tcellBackend struct {
	tty tcell.Tty
	buf []byte
}

// NewTcellBackend creates a backend on /dev/tty
func NewTcellBackend() Backend {
	return &tcellBackend{buf: make([]byte, 256)}
}

func (b *tcellBackend) Init() error {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	if err := tty.Start(); err != nil {
		tty.Close()
		return fmt.Errorf("start tty: %w", err)
	}
	b.tty = tty
	return nil
}

func (b *tcellBackend) Fini() {
	if b.tty == nil {
		return
	}
	b.tty.Drain()
	b.tty.Stop()
	b.tty.Close()
	b.tty = nil
}

func (b *tcellBackend) Size() (int, int) {
	if b.tty == nil {
		return 80, 24
	}
	ws, err := b.tty.WindowSize()
	if err != nil || ws.Width == 0 || ws.Height == 0 {
		return 80, 24 // Fallback
	}
	return ws.Width, ws.Height
}

func (b *tcellBackend) Write(p []byte) (int, error) {
	if b.tty == nil {
		return 0, ErrNotTerminal
	}
	return b.tty.Write(p)
}

// Read ignores timeout, the tty read blocks until input or Drain
func (b *tcellBackend) Read(_ time.Duration) ([]byte, error) {
	if b.tty == nil {
		return nil, ErrNotTerminal
	}
	n, err := b.tty.Read(b.buf)
	if n == 0 {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b.buf[:n])
	return ret, nil
}
