package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Options selects the screen modes acquired by Init
type Options struct {
	// AltScreen switches to the alternate screen buffer
	AltScreen bool
	// Mouse is the reporting mode enabled after Init
	Mouse MouseMode
}

// Terminal owns a backend's raw mode and screen modes between Init and Fini
// It is not safe for concurrent use
type Terminal struct {
	backend Backend
	opts    Options
	input   *inputParser

	initialized bool
	finalized   bool
	closed      bool
	mouseMode   MouseMode
}

// New creates a terminal over b, nothing is written until Init
func New(b Backend, opts Options) *Terminal {
	return &Terminal{
		backend: b,
		opts:    opts,
		input:   newInputParser(),
	}
}

// Init enters raw mode and sets up the screen
// On failure every mode acquired so far is released
func (t *Terminal) Init() error {
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.initialized = true

	var setup []byte
	if t.opts.AltScreen {
		setup = append(setup, csiAltScreenEnter...)
	}
	setup = append(setup, csiCursorHide...)
	setup = append(setup, csiAutoWrapOff...)
	if err := t.writeAll(setup); err != nil {
		t.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	if err := t.SetMouseMode(t.opts.Mouse); err != nil {
		t.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	// Best effort, the backend is restored regardless of write errors
	var teardown []byte
	if t.mouseMode != MouseModeNone {
		for _, seq := range mouseOff {
			teardown = append(teardown, seq...)
		}
		t.mouseMode = MouseModeNone
	}
	teardown = append(teardown, csiSGR0...)
	teardown = append(teardown, csiCursorShow...)
	if t.opts.AltScreen {
		teardown = append(teardown, csiAltScreenExit...)
	}
	// Auto-wrap goes back on after leaving the alternate screen so the main buffer gets it
	teardown = append(teardown, csiAutoWrapOn...)
	t.writeAll(teardown)

	t.backend.Fini()
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (width, height int) {
	return t.backend.Size()
}

// Write sends a frame to the terminal
// A short write is reported as io.ErrShortWrite
func (t *Terminal) Write(p []byte) (int, error) {
	if !t.initialized || t.finalized {
		return 0, errNotActive
	}
	n, err := t.backend.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

var errNotActive = errors.New("terminal not active")

// PollEvent blocks until the next input event
// After input closes every call returns EventClosed
func (t *Terminal) PollEvent() Event {
	for {
		if ev, ok := t.input.next(); ok {
			return ev
		}
		if t.closed {
			return Event{Type: EventClosed}
		}

		timeout := escapeTimeout
		if !t.input.pendingEscape() {
			timeout = -1
		}

		data, err := t.backend.Read(timeout)
		switch {
		case errors.Is(err, io.EOF):
			t.input.flush()
			t.closed = true
		case err != nil:
			return Event{Type: EventError, Err: err}
		case len(data) == 0:
			// Pause in input, resolve a dangling ESC
			t.input.flush()
		default:
			t.input.feed(data)
		}
	}
}

// SetMouseMode enables or disables mouse reporting
func (t *Terminal) SetMouseMode(mode MouseMode) error {
	if !t.initialized || t.finalized {
		return nil
	}

	oldMode := t.mouseMode
	var seq []byte

	// Disable modes no longer needed (reverse order of enable)
	if oldMode&MouseModeMotion != 0 && mode&MouseModeMotion == 0 {
		seq = append(seq, csiMouseMotionOff...)
	}
	if oldMode&MouseModeDrag != 0 && mode&MouseModeDrag == 0 {
		seq = append(seq, csiMouseDragOff...)
	}
	if oldMode&MouseModeClick != 0 && mode&MouseModeClick == 0 {
		seq = append(seq, csiMouseClickOff...)
	}
	if mode == MouseModeNone && oldMode != MouseModeNone {
		seq = append(seq, csiMouseSGROff...)
	}

	// SGR encoding first so no legacy report is ever sent
	if mode != MouseModeNone && oldMode == MouseModeNone {
		seq = append(seq, csiMouseSGROn...)
	}
	if mode&MouseModeClick != 0 && oldMode&MouseModeClick == 0 {
		seq = append(seq, csiMouseClickOn...)
	}
	if mode&MouseModeDrag != 0 && oldMode&MouseModeDrag == 0 {
		seq = append(seq, csiMouseDragOn...)
	}
	if mode&MouseModeMotion != 0 && oldMode&MouseModeMotion == 0 {
		seq = append(seq, csiMouseMotionOn...)
	}

	if len(seq) == 0 {
		return nil
	}
	if err := t.writeAll(seq); err != nil {
		return fmt.Errorf("set mouse mode: %w", err)
	}
	t.mouseMode = mode
	return nil
}

func (t *Terminal) writeAll(p []byte) error {
	n, err := t.backend.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range mouseOff {
		w.Write(seq)
	}

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
