// Package engine runs the single-threaded input/update/render loop.
//
// Each iteration blocks on one event and finishes all state changes and the
// repaint before the next read.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/layout"
	"github.com/lixenwraith/vi-chess/render"
	"github.com/lixenwraith/vi-chess/rules"
	"github.com/lixenwraith/vi-chess/selection"
	"github.com/lixenwraith/vi-chess/terminal"
)

// EventSource yields input events, blocking until one is available
type EventSource interface {
	PollEvent() terminal.Event
}

// Feedback receives interaction cues, e.g. for sound
type Feedback interface {
	Selected()
	Moved()
	Rejected()
}

// Config wires the loop's collaborators
type Config struct {
	Source     EventSource
	Output     io.Writer
	Grid       *grid.Grid
	Format     grid.Format
	Mapper     *layout.Mapper
	Renderer   *render.Renderer
	Controller *selection.Controller
	Quit       terminal.KeySpec

	// Optional
	Feedback Feedback
	Logger   *log.Logger
}

// Loop owns the grid for the lifetime of Run
type Loop struct {
	cfg    Config
	log    *log.Logger
	frames int
}

// New validates cfg and creates a loop
func New(cfg Config) (*Loop, error) {
	switch {
	case cfg.Source == nil:
		return nil, errors.New("engine: nil event source")
	case cfg.Output == nil:
		return nil, errors.New("engine: nil output")
	case cfg.Grid == nil || cfg.Mapper == nil || cfg.Renderer == nil || cfg.Controller == nil:
		return nil, errors.New("engine: incomplete config")
	}
	if cfg.Feedback == nil {
		cfg.Feedback = nopFeedback{}
	}
	l := cfg.Logger
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Loop{cfg: cfg, log: l}, nil
}

// Frames returns the number of frames rendered so far
func (l *Loop) Frames() int {
	return l.frames
}

// Run paints the initial frame and processes events until the quit key
// or the end of input
// Render failures and input errors are returned, nothing else stops the loop
func (l *Loop) Run() error {
	if err := l.render(); err != nil {
		return err
	}

	for {
		ev := l.cfg.Source.PollEvent()

		switch ev.Type {
		case terminal.EventClosed:
			l.log.Println("input closed")
			return nil

		case terminal.EventError:
			return fmt.Errorf("read input: %w", ev.Err)

		case terminal.EventKey:
			if l.cfg.Quit.Matches(ev) {
				l.log.Println("quit")
				return nil
			}
			if ev.Key == terminal.KeyEscape {
				changed, err := l.cfg.Controller.Reset()
				if err != nil {
					return err
				}
				if changed {
					if err := l.render(); err != nil {
						return err
					}
				}
			}

		case terminal.EventMouse:
			if err := l.handleMouse(ev); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) handleMouse(ev terminal.Event) error {
	if !ev.IsButtonPress() {
		return nil
	}

	index, err := l.cfg.Mapper.IndexAt(ev.MouseX, ev.MouseY)
	if errors.Is(err, layout.ErrOutOfBounds) {
		return nil
	}
	if err != nil {
		return err
	}

	from, _ := l.cfg.Controller.Selection()
	outcome, repaint, err := l.cfg.Controller.Click(index)
	if err != nil {
		return fmt.Errorf("click %d: %w", index, err)
	}

	switch outcome {
	case selection.OutcomeSelected:
		l.log.Printf("selected %d (%s %s)", index, ev.MouseBtn, ev.MouseAction)
		l.cfg.Feedback.Selected()
	case selection.OutcomeDeselected:
		l.log.Printf("deselected %d", index)
	case selection.OutcomeRejected:
		l.log.Printf("rejected %d -> %d", from.Index, index)
		l.cfg.Feedback.Rejected()
	case selection.OutcomeMoved:
		board := l.cfg.Controller.Board()
		l.log.Printf("moved %d -> %d: %s", from.Index, index, board)
		if s, ok := board.(rules.Status); ok {
			if status := s.Status(); status != "" {
				l.log.Printf("game over: %s", status)
			}
		}
		l.cfg.Feedback.Moved()
	}

	if !repaint {
		return nil
	}
	return l.render()
}

func (l *Loop) render() error {
	if err := l.cfg.Renderer.Render(l.cfg.Output, l.cfg.Grid, l.cfg.Format); err != nil {
		l.log.Printf("render failed: %v", err)
		return err
	}
	l.frames++
	return nil
}

type nopFeedback struct{}

func (nopFeedback) Selected() {}
func (nopFeedback) Moved()    {}
func (nopFeedback) Rejected() {}
