package engine

import (
	"bytes"
	"errors"
	"image"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/grid"
	"github.com/lixenwraith/vi-chess/layout"
	"github.com/lixenwraith/vi-chess/render"
	"github.com/lixenwraith/vi-chess/render/rendertest"
	"github.com/lixenwraith/vi-chess/rules"
	"github.com/lixenwraith/vi-chess/selection"
	"github.com/lixenwraith/vi-chess/terminal"
)

const (
	fg        grid.Color = 15
	bg        grid.Color = 0
	highlight grid.Color = 23
)

// script replays events, then reports the input as closed
type script struct {
	events []terminal.Event
}

func (s *script) PollEvent() terminal.Event {
	if len(s.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// frames keeps each Write as one frame
type frames struct {
	out [][]byte
	err error
}

func (f *frames) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.out = append(f.out, bytes.Clone(p))
	return len(p), nil
}

func (f *frames) screen(t *testing.T, i int) *rendertest.Screen {
	t.Helper()
	require.Less(t, i, len(f.out))
	s, err := rendertest.Decode(f.out[i])
	require.NoError(t, err)
	return s
}

type recorder struct {
	selected, moved, rejected int
}

func (r *recorder) Selected() { r.selected++ }
func (r *recorder) Moved()    { r.moved++ }
func (r *recorder) Rejected() { r.rejected++ }

// vetoEngine refuses the listed moves and defers the rest
type vetoEngine struct {
	rules.Engine
	deny map[[2]int]bool
}

func (e vetoEngine) IsLegal(b rules.Board, from, to int) bool {
	return !e.deny[[2]int{from, to}] && e.Engine.IsLegal(b, from, to)
}

func press(x, y int) terminal.Event {
	return terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y,
		MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionPress}
}

func release(x, y int) terminal.Event {
	return terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y,
		MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionRelease}
}

func key(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

type fixture struct {
	loop   *Loop
	out    *frames
	fb     *recorder
	logBuf *bytes.Buffer
}

// newFixture builds a 2x3 sandbox "a2/1xc" with 3x1 cells at the screen origin
// Logical cell (c, r) covers screen columns [3c, 3c+3) on row r
func newFixture(t *testing.T, events []terminal.Event, deny ...[2]int) *fixture {
	t.Helper()
	sandbox, err := rules.NewSandbox(2, 3)
	require.NoError(t, err)
	engine := vetoEngine{Engine: sandbox, deny: make(map[[2]int]bool)}
	for _, d := range deny {
		engine.deny[d] = true
	}
	board, err := engine.ParsePosition("a2/1xc")
	require.NoError(t, err)

	g, err := grid.New(2, 3, grid.NewCell(grid.Blank, fg, bg))
	require.NoError(t, err)
	ctrl, err := selection.NewController(g, engine, board, highlight)
	require.NoError(t, err)

	format, err := grid.NewFormat(3, 1, grid.BorderNone)
	require.NoError(t, err)
	mapper, err := layout.NewMapper(format, 2, 3, image.Point{})
	require.NoError(t, err)

	f := &fixture{out: &frames{}, fb: &recorder{}, logBuf: &bytes.Buffer{}}
	f.loop, err = New(Config{
		Source:     &script{events: events},
		Output:     f.out,
		Grid:       g,
		Format:     format,
		Mapper:     mapper,
		Renderer:   render.NewRenderer(image.Point{}),
		Controller: ctrl,
		Quit:       terminal.KeySpec{Key: terminal.KeyRune, Rune: 'q'},
		Feedback:   f.fb,
		Logger:     log.New(f.logBuf, "", 0),
	})
	require.NoError(t, err)
	return f
}

func TestRunSelectAndMove(t *testing.T) {
	f := newFixture(t, []terminal.Event{
		press(1, 0),   // select a
		release(1, 0), // ignored
		press(4, 1),   // move a onto x
		key('q'),
		press(7, 1), // never reached
	})
	require.NoError(t, f.loop.Run())

	require.Len(t, f.out.out, 3, "initial, select, move")
	assert.Equal(t, 3, f.loop.Frames())

	initial := f.out.screen(t, 0)
	assert.Equal(t, " a       ", initial.Line(0, 0, 9))
	assert.Equal(t, "    x  c ", initial.Line(1, 0, 9))

	selected := f.out.screen(t, 1)
	for x := 0; x < 3; x++ {
		assert.Equal(t, int(highlight), selected.At(x, 0).Bg)
	}
	assert.Equal(t, int(bg), selected.At(3, 0).Bg)
	assert.ElementsMatch(t,
		[]image.Point{{0, 0}, {1, 0}, {2, 0}},
		rendertest.Diff(initial, selected))

	moved := f.out.screen(t, 2)
	assert.Equal(t, "         ", moved.Line(0, 0, 9))
	assert.Equal(t, "    a  c ", moved.Line(1, 0, 9))
	assert.Equal(t, int(bg), moved.At(1, 0).Bg)

	assert.Equal(t, 1, f.fb.selected)
	assert.Equal(t, 1, f.fb.moved)
	assert.Zero(t, f.fb.rejected)
	assert.Contains(t, f.logBuf.String(), "moved 0 -> 4: 3/1ac")
	assert.Contains(t, f.logBuf.String(), "quit")
}

func TestRunDeselectAndBlankClick(t *testing.T) {
	f := newFixture(t, []terminal.Event{
		press(4, 0), // blank, no repaint
		press(2, 0), // select a
		press(0, 0), // same cell, deselect
	})
	require.NoError(t, f.loop.Run())

	require.Len(t, f.out.out, 3)
	initial := f.out.screen(t, 0)
	final := f.out.screen(t, 2)
	assert.Empty(t, rendertest.Diff(initial, final))
	assert.Equal(t, 1, f.fb.selected)
	assert.Contains(t, f.logBuf.String(), "input closed")
}

func TestRunRejectedMoveClearsSelection(t *testing.T) {
	f := newFixture(t, []terminal.Event{
		press(1, 0),
		press(7, 1), // index 5, vetoed
		press(7, 0), // idle again, blank
	}, [2]int{0, 5})
	require.NoError(t, f.loop.Run())

	require.Len(t, f.out.out, 3)
	assert.Empty(t, rendertest.Diff(f.out.screen(t, 0), f.out.screen(t, 2)))
	assert.Equal(t, 1, f.fb.rejected)
	assert.Zero(t, f.fb.moved)
	assert.Contains(t, f.logBuf.String(), "rejected 0 -> 5")
}

func TestRunIgnoresOutsideClicksAndOtherButtons(t *testing.T) {
	wheel := press(1, 0)
	wheel.MouseBtn = terminal.MouseBtnWheelUp
	f := newFixture(t, []terminal.Event{
		press(9, 0),  // right of the grid
		press(1, 2),  // below the grid
		press(-1, 0), // never produced by the parser, still harmless
		wheel,
		key('x'),
	})
	require.NoError(t, f.loop.Run())
	assert.Len(t, f.out.out, 1)
	assert.Zero(t, f.fb.selected)
}

func TestRunEscapeClearsSelection(t *testing.T) {
	f := newFixture(t, []terminal.Event{
		press(1, 0),
		{Type: terminal.EventKey, Key: terminal.KeyEscape},
		{Type: terminal.EventKey, Key: terminal.KeyEscape}, // nothing selected
	})
	require.NoError(t, f.loop.Run())

	require.Len(t, f.out.out, 3)
	assert.Empty(t, rendertest.Diff(f.out.screen(t, 0), f.out.screen(t, 2)))
}

func TestRunInputError(t *testing.T) {
	boom := errors.New("boom")
	f := newFixture(t, []terminal.Event{{Type: terminal.EventError, Err: boom}})
	err := f.loop.Run()
	assert.ErrorIs(t, err, boom)
}

func TestRunRenderFailureIsFatal(t *testing.T) {
	f := newFixture(t, []terminal.Event{press(1, 0)})
	f.out.err = io.ErrClosedPipe
	assert.ErrorIs(t, f.loop.Run(), io.ErrClosedPipe)
	assert.Zero(t, f.loop.Frames())

	// Failure after the initial frame
	f = newFixture(t, []terminal.Event{press(1, 0), key('q')})
	f.loop.cfg.Output = failAfter(f.out, 1)
	assert.ErrorIs(t, f.loop.Run(), io.ErrShortWrite)
	assert.Equal(t, 1, f.loop.Frames())
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
	_, err = New(Config{Source: &script{}})
	assert.Error(t, err)
	_, err = New(Config{Source: &script{}, Output: io.Discard})
	assert.Error(t, err)
}

type limitWriter struct {
	w    io.Writer
	left int
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if l.left == 0 {
		return 0, io.ErrShortWrite
	}
	l.left--
	return l.w.Write(p)
}

func failAfter(w io.Writer, n int) io.Writer {
	return &limitWriter{w: w, left: n}
}
