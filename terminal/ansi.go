package terminal

import (
	"github.com/charmbracelet/x/ansi"
)

// Pre-built mode sequences written during setup and teardown
var (
	csiRIS  = []byte(ansi.ResetInitialState)
	csiSGR0 = []byte(ansi.ResetStyle)

	// Cursor control
	csiCursorHide = []byte(ansi.HideCursor)
	csiCursorShow = []byte(ansi.ShowCursor)

	// Screen modes
	csiAltScreenEnter = []byte(ansi.SetModeAltScreenSaveCursor)
	csiAltScreenExit  = []byte(ansi.ResetModeAltScreenSaveCursor)
	// DECAWM off keeps a write to the bottom-right corner from scrolling
	csiAutoWrapOn  = []byte(ansi.SetModeAutoWrap)
	csiAutoWrapOff = []byte(ansi.ResetModeAutoWrap)

	// Mouse reporting
	csiMouseClickOn   = []byte(ansi.SetModeMouseNormal)
	csiMouseClickOff  = []byte(ansi.ResetModeMouseNormal)
	csiMouseDragOn    = []byte(ansi.SetModeMouseButtonEvent)
	csiMouseDragOff   = []byte(ansi.ResetModeMouseButtonEvent)
	csiMouseMotionOn  = []byte(ansi.SetModeMouseAnyEvent)
	csiMouseMotionOff = []byte(ansi.ResetModeMouseAnyEvent)
	csiMouseSGROn     = []byte(ansi.SetModeMouseExtSgr)
	csiMouseSGROff    = []byte(ansi.ResetModeMouseExtSgr)
)

// mouseOff disables every mouse mode, SGR encoding last
var mouseOff = [][]byte{csiMouseMotionOff, csiMouseDragOff, csiMouseClickOff, csiMouseSGROff}
