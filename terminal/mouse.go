package terminal

// MouseButton is the button named by an SGR mouse report
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnBack    // extended button 8
	MouseBtnForward // extended button 9
)

// MouseAction is what happened to the button
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode selects the DEC private modes enabled by SetMouseMode
// Modes combine as bits; the board only asks for clicks
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // 1000
	MouseModeDrag   MouseMode = 1 << 1 // 1002
	MouseModeMotion MouseMode = 1 << 2 // 1003
)

var buttonNames = [...]string{
	MouseBtnNone:      "none",
	MouseBtnLeft:      "left",
	MouseBtnMiddle:    "middle",
	MouseBtnRight:     "right",
	MouseBtnWheelUp:   "wheel-up",
	MouseBtnWheelDown: "wheel-down",
	MouseBtnBack:      "back",
	MouseBtnForward:   "forward",
}

var actionNames = [...]string{
	MouseActionNone:    "none",
	MouseActionPress:   "press",
	MouseActionRelease: "release",
	MouseActionMove:    "move",
	MouseActionDrag:    "drag",
}

// IsButtonPress reports whether ev is a click that may select a cell:
// a press of the left, middle or right button
func (e Event) IsButtonPress() bool {
	if e.Type != EventMouse || e.MouseAction != MouseActionPress {
		return false
	}
	return e.MouseBtn >= MouseBtnLeft && e.MouseBtn <= MouseBtnRight
}

func (b MouseButton) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "none"
}

func (a MouseAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}
