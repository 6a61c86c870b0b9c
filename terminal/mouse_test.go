package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseNames(t *testing.T) {
	assert.Equal(t, "left", MouseBtnLeft.String())
	assert.Equal(t, "wheel-down", MouseBtnWheelDown.String())
	assert.Equal(t, "forward", MouseBtnForward.String())
	assert.Equal(t, "none", MouseButton(200).String())

	assert.Equal(t, "press", MouseActionPress.String())
	assert.Equal(t, "drag", MouseActionDrag.String())
	assert.Equal(t, "none", MouseAction(99).String())
}

func TestIsButtonPress(t *testing.T) {
	press := func(b MouseButton) Event {
		return Event{Type: EventMouse, MouseBtn: b, MouseAction: MouseActionPress}
	}
	for _, b := range []MouseButton{MouseBtnLeft, MouseBtnMiddle, MouseBtnRight} {
		assert.True(t, press(b).IsButtonPress(), b.String())
	}
	for _, b := range []MouseButton{MouseBtnNone, MouseBtnWheelUp, MouseBtnWheelDown, MouseBtnBack, MouseBtnForward} {
		assert.False(t, press(b).IsButtonPress(), b.String())
	}

	release := press(MouseBtnLeft)
	release.MouseAction = MouseActionRelease
	assert.False(t, release.IsButtonPress())

	key := press(MouseBtnLeft)
	key.Type = EventKey
	assert.False(t, key.IsButtonPress())
}
