package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		keyToName[k] = "ctrl_" + string(rune('a'+int(k-KeyCtrlA)))
	}
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// KeySpec identifies one key press: a named key or a single rune
type KeySpec struct {
	Key  Key
	Rune rune
}

// ParseKeySpec accepts a single character ("q") or a key name ("ctrl_c", "escape")
func ParseKeySpec(s string) (KeySpec, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r >= 0x20 && r != 0x7f && r != utf8.RuneError {
			return KeySpec{Key: KeyRune, Rune: r}, nil
		}
	}
	if k, ok := KeyByName(strings.ToLower(s)); ok {
		return KeySpec{Key: k}, nil
	}
	return KeySpec{}, fmt.Errorf("unknown key %q", s)
}

// Matches reports whether ev is a press of this key, modifiers ignored
func (k KeySpec) Matches(ev Event) bool {
	if ev.Type != EventKey || ev.Key != k.Key {
		return false
	}
	return k.Key != KeyRune || ev.Rune == k.Rune
}

func (k KeySpec) String() string {
	if k.Key == KeyRune {
		return string(k.Rune)
	}
	return KeyName(k.Key)
}
