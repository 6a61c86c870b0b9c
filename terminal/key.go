package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA + (b - 1) maps control bytes 0x01-0x1A
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags, bit layout matches the xterm modifier parameter minus one
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// csiFinal maps the final byte of "CSI [1;mod] X" sequences
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyBacktab,
}

// csiTilde maps the first parameter of "CSI n [;mod] ~" sequences
var csiTilde = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Final maps SS3 sequences (ESC O X)
var ss3Final = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter, // Keypad Enter
}

// lookupCSI decodes the parameter and final bytes of a CSI key sequence
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if len(seq) == 0 {
		return KeyNone, ModNone, false
	}
	final := seq[len(seq)-1]
	params, ok := parseParams(seq[:len(seq)-1])
	if !ok {
		return KeyNone, ModNone, false
	}

	var key Key
	switch final {
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone, false
		}
		key, ok = csiTilde[params[0]]
	default:
		key, ok = csiFinal[final]
	}
	if !ok {
		return KeyNone, ModNone, false
	}

	mod := ModNone
	if final == 'Z' {
		mod = ModShift
	}
	if len(params) >= 2 && params[1] > 1 {
		mod |= Modifier(params[1]-1) & (ModShift | ModAlt | ModCtrl)
	}
	return key, mod, true
}

// lookupSS3 decodes the final byte of an SS3 sequence
func lookupSS3(b byte) (Key, bool) {
	k, ok := ss3Final[b]
	return k, ok
}

// parseParams splits "n;m;..." into integers, empty fields read as 0
func parseParams(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, true
	}
	out := make([]int, 0, 3)
	val := 0
	for _, b := range data {
		switch {
		case b == ';':
			out = append(out, val)
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 { // Sanity limit
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return append(out, val), true
}

// controlKey maps a C0 control byte to a key
func controlKey(b byte) Key {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyCtrlSpace
	case 0x08, 0x7f: // Ctrl+H, DEL
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d: // LF, CR
		return KeyEnter
	case 0x1b:
		return KeyEscape
	case 0x1c:
		return KeyCtrlBackslash
	case 0x1d:
		return KeyCtrlBracketRight
	case 0x1e:
		return KeyCtrlCaret
	case 0x1f:
		return KeyCtrlUnderscore
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}
