package terminal

import (
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventMouse            // SGR mouse report
	EventError            // Read error
	EventClosed           // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Err       error // For EventError

	// Mouse event fields, 0-indexed screen cell
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// inputParser assembles raw bytes into events
// Partial sequences stay buffered until the next feed
type inputParser struct {
	buf    []byte
	events []Event
}

func newInputParser() *inputParser {
	return &inputParser{
		buf:    make([]byte, 0, 256),
		events: make([]Event, 0, 16),
	}
}

// feed appends data and parses every complete sequence
func (p *inputParser) feed(data []byte) {
	p.buf = append(p.buf, data...)
	consumed := p.parseInput(p.buf)

	// Compact buffer
	if consumed >= len(p.buf) {
		p.buf = p.buf[:0]
	} else if consumed > 0 {
		n := copy(p.buf, p.buf[consumed:])
		p.buf = p.buf[:n]
	}
}

// pendingEscape reports whether the buffer holds an unterminated sequence
func (p *inputParser) pendingEscape() bool {
	return len(p.buf) > 0 && p.buf[0] == 0x1b
}

// flush emits whatever is buffered after an input pause
// A lone ESC becomes KeyEscape, an abandoned sequence is dropped
func (p *inputParser) flush() {
	if len(p.buf) == 1 && p.buf[0] == 0x1b {
		p.emit(Event{Type: EventKey, Key: KeyEscape})
	}
	p.buf = p.buf[:0]
}

// next pops the oldest parsed event
func (p *inputParser) next() (Event, bool) {
	if len(p.events) == 0 {
		return Event{}, false
	}
	ev := p.events[0]
	n := copy(p.events, p.events[1:])
	p.events = p.events[:n]
	return ev, true
}

func (p *inputParser) emit(ev Event) {
	p.events = append(p.events, ev)
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (p *inputParser) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			p.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data
			}

			consumed, ev := p.parseEscape(data[i:])
			if consumed == 0 {
				return i // Incomplete sequence, wait for more data
			}

			// Only emit if not a swallowed unknown sequence
			if ev.Key != KeyNone || ev.Type != EventKey {
				p.emit(ev)
			}
			i += consumed
			continue
		}

		// Control characters and DEL
		if b < 0x20 || b == 0x7f {
			p.emit(Event{Type: EventKey, Key: controlKey(b)})
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i // Incomplete UTF-8, wait for more data
		}
		r, size := utf8.DecodeRune(data[i:])
		if r != utf8.RuneError {
			p.emit(Event{Type: EventKey, Key: KeyRune, Rune: r})
		}
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (p *inputParser) parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b: // ESC ESC -> Alt+Escape
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return p.parseCSI(data)
	case data[1] == 'O':
		return p.parseSS3(data)
	case data[1] < 0x20: // Alt+Control
		return 2, Event{Type: EventKey, Key: controlKey(data[1]), Modifiers: ModAlt}
	case data[1] < 0x7f: // Alt+printable
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: report ESC, reparse the rest
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses a CSI sequence, unknown but well-formed sequences are swallowed
func (p *inputParser) parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// SGR mouse: ESC [ < Btn ; X ; Y M/m
	if data[2] == '<' {
		return p.parseSGRMouse(data)
	}

	maxScan := min(len(data), 32)
	for end := 2; end < maxScan; end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	if maxScan == 32 {
		// Runaway sequence
		return maxScan, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

// parseSS3 parses SS3 sequence, returns length even for unknown sequences
func (p *inputParser) parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, ok := lookupSS3(data[2]); ok {
		return 3, Event{Type: EventKey, Key: key}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseSGRMouse parses mouse SGR sequences
func (p *inputParser) parseSGRMouse(data []byte) (int, Event) {
	// Format: ESC [ < Btn ; X ; Y M/m
	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if end >= 32 {
			return end, Event{Type: EventKey, Key: KeyNone}
		}
		return 0, Event{} // Incomplete
	}
	if data[end] != 'M' && data[end] != 'm' {
		return end, Event{Type: EventKey, Key: KeyNone}
	}

	params, ok := parseParams(data[3:end])
	if !ok || len(params) != 3 || params[1] < 1 || params[2] < 1 {
		return end + 1, Event{Type: EventKey, Key: KeyNone}
	}
	btn, x, y := params[0], params[1], params[2]

	ev := Event{Type: EventMouse, MouseX: x - 1, MouseY: y - 1} // Convert to 0-indexed

	// Bits 0-1: button (0=left, 1=middle, 2=right, 3=release)
	// Bit 5 (32): motion
	// Bit 6 (64): scroll
	// Bit 7 (128): extended buttons
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0
	isExtended := btn&128 != 0

	switch {
	case isScroll:
		if buttonID == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress // Scroll is instantaneous
	default:
		switch {
		case isExtended && buttonID == 0:
			ev.MouseBtn = MouseBtnBack
		case isExtended && buttonID == 1:
			ev.MouseBtn = MouseBtnForward
		case buttonID == 0:
			ev.MouseBtn = MouseBtnLeft
		case buttonID == 1:
			ev.MouseBtn = MouseBtnMiddle
		case buttonID == 2:
			ev.MouseBtn = MouseBtnRight
		default:
			ev.MouseBtn = MouseBtnNone // Motion with no button held
		}

		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case isMotion && ev.MouseBtn != MouseBtnNone:
			ev.MouseAction = MouseActionDrag
		case isMotion:
			ev.MouseAction = MouseActionMove
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	// Extract modifiers from button byte
	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev
}
