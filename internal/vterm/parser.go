package vterm

import "strings"

// lineDrawing maps DEC Special Graphics charset bytes to the Unicode
// box-drawing glyphs they represent. Supplemented per SPEC_FULL.md §10: a
// full-screen app drawing panel borders with this charset would otherwise
// render as raw ASCII (`lqqqk` instead of a box). Grounded on the teacher
// corpus's translateLineDrawing table (go-headless-term/handler.go).
var lineDrawing = map[byte]rune{
	'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌', 'd': '␍', 'e': '␊',
	'f': '°', 'g': '±', 'h': '␤', 'i': '␋', 'j': '┘', 'k': '┐',
	'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺', 'p': '⎻', 'q': '─',
	'r': '⎼', 's': '⎽', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
	'x': '│', 'y': '≤', 'z': '≥', '{': 'π', '|': '≠', '}': '£',
	'~': '·',
}

// step advances the parser state machine by one byte, exactly per
// spec.md §4.4, with the Esc-state supplements from SPEC_FULL.md §10
// (charset designation, DECALN) folded in where the base spec's "anything
// else -> Ground" would otherwise discard them.
func (t *Terminal) step(b byte) {
	switch t.state {
	case stateGround:
		t.stepGround(b)
	case stateEsc:
		t.stepEsc(b)
	case stateEscG0:
		t.g0 = b
		t.state = stateGround
	case stateEscG1:
		t.g1 = b
		t.state = stateGround
	case stateEscHash:
		if b == '8' {
			t.decAlignmentTest()
		}
		t.state = stateGround
	case stateCSI:
		t.stepCSI(b)
	case stateOSC:
		t.stepOSC(b)
	case stateOSCEsc:
		t.stepOSCEsc(b)
	}
}

func (t *Terminal) stepGround(b byte) {
	switch {
	case b == 0x1B:
		t.state = stateEsc
	case b == 0x0A:
		t.active.Newline()
	case b == 0x0D:
		t.active.CursorX = 0
		t.active.PendingWrap = false
	case b == 0x08:
		t.active.CursorX = max0(t.active.CursorX - 1)
		t.active.PendingWrap = false
	case b == 0x09:
		t.active.CursorX = nextTabStop(t.active.CursorX, t.active.Cols())
		t.active.PendingWrap = false
	case b == 0x07:
		t.bell.Bell()
	case b == 0x0E: // SO: shift out to G1 (line-drawing support, §10)
		t.activeG = 1
	case b == 0x0F: // SI: shift in to G0
		t.activeG = 0
	case b < 0x20:
		// ignored per spec.md §4.4
	default:
		t.feedPrintable(b)
	}
}

func nextTabStop(col, cols int) int {
	next := (col/8 + 1) * 8
	if next > cols-1 {
		return cols - 1
	}
	return next
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (t *Terminal) stepEsc(b byte) {
	switch b {
	case '[':
		t.csiBuf = t.csiBuf[:0]
		t.private = 0
		t.state = stateCSI
	case ']':
		t.oscBuf = t.oscBuf[:0]
		t.state = stateOSC
	case '7':
		t.active.SaveCursor()
		t.state = stateGround
	case '8':
		t.active.RestoreCursor()
		t.state = stateGround
	case '(':
		t.state = stateEscG0
	case ')':
		t.state = stateEscG1
	case '#':
		t.state = stateEscHash
	default:
		t.state = stateGround
	}
}

// decAlignmentTest implements DECALN (ESC # 8): fills the screen with 'E',
// resets margins, moves cursor home. Supplemented per SPEC_FULL.md §10 —
// cheap, total, and a standard render-path test pattern.
func (t *Terminal) decAlignmentTest() {
	g := t.active
	attr := t.defaultAttr
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.set(r, c, Cell{Ch: 'E', Attr: attr})
		}
	}
	g.ScrollTop = 0
	g.ScrollBottom = g.Rows() - 1
	g.CursorX, g.CursorY = 0, 0
	g.PendingWrap = false
}

func (t *Terminal) stepCSI(b byte) {
	switch {
	case b >= 0x20 && b <= 0x3F:
		if len(t.csiBuf) < maxCSIBuf {
			t.csiBuf = append(t.csiBuf, b)
		}
	case b >= 0x40 && b <= 0x7E:
		t.dispatchCSI(b)
		t.state = stateGround
	default:
		t.state = stateGround
	}
}

func (t *Terminal) stepOSC(b byte) {
	switch b {
	case 0x07:
		t.handleOSC()
		t.state = stateGround
	case 0x1B:
		t.state = stateOSCEsc
	default:
		if len(t.oscBuf) < maxOSCBuf {
			t.oscBuf = append(t.oscBuf, b)
		}
		// overflow beyond maxOSCBuf is silently truncated, per spec.md §4.4
	}
}

// stepOSCEsc handles the byte after an ESC seen inside an OSC string. A
// '\' completes the ST terminator (ESC \) and is consumed, not printed; any
// other byte means the ESC wasn't a terminator at all but the start of a
// fresh escape sequence, which is replayed through stepEsc instead of
// dropped.
func (t *Terminal) stepOSCEsc(b byte) {
	t.handleOSC()
	t.state = stateGround
	if b != '\\' {
		t.stepEsc(b)
	}
}

func (t *Terminal) handleOSC() {
	payload := string(t.oscBuf)
	idx := strings.IndexByte(payload, ';')
	if idx < 0 {
		return
	}
	ps, pt := payload[:idx], payload[idx+1:]
	switch ps {
	case "0", "1", "2":
		t.Title = pt
		t.titleSink.SetTitle(pt)
	}
}
