package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietvt/vterm/internal/eventloop"
)

// translateKey converts a Bubbletea key message into the eventloop's
// logical KeyEvent. Grounded on the teacher's keyToBytes (internal/app/
// model.go), generalized to return a logical Key instead of raw bytes so
// the event loop's own TranslateKey table stays the single source of
// truth for PTY byte sequences.
//
// Ctrl+PageUp/Ctrl+PageDown are bound locally to scroll the view back/
// forward through scrollback — a choice made here, not in the event loop,
// since no standard Bubbletea key constant exists for Shift+PageUp/
// PageDown across terminals. Ctrl+PageUp/PageDown has no readline binding
// to shadow (unlike the Ctrl+U/Ctrl+D this used to sit on, which collided
// with shell kill-line and EOF); everything else forwards to the child
// exactly as the teacher did it key-for-key.
func translateKey(msg tea.KeyMsg) (eventloop.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return eventloop.KeyEvent{Key: eventloop.KeyPrintable, Text: string(msg.Runes)}, true
	case tea.KeySpace:
		return eventloop.KeyEvent{Key: eventloop.KeyPrintable, Text: " "}, true
	case tea.KeyEnter:
		return eventloop.KeyEvent{Key: eventloop.KeyEnter}, true
	case tea.KeyBackspace:
		return eventloop.KeyEvent{Key: eventloop.KeyBackspace}, true
	case tea.KeyTab:
		return eventloop.KeyEvent{Key: eventloop.KeyTab}, true
	case tea.KeyEsc:
		return eventloop.KeyEvent{Key: eventloop.KeyEsc}, true
	case tea.KeyUp:
		return eventloop.KeyEvent{Key: eventloop.KeyUp}, true
	case tea.KeyDown:
		return eventloop.KeyEvent{Key: eventloop.KeyDown}, true
	case tea.KeyLeft:
		return eventloop.KeyEvent{Key: eventloop.KeyLeft}, true
	case tea.KeyRight:
		return eventloop.KeyEvent{Key: eventloop.KeyRight}, true
	case tea.KeyHome:
		return eventloop.KeyEvent{Key: eventloop.KeyHome}, true
	case tea.KeyEnd:
		return eventloop.KeyEvent{Key: eventloop.KeyEnd}, true
	case tea.KeyInsert:
		return eventloop.KeyEvent{Key: eventloop.KeyInsert}, true
	case tea.KeyDelete:
		return eventloop.KeyEvent{Key: eventloop.KeyDelete}, true
	case tea.KeyPgUp:
		return eventloop.KeyEvent{Key: eventloop.KeyPageUp}, true
	case tea.KeyPgDown:
		return eventloop.KeyEvent{Key: eventloop.KeyPageDown}, true
	case tea.KeyCtrlPgUp:
		return eventloop.KeyEvent{Key: eventloop.KeyShiftPageUp}, true
	case tea.KeyCtrlPgDown:
		return eventloop.KeyEvent{Key: eventloop.KeyShiftPageDown}, true
	case tea.KeyCtrlC:
		return eventloop.KeyEvent{Key: eventloop.KeyPrintable, Text: "\x03"}, true
	case tea.KeyCtrlA, tea.KeyCtrlB, tea.KeyCtrlD, tea.KeyCtrlE, tea.KeyCtrlF,
		tea.KeyCtrlG, tea.KeyCtrlH, tea.KeyCtrlJ, tea.KeyCtrlK, tea.KeyCtrlL,
		tea.KeyCtrlN, tea.KeyCtrlO, tea.KeyCtrlP, tea.KeyCtrlQ, tea.KeyCtrlR,
		tea.KeyCtrlS, tea.KeyCtrlT, tea.KeyCtrlU, tea.KeyCtrlV, tea.KeyCtrlW,
		tea.KeyCtrlX, tea.KeyCtrlZ:
		return eventloop.KeyEvent{Key: eventloop.KeyPrintable, Text: string(rune(ctrlByte(msg.Type)))}, true
	}
	return eventloop.KeyEvent{}, false
}

// ctrlByte maps a Bubbletea Ctrl+letter key type to its control byte.
func ctrlByte(t tea.KeyType) byte {
	switch t {
	case tea.KeyCtrlA:
		return 0x01
	case tea.KeyCtrlB:
		return 0x02
	case tea.KeyCtrlD:
		return 0x04
	case tea.KeyCtrlE:
		return 0x05
	case tea.KeyCtrlF:
		return 0x06
	case tea.KeyCtrlG:
		return 0x07
	case tea.KeyCtrlH:
		return 0x08
	case tea.KeyCtrlJ:
		return 0x0a
	case tea.KeyCtrlK:
		return 0x0b
	case tea.KeyCtrlL:
		return 0x0c
	case tea.KeyCtrlN:
		return 0x0e
	case tea.KeyCtrlO:
		return 0x0f
	case tea.KeyCtrlP:
		return 0x10
	case tea.KeyCtrlQ:
		return 0x11
	case tea.KeyCtrlR:
		return 0x12
	case tea.KeyCtrlS:
		return 0x13
	case tea.KeyCtrlT:
		return 0x14
	case tea.KeyCtrlU:
		return 0x15
	case tea.KeyCtrlV:
		return 0x16
	case tea.KeyCtrlW:
		return 0x17
	case tea.KeyCtrlX:
		return 0x18
	case tea.KeyCtrlZ:
		return 0x1a
	}
	return 0
}
