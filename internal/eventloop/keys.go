package eventloop

// Key is a logical key the UI adapter reports; translation to PTY bytes is
// fixed (spec.md §6, "not negotiable, matches xterm conventions").
type Key int

const (
	KeyPrintable Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyShiftPageUp   // scrolls scrollback view; never reaches the PTY
	KeyShiftPageDown // scrolls scrollback view; never reaches the PTY
)

// KeyEvent is a logical key event from the UI adapter. Text carries the
// composed UTF-8 for KeyPrintable.
type KeyEvent struct {
	Key  Key
	Text string
}

// TranslateKey converts a KeyEvent into the byte sequence spec.md §6's
// table pins for the PTY, or nil for keys that never reach the child
// (Shift+PageUp/PageDown, which scroll the local scrollback view instead).
func TranslateKey(ev KeyEvent) []byte {
	switch ev.Key {
	case KeyPrintable:
		return []byte(ev.Text)
	case KeyEnter:
		return []byte("\r")
	case KeyBackspace:
		return []byte{0x7F}
	case KeyTab:
		return []byte("\t")
	case KeyEsc:
		return []byte{0x1B}
	case KeyUp:
		return []byte("\x1b[A")
	case KeyDown:
		return []byte("\x1b[B")
	case KeyRight:
		return []byte("\x1b[C")
	case KeyLeft:
		return []byte("\x1b[D")
	case KeyHome:
		return []byte("\x1b[H")
	case KeyEnd:
		return []byte("\x1b[F")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	default:
		return nil
	}
}
