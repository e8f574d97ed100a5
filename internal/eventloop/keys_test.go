package eventloop

import (
	"bytes"
	"testing"
)

func TestTranslateKey_Table(t *testing.T) {
	cases := []struct {
		name string
		ev   KeyEvent
		want []byte
	}{
		{"enter", KeyEvent{Key: KeyEnter}, []byte("\r")},
		{"backspace", KeyEvent{Key: KeyBackspace}, []byte{0x7F}},
		{"tab", KeyEvent{Key: KeyTab}, []byte("\t")},
		{"esc", KeyEvent{Key: KeyEsc}, []byte{0x1B}},
		{"up", KeyEvent{Key: KeyUp}, []byte("\x1b[A")},
		{"down", KeyEvent{Key: KeyDown}, []byte("\x1b[B")},
		{"right", KeyEvent{Key: KeyRight}, []byte("\x1b[C")},
		{"left", KeyEvent{Key: KeyLeft}, []byte("\x1b[D")},
		{"home", KeyEvent{Key: KeyHome}, []byte("\x1b[H")},
		{"end", KeyEvent{Key: KeyEnd}, []byte("\x1b[F")},
		{"insert", KeyEvent{Key: KeyInsert}, []byte("\x1b[2~")},
		{"delete", KeyEvent{Key: KeyDelete}, []byte("\x1b[3~")},
		{"pageup", KeyEvent{Key: KeyPageUp}, []byte("\x1b[5~")},
		{"pagedown", KeyEvent{Key: KeyPageDown}, []byte("\x1b[6~")},
		{"printable", KeyEvent{Key: KeyPrintable, Text: "あ"}, []byte("あ")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TranslateKey(c.ev)
			if !bytes.Equal(got, c.want) {
				t.Fatalf("TranslateKey(%v) = %q, want %q", c.ev, got, c.want)
			}
		})
	}
}

func TestTranslateKey_ShiftPageNeverReachesPTY(t *testing.T) {
	if got := TranslateKey(KeyEvent{Key: KeyShiftPageUp}); got != nil {
		t.Fatalf("KeyShiftPageUp translated to %q, want nil", got)
	}
	if got := TranslateKey(KeyEvent{Key: KeyShiftPageDown}); got != nil {
		t.Fatalf("KeyShiftPageDown translated to %q, want nil", got)
	}
}
