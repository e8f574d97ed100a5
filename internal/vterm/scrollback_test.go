package vterm

import "testing"

func TestScrollback_EvictsOldestOnOverflow(t *testing.T) {
	sb := NewScrollback(3)
	for i := 0; i < 5; i++ {
		sb.Push([]Cell{{Ch: rune('0' + i)}})
	}
	if sb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sb.Len())
	}
	want := []rune{'2', '3', '4'}
	for i, w := range want {
		if got := sb.Line(i)[0].Ch; got != w {
			t.Errorf("Line(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestScrollback_ScrollUpCapturesTopLine(t *testing.T) {
	term := New(3, 5)
	term.Write([]byte("row0\r\n"))
	term.Write([]byte("row1\r\n"))
	term.Write([]byte("row2\r\n"))

	if term.scrollback.Len() == 0 {
		t.Fatal("expected at least one scrollback line after 3 newlines on a 3-row grid")
	}
	first := term.scrollback.Line(0)
	got := string([]rune{first[0].Ch, first[1].Ch, first[2].Ch, first[3].Ch})
	if got != "row0" {
		t.Fatalf("oldest scrollback line = %q, want %q", got, "row0")
	}
}

func TestScrollback_AltScreenNeverCaptures(t *testing.T) {
	term := New(2, 5)
	term.Write([]byte("\x1b[?1049h"))
	for i := 0; i < 5; i++ {
		term.Write([]byte("x\r\n"))
	}
	if term.scrollback.Len() != 0 {
		t.Fatalf("scrollback.Len() = %d, want 0 (alt screen must not capture)", term.scrollback.Len())
	}
}
