package vterm

import "testing"

// ---------------------------------------------------------------------------
// End-to-end scenarios, spec.md §8. 24x80 grid, default attrs, cursor (0,0).
// ---------------------------------------------------------------------------

func newTestTerminal() *Terminal {
	return New(24, 80)
}

func TestScenario_PlainTextAndWrap(t *testing.T) {
	term := newTestTerminal()
	for i := 0; i < 81; i++ {
		term.Write([]byte("A"))
	}
	term.Write([]byte("\r\n"))

	snap := term.Snapshot()
	for c := 0; c < 80; c++ {
		if snap.Cells[c].Ch != 'A' {
			t.Fatalf("row0 col%d = %q, want 'A'", c, snap.Cells[c].Ch)
		}
	}
	row1 := snap.Cells[80 : 80+80]
	if row1[0].Ch != 'A' {
		t.Fatalf("row1 col0 = %q, want 'A'", row1[0].Ch)
	}
	for c := 1; c < 80; c++ {
		if row1[c].Ch != ' ' {
			t.Fatalf("row1 col%d = %q, want space", c, row1[c].Ch)
		}
	}
	if snap.CursorX != 0 || snap.CursorY != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", snap.CursorX, snap.CursorY)
	}
	if term.active.PendingWrap {
		t.Fatal("pending_wrap should be false after CRLF")
	}
}

func TestScenario_SGRColour(t *testing.T) {
	term := newTestTerminal()
	term.Write([]byte("\x1b[31;1mHI \x1b[0mOK"))

	snap := term.Snapshot()
	h := snap.Cells[0]
	i := snap.Cells[1]
	sp := snap.Cells[2]
	o := snap.Cells[3]
	k := snap.Cells[4]

	if h.Ch != 'H' || h.Attr.FG != 1 || h.Attr.Flags&FlagBold == 0 {
		t.Fatalf("cell0 = %+v, want fg=1 bold 'H'", h)
	}
	if i.Ch != 'I' || i.Attr.FG != 1 || i.Attr.Flags&FlagBold == 0 {
		t.Fatalf("cell1 = %+v, want fg=1 bold 'I'", i)
	}
	if sp.Ch != ' ' {
		t.Fatalf("cell2 = %+v, want space", sp)
	}
	if o.Ch != 'O' || o.Attr != DefaultAttr {
		t.Fatalf("cell3 = %+v, want default attr 'O'", o)
	}
	if k.Ch != 'K' || k.Attr != DefaultAttr {
		t.Fatalf("cell4 = %+v, want default attr 'K'", k)
	}
}

func TestScenario_CUPAndED(t *testing.T) {
	term := newTestTerminal()
	term.Write([]byte("ABC\r\nDEF\x1b[1;1H\x1b[0J"))

	snap := term.Snapshot()
	for _, c := range snap.Cells {
		if c.Ch != ' ' {
			t.Fatalf("expected fully blank grid, found %q", c.Ch)
		}
	}
	if snap.CursorX != 0 || snap.CursorY != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", snap.CursorX, snap.CursorY)
	}
}

func TestScenario_DECSTBMAndLF(t *testing.T) {
	term := newTestTerminal()
	term.Write([]byte("\x1b[2;5r\x1b[5;1H"))
	for i := 0; i < 4; i++ {
		term.Write([]byte("\n"))
	}

	if term.active.CursorX != 0 || term.active.CursorY != 4 {
		t.Fatalf("cursor = (%d,%d), want (0,4)", term.active.CursorX, term.active.CursorY)
	}
}

func TestScenario_WideCharAtRightEdge(t *testing.T) {
	term := New(1, 80)
	term.active.CursorX = 79

	term.Write([]byte("\xe3\x81\x82")) // U+3042, HIRAGANA LETTER A

	g := term.active
	if g.At(0, 79).Ch != ' ' {
		t.Fatalf("(79,0) = %q, want space", g.At(0, 79).Ch)
	}
}

func TestScenario_WideCharWrapsIntoNextRow(t *testing.T) {
	term := New(2, 80)
	term.active.CursorX = 79

	term.Write([]byte("\xe3\x81\x82"))

	g := term.active
	if g.At(1, 0).Ch != 0x3042 {
		t.Fatalf("(0,1) = %q, want U+3042", g.At(1, 0).Ch)
	}
	if !g.At(1, 1).IsWideSpacer() {
		t.Fatal("(1,1) should be a wide-continuation spacer")
	}
	if g.CursorX != 2 || g.CursorY != 1 {
		t.Fatalf("cursor = (%d,%d), want (2,1)", g.CursorX, g.CursorY)
	}
}

func TestScenario_1049RoundTrip(t *testing.T) {
	term := newTestTerminal()
	term.Write([]byte("hello"))
	term.Write([]byte("\x1b[?1049h"))
	term.Write([]byte("XXX"))
	term.Write([]byte("\x1b[?1049l"))

	snap := term.Snapshot()
	got := string([]rune{snap.Cells[0].Ch, snap.Cells[1].Ch, snap.Cells[2].Ch, snap.Cells[3].Ch, snap.Cells[4].Ch})
	if got != "hello" {
		t.Fatalf("primary grid = %q, want %q", got, "hello")
	}
	if snap.CursorX != 5 || snap.CursorY != 0 {
		t.Fatalf("cursor = (%d,%d), want (5,0)", snap.CursorX, snap.CursorY)
	}
}
