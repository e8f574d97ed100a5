package vterm

import "testing"

type fakeResponder struct{ got []byte }

func (f *fakeResponder) Respond(data []byte) { f.got = append(f.got, data...) }

func TestCSI_DSR_CursorPositionReport(t *testing.T) {
	resp := &fakeResponder{}
	term := New(10, 10, WithResponder(resp))
	term.Write([]byte("\x1b[3;4H\x1b[6n"))

	want := "\x1b[3;4R"
	if string(resp.got) != want {
		t.Fatalf("DSR response = %q, want %q", resp.got, want)
	}
}

func TestCSI_InsertAndDeleteChar(t *testing.T) {
	term := New(1, 10)
	term.Write([]byte("ABCDE"))
	term.Write([]byte("\x1b[1;2H")) // cursor at col 1 (0-indexed)
	term.Write([]byte("\x1b[2@"))   // insert 2 blanks

	g := term.active
	got := string([]rune{g.At(0, 0).Ch, g.At(0, 1).Ch, g.At(0, 2).Ch, g.At(0, 3).Ch})
	if got != "A  B" {
		t.Fatalf("after ICH: %q, want %q", got, "A  B")
	}

	term2 := New(1, 10)
	term2.Write([]byte("ABCDE"))
	term2.Write([]byte("\x1b[1;2H"))
	term2.Write([]byte("\x1b[2P")) // delete 2 chars

	g2 := term2.active
	got2 := string([]rune{g2.At(0, 0).Ch, g2.At(0, 1).Ch, g2.At(0, 2).Ch})
	if got2 != "ADE" {
		t.Fatalf("after DCH: %q, want %q", got2, "ADE")
	}
}

func TestCSI_InsertAndDeleteLine(t *testing.T) {
	term := New(4, 3)
	term.Write([]byte("AAA\r\nBBB\r\nCCC\r\nDDD"))
	term.Write([]byte("\x1b[2;1H")) // row 1 (0-indexed)
	term.Write([]byte("\x1b[L"))    // insert 1 blank line

	g := term.active
	if g.At(1, 0).Ch != ' ' {
		t.Fatalf("row1 after IL = %q, want blank", g.At(1, 0).Ch)
	}
	if g.At(2, 0).Ch != 'B' {
		t.Fatalf("row2 after IL = %q, want 'B'", g.At(2, 0).Ch)
	}
}

func TestCSI_TabStopsEveryEight(t *testing.T) {
	term := New(1, 20)
	term.Write([]byte("\t"))
	if term.active.CursorX != 8 {
		t.Fatalf("cursor after first tab = %d, want 8", term.active.CursorX)
	}
	term.Write([]byte("\t"))
	if term.active.CursorX != 16 {
		t.Fatalf("cursor after second tab = %d, want 16", term.active.CursorX)
	}
}

func TestCSI_UnknownModesIgnored(t *testing.T) {
	term := New(5, 5)
	term.Write([]byte("\x1b[?9999h"))
	term.Write([]byte("X"))
	if term.active.At(0, 0).Ch != 'X' {
		t.Fatal("unknown DEC mode sequence should not disturb subsequent input")
	}
}

func TestCSI_ParamOverflowTruncatesTo16(t *testing.T) {
	term := New(5, 5)
	var buf []byte
	buf = append(buf, "\x1b["...)
	for i := 0; i < 20; i++ {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = append(buf, '1')
	}
	buf = append(buf, 'm')
	term.Write(buf) // should not panic despite 20 params

	term.Write([]byte("Y"))
	if term.active.At(0, 0).Ch != 'Y' {
		t.Fatal("parser should recover cleanly after an oversized param list")
	}
}

func TestOSC_STTerminatorConsumesBackslash(t *testing.T) {
	term := New(5, 10)
	term.Write([]byte("\x1b]0;hello\x1b\\X"))

	if term.Title != "hello" {
		t.Fatalf("Title = %q, want %q", term.Title, "hello")
	}
	if term.active.At(0, 0).Ch != 'X' {
		t.Fatalf("cell0 = %q, want 'X' with no stray backslash printed", term.active.At(0, 0).Ch)
	}
	if term.active.At(0, 1).Ch != ' ' {
		t.Fatalf("cell1 = %q, want blank", term.active.At(0, 1).Ch)
	}
}

func TestOSC_BareESCWithoutBackslashStartsNewEscape(t *testing.T) {
	term := New(5, 10)
	// ESC ] 0 ; hi ESC [ (not a '\') then 'H' dispatches CUP, not ST.
	term.Write([]byte("\x1b]0;hi\x1b[2;3HZ"))

	if term.Title != "hi" {
		t.Fatalf("Title = %q, want %q", term.Title, "hi")
	}
	if term.active.At(1, 2).Ch != 'Z' {
		t.Fatalf("cell at (1,2) = %q, want 'Z' (CUP should have been replayed)", term.active.At(1, 2).Ch)
	}
}
