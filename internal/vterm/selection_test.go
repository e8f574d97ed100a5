package vterm

import "testing"

func TestSelection_IsSelected_SingleLine(t *testing.T) {
	var sel Selection
	sel.Start(Point{X: 2, Y: 0})
	sel.Update(Point{X: 5, Y: 0})

	for x := 0; x < 2; x++ {
		if sel.IsSelected(x, 0) {
			t.Errorf("(%d,0) should not be selected", x)
		}
	}
	for x := 2; x <= 5; x++ {
		if !sel.IsSelected(x, 0) {
			t.Errorf("(%d,0) should be selected", x)
		}
	}
	if sel.IsSelected(6, 0) {
		t.Error("(6,0) should not be selected")
	}
}

func TestSelection_NormalizesReversedDrag(t *testing.T) {
	var sel Selection
	sel.Start(Point{X: 5, Y: 2})
	sel.Update(Point{X: 1, Y: 0})

	if !sel.IsSelected(3, 0) {
		t.Error("(3,0) should be selected after a reversed drag")
	}
	if !sel.IsSelected(0, 1) {
		t.Error("middle row should be fully selected")
	}
}

func TestSelection_ClearDeactivates(t *testing.T) {
	var sel Selection
	sel.Start(Point{X: 0, Y: 0})
	sel.Update(Point{X: 3, Y: 0})
	sel.Clear()
	if sel.IsSelected(1, 0) {
		t.Error("cleared selection should select nothing")
	}
}

func TestSelection_ExtractText_SkipsWideSpacer(t *testing.T) {
	term := New(1, 10)
	term.Write([]byte("\xe3\x81\x82bc")) // U+3042 b c
	term.StartSelection(Point{X: 0, Y: 0})
	term.EndSelection(Point{X: 3, Y: 0})

	got := term.GetSelectedText()
	want := "あbc"
	if got != want {
		t.Fatalf("GetSelectedText() = %q, want %q", got, want)
	}
}
