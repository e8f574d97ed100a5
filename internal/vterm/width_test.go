package vterm

import "testing"

func TestWidth_Narrow(t *testing.T) {
	cases := []rune{'A', '0', ' ', 0x00FF, 0x0400}
	for _, cp := range cases {
		if w := width(cp); w != 1 {
			t.Errorf("width(%#x) = %d, want 1", cp, w)
		}
	}
}

func TestWidth_Wide(t *testing.T) {
	cases := []rune{0x3042, 0xAC00, 0xFF21, 0x4E2D, 0x30000}
	for _, cp := range cases {
		if w := width(cp); w != 2 {
			t.Errorf("width(%#x) = %d, want 2", cp, w)
		}
	}
}

func TestWidth_RangeBoundaries(t *testing.T) {
	if width(0x1100) != 2 || width(0x115F) != 2 {
		t.Fatal("0x1100-0x115F should be wide")
	}
	if width(0x10FF) != 1 || width(0x1160) != 1 {
		t.Fatal("just outside 0x1100-0x115F should be narrow")
	}
}

func TestDisplayWidth_ASCII(t *testing.T) {
	if DisplayWidth("hello") != 5 {
		t.Fatalf("DisplayWidth(hello) = %d, want 5", DisplayWidth("hello"))
	}
}
