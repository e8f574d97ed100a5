package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietvt/vterm/internal/eventloop"
)

func TestTranslateKey_PrintableAndControl(t *testing.T) {
	ev, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !ok || ev.Key != eventloop.KeyPrintable || ev.Text != "x" {
		t.Fatalf("translateKey(rune x) = %+v, %v", ev, ok)
	}

	ev, ok = translateKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !ok || ev.Key != eventloop.KeyEnter {
		t.Fatalf("translateKey(Enter) = %+v, %v", ev, ok)
	}
}

func TestTranslateKey_CtrlPgUpCtrlPgDownScrollScrollback(t *testing.T) {
	ev, ok := translateKey(tea.KeyMsg{Type: tea.KeyCtrlPgUp})
	if !ok || ev.Key != eventloop.KeyShiftPageUp {
		t.Fatalf("translateKey(Ctrl+PgUp) = %+v, %v, want KeyShiftPageUp", ev, ok)
	}
	ev, ok = translateKey(tea.KeyMsg{Type: tea.KeyCtrlPgDown})
	if !ok || ev.Key != eventloop.KeyShiftPageDown {
		t.Fatalf("translateKey(Ctrl+PgDown) = %+v, %v, want KeyShiftPageDown", ev, ok)
	}
}

func TestTranslateKey_CtrlUCtrlDForwardToShell(t *testing.T) {
	// Ctrl+U/Ctrl+D must reach the shell as literal control bytes (kill-line,
	// EOF) rather than being captured for scrollback.
	ev, ok := translateKey(tea.KeyMsg{Type: tea.KeyCtrlU})
	if !ok || ev.Key != eventloop.KeyPrintable || ev.Text != "\x15" {
		t.Fatalf("translateKey(Ctrl+U) = %+v, %v, want printable 0x15", ev, ok)
	}
	ev, ok = translateKey(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !ok || ev.Key != eventloop.KeyPrintable || ev.Text != "\x04" {
		t.Fatalf("translateKey(Ctrl+D) = %+v, %v, want printable 0x04", ev, ok)
	}
}

func TestTranslateKey_UnmappedReturnsFalse(t *testing.T) {
	if _, ok := translateKey(tea.KeyMsg{Type: tea.KeyType(9999)}); ok {
		t.Fatal("expected unmapped key type to return ok=false")
	}
}
