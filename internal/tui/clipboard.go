package tui

import (
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// copySelectionToClipboard reports the current selection to the host
// terminal's system clipboard via OSC 52, so a selection made inside this
// emulator can be pasted outside it — the same integration tmux/wezterm
// use. Writes to os.Stdout, the real outer terminal, never to the child
// PTY (copying must never look like typed input to the shell).
func (m *Model) copySelectionToClipboard() {
	text := m.term.GetSelectedText()
	if text == "" {
		return
	}
	osc52.New(text).WriteTo(os.Stdout)
}
