// Command vterm is a standalone terminal emulator: it loads configuration,
// spawns a shell behind a PTY, and drives the interactive Bubbletea
// frontend until the shell exits. Replaces the teacher's Wails desktop
// shell (main.go) — there is no embedded webview or frontend/dist asset
// bundle here, just a CLI entrypoint over the core described by
// SPEC_FULL.md.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietvt/vterm/internal/config"
	"github.com/quietvt/vterm/internal/tui"
)

func main() {
	cfg := config.Load()

	m, err := tui.New(cfg)
	if err != nil {
		log.Fatalf("vterm: failed to start session: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vterm: %v\n", err)
		os.Exit(1)
	}
}
