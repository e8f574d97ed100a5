// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.vterm.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CursorShape selects how the cursor cell is drawn.
type CursorShape string

const (
	CursorBlock     CursorShape = "block"
	CursorUnderline CursorShape = "underline"
	CursorBar       CursorShape = "bar"
	CursorHollow    CursorShape = "hollow"
	CursorImage     CursorShape = "image"
)

// Config holds all user-configurable settings (spec.md §6's configuration
// table), adapted in place from the teacher's multi-pane DefaultConfig/Load
// shape: yaml tags, a package-level DefaultConfig(), and Load()'s
// merge-with-defaults-then-clamp pattern are all kept; fields specific to
// the teacher's multi-tab/pane/Claude-launcher UI (MaxPanesPerTab,
// SidebarWidth, ClaudeCommand, ClaudeModels, CommitReminderMinutes) are
// dropped — no SPEC_FULL.md component has a tab bar, sidebar or launcher
// dialog to serve them.
type Config struct {
	// Shell is the command spawned as the child process. Empty means
	// $SHELL (or %COMSPEC%/cmd.exe on Windows).
	Shell string `yaml:"shell"`

	// DefaultDir is the child's working directory. Empty means the
	// current working directory at launch time.
	DefaultDir string `yaml:"default_dir"`

	// Rows and Cols size a freshly created grid before the first resize
	// event arrives from the UI adapter.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// ScrollbackLines bounds the scrollback ring (spec.md §3 default 1000).
	ScrollbackLines int `yaml:"scrollback_lines"`

	// TrueColor, when set, exports COLORTERM=truecolor to the child. The
	// renderer does not read it: Snapshot.Render always emits 24-bit colour.
	TrueColor bool `yaml:"truecolor"`

	// DefaultFG and DefaultBG are xterm-256 palette indices applied to a
	// freshly reset drawing attribute.
	DefaultFG uint8 `yaml:"default_fg"`
	DefaultBG uint8 `yaml:"default_bg"`

	// CursorColor, SelectionFG and SelectionBG are 0xRRGGBB truecolor
	// values used only by the renderer, never written into grid cells.
	CursorColor uint32 `yaml:"cursor_color"`
	SelectionFG uint32 `yaml:"selection_fg"`
	SelectionBG uint32 `yaml:"selection_bg"`

	// UnderlineColor overrides the glyph colour for underlines when
	// non-zero; 0 means "use the cell's own foreground".
	UnderlineColor uint32 `yaml:"underline_color"`

	// CursorShape selects how the renderer draws the cursor cell.
	CursorShape CursorShape `yaml:"cursor_shape"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Shell:           "",
		DefaultDir:      "",
		Rows:            24,
		Cols:            80,
		ScrollbackLines: 1000,
		TrueColor:       true,
		DefaultFG:       7,
		DefaultBG:       0,
		CursorColor:     0xFFFFFF,
		SelectionFG:     0x000000,
		SelectionBG:     0xAAAAAA,
		UnderlineColor:  0,
		CursorShape:     CursorBlock,
	}
}

// configPath returns the path to ~/.vterm.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vterm.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet – write defaults for future editing
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// Apply sensible bounds
	if cfg.Rows < 1 {
		cfg.Rows = 24
	}
	if cfg.Cols < 1 {
		cfg.Cols = 80
	}
	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}

	validShapes := map[CursorShape]bool{
		CursorBlock: true, CursorUnderline: true, CursorBar: true,
		CursorHollow: true, CursorImage: true,
	}
	if !validShapes[cfg.CursorShape] {
		cfg.CursorShape = CursorBlock
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# vterm configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
