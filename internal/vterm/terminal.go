// Package vterm implements the core of a VT100/ANSI-compatible terminal
// emulator: UTF-8 decoding, East Asian Width classification, the primary
// and alternate cell grids with scrollback and selection, and the
// control-sequence parser state machine that drives them. It owns no PTY
// and no renderer — see internal/ptysession and internal/eventloop for the
// collaborators that drive this package against a real child process and a
// real display.
package vterm

import "sync"

type parserState int

const (
	stateGround parserState = iota
	stateEsc
	stateEscG0
	stateEscG1
	stateEscHash
	stateCSI
	stateOSC
	stateOSCEsc
)

const (
	maxCSIBuf = 256
	maxOSCBuf = 512
)

// Terminal is the single owned value bundling grid + parser + modes that
// spec.md §9 asks for in place of the original's global state: constructing
// many independent Terminals is just calling New again.
type Terminal struct {
	mu sync.Mutex

	primary *Grid
	alt     *Grid
	active  *Grid
	inAlt   bool

	scrollback   *Scrollback
	scrollOffset int

	sel Selection

	decoder  UTF8Decoder
	state    parserState
	csiBuf   []byte
	oscBuf   []byte
	private  byte // '?' when the CSI sequence carries a DEC private prefix
	g0, g1   byte // 'B' = ASCII, '0' = DEC Special Graphics (line drawing)
	activeG  int

	CursorVisible bool
	AutoWrap      bool

	Title string

	defaultAttr CellAttr

	bell      BellSink
	titleSink TitleSink
	responder Responder
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

func WithScrollbackCapacity(n int) Option {
	return func(t *Terminal) { t.scrollback = NewScrollback(n) }
}

func WithBellSink(b BellSink) Option {
	return func(t *Terminal) { t.bell = b }
}

func WithTitleSink(s TitleSink) Option {
	return func(t *Terminal) { t.titleSink = s }
}

func WithResponder(r Responder) Option {
	return func(t *Terminal) { t.responder = r }
}

// WithDefaultColors overrides the palette indices SGR 0/39/49 reset to and
// that freshly cleared cells carry, in place of DefaultAttr's fg=7/bg=0.
func WithDefaultColors(fg, bg uint8) Option {
	return func(t *Terminal) { t.defaultAttr.FG, t.defaultAttr.BG = fg, bg }
}

// New constructs a Terminal with a rows x cols primary grid. Scrollback
// defaults to 1000 lines (spec.md §6) unless overridden.
func New(rows, cols int, opts ...Option) *Terminal {
	t := &Terminal{
		CursorVisible: true,
		AutoWrap:      true,
		g0:            'B',
		g1:            'B',
		defaultAttr:   DefaultAttr,
		bell:          NoopBell{},
		titleSink:     NoopTitle{},
		responder:     NoopResponder{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.scrollback == nil {
		t.scrollback = NewScrollback(1000)
	}
	t.primary = NewGrid(rows, cols, t.scrollback, t.defaultAttr)
	t.alt = NewGrid(rows, cols, nil, t.defaultAttr)
	t.active = t.primary
	return t
}

// SetResponder plugs in the writer DSR (and other application) replies are
// sent to. Exists alongside WithResponder because the real responder (the
// PTY session) is typically constructed from the Terminal itself, so it
// can't be supplied as a New option at construction time.
func (t *Terminal) SetResponder(r Responder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responder = r
}

func (t *Terminal) Rows() int { return t.active.Rows() }
func (t *Terminal) Cols() int { return t.active.Cols() }

// Write feeds raw child-process bytes through the parser, mutating the
// active grid. Safe to call with a slice split at any byte boundary across
// calls (spec.md §4.1/§8 law).
func (t *Terminal) Write(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.step(b)
	}
	return len(data), nil
}

// Resize reallocates both grids to rows x cols (spec.md §9's Open Question:
// both buffers always keep identical dimensions so a resize while on the
// alternate screen can never corrupt the inactive one), clips cursors, and
// clears pending_wrap.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.primary.Resize(rows, cols)
	t.alt.Resize(rows, cols)
}

// ScrollBy adjusts scroll_offset by delta lines, clamped to
// [0, scrollback.Len()].
func (t *Terminal) ScrollBy(delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollOffset = clip(t.scrollOffset+delta, 0, t.scrollback.Len())
}

// ScrollOffset reports the current scroll_offset (0 = live view).
func (t *Terminal) ScrollOffset() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrollOffset
}

func (t *Terminal) StartSelection(p Point)  { t.mu.Lock(); defer t.mu.Unlock(); t.sel.Start(p) }
func (t *Terminal) UpdateSelection(p Point) { t.mu.Lock(); defer t.mu.Unlock(); t.sel.Update(p) }
func (t *Terminal) EndSelection(p Point)    { t.mu.Lock(); defer t.mu.Unlock(); t.sel.End(p) }
func (t *Terminal) ClearSelection()         { t.mu.Lock(); defer t.mu.Unlock(); t.sel.Clear() }

// GetSelectedText returns an owned copy of the selected text (spec.md §9's
// design note: value semantics instead of the original's shared buffer
// later aliased by the clipboard path).
func (t *Terminal) GetSelectedText() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sel.ExtractText(t)
}

// IsSelected reports whether (x,y) in visible-space is part of the current
// selection; used by a renderer to highlight cells.
func (t *Terminal) IsSelected(x, y int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sel.IsSelected(x, y)
}

func (t *Terminal) effectiveScrollbackLen() int {
	if t.inAlt {
		return 0
	}
	return t.scrollback.Len()
}

// VisibleRowCount implements the vterm.VisibleLine contract selection
// extraction walks: the addressable space is scrollback history followed
// by the active grid's live rows.
func (t *Terminal) VisibleRowCount() int {
	return t.effectiveScrollbackLen() + t.active.Rows()
}

func (t *Terminal) VisibleCellAt(y, x int) Cell {
	sbLen := t.effectiveScrollbackLen()
	if y < sbLen {
		row := t.scrollback.Line(y)
		if x < 0 || x >= len(row) {
			return Cell{Ch: ' '}
		}
		return row[x]
	}
	return t.active.At(y-sbLen, x)
}

func (t *Terminal) VisibleRowWidth(y int) int {
	sbLen := t.effectiveScrollbackLen()
	if y < sbLen {
		return len(t.scrollback.Line(y))
	}
	return t.active.Cols()
}

// PasteBytes feeds UTF-8 bytes into the active grid as if they were typed,
// without interpreting them as control sequences (spec.md §6 paste_bytes);
// callers that want bracketed-paste framing apply it before calling this.
func (t *Terminal) PasteBytes(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.feedPrintable(b)
	}
}

func (t *Terminal) feedPrintable(b byte) {
	status, r, resync := t.decoder.Feed(b)
	switch status {
	case DecodeComplete:
		t.putRune(r)
	case DecodeInvalid:
		t.putRune(r)
		if resync {
			t.feedPrintable(b)
		}
	}
}

func (t *Terminal) putRune(r rune) {
	if t.activeG == 0 && t.g0 == '0' || t.activeG == 1 && t.g1 == '0' {
		if translated, ok := lineDrawing[byte(r)]; ok && r < 0x80 {
			r = translated
		}
	}
	if !t.AutoWrap && t.active.PendingWrap {
		// DECAWM reset: stay on the last column and overwrite it.
		t.active.PendingWrap = false
		t.active.CursorX = t.active.Cols() - 1
	}
	t.active.Put(r)
}
