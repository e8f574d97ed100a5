package vterm

import "strings"

// Snapshot is a consistent, point-in-time view of the terminal for a
// renderer: dimensions, every visible cell's codepoint and attribute,
// cursor position/visibility, and a selection mask. Grounded on the
// teacher corpus's danielgatis/go-headless-term Snapshot/SnapshotLine/
// SnapshotCell shape, generalized from that package's multi-detail-level
// design down to the single shape spec.md §6's render_snapshot() asks for.
type Snapshot struct {
	Rows, Cols    int
	Cells         []Cell // row-major, len == Rows*Cols
	Selected      []bool // row-major, len == Rows*Cols
	CursorX       int
	CursorY       int
	CursorVisible bool
	Title         string
}

// Snapshot renders the currently visible view: the live grid when
// scroll_offset is 0, or a blend of scrollback and grid rows when scrolled
// back, taken entirely under the terminal's lock so no partial mutation is
// ever observed (spec.md §6).
func (t *Terminal) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	g := t.active
	rows, cols := g.Rows(), g.Cols()
	snap := Snapshot{
		Rows:          rows,
		Cols:          cols,
		Cells:         make([]Cell, rows*cols),
		Selected:      make([]bool, rows*cols),
		CursorX:       g.CursorX,
		CursorY:       g.CursorY,
		CursorVisible: t.CursorVisible,
		Title:         t.Title,
	}

	offset := t.scrollOffset
	if t.inAlt {
		offset = 0
	}

	for r := 0; r < rows; r++ {
		visY := t.effectiveScrollbackLen() - offset + r
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if offset > 0 {
				snap.Cells[idx] = t.cellAtUnlocked(visY, c)
			} else {
				snap.Cells[idx] = g.At(r, c)
			}
			snap.Selected[idx] = t.sel.IsSelected(c, visY)
		}
	}
	return snap
}

// cellAtUnlocked mirrors VisibleCellAt but assumes the caller already
// holds t.mu (Snapshot does).
func (t *Terminal) cellAtUnlocked(y, x int) Cell {
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

// PlainText renders the snapshot's cells as plain text rows, '\n'
// separated, with FlagWideSpacer cells skipped.
func (s Snapshot) PlainText() string {
	var b strings.Builder
	for r := 0; r < s.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.Cols; c++ {
			cell := s.Cells[r*s.Cols+c]
			if cell.IsWideSpacer() {
				continue
			}
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}
