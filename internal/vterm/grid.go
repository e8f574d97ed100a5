package vterm

// Grid is a primary or alternate cell buffer together with the cursor and
// scrolling-region state that operate on it. Grounded on the teacher's
// Screen type (internal/terminal/screen.go, screen_ops.go) — same
// put/lineFeed/scrollUp/scrollDown/eraseDisplay/eraseLine/insertLines/
// deleteLines/insertChars/deleteChars decomposition, generalized from the
// teacher's single-int CellStyle to spec.md's CellAttr model and made to
// follow the pending-wrap model of spec.md §4.3 exactly (the teacher's
// putChar wraps eagerly instead of deferring wrap to the next printable
// character).
type Grid struct {
	rows, cols int
	cells      []Cell

	CursorX, CursorY int
	PendingWrap      bool

	Attr CellAttr // current drawing attribute (SGR state)

	// ScrollTop/ScrollBottom are 0-indexed, inclusive; default the full grid.
	ScrollTop, ScrollBottom int

	Saved SavedCursor

	// Scrollback is non-nil only for the primary grid; the alternate screen
	// never contributes to scrollback (spec.md §3).
	Scrollback *Scrollback
}

// NewGrid allocates a blank rows x cols grid carrying defaultAttr as its
// initial (and erase-to) drawing attribute. scrollback may be nil (used for
// the alternate screen).
func NewGrid(rows, cols int, scrollback *Scrollback, defaultAttr CellAttr) *Grid {
	g := &Grid{
		rows:         rows,
		cols:         cols,
		cells:        make([]Cell, rows*cols),
		ScrollBottom: rows - 1,
		Scrollback:   scrollback,
		Attr:         defaultAttr,
	}
	g.blankAll()
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) idx(row, col int) int { return row*g.cols + col }

func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{Ch: ' '}
	}
	return g.cells[g.idx(row, col)]
}

func (g *Grid) set(row, col int, c Cell) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[g.idx(row, col)] = c
}

func (g *Grid) blankAll() {
	for i := range g.cells {
		g.cells[i] = Cell{Ch: ' ', Attr: g.Attr}
	}
}

func (g *Grid) blankRow(row int, attr CellAttr) {
	if row < 0 || row >= g.rows {
		return
	}
	base := g.idx(row, 0)
	for c := 0; c < g.cols; c++ {
		g.cells[base+c] = BlankCell(attr)
	}
}

// Put writes cp at the cursor with the current attribute, following
// spec.md §4.3's put(cp) contract exactly, including the deferred
// (pending_wrap) line-wrap model and double-width-at-right-edge handling.
func (g *Grid) Put(cp rune) {
	w := width(cp)

	if g.PendingWrap {
		g.CursorX = 0
		g.Newline()
		g.PendingWrap = false
	}

	if w == 2 && g.CursorX == g.cols-1 {
		g.set(g.CursorY, g.CursorX, BlankCell(g.Attr))
		g.CursorX = 0
		g.Newline()
	}

	g.set(g.CursorY, g.CursorX, Cell{Ch: cp, Attr: g.Attr})
	if w == 2 {
		g.set(g.CursorY, g.CursorX+1, Cell{Ch: ' ', Attr: g.withWideSpacer()})
	}

	g.CursorX += w
	if g.CursorX >= g.cols {
		g.CursorX = g.cols
		g.PendingWrap = true
	}
}

func (g *Grid) withWideSpacer() CellAttr {
	a := g.Attr
	a.Flags |= FlagWideSpacer
	return a
}

// Newline moves the cursor down one row, scrolling the region if the
// cursor is already at scroll_bottom.
func (g *Grid) Newline() {
	g.CursorY++
	if g.CursorY > g.ScrollBottom {
		g.ScrollUp(1)
		g.CursorY = g.ScrollBottom
	}
}

// ReverseNewline moves the cursor up one row, scrolling down if the cursor
// is already at scroll_top (the Reverse Index operation). The parser does
// not call it: ESC M is discarded like other unrecognised escapes.
func (g *Grid) ReverseNewline() {
	g.CursorY--
	if g.CursorY < g.ScrollTop {
		g.ScrollDown(1)
		g.CursorY = g.ScrollTop
	}
}

// ScrollUp shifts n lines out of the top of the scrolling region, capturing
// each to scrollback when the region's top is the grid's top row (i.e. this
// is the primary grid's natural scroll, not an app-addressed SU within a
// sub-region — spec.md §4.3).
func (g *Grid) ScrollUp(n int) {
	for i := 0; i < n; i++ {
		if g.ScrollTop == 0 && g.Scrollback != nil {
			row := make([]Cell, g.cols)
			copy(row, g.cells[g.idx(g.ScrollTop, 0):g.idx(g.ScrollTop, 0)+g.cols])
			g.Scrollback.Push(row)
		}
		for r := g.ScrollTop; r < g.ScrollBottom; r++ {
			copy(g.cells[g.idx(r, 0):g.idx(r, 0)+g.cols], g.cells[g.idx(r+1, 0):g.idx(r+1, 0)+g.cols])
		}
		g.blankRow(g.ScrollBottom, g.Attr)
	}
}

// ScrollDown shifts n lines into the top of the scrolling region, pushing
// the bottom line of the region out.
func (g *Grid) ScrollDown(n int) {
	for i := 0; i < n; i++ {
		for r := g.ScrollBottom; r > g.ScrollTop; r-- {
			copy(g.cells[g.idx(r, 0):g.idx(r, 0)+g.cols], g.cells[g.idx(r-1, 0):g.idx(r-1, 0)+g.cols])
		}
		g.blankRow(g.ScrollTop, g.Attr)
	}
}

// EraseDisplay implements ED (n=0 cursor-to-end, 1 start-to-cursor, 2 all,
// 3 all — treated as n=2 plus scrollback clear, see DESIGN.md).
func (g *Grid) EraseDisplay(n int) {
	switch n {
	case 0:
		for c := g.CursorX; c < g.cols; c++ {
			g.set(g.CursorY, c, BlankCell(g.Attr))
		}
		for r := g.CursorY + 1; r < g.rows; r++ {
			g.blankRow(r, g.Attr)
		}
	case 1:
		for r := 0; r < g.CursorY; r++ {
			g.blankRow(r, g.Attr)
		}
		for c := 0; c <= g.CursorX && c < g.cols; c++ {
			g.set(g.CursorY, c, BlankCell(g.Attr))
		}
	case 2, 3:
		for r := 0; r < g.rows; r++ {
			g.blankRow(r, g.Attr)
		}
		if n == 3 && g.Scrollback != nil {
			g.Scrollback.Clear()
		}
	}
}

// EraseLine implements EL (n=0 cursor-to-end, 1 start-to-cursor, 2 all).
func (g *Grid) EraseLine(n int) {
	switch n {
	case 0:
		for c := g.CursorX; c < g.cols; c++ {
			g.set(g.CursorY, c, BlankCell(g.Attr))
		}
	case 1:
		for c := 0; c <= g.CursorX && c < g.cols; c++ {
			g.set(g.CursorY, c, BlankCell(g.Attr))
		}
	case 2:
		g.blankRow(g.CursorY, g.Attr)
	}
}

// InsertLine inserts n blank lines at the cursor row, only when the cursor
// sits inside the scrolling region (spec.md §4.3).
func (g *Grid) InsertLine(n int) {
	if g.CursorY < g.ScrollTop || g.CursorY > g.ScrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		for r := g.ScrollBottom; r > g.CursorY; r-- {
			copy(g.cells[g.idx(r, 0):g.idx(r, 0)+g.cols], g.cells[g.idx(r-1, 0):g.idx(r-1, 0)+g.cols])
		}
		g.blankRow(g.CursorY, g.Attr)
	}
}

// DeleteLine deletes n lines at the cursor row, only when the cursor sits
// inside the scrolling region.
func (g *Grid) DeleteLine(n int) {
	if g.CursorY < g.ScrollTop || g.CursorY > g.ScrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		for r := g.CursorY; r < g.ScrollBottom; r++ {
			copy(g.cells[g.idx(r, 0):g.idx(r, 0)+g.cols], g.cells[g.idx(r+1, 0):g.idx(r+1, 0)+g.cols])
		}
		g.blankRow(g.ScrollBottom, g.Attr)
	}
}

// InsertChar inserts n blank cells at the cursor, shifting the remainder of
// the line right (ICH).
func (g *Grid) InsertChar(n int) {
	base := g.idx(g.CursorY, 0)
	row := g.cells[base : base+g.cols]
	for i := g.cols - 1; i >= g.CursorX+n; i-- {
		row[i] = row[i-n]
	}
	for i := g.CursorX; i < g.CursorX+n && i < g.cols; i++ {
		row[i] = BlankCell(g.Attr)
	}
}

// DeleteChar deletes n cells at the cursor, shifting the remainder of the
// line left (DCH).
func (g *Grid) DeleteChar(n int) {
	base := g.idx(g.CursorY, 0)
	row := g.cells[base : base+g.cols]
	for i := g.CursorX; i < g.cols; i++ {
		if i+n < g.cols {
			row[i] = row[i+n]
		} else {
			row[i] = BlankCell(g.Attr)
		}
	}
}

// EraseChar clears n cells at the cursor in place, without shifting (ECH).
func (g *Grid) EraseChar(n int) {
	for i := 0; i < n && g.CursorX+i < g.cols; i++ {
		g.set(g.CursorY, g.CursorX+i, BlankCell(g.Attr))
	}
}

// SetCursor clips (x,y) into the grid and clears pending_wrap.
func (g *Grid) SetCursor(x, y int) {
	g.CursorX = clip(x, 0, g.cols-1)
	g.CursorY = clip(y, 0, g.rows-1)
	g.PendingWrap = false
}

// SaveCursor captures (x,y,attr) into Saved.
func (g *Grid) SaveCursor() {
	g.Saved = SavedCursor{X: g.CursorX, Y: g.CursorY, Attr: g.Attr}
}

// RestoreCursor restores the last SaveCursor snapshot.
func (g *Grid) RestoreCursor() {
	g.CursorX = clip(g.Saved.X, 0, g.cols-1)
	g.CursorY = clip(g.Saved.Y, 0, g.rows-1)
	g.Attr = g.Saved.Attr
	g.PendingWrap = false
}

// Resize reallocates the grid to newRows x newCols, copying
// min(old,new) content from the top-left, clipping the cursor and scroll
// region into the new bounds (spec.md §3/§4.3).
func (g *Grid) Resize(newRows, newCols int) {
	old := g.cells
	oldRows, oldCols := g.rows, g.cols

	g.cells = make([]Cell, newRows*newCols)
	g.rows, g.cols = newRows, newCols
	g.blankAll()

	copyRows := min(oldRows, newRows)
	copyCols := min(oldCols, newCols)
	for r := 0; r < copyRows; r++ {
		srcBase := r * oldCols
		dstBase := r * newCols
		copy(g.cells[dstBase:dstBase+copyCols], old[srcBase:srcBase+copyCols])
	}

	g.CursorX = clip(g.CursorX, 0, newCols-1)
	g.CursorY = clip(g.CursorY, 0, newRows-1)
	g.PendingWrap = false

	if g.ScrollBottom >= newRows || g.ScrollBottom == oldRows-1 {
		g.ScrollBottom = newRows - 1
	}
	g.ScrollTop = clip(g.ScrollTop, 0, newRows-1)
	if g.ScrollTop > g.ScrollBottom {
		g.ScrollTop = 0
	}
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
