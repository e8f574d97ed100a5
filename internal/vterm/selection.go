package vterm

import "strings"

// Point is a visible-space coordinate: x is a column, y is a row index
// into scrollback history followed by the live grid, where 0 is the oldest
// scrollback line and the live grid's top row is at the scrollback length
// (spec.md §3).
type Point struct {
	X, Y int
}

// Selection tracks an anchor/head drag selection over visible-space
// coordinates (which may include scrolled-back rows).
type Selection struct {
	Active bool
	Anchor Point
	Head   Point
}

// Start begins a new selection at p.
func (s *Selection) Start(p Point) {
	s.Active = true
	s.Anchor = p
	s.Head = p
}

// Update moves the head of an active selection.
func (s *Selection) Update(p Point) {
	if !s.Active {
		return
	}
	s.Head = p
}

// End finalizes the selection; it remains active (non-empty) until Clear.
func (s *Selection) End(p Point) {
	if !s.Active {
		return
	}
	s.Head = p
}

// Clear deactivates the selection.
func (s *Selection) Clear() {
	*s = Selection{}
}

// normalized returns (anchor, head) such that anchor <= head in reading
// order (row-major, then column).
func (s *Selection) normalized() (Point, Point) {
	a, h := s.Anchor, s.Head
	if a.Y > h.Y || (a.Y == h.Y && a.X > h.X) {
		a, h = h, a
	}
	return a, h
}

// IsSelected reports whether (x,y) falls within the normalised selection.
func (s *Selection) IsSelected(x, y int) bool {
	if !s.Active {
		return false
	}
	a, h := s.normalized()
	if y < a.Y || y > h.Y {
		return false
	}
	if y == a.Y && x < a.X {
		return false
	}
	if y == h.Y && x > h.X {
		return false
	}
	return true
}

// VisibleLine provides read access to a row of cells in visible-space,
// used by ExtractText to walk rows without depending on Terminal directly.
type VisibleLine interface {
	VisibleRowCount() int
	VisibleCellAt(y, x int) Cell
	VisibleRowWidth(y int) int
}

// ExtractText walks the normalised selection range and emits UTF-8 text,
// skipping FlagWideSpacer cells (the right half of a wide glyph already
// emitted by its owning cell; a selection starting on a spacer starts at
// its owning cell) and joining rows with '\n'. Trailing spaces
// are preserved as-is per spec.md §4.3 ("implementer may choose to rstrip";
// this core does not, matching the teacher's PlainTextRow's raw-cell walk
// before its own separate TrimRight convenience).
func (s *Selection) ExtractText(v VisibleLine) string {
	if !s.Active {
		return ""
	}
	a, h := s.normalized()

	var b strings.Builder
	for y := a.Y; y <= h.Y; y++ {
		startX, endX := 0, v.VisibleRowWidth(y)-1
		if y == a.Y {
			startX = a.X
			if startX > 0 && v.VisibleCellAt(y, startX).IsWideSpacer() {
				startX--
			}
		}
		if y == h.Y {
			endX = h.X
		}
		for x := startX; x <= endX && x < v.VisibleRowWidth(y); x++ {
			cell := v.VisibleCellAt(y, x)
			if cell.IsWideSpacer() {
				continue
			}
			b.WriteRune(cell.Ch)
		}
		if y != h.Y {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
