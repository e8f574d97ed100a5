package vterm

// SavedCursor is the cursor+attribute snapshot captured by ESC 7/DECSC and
// by a 1049 mode-set, restored by ESC 8/DECRC/1049-reset.
type SavedCursor struct {
	X, Y int
	Attr CellAttr
}
