package vterm

// CellFlags is a bitset of per-cell rendering attributes.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagBlink
	FlagReverse
	FlagStrike
	FlagInvisible
	// FlagWideSpacer marks a cell as the right half of a wide (East Asian,
	// emoji) character occupying the previous column. The spacer cell holds
	// no independent text; selection and rendering snap to the owning cell.
	FlagWideSpacer
	// FlagFGTrueColor and FlagBGTrueColor select FGRGB/BGRGB over the palette
	// index in FG/BG.
	FlagFGTrueColor
	FlagBGTrueColor
)

// CellAttr is the visual style attached to a Cell: a palette index or RGB
// triple for foreground and background, plus a flag bitset.
type CellAttr struct {
	FG    uint8 // palette index, meaningful when FlagFGTrueColor is unset
	BG    uint8
	Flags CellFlags
	FGRGB uint32 // 0xRRGGBB, meaningful when FlagFGTrueColor is set
	BGRGB uint32
}

// DefaultAttr is the attribute of a freshly cleared cell: default colours,
// no flags. FG is 7 (spec.md §4.4's `39: fg ← default (7)` mapping) so the
// default foreground is distinguishable from index-0 (explicit black) and
// SGR 0 and SGR 39 agree.
var DefaultAttr = CellAttr{FG: 7}

// Cell is a single grid position: one rune plus its rendering attribute.
type Cell struct {
	Ch   rune
	Attr CellAttr
}

// BlankCell returns a cleared cell carrying attr (SGR background colour
// survives an erase, per ECMA-48).
func BlankCell(attr CellAttr) Cell {
	return Cell{Ch: ' ', Attr: attr}
}

func (c Cell) IsWideSpacer() bool {
	return c.Attr.Flags&FlagWideSpacer != 0
}
