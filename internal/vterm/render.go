package vterm

import "strings"

// Render produces an ANSI string representation of the snapshot: the host
// terminal this is printed into reproduces the child's colours/attributes
// directly, rather than the adapter re-deriving a style for every cell.
// Grounded on the teacher's Screen.Render/RenderRegion run-length SGR
// emission (screen_render.go), rebuilt against CellAttr's separate fg/bg
// palette index + truecolor RGB fields instead of the teacher's single
// encoded CellStyle int.
// selFG/selBG are the 0xRRGGBB highlight colours a selected cell renders
// with, in place of its own fg/bg — the config.Config.SelectionFG/
// SelectionBG the caller reads from. underlineColor, when non-zero,
// overrides the glyph colour used to draw underlines (config.Config.
// UnderlineColor); zero means "use the cell's own foreground", xterm's
// default.
func (s Snapshot) Render(selFG, selBG, underlineColor uint32) string {
	return s.RenderRegion(0, 0, s.Rows-1, s.Cols-1, selFG, selBG, underlineColor)
}

// RenderRegion renders rows/cols startRow..endRow, startCol..endCol
// (0-indexed, inclusive) as an ANSI string.
func (s Snapshot) RenderRegion(startRow, startCol, endRow, endCol int, selFG, selBG, underlineColor uint32) string {
	var b strings.Builder
	prev := CellAttr{Flags: 1 << 15} // sentinel that never matches a real attr below

	for r := startRow; r <= endRow && r >= 0 && r < s.Rows; r++ {
		if r > startRow {
			b.WriteByte('\n')
			b.WriteString("\x1b[0m")
			prev = CellAttr{Flags: 1 << 15}
		}
		for c := startCol; c <= endCol && c >= 0 && c < s.Cols; c++ {
			idx := r*s.Cols + c
			cell := s.Cells[idx]
			if cell.IsWideSpacer() {
				continue
			}
			attr := cell.Attr
			if len(s.Selected) == s.Rows*s.Cols && s.Selected[idx] {
				attr.FGRGB, attr.BGRGB = selFG, selBG
				attr.Flags |= FlagFGTrueColor | FlagBGTrueColor
			}
			if attr != prev {
				b.WriteString(sgrEscape(attr, underlineColor))
				prev = attr
			}
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// sgrEscape renders attr as a single CSI...m sequence. Always emits
// truecolor fg/bg (38;2/48;2) once ResolveRGB has resolved a palette index,
// so the host terminal's own palette can't drift from what the child wrote.
// underlineColor, if non-zero and attr carries FlagUnderline, is emitted as
// an extended SGR 58 underline colour.
func sgrEscape(attr CellAttr, underlineColor uint32) string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if attr.Flags&FlagBold != 0 {
		b.WriteString(";1")
	}
	if attr.Flags&FlagDim != 0 {
		b.WriteString(";2")
	}
	if attr.Flags&FlagItalic != 0 {
		b.WriteString(";3")
	}
	if attr.Flags&FlagUnderline != 0 {
		b.WriteString(";4")
		if underlineColor != 0 {
			b.WriteString(";58;2;")
			writeRGB(&b, underlineColor)
		}
	}
	if attr.Flags&FlagBlink != 0 {
		b.WriteString(";5")
	}
	if attr.Flags&FlagReverse != 0 {
		b.WriteString(";7")
	}
	if attr.Flags&FlagInvisible != 0 {
		b.WriteString(";8")
	}
	if attr.Flags&FlagStrike != 0 {
		b.WriteString(";9")
	}

	fgTrue := attr.Flags&FlagFGTrueColor != 0
	fg := ResolveRGB(attr.FG, attr.FGRGB, fgTrue)
	b.WriteString(";38;2;")
	writeRGB(&b, fg)

	bgTrue := attr.Flags&FlagBGTrueColor != 0
	bg := ResolveRGB(attr.BG, attr.BGRGB, bgTrue)
	b.WriteString(";48;2;")
	writeRGB(&b, bg)

	b.WriteByte('m')
	return b.String()
}

func writeRGB(b *strings.Builder, rgb uint32) {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	bl := rgb & 0xFF
	writeUint(b, r)
	b.WriteByte(';')
	writeUint(b, g)
	b.WriteByte(';')
	writeUint(b, bl)
}

func writeUint(b *strings.Builder, v uint32) {
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var digits [3]byte
	n := 0
	for v > 0 {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
}
