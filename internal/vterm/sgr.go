package vterm

// handleSGR applies a CSI 'm' sequence to the active grid's current
// drawing attribute, exactly per spec.md §4.4's SGR table. Grounded on the
// teacher's handleSGR/parseSGRColor (screen_csi.go) iteration structure,
// rebuilt against spec.md's CellAttr (separate fg/bg palette index, flags,
// fg_rgb/bg_rgb) instead of the teacher's single encoded-int CellStyle.
func (t *Terminal) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	attr := &t.active.Attr
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			*attr = t.defaultAttr
		case p == 1:
			attr.Flags |= FlagBold
		case p == 3:
			attr.Flags |= FlagItalic
		case p == 4:
			attr.Flags |= FlagUnderline
		case p == 7:
			attr.Flags |= FlagReverse
		case p == 22:
			attr.Flags &^= FlagBold
		case p == 23:
			attr.Flags &^= FlagItalic
		case p == 24:
			attr.Flags &^= FlagUnderline
		case p == 27:
			attr.Flags &^= FlagReverse
		case p >= 30 && p <= 37:
			attr.FG = uint8(p - 30)
			attr.Flags &^= FlagFGTrueColor
		case p == 38:
			i = t.parseSGRColor(params, i, true)
		case p == 39:
			attr.FG = t.defaultAttr.FG
			attr.Flags &^= FlagFGTrueColor
		case p >= 40 && p <= 47:
			attr.BG = uint8(p - 40)
			attr.Flags &^= FlagBGTrueColor
		case p == 48:
			i = t.parseSGRColor(params, i, false)
		case p == 49:
			attr.BG = t.defaultAttr.BG
			attr.Flags &^= FlagBGTrueColor
		case p >= 90 && p <= 97:
			attr.FG = uint8(p-90) + 8
			attr.Flags &^= FlagFGTrueColor
		case p >= 100 && p <= 107:
			attr.BG = uint8(p-100) + 8
			attr.Flags &^= FlagBGTrueColor
		}
		i++
	}
}

// parseSGRColor handles "38;5;N" (256-colour palette) and "38;2;R;G;B"
// (truecolor) for foreground (fg=true) or background. Returns the updated
// index into params. Unrecognised or truncated sub-sequences are ignored,
// per spec.md §4.4.
func (t *Terminal) parseSGRColor(params []int, i int, fg bool) int {
	attr := &t.active.Attr
	if i+1 >= len(params) {
		return i
	}
	switch params[i+1] {
	case 5:
		if i+2 < len(params) {
			n := uint8(params[i+2])
			if fg {
				attr.FG = n
				attr.Flags &^= FlagFGTrueColor
			} else {
				attr.BG = n
				attr.Flags &^= FlagBGTrueColor
			}
			return i + 2
		}
	case 2:
		if i+4 < len(params) {
			rgb := uint32(params[i+2])<<16 | uint32(params[i+3])<<8 | uint32(params[i+4])
			if fg {
				attr.FGRGB = rgb
				attr.Flags |= FlagFGTrueColor
			} else {
				attr.BGRGB = rgb
				attr.Flags |= FlagBGTrueColor
			}
			return i + 4
		}
	}
	return i + 1
}
