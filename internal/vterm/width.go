package vterm

import "github.com/mattn/go-runewidth"

// wideRanges are the East Asian Width-2 codepoint ranges, pinned exactly so
// that the same input always measures the same display width regardless of
// the Unicode version or ambiguous-width build tags a display-width library
// happens to ship with. See DESIGN.md for why this can't be delegated.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},
	{0x2E80, 0x303E},
	{0x3041, 0x33FF},
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xA000, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE30, 0xFE4F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

// width classifies a codepoint as display width 1 or 2. The parser only
// passes printable codepoints (cp >= 0x20); PasteBytes also passes control
// codes, which, like every codepoint outside wideRanges, measure 1.
func width(cp rune) int {
	for _, r := range wideRanges {
		if cp >= r[0] && cp <= r[1] {
			return 2
		}
	}
	return 1
}

// DisplayWidth is a convenience helper over a whole string, independent of
// the core's exact-range width() used by put(): it defers to go-runewidth so
// callers doing general text layout (e.g. a status line) get a library's
// broader, version-tracking table instead of the core's pinned subset.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
