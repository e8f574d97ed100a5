package vterm

import (
	"fmt"
	"strconv"
	"strings"
)

const maxCSIParams = 16

// parseCSIParams splits the accumulated CSI buffer into at most 16 integer
// parameters (spec.md §4.4: "a parameter count > 16 is truncated to 16").
// A leading '?' marks a DEC private-mode sequence and is recorded in
// t.private rather than parsed as a parameter.
func (t *Terminal) parseCSIParams() []int {
	raw := string(t.csiBuf)
	if strings.HasPrefix(raw, "?") {
		t.private = '?'
		raw = raw[1:]
	}
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	if len(parts) > maxCSIParams {
		parts = parts[:maxCSIParams]
	}
	params := make([]int, len(parts))
	for i, p := range parts {
		v, _ := strconv.Atoi(p)
		params[i] = v
	}
	return params
}

// paramDefault returns params[idx] if present and > 0, else def — matching
// the teacher's paramDefault helper (screen_csi.go), which spec.md's CSI
// table assumes throughout ("n defaults to 1 unless noted").
func paramDefault(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

// dispatchCSI executes a CSI sequence given its final byte, per spec.md
// §4.4's CSI dispatch table. Grounded on the teacher's dispatchCSI
// (screen_csi.go) switch structure, generalized to this module's Grid and
// CellAttr model and extended with the DEC private-mode table and DSR,
// which the teacher stubbed out or omitted.
func (t *Terminal) dispatchCSI(cmd byte) {
	params := t.parseCSIParams()
	private := t.private
	g := t.active

	switch cmd {
	case '@':
		g.InsertChar(paramDefault(params, 0, 1))
	case 'A':
		g.CursorY = clip(g.CursorY-paramDefault(params, 0, 1), 0, g.Rows()-1)
		g.PendingWrap = false
	case 'B':
		g.CursorY = clip(g.CursorY+paramDefault(params, 0, 1), 0, g.Rows()-1)
		g.PendingWrap = false
	case 'C':
		g.CursorX = clip(g.CursorX+paramDefault(params, 0, 1), 0, g.Cols()-1)
		g.PendingWrap = false
	case 'D':
		g.CursorX = clip(g.CursorX-paramDefault(params, 0, 1), 0, g.Cols()-1)
		g.PendingWrap = false
	case 'E':
		g.CursorY = clip(g.CursorY+paramDefault(params, 0, 1), 0, g.Rows()-1)
		g.CursorX = 0
		g.PendingWrap = false
	case 'F':
		g.CursorY = clip(g.CursorY-paramDefault(params, 0, 1), 0, g.Rows()-1)
		g.CursorX = 0
		g.PendingWrap = false
	case 'G':
		g.SetCursor(paramDefault(params, 0, 1)-1, g.CursorY)
	case 'H', 'f':
		row := paramDefault(params, 0, 1)
		col := paramDefault(params, 1, 1)
		g.SetCursor(col-1, row-1)
	case 'J':
		g.EraseDisplay(paramDefault(params, 0, 0))
	case 'K':
		g.EraseLine(paramDefault(params, 0, 0))
	case 'L':
		g.InsertLine(paramDefault(params, 0, 1))
	case 'M':
		g.DeleteLine(paramDefault(params, 0, 1))
	case 'P':
		g.DeleteChar(paramDefault(params, 0, 1))
	case 'S':
		g.ScrollUp(paramDefault(params, 0, 1))
	case 'T':
		g.ScrollDown(paramDefault(params, 0, 1))
	case 'X':
		g.EraseChar(paramDefault(params, 0, 1))
	case 'd':
		g.SetCursor(g.CursorX, paramDefault(params, 0, 1)-1)
	case 'm':
		t.handleSGR(params)
	case 'n':
		if paramDefault(params, 0, 0) == 6 {
			t.responder.Respond([]byte(fmt.Sprintf("\x1b[%d;%dR", g.CursorY+1, g.CursorX+1)))
		}
	case 'r':
		top := paramDefault(params, 0, 1)
		bottom := paramDefault(params, 1, g.Rows())
		g.ScrollTop = clip(top-1, 0, g.Rows()-1)
		g.ScrollBottom = clip(bottom-1, 0, g.Rows()-1)
		if g.ScrollTop > g.ScrollBottom {
			g.ScrollTop, g.ScrollBottom = 0, g.Rows()-1
		}
		g.SetCursor(0, 0)
	case 'h':
		t.setMode(private, params, true)
	case 'l':
		t.setMode(private, params, false)
	}
}

// setMode implements the DEC private mode table of spec.md §4.4 (CSI ? …
// h/l); non-DEC SM/RM and unknown DEC modes are ignored, per spec.
func (t *Terminal) setMode(private byte, params []int, set bool) {
	if private != '?' {
		return
	}
	for _, mode := range params {
		switch mode {
		case 25:
			t.CursorVisible = set
		case 7:
			t.AutoWrap = set
		case 47, 1047:
			if set {
				t.switchToAlt(false)
			} else {
				t.switchToPrimary(false)
			}
		case 1049:
			if set {
				t.switchToAlt(true)
			} else {
				t.switchToPrimary(true)
			}
		}
	}
}

func (t *Terminal) switchToAlt(saveCursor bool) {
	if t.inAlt {
		return
	}
	if saveCursor {
		t.primary.SaveCursor()
		t.alt.CursorX, t.alt.CursorY = 0, 0
		t.alt.EraseDisplay(2)
	}
	t.inAlt = true
	t.active = t.alt
}

func (t *Terminal) switchToPrimary(restoreCursor bool) {
	if !t.inAlt {
		return
	}
	t.inAlt = false
	t.active = t.primary
	if restoreCursor {
		t.primary.RestoreCursor()
	}
}
