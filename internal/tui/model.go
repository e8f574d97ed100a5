// Package tui is the optional interactive Bubbletea/Lipgloss frontend for
// a single vterm.Terminal/ptysession.Session pair. Grounded on the
// teacher's internal/app.Model (tea.Model, termOutputMsg/termExitMsg/
// tickMsg, Update/View split), generalized from a multi-tab/multi-pane
// layout down to one full-screen terminal view, since SPEC_FULL.md's C6
// has no concept of tabs or panes — that's the teacher's product, not
// this core's.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quietvt/vterm/internal/config"
	"github.com/quietvt/vterm/internal/eventloop"
	"github.com/quietvt/vterm/internal/ptysession"
	"github.com/quietvt/vterm/internal/vterm"
)

// redrawMsg carries a fresh snapshot from the event loop into Bubbletea's
// Update/View cycle.
type redrawMsg vterm.Snapshot

// sessionExitMsg is sent once the event loop has stopped because the
// child process exited.
type sessionExitMsg struct{}

// Model is the root Bubbletea model wrapping one terminal session.
type Model struct {
	cfg  config.Config
	term *vterm.Terminal
	sess *ptysession.Session
	loop *eventloop.Loop

	keysCh   chan eventloop.KeyEvent
	resizeCh chan eventloop.Size
	redrawCh chan vterm.Snapshot

	snap    vterm.Snapshot
	width   int
	height  int
	started bool

	cursorColorSent bool
}

// New constructs a Model, spawns the configured shell behind a PTY, and
// starts the background event loop. The caller drives it with
// tea.NewProgram(m).
func New(cfg config.Config) (*Model, error) {
	term := vterm.New(cfg.Rows, cfg.Cols,
		vterm.WithScrollbackCapacity(cfg.ScrollbackLines),
		vterm.WithDefaultColors(cfg.DefaultFG, cfg.DefaultBG),
	)
	sess := ptysession.New(term)
	term.SetResponder(sess)

	var argv []string
	if cfg.Shell != "" {
		argv = []string{cfg.Shell}
	}
	if err := sess.Start(argv, cfg.DefaultDir, nil, cfg.TrueColor); err != nil {
		return nil, err
	}

	keysCh := make(chan eventloop.KeyEvent, 64)
	resizeCh := make(chan eventloop.Size, 1)
	redrawCh := make(chan vterm.Snapshot, 1)

	m := &Model{
		cfg:      cfg,
		term:     term,
		sess:     sess,
		keysCh:   keysCh,
		resizeCh: resizeCh,
		redrawCh: redrawCh,
	}

	m.loop = eventloop.NewLoop(term, sess, keysCh, resizeCh, m.onRedraw, eventloop.NoopSnapshotSink{})

	go func() {
		m.loop.Run()
		close(redrawCh)
	}()

	return m, nil
}

// onRedraw is the event loop's Redraw callback: non-blocking, "latest
// snapshot wins" — a slow Bubbletea consumer never backs up the loop.
func (m *Model) onRedraw(s vterm.Snapshot) {
	select {
	case m.redrawCh <- s:
	default:
		select {
		case <-m.redrawCh:
		default:
		}
		select {
		case m.redrawCh <- s:
		default:
		}
	}
}

func waitForRedraw(ch chan vterm.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return sessionExitMsg{}
		}
		return redrawMsg(snap)
	}
}

// Init starts the redraw pump.
func (m *Model) Init() tea.Cmd {
	return waitForRedraw(m.redrawCh)
}

// Update handles Bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.started = true
		rows := msg.Height - 1 // one row reserved for the title bar
		if rows < 1 {
			rows = 1
		}
		select {
		case m.resizeCh <- eventloop.Size{Rows: rows, Cols: msg.Width}:
		default:
		}
		return m, nil

	case redrawMsg:
		m.snap = vterm.Snapshot(msg)
		return m, waitForRedraw(m.redrawCh)

	case sessionExitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlY {
			m.copySelectionToClipboard()
			return m, nil
		}
		if ev, ok := translateKey(msg); ok {
			select {
			case m.keysCh <- ev:
			default:
			}
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

// handleMouse drives text selection from mouse drag events: press starts
// it, motion (reported while the button is held, given
// tea.WithMouseCellMotion on the Program) extends it, release ends it and
// reports the result to the clipboard. Row is adjusted for the title bar
// and mapped into the Terminal's visible-space (scrollback, then live grid).
func (m *Model) handleMouse(msg tea.MouseMsg) {
	row := msg.Y - 1
	if row < 0 {
		row = 0
	}
	if sbLen := m.term.VisibleRowCount() - m.term.Rows(); sbLen > 0 {
		row += sbLen - m.term.ScrollOffset()
	}
	p := vterm.Point{X: msg.X, Y: row}

	switch msg.Type {
	case tea.MouseLeft:
		m.term.StartSelection(p)
	case tea.MouseMotion:
		m.term.UpdateSelection(p)
	case tea.MouseRelease:
		m.term.EndSelection(p)
		m.copySelectionToClipboard()
	}
}

// View renders the current snapshot as an ANSI string.
func (m *Model) View() string {
	if !m.started {
		return "Initialising…"
	}
	if m.snap.Cols == 0 {
		return ""
	}
	body := m.snap.Render(m.cfg.SelectionFG, m.cfg.SelectionBG, m.cfg.UnderlineColor)
	title := m.snap.Title
	if title == "" {
		title = "vterm"
	}
	bar := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(" %s ", title))
	return m.cursorColorEscape() + bar + "\n" + body + m.cursorEscape()
}

// cursorColorEscape reports cfg.CursorColor to the host terminal via OSC 12
// (xterm's set-cursor-colour control), once, the first time View renders.
func (m *Model) cursorColorEscape() string {
	if m.cursorColorSent || m.cfg.CursorColor == 0 {
		return ""
	}
	m.cursorColorSent = true
	return fmt.Sprintf("\x1b]12;#%06x\x1b\\", m.cfg.CursorColor)
}

// cursorEscape positions the host terminal's own cursor over the snapshot's
// cursor cell (one row down for the title bar) and shapes it per
// cfg.CursorShape (DECSCUSR, CSI Ps SP q), so the real terminal renders and
// blinks the cursor instead of this renderer drawing one into the grid.
func (m *Model) cursorEscape() string {
	if !m.snap.CursorVisible {
		return "\x1b[?25l"
	}
	shape := 2 // steady block
	switch m.cfg.CursorShape {
	case config.CursorUnderline:
		shape = 4
	case config.CursorBar:
		shape = 6
	case config.CursorHollow, config.CursorImage:
		shape = 2
	}
	return fmt.Sprintf("\x1b[?25h\x1b[%d;%dH\x1b[%d q", m.snap.CursorY+2, m.snap.CursorX+1, shape)
}
