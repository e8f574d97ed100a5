// Package eventloop implements the headless, GUI-independent cooperative
// loop that multiplexes PTY output, UI key/resize events and (optionally)
// piped-stdin Media Copy requests onto a single goroutine, per spec.md
// §4.6. It owns no rendering itself; a UI adapter (internal/tui, or any
// other frontend) supplies the Keys/Resize channels and a Redraw callback.
//
// Grounded on the teacher's Bubbletea message loop (internal/app/model.go:
// termOutputMsg/termExitMsg/tickMsg) generalized from a per-pane tea.Model
// down to a standalone select loop so it has no GUI dependency of its own.
package eventloop

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/quietvt/vterm/internal/ptysession"
	"github.com/quietvt/vterm/internal/vterm"
)

// tickInterval is the readiness-wait/redraw cadence (spec.md §4.6 step 1).
const tickInterval = 16 * time.Millisecond

// stdinChunk bounds a single piped-stdin read (spec.md §4.6 step 3: "at
// most 256 bytes at a time").
const stdinChunk = 256

// Size is a terminal resize request in character cells.
type Size struct {
	Rows, Cols int
}

// Loop drives one Session to completion. Construct with NewLoop, then call
// Run from the UI adapter's own goroutine (Run blocks until the child
// exits or Stop is called).
type Loop struct {
	Term    *vterm.Terminal
	Session *ptysession.Session

	Keys   <-chan KeyEvent
	Resize <-chan Size

	// Redraw is invoked after every batch of PTY output and on every tick;
	// nil is a valid no-op for headless use (e.g. tests).
	Redraw func(vterm.Snapshot)

	mediaCopy *MediaCopyFilter
	stop      chan struct{}
}

// NewLoop builds a Loop bound to term/session. sink receives intercepted
// Media Copy requests from piped stdin; pass nil to discard them.
func NewLoop(term *vterm.Terminal, session *ptysession.Session, keys <-chan KeyEvent, resize <-chan Size, redraw func(vterm.Snapshot), sink SnapshotSink) *Loop {
	return &Loop{
		Term:      term,
		Session:   session,
		Keys:      keys,
		Resize:    resize,
		Redraw:    redraw,
		mediaCopy: NewMediaCopyFilter(term, sink),
		stop:      make(chan struct{}),
	}
}

// Stop ends Run's next iteration.
func (l *Loop) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}

// Run executes the cooperative loop until the child exits or Stop is
// called; a closed Keys or Resize channel only disables that case. Each
// pass waits for PTY output, a UI event, piped stdin, child exit or the
// next tick (every tickInterval) and handles whichever fired; PTY output,
// resizes, Shift+PageUp/PageDown and ticks redraw. PTY reads themselves
// happen on Session's own goroutine (see ptysession.Session.readLoop),
// which writes the bytes into Term and signals Session.OutputCh. When
// several cases are ready at once, select picks one at random, so PTY
// output is not given priority over pending stdin.
func (l *Loop) Run() error {
	stdinCh, stdinErrCh := l.stdinReader()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	keys := l.Keys
	resize := l.Resize

	for {
		select {
		case <-l.stop:
			return nil

		case <-l.Session.Done():
			l.redraw()
			return nil

		case <-l.Session.OutputCh:
			l.redraw()

		case ev, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			l.handleKey(ev)

		case sz, ok := <-resize:
			if !ok {
				resize = nil
				continue
			}
			l.Session.Resize(sz.Rows, sz.Cols)
			l.redraw()

		case chunk, ok := <-stdinCh:
			if !ok {
				stdinCh = nil
				continue
			}
			l.forwardStdin(chunk)

		case err := <-stdinErrCh:
			if err != nil && err != io.EOF {
				return err
			}

		case <-ticker.C:
			l.redraw()
		}
	}
}

func (l *Loop) handleKey(ev KeyEvent) {
	switch ev.Key {
	case KeyShiftPageUp:
		l.Term.ScrollBy(l.Term.Rows())
		l.redraw()
	case KeyShiftPageDown:
		l.Term.ScrollBy(-l.Term.Rows())
		l.redraw()
	default:
		if b := TranslateKey(ev); b != nil {
			l.Session.Write(b)
		}
	}
}

// forwardStdin filters Media Copy requests out of a piped-stdin chunk and
// writes whatever remains to the PTY.
func (l *Loop) forwardStdin(chunk []byte) {
	if filtered := l.mediaCopy.Filter(chunk); len(filtered) > 0 {
		l.Session.Write(filtered)
	}
}

func (l *Loop) redraw() {
	if l.Redraw != nil {
		l.Redraw(l.Term.Snapshot())
	}
}

// stdinReader starts a background reader over os.Stdin only when stdin is
// piped (not a TTY) — spec.md §4.6's Media Copy interception is defined
// solely for the piped-input case. Returns nil channels when stdin is an
// interactive TTY, so Run's select simply never selects that case.
func (l *Loop) stdinReader() (<-chan []byte, <-chan error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, nil
	}

	out := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		r := bufio.NewReaderSize(os.Stdin, stdinChunk)
		buf := make([]byte, stdinChunk)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				out <- chunk
			}
			if err != nil {
				errc <- err
				close(out)
				return
			}
		}
	}()
	return out, errc
}
