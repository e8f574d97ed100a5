// Package ptysession spawns a child shell behind a cross-platform PTY and
// feeds its output into a vterm.Terminal. Grounded on the teacher corpus's
// internal/terminal/session.go (aymanbagabas/go-pty-backed Session): same
// readLoop/waitLoop/done-channel shape, generalized from a multi-pane,
// Claude-Code-aware manager down to spec.md §4.5's single-shell
// start/read/write/resize/poll_child/shutdown contract.
package ptysession

import (
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	gopty "github.com/aymanbagabas/go-pty"
	"github.com/google/uuid"

	"github.com/quietvt/vterm/internal/vterm"
)

// Status is the lifecycle state of a Session's child process.
type Status int

const (
	StatusRunning Status = iota
	StatusExited
	StatusError
)

// shutdownGrace is how long Shutdown waits after SIGTERM before SIGKILL
// (spec.md §4.5/§5).
const shutdownGrace = time.Second

// Session wraps a PTY-backed child process and the vterm.Terminal it feeds.
type Session struct {
	mu sync.Mutex

	ID     uuid.UUID
	Term   *vterm.Terminal
	Status Status

	ExitCode int

	p   gopty.Pty
	cmd *gopty.Cmd

	done     chan struct{}
	OutputCh chan struct{} // signalled (non-blocking) on every PTY read
}

// New creates a Session bound to an already-constructed Terminal. Call
// Start to spawn the child process.
func New(term *vterm.Terminal) *Session {
	return &Session{
		ID:       uuid.New(),
		Term:     term,
		Status:   StatusRunning,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start spawns argv (or the default shell if empty) inside a fresh PTY
// sized to the Terminal's current dimensions, per spec.md §4.5 step 1-3.
func (s *Session) Start(argv []string, dir string, env []string, truecolor bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = defaultShell()
	}

	fullEnv := append(os.Environ(), "TERM=xterm-256color")
	if truecolor {
		fullEnv = append(fullEnv, "COLORTERM=truecolor")
	}
	fullEnv = append(fullEnv, env...)

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}
	if err := p.Resize(s.Term.Cols(), s.Term.Rows()); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd

	go s.readLoop()
	go s.waitLoop()
	return nil
}

// readLoop performs blocking PTY reads on a dedicated goroutine, writes the
// bytes into Term and signals OutputCh — the idiomatic Go stand-in for
// spec.md §4.5's non-blocking read() (Go has no portable single-call
// non-blocking PTY read; this channel handoff is the teacher's own
// pattern).
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.Term.Write(buf[:n])
			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// waitLoop implements poll_child's terminal state: blocks for the child to
// exit, then records its status and closes done.
func (s *Session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil && s.cmd.ProcessState != nil {
		s.ExitCode = s.cmd.ProcessState.ExitCode()
	} else if err != nil {
		s.ExitCode = 1
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// Write sends keyboard bytes to the PTY (spec.md §4.5 write).
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Respond implements vterm.Responder by writing a DSR (or other
// application-generated) reply straight back to the child over the same
// PTY descriptor keystrokes use.
func (s *Session) Respond(data []byte) {
	s.Write(data)
}

// Resize updates both the Terminal's grids and the PTY's winsize, grid
// first so a subsequent read from the child already targets the new
// dimensions (spec.md §5 ordering guarantee).
func (s *Session) Resize(rows, cols int) {
	s.Term.Resize(rows, cols)
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_ = pty.Resize(cols, rows)
	}
}

// IsRunning reports whether the child is still alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}

// Done returns a channel closed when the child has exited and been reaped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Shutdown implements spec.md §4.5's shutdown sequence: SIGTERM, wait up to
// 1s, SIGKILL, reap.
func (s *Session) Shutdown() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Signal(terminateSignal())
	}

	select {
	case <-s.done:
	case <-time.After(shutdownGrace):
		log.Printf("ptysession: %s did not exit within %s of SIGTERM, sending SIGKILL", s.ID, shutdownGrace)
		if cmd != nil && cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-s.done
	}

	if pty != nil {
		pty.Close()
	}
}

func defaultShell() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return []string{shell}
	}
	return []string{"/bin/bash"}
}
