package ptysession

import (
	"runtime"
	"testing"
	"time"

	"github.com/quietvt/vterm/internal/vterm"
)

func TestSession_StartWriteAndExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a unix shell command")
	}

	term := vterm.New(5, 40)
	s := New(term)
	if err := s.Start([]string{"/bin/sh", "-c", "cat"}, "", nil, false); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, err := s.Write([]byte("hi\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	select {
	case <-s.OutputCh:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for PTY output")
	}

	s.Shutdown()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session to finish shutting down")
	}
	if s.IsRunning() {
		t.Fatal("session should report not running after Shutdown")
	}
}

func TestSession_ResizePropagatesToTerminal(t *testing.T) {
	term := vterm.New(5, 5)
	s := New(term)
	s.Resize(10, 20)
	if term.Rows() != 10 || term.Cols() != 20 {
		t.Fatalf("Term dims = %dx%d, want 10x20", term.Rows(), term.Cols())
	}
}
