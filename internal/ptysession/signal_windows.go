//go:build windows

package ptysession

import "os"

// terminateSignal: Windows has no POSIX SIGTERM; os.Kill is the closest
// graceful-ish request ConPTY-backed processes understand, matching the
// teacher's own Windows-specific carve-outs (session_windows.go).
func terminateSignal() os.Signal {
	return os.Kill
}
