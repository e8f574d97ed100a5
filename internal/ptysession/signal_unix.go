//go:build !windows

package ptysession

import (
	"os"
	"syscall"
)

// terminateSignal returns the graceful-shutdown signal for this platform.
func terminateSignal() os.Signal {
	return syscall.SIGTERM
}
