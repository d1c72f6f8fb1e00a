// Package daemon provides pid-file based supervision of external client
// processes, replacing shell invocations of start-stop-daemon with direct
// argv-vector process control.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"netifctl/internal/port"
	"netifctl/internal/types"
)

// SupervisorAdapter implements the Supervisor port using os/exec. The
// supervised binary is expected to daemonize itself and maintain the pid
// file it was pointed at; no in-memory handle to it is kept across calls.
type SupervisorAdapter struct{}

// Ensure SupervisorAdapter implements the Supervisor port
var _ port.Supervisor = (*SupervisorAdapter)(nil)

// NewSupervisorAdapter creates a new supervisor adapter.
func NewSupervisorAdapter() *SupervisorAdapter {
	return &SupervisorAdapter{}
}

// Start launches the binary in its own session and waits for the foreground
// parent to exit. A non-zero exit status is surfaced as an i/o error rather
// than being silently ignored.
func (s *SupervisorAdapter) Start(pidFile, binary string, args []string) error {
	cmd := exec.Command(binary, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d: %w", binary, exitErr.ExitCode(), types.ErrIO)
		}
		return fmt.Errorf("failed to start %s: %w: %v", binary, types.ErrIO, err)
	}
	return nil
}

// Stop sends SIGTERM to the process referenced by the pid file. A process
// that is already gone is treated as stopped; the pid file itself is left
// for the caller to clean up.
func (s *SupervisorAdapter) Stop(pidFile string) error {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("pid file %s: %w", pidFile, types.ErrNotFound)
		}
		return fmt.Errorf("read pid file %s: %w: %v", pidFile, types.ErrIO, err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("pid file %s does not contain a pid: %w", pidFile, types.ErrIO)
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		switch {
		case errors.Is(err, syscall.ESRCH):
			// already dead, nothing to stop
			return nil
		case errors.Is(err, syscall.EPERM):
			return fmt.Errorf("signal pid %d: %w", pid, types.ErrPermission)
		default:
			return fmt.Errorf("signal pid %d: %w: %v", pid, types.ErrIO, err)
		}
	}
	return nil
}
