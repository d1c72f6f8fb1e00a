//go:build unit

package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"netifctl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupervisorAdapter_Start(t *testing.T) {
	adapter := NewSupervisorAdapter()

	t.Run("BinarySucceeds", func(t *testing.T) {
		err := adapter.Start("/tmp/unused.pid", "true", nil)
		assert.NoError(t, err)
	})

	t.Run("NonZeroExitIsIOError", func(t *testing.T) {
		err := adapter.Start("/tmp/unused.pid", "false", nil)
		assert.ErrorIs(t, err, types.ErrIO)
		assert.Contains(t, err.Error(), "exited with status")
	})

	t.Run("MissingBinary", func(t *testing.T) {
		err := adapter.Start("/tmp/unused.pid", "/nonexistent/dhclient", []string{"-4"})
		assert.ErrorIs(t, err, types.ErrIO)
	})
}

func TestSupervisorAdapter_Stop(t *testing.T) {
	adapter := NewSupervisorAdapter()
	tempDir := t.TempDir()

	t.Run("MissingPidFile", func(t *testing.T) {
		err := adapter.Stop(filepath.Join(tempDir, "missing.pid"))
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("UnparseablePidFile", func(t *testing.T) {
		pidFile := filepath.Join(tempDir, "garbage.pid")
		require.NoError(t, os.WriteFile(pidFile, []byte("not-a-pid"), 0644))

		err := adapter.Stop(pidFile)
		assert.ErrorIs(t, err, types.ErrIO)
	})

	t.Run("DeadProcessIsNotAnError", func(t *testing.T) {
		// a pid beyond the kernel's pid space can never be alive
		pidFile := filepath.Join(tempDir, "dead.pid")
		require.NoError(t, os.WriteFile(pidFile, []byte("999999999\n"), 0644))

		err := adapter.Stop(pidFile)
		assert.NoError(t, err)
	})

	t.Run("PidFileIsLeftInPlace", func(t *testing.T) {
		pidFile := filepath.Join(tempDir, "kept.pid")
		require.NoError(t, os.WriteFile(pidFile, []byte("999999999\n"), 0644))

		require.NoError(t, adapter.Stop(pidFile))
		_, err := os.Stat(pidFile)
		assert.NoError(t, err)
	})
}
