//go:build unit

package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"netifctl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessor_ReadWrite(t *testing.T) {
	root := t.TempDir()
	accessor := NewWithRoot(root)

	attrDir := filepath.Join(root, "sys/class/net/eth0")
	require.NoError(t, os.MkdirAll(attrDir, 0755))

	t.Run("WriteThenRead", func(t *testing.T) {
		err := accessor.Write("/sys/class/net/eth0/mtu", "1500")
		require.NoError(t, err)

		value, err := accessor.Read("/sys/class/net/eth0/mtu")
		require.NoError(t, err)
		assert.Equal(t, "1500", value)
	})

	t.Run("ReadStripsTrailingNewline", func(t *testing.T) {
		err := os.WriteFile(filepath.Join(attrDir, "operstate"), []byte("up\n"), 0644)
		require.NoError(t, err)

		value, err := accessor.Read("/sys/class/net/eth0/operstate")
		require.NoError(t, err)
		assert.Equal(t, "up", value)
	})

	t.Run("ReadMissingAttribute", func(t *testing.T) {
		_, err := accessor.Read("/sys/class/net/eth0/nonexistent")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("WriteMissingDevice", func(t *testing.T) {
		err := accessor.Write("/sys/class/net/nonexistent/mtu", "1500")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestAccessor_RealRoot(t *testing.T) {
	accessor := New()
	_, err := accessor.Read("/nonexistent-attribute-path")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
