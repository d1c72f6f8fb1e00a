//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	testContent := []byte("test content")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.txt")))
	})

}

func TestManagerAdapter_RemoveFile(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	t.Run("ExistingFile", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "artifact.pid")
		require.NoError(t, adapter.WriteFile(testFile, []byte("1234"), 0644))

		err := adapter.RemoveFile(testFile)
		assert.NoError(t, err)
		assert.False(t, adapter.FileExists(testFile))
	})

	t.Run("MissingFileIsNotAnError", func(t *testing.T) {
		err := adapter.RemoveFile(filepath.Join(tempDir, "nonexistent.pid"))
		assert.NoError(t, err)
	})
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestManagerAdapter_WriteFile_InvalidPath(t *testing.T) {
	adapter := NewManagerAdapter()

	err := adapter.WriteFile("/nonexistent/directory/file.txt", []byte("test"), 0644)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
