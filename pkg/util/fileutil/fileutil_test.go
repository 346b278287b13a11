package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExt(t *testing.T) {
	assert.Equal(t, FILE_TXT, FileExt("out/hashes.txt"))
	assert.Equal(t, FILE_JSON, FileExt("hashes.json"))
	assert.Equal(t, FILE_CSV, FileExt("hashes.csv"))
	assert.Equal(t, NOT_FOUND, FileExt("hashes.yaml"))
	assert.Equal(t, NOT_FOUND, FileExt("hashes"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, FolderExists(dir))
	assert.False(t, FolderExists(file))
	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestBufferWriteAppend(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, BufferWriteAppend(file, "a\n"))
	require.NoError(t, BufferWriteAppend(file, "b\n"))

	data, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}
