package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/adapters/fs"
)

func TestOSFS_ReadWriteRoundTrip(t *testing.T) {
	fsys := fs.New()
	path := filepath.Join(t.TempDir(), "sub", "file.txt")

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path)))
	require.NoError(t, fsys.WriteFile(path, []byte("hello")))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.True(t, fsys.Exists(path))
}

func TestOSFS_ModTime(t *testing.T) {
	fsys := fs.New()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	mtime, err := fsys.ModTime(path)
	require.NoError(t, err)
	assert.Positive(t, mtime)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime().UnixNano(), mtime)
}

func TestOSFS_ModTime_Missing(t *testing.T) {
	fsys := fs.New()
	_, err := fsys.ModTime(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestOSFS_Remove_Idempotent(t *testing.T) {
	fsys := fs.New()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, fsys.Remove(path))
	require.NoError(t, fsys.Remove(path))
	assert.False(t, fsys.Exists(path))
}

func TestOSFS_IsDir(t *testing.T) {
	fsys := fs.New()
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	isDir, err := fsys.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fsys.IsDir(file)
	require.NoError(t, err)
	assert.False(t, isDir)
}
