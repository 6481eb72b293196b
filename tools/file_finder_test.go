package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, []byte("0 0 0\n"), 0666))
}

func TestGetPointFilesToProcess(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.xyz"))
	touch(t, filepath.Join(root, "a.TXT"))
	touch(t, filepath.Join(root, "notes.md"))
	touch(t, filepath.Join(root, "nested", "c.csv"))

	finder := NewStandardFileFinder()

	t.Run("single file", func(t *testing.T) {
		files, err := finder.GetPointFilesToProcess(&dedup.Options{Input: filepath.Join(root, "b.xyz")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "b.xyz")}, files)
	})

	t.Run("folder", func(t *testing.T) {
		files, err := finder.GetPointFilesToProcess(&dedup.Options{Input: root, FolderProcessing: true})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.TXT"), filepath.Join(root, "b.xyz")}, files)
	})

	t.Run("recursive folder", func(t *testing.T) {
		files, err := finder.GetPointFilesToProcess(&dedup.Options{Input: root, FolderProcessing: true, Recursive: true})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.TXT"),
			filepath.Join(root, "b.xyz"),
			filepath.Join(root, "nested", "c.csv"),
		}, files)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := finder.GetPointFilesToProcess(&dedup.Options{Input: filepath.Join(root, "missing"), FolderProcessing: true})
		assert.Error(t, err)
	})
}

func TestCreateDirectoryIfDoesNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateDirectoryIfDoesNotExist(dir))
	assert.DirExists(t, dir)
	require.NoError(t, CreateDirectoryIfDoesNotExist(dir))
}
