package mediastore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))
	return path
}

func TestSave_CopiesIntoKindDir(t *testing.T) {
	base := t.TempDir()
	s := New(base)

	src := writeSource(t, "photo.jpg", "jpeg-bytes")

	stored, err := s.Save(src, KindImage)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, filepath.Join(base, "images")))
	assert.Equal(t, ".jpg", filepath.Ext(stored))

	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	// the source file is untouched
	_, err = os.Stat(src)
	require.NoError(t, err)
}

func TestSave_UniqueNames(t *testing.T) {
	s := New(t.TempDir())
	src := writeSource(t, "clip.mp4", "video-bytes")

	p1, err := s.Save(src, KindVideo)
	require.NoError(t, err)
	p2, err := s.Save(src, KindVideo)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestSave_MissingSource(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Save(filepath.Join(t.TempDir(), "missing.jpg"), KindImage)
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	base := t.TempDir()
	s := New(base)

	src := writeSource(t, "photo.jpg", "jpeg-bytes")
	stored, err := s.Save(src, KindImage)
	require.NoError(t, err)

	require.NoError(t, s.Remove(stored))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	require.NoError(t, s.Remove(stored))
	// an empty path is a no-op
	require.NoError(t, s.Remove(""))
}

func TestRemove_RejectsOutsideBase(t *testing.T) {
	s := New(t.TempDir())

	outside := writeSource(t, "precious.txt", "keep me")
	require.Error(t, s.Remove(outside))

	_, err := os.Stat(outside)
	require.NoError(t, err)
}
