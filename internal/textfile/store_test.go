package textfile

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs)

	require.NoError(t, s.WriteAllText("/notes/todo.txt", "buy milk\nwrite code"))
	assert.True(t, s.Exists("/notes/todo.txt"))

	text, err := s.ReadAllText("/notes/todo.txt")
	require.NoError(t, err)
	assert.Equal(t, "buy milk\nwrite code", text)

	info, err := fs.Stat("/notes/todo.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestReadMissingFile(t *testing.T) {
	s := NewStore(afero.NewMemMapFs())

	_, err := s.ReadAllText("/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/missing.txt")
}

func TestEmptyPath(t *testing.T) {
	s := NewStore(afero.NewMemMapFs())

	_, err := s.ReadAllText("")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.ErrorIs(t, s.WriteAllText("", "x"), ErrEmptyPath)
}

func TestWriteOverReadOnlyFs(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	assert.Error(t, s.WriteAllText("/a.txt", "x"))
}

func TestExistsIgnoresDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0o755))
	s := NewStore(fs)
	assert.False(t, s.Exists("/dir"))
	assert.False(t, s.Exists("/nope"))
}
