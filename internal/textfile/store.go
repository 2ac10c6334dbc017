// Package textfile reads and writes whole plain-text files.
package textfile

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/bethropolis/quill/internal/logger"
)

// ErrEmptyPath is returned when no path was given.
var ErrEmptyPath = errors.New("no file path specified")

// Store performs text file I/O against a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store over fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// ReadAllText returns the full content of path.
func (s *Store) ReadAllText(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	logger.Debugf("textfile: read %d bytes from %s", len(data), path)
	return string(data), nil
}

// WriteAllText replaces the content of path with text.
func (s *Store) WriteAllText(path, text string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	logger.Debugf("textfile: wrote %d bytes to %s", len(text), path)
	return nil
}

// Exists reports whether path names an existing regular file.
func (s *Store) Exists(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Fs exposes the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}
