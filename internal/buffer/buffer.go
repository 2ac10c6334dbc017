// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/quill/internal/types"

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Insert(pos types.Position, text []byte) error
	Delete(start, end types.Position) error
	// Text returns the whole document with lines joined by '\n'.
	Text() string
	// SetText replaces the whole document.
	SetText(text string)
	// Find returns the start of the first literal occurrence of query at or
	// after from. It never wraps around.
	Find(query string, from types.Position) (types.Position, bool)
	End() types.Position
	FilePath() string
	SetFilePath(path string)
	IsModified() bool
	SetModified(modified bool)
}
