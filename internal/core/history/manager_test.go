package history

import (
	"testing"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEditor struct {
	buf      buffer.Buffer
	cursor   types.Position
	modified int
}

func (f *fakeEditor) GetBuffer() buffer.Buffer     { return f.buf }
func (f *fakeEditor) SetCursor(pos types.Position) { f.cursor = pos }
func (f *fakeEditor) NotifyModified()              { f.modified++ }

func insert(t *testing.T, ed *fakeEditor, m *Manager, pos types.Position, text string) {
	t.Helper()
	require.NoError(t, ed.buf.Insert(pos, []byte(text)))
	m.RecordChange(Change{
		Type:          InsertAction,
		Text:          []byte(text),
		StartPosition: pos,
		EndPosition:   pos.Advance(text),
		CursorBefore:  pos,
	})
}

func TestUndoRedoInsert(t *testing.T) {
	ed := &fakeEditor{buf: buffer.NewSliceBufferFromText("hello")}
	m := NewManager(ed, 10)

	insert(t, ed, m, types.Position{Line: 0, Col: 5}, " world")
	assert.True(t, m.CanUndo())
	assert.False(t, m.CanRedo())

	ok, err := m.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", ed.buf.Text())
	assert.Equal(t, types.Position{Line: 0, Col: 5}, ed.cursor)

	ok, err = m.Redo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello world", ed.buf.Text())
	assert.Equal(t, types.Position{Line: 0, Col: 11}, ed.cursor)
	assert.Equal(t, 2, ed.modified)
}

func TestUndoDeleteRestoresText(t *testing.T) {
	ed := &fakeEditor{buf: buffer.NewSliceBufferFromText("ab\ncd")}
	m := NewManager(ed, 10)

	start, end := types.Position{Line: 0, Col: 1}, types.Position{Line: 1, Col: 1}
	require.NoError(t, ed.buf.Delete(start, end))
	m.RecordChange(Change{Type: DeleteAction, Text: []byte("b\nc"), StartPosition: start, EndPosition: end, CursorBefore: end})
	assert.Equal(t, "ad", ed.buf.Text())

	_, err := m.Undo()
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd", ed.buf.Text())
	assert.Equal(t, end, ed.cursor)
}

func TestRecordTruncatesRedoAndEvictsOldest(t *testing.T) {
	ed := &fakeEditor{buf: buffer.NewSliceBuffer()}
	m := NewManager(ed, 2)

	insert(t, ed, m, types.Position{}, "a")
	insert(t, ed, m, types.Position{Line: 0, Col: 1}, "b")
	insert(t, ed, m, types.Position{Line: 0, Col: 2}, "c")

	for m.CanUndo() {
		_, err := m.Undo()
		require.NoError(t, err)
	}
	assert.Equal(t, "a", ed.buf.Text(), "only the two newest changes are kept")

	_, err := m.Redo()
	require.NoError(t, err)
	insert(t, ed, m, types.Position{Line: 0, Col: 2}, "x")
	assert.False(t, m.CanRedo())
	assert.Equal(t, "abx", ed.buf.Text())
}

func TestNothingToUndoOrRedo(t *testing.T) {
	ed := &fakeEditor{buf: buffer.NewSliceBuffer()}
	m := NewManager(ed, 0)

	ok, err := m.Undo()
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = m.Redo()
	assert.NoError(t, err)
	assert.False(t, ok)

	insert(t, ed, m, types.Position{}, "x")
	m.Clear()
	assert.False(t, m.CanUndo())
	assert.Zero(t, ed.modified)
}
