package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/quill/internal/types"
)

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

func TestSetTextAndText(t *testing.T) {
	sb := NewSliceBuffer()
	assert.Equal(t, 1, sb.LineCount())
	assert.Equal(t, "", sb.Text())

	sb.SetText("one\ntwo\n")
	assert.Equal(t, 3, sb.LineCount(), "trailing newline leaves an empty last line")
	assert.Equal(t, "one\ntwo\n", sb.Text())
	assert.Equal(t, pos(2, 0), sb.End())
	assert.False(t, sb.IsModified())
}

func TestInsertSingleAndMultiLine(t *testing.T) {
	sb := NewSliceBufferFromText("hello world")

	require.NoError(t, sb.Insert(pos(0, 5), []byte(",")))
	assert.Equal(t, "hello, world", sb.Text())
	assert.True(t, sb.IsModified())

	require.NoError(t, sb.Insert(pos(0, 6), []byte("\nbig\n")))
	assert.Equal(t, "hello,\nbig\n world", sb.Text())
	assert.Equal(t, 3, sb.LineCount())

	// Columns past the end of a line clamp to the line end.
	require.NoError(t, sb.Insert(pos(1, 99), []byte("!")))
	assert.Equal(t, "hello,\nbig!\n world", sb.Text())
}

func TestInsertDoesNotAliasLines(t *testing.T) {
	sb := NewSliceBufferFromText("abcdef")
	require.NoError(t, sb.Insert(pos(0, 2), []byte("\n")))
	require.NoError(t, sb.Insert(pos(0, 2), []byte("XYZ")))
	assert.Equal(t, "abXYZ\ncdef", sb.Text())
}

func TestDelete(t *testing.T) {
	sb := NewSliceBufferFromText("alpha\nbeta\ngamma")

	require.NoError(t, sb.Delete(pos(0, 1), pos(0, 3)))
	assert.Equal(t, "aha\nbeta\ngamma", sb.Text())

	// Reversed ranges are normalized.
	require.NoError(t, sb.Delete(pos(2, 2), pos(0, 2)))
	assert.Equal(t, "ahmma", sb.Text())
	assert.Equal(t, 1, sb.LineCount())

	require.NoError(t, sb.Delete(pos(0, 0), pos(0, 0)))
	assert.Equal(t, "ahmma", sb.Text())
}

func TestDeleteJoinsLines(t *testing.T) {
	sb := NewSliceBufferFromText("ab\ncd")
	require.NoError(t, sb.Delete(pos(0, 2), pos(1, 0)))
	assert.Equal(t, "abcd", sb.Text())
}

func TestFindLiteralForwardOnly(t *testing.T) {
	sb := NewSliceBufferFromText("the cat sat on the mat")

	p, ok := sb.Find("at", pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, pos(0, 5), p)

	p, ok = sb.Find("at", pos(0, 7))
	require.True(t, ok)
	assert.Equal(t, pos(0, 9), p)

	_, ok = sb.Find("at", pos(0, 21))
	assert.False(t, ok, "search must not wrap to the start")

	_, ok = sb.Find("a.", pos(0, 0))
	assert.False(t, ok, "query is literal, not a pattern")

	_, ok = sb.Find("", pos(0, 0))
	assert.False(t, ok)
}

func TestFindAcrossLinesAndRunes(t *testing.T) {
	sb := NewSliceBufferFromText("café au lait\nnoël café")

	p, ok := sb.Find("café", pos(0, 1))
	require.True(t, ok)
	assert.Equal(t, pos(1, 5), p, "columns are rune indices")

	p, ok = sb.Find("lait\nno", pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, pos(0, 8), p)
}

func TestFindClampsStartPosition(t *testing.T) {
	sb := NewSliceBufferFromText("abc\nabc")

	p, ok := sb.Find("abc", pos(-3, 0))
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), p)

	_, ok = sb.Find("abc", pos(10, 0))
	assert.False(t, ok)

	p, ok = sb.Find("abc", pos(0, 50))
	require.True(t, ok)
	assert.Equal(t, pos(1, 0), p)
}

func TestOffsetAndPositionAt(t *testing.T) {
	sb := NewSliceBufferFromText("ab\nçd\n")

	assert.Equal(t, 0, sb.Offset(pos(0, 0)))
	assert.Equal(t, 3, sb.Offset(pos(1, 0)))
	assert.Equal(t, 4, sb.Offset(pos(1, 1)))
	assert.Equal(t, 6, sb.Offset(pos(2, 0)))

	assert.Equal(t, pos(1, 1), sb.PositionAt(4))
	assert.Equal(t, pos(0, 2), sb.PositionAt(2))
	assert.Equal(t, sb.End(), sb.PositionAt(100))
}

func TestLineBounds(t *testing.T) {
	sb := NewSliceBufferFromText("x")
	_, err := sb.Line(1)
	assert.Error(t, err)
	line, err := sb.Line(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), line)
}
