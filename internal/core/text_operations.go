package core

import (
	"fmt"
	"strings"

	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/types"
	"github.com/bethropolis/quill/internal/utils"
)

// InsertRune inserts a single rune at the cursor, replacing any selection.
func (e *Editor) InsertRune(r rune) error {
	return e.InsertText(string(r))
}

func (e *Editor) InsertNewLine() error {
	return e.InsertText("\n")
}

func (e *Editor) InsertTab() error {
	return e.InsertText("\t")
}

// InsertText inserts text at the cursor, replacing any selection, and leaves
// the cursor after it.
func (e *Editor) InsertText(text string) error {
	if start, end, ok := e.GetSelection(); ok {
		if err := e.deleteRange(start, end); err != nil {
			return err
		}
	}
	e.ClearSelection()
	if text == "" {
		return nil
	}

	pos := e.Cursor
	if err := e.buffer.Insert(pos, []byte(text)); err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}
	after := pos.Advance(text)
	e.historyManager.RecordChange(history.Change{
		Type:          history.InsertAction,
		Text:          []byte(text),
		StartPosition: pos,
		EndPosition:   after,
		CursorBefore:  pos,
	})

	e.setCursor(after)
	e.NotifyModified()
	return nil
}

// DeleteBackward deletes the selection, or the rune before the cursor.
func (e *Editor) DeleteBackward() error {
	if start, end, ok := e.GetSelection(); ok {
		return e.deleteRange(start, end)
	}
	e.ClearSelection()

	end := e.Cursor
	start := end
	switch {
	case end.Col > 0:
		start.Col--
	case end.Line > 0:
		start.Line--
		start.Col = e.lineLength(start.Line)
	default:
		return nil // At beginning of buffer
	}
	return e.deleteRange(start, end)
}

// DeleteForward deletes the selection, or the rune after the cursor.
func (e *Editor) DeleteForward() error {
	if start, end, ok := e.GetSelection(); ok {
		return e.deleteRange(start, end)
	}
	e.ClearSelection()

	start := e.Cursor
	end := start
	switch {
	case start.Col < e.lineLength(start.Line):
		end.Col++
	case start.Line < e.buffer.LineCount()-1:
		end.Line++
		end.Col = 0
	default:
		return nil // At end of buffer
	}
	return e.deleteRange(start, end)
}

// deleteRange removes [start, end), records it and moves the cursor to start.
func (e *Editor) deleteRange(start, end types.Position) error {
	cursorBefore := e.Cursor
	deleted := e.TextInRange(start, end)

	if err := e.buffer.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	if deleted != "" {
		e.historyManager.RecordChange(history.Change{
			Type:          history.DeleteAction,
			Text:          []byte(deleted),
			StartPosition: start,
			EndPosition:   end,
			CursorBefore:  cursorBefore,
		})
	}

	e.ClearSelection()
	e.setCursor(start)
	e.NotifyModified()
	return nil
}

// TextInRange returns the text between two positions, in document order.
func (e *Editor) TextInRange(start, end types.Position) string {
	start, end = types.Order(e.clampPosition(start), e.clampPosition(end))

	var content strings.Builder
	for lineIdx := start.Line; lineIdx <= end.Line; lineIdx++ {
		lineBytes, err := e.buffer.Line(lineIdx)
		if err != nil {
			break
		}
		from, to := 0, len(lineBytes)
		if lineIdx == start.Line {
			from = utils.RuneIndexToByteOffset(lineBytes, start.Col)
		}
		if lineIdx == end.Line {
			to = utils.RuneIndexToByteOffset(lineBytes, end.Col)
		}
		if from >= 0 && to >= from {
			content.Write(lineBytes[from:to])
		}
		if lineIdx < end.Line {
			content.WriteByte('\n')
		}
	}
	return content.String()
}

// Undo reverts the most recent change.
func (e *Editor) Undo() (bool, error) {
	e.ClearSelection()
	return e.historyManager.Undo()
}

// Redo reapplies the most recently undone change.
func (e *Editor) Redo() (bool, error) {
	e.ClearSelection()
	return e.historyManager.Redo()
}
