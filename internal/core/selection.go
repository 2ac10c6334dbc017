package core

import (
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// StartOrUpdateSelection anchors a selection at the caret if none is active.
// Subsequent cursor moves extend it.
func (e *Editor) StartOrUpdateSelection() {
	if !e.selecting {
		e.selectionStart = e.Cursor
		e.selecting = true
		logger.DebugTagf("core", "Selection started at %v", e.selectionStart)
	}
	e.selectionEnd = e.Cursor
}

// ClearSelection resets the selection state.
func (e *Editor) ClearSelection() {
	e.selecting = false
	e.selectionStart = types.Position{Line: -1, Col: -1}
	e.selectionEnd = types.Position{Line: -1, Col: -1}
}

// SelectAll selects the whole document and leaves the caret at its end.
func (e *Editor) SelectAll() {
	e.ClearSelection()
	e.setCursor(types.Position{})
	e.StartOrUpdateSelection()
	e.setCursor(e.buffer.End())
}

// HasSelection returns whether a non-empty range is selected.
func (e *Editor) HasSelection() bool {
	_, _, ok := e.GetSelection()
	return ok
}

// GetSelection returns the normalized selection range (start <= end).
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !e.selecting || e.selectionStart == e.selectionEnd {
		return types.Position{Line: -1, Col: -1}, types.Position{Line: -1, Col: -1}, false
	}
	start, end = types.Order(e.selectionStart, e.selectionEnd)
	return start, end, true
}
