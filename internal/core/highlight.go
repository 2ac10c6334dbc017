package core

import (
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Highlight decorates [start, end) as the current search match, replacing any
// previous decoration. An active selection is dropped so the match is visible.
func (e *Editor) Highlight(start, end types.Position) {
	start, end = types.Order(start, end)
	e.ClearSelection()
	e.highlight = &types.HighlightRegion{Start: start, End: end, Type: types.HighlightSearch}
	logger.DebugTagf("core", "Highlight %v-%v", start, end)
}

// ClearHighlights removes the search decoration, if any.
func (e *Editor) ClearHighlights() {
	e.highlight = nil
}

// HasHighlights checks if a search decoration is shown.
func (e *Editor) HasHighlights() bool {
	return e.highlight != nil
}

// GetHighlights returns the current highlight regions (for drawing).
func (e *Editor) GetHighlights() []types.HighlightRegion {
	if e.highlight == nil {
		return nil
	}
	return []types.HighlightRegion{*e.highlight}
}
