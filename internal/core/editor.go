// internal/core/editor.go
package core

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/textfile"
	"github.com/bethropolis/quill/internal/types"
)

// Editor owns the document, the caret, the viewport and the single search
// highlight.
type Editor struct {
	buffer         buffer.Buffer
	store          *textfile.Store
	eventManager   *event.Manager
	historyManager *history.Manager
	clipboard      *clipboard.Manager

	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible screen column of the text area
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding status bar)
	ScrollOff  int // Number of lines to keep visible above/below cursor
	TabWidth   int

	// --- Selection State ---
	selecting      bool
	selectionStart types.Position // Anchor point of the selection
	selectionEnd   types.Position // Other end of the selection (usually Cursor position)

	highlight *types.HighlightRegion // At most one search match is decorated
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:         buf,
		store:          textfile.NewStore(nil),
		clipboard:      clipboard.NewManager(false),
		ScrollOff:      config.DefaultScrollOff,
		TabWidth:       config.DefaultTabWidth,
		selectionStart: types.Position{Line: -1, Col: -1},
		selectionEnd:   types.Position{Line: -1, Col: -1},
	}
	e.historyManager = history.NewManager(e, config.DefaultMaxHistory)
	return e
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// SetStore replaces the file store used by OpenFile and SaveFileAs.
func (e *Editor) SetStore(store *textfile.Store) {
	e.store = store
}

func (e *Editor) SetClipboard(cb *clipboard.Manager) {
	e.clipboard = cb
}

// SetMaxHistory replaces the history with an empty one holding up to max changes.
func (e *Editor) SetMaxHistory(max int) {
	e.historyManager = history.NewManager(e, max)
}

func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// SetTabWidth changes the tab stop distance, clamped to the configured range.
func (e *Editor) SetTabWidth(width int) {
	if width < config.MinTabWidth {
		width = config.MinTabWidth
	}
	if width > config.MaxTabWidth {
		width = config.MaxTabWidth
	}
	e.TabWidth = width
	e.ScrollToCursor()
}

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0
	}
	e.ScrollToCursor()
}

// ViewHeight returns the number of text rows available.
func (e *Editor) ViewHeight() int {
	return e.viewHeight
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// Find returns the start of the next literal occurrence of query at or after
// from. The editor is the search.Finder for its document.
func (e *Editor) Find(query string, from types.Position) (types.Position, bool) {
	return e.buffer.Find(query, from)
}

// NotifyModified drops the search decoration, whose range may no longer
// match the text, and announces the change.
func (e *Editor) NotifyModified() {
	e.ClearHighlights()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
}
