package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
	// NotifyModified is called after the buffer was changed by undo or redo.
	NotifyModified()
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	m.changes = append(m.changes, change)

	// Oldest changes are evicted first.
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "Recorded %v change. Index: %d, Count: %d", change.Type, m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	if m.currentIndex <= 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo.")
		return false, nil
	}

	m.currentIndex--
	change := m.changes[m.currentIndex]
	buf := m.editor.GetBuffer()

	var err error
	switch change.Type {
	case InsertAction:
		err = buf.Delete(change.StartPosition, change.EndPosition)
	case DeleteAction:
		err = buf.Insert(change.StartPosition, change.Text)
	}
	if err != nil {
		m.currentIndex++
		m.mutex.Unlock()
		logger.Errorf("History: Error undoing %v: %v", change.Type, err)
		return false, fmt.Errorf("undo failed: %w", err)
	}
	m.mutex.Unlock()

	logger.DebugTagf("history", "Undid %v change %d", change.Type, m.currentIndex)
	m.editor.SetCursor(change.CursorBefore)
	m.editor.NotifyModified()
	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	if m.currentIndex >= len(m.changes) {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo. currentIndex=%d, len(changes)=%d", m.currentIndex, len(m.changes))
		return false, nil
	}

	change := m.changes[m.currentIndex]
	buf := m.editor.GetBuffer()

	var err error
	var finalCursor types.Position
	switch change.Type {
	case InsertAction:
		err = buf.Insert(change.StartPosition, change.Text)
		finalCursor = change.EndPosition
	case DeleteAction:
		err = buf.Delete(change.StartPosition, change.EndPosition)
		finalCursor = change.StartPosition
	}
	if err != nil {
		m.mutex.Unlock()
		logger.Errorf("History: Error redoing %v: %v", change.Type, err)
		return false, fmt.Errorf("redo failed: %w", err)
	}
	m.currentIndex++
	m.mutex.Unlock()

	logger.DebugTagf("history", "Redid %v change. New currentIndex=%d", change.Type, m.currentIndex)
	m.editor.SetCursor(finalCursor)
	m.editor.NotifyModified()
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
	logger.DebugTagf("history", "Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}
