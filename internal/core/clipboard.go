package core

import (
	"strings"

	"github.com/bethropolis/quill/internal/logger"
)

// Copy puts the selected text on the clipboard. It reports false when nothing
// is selected. A non-nil error means the system clipboard refused the text;
// the internal register still holds it.
func (e *Editor) Copy() (bool, error) {
	start, end, ok := e.GetSelection()
	if !ok {
		return false, nil
	}
	text := e.TextInRange(start, end)
	logger.DebugTagf("core", "Copy: %d bytes", len(text))
	return true, e.clipboard.Copy(text)
}

// Cut copies the selection, then deletes it.
func (e *Editor) Cut() (bool, error) {
	start, end, ok := e.GetSelection()
	if !ok {
		return false, nil
	}
	copyErr := e.clipboard.Copy(e.TextInRange(start, end))
	if err := e.deleteRange(start, end); err != nil {
		return false, err
	}
	return true, copyErr
}

// Paste inserts the clipboard content at the cursor, replacing any selection.
func (e *Editor) Paste() (bool, error) {
	text, ok := e.clipboard.Text()
	if !ok {
		return false, nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if err := e.InsertText(text); err != nil {
		return false, err
	}
	logger.DebugTagf("core", "Paste: %d bytes", len(text))
	return true, nil
}
