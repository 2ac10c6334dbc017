package core

import (
	"strings"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// OpenFile replaces the document with the content of path. On error the
// document is left untouched.
func (e *Editor) OpenFile(path string) error {
	text, err := e.store.ReadAllText(path)
	if err != nil {
		logger.Warnf("Editor: open %q failed: %v", path, err)
		return err
	}

	e.buffer.SetText(strings.ReplaceAll(text, "\r\n", "\n"))
	e.buffer.SetFilePath(path)
	e.buffer.SetModified(false)

	e.ClearSelection()
	e.ClearHighlights()
	e.historyManager.Clear()
	e.ViewportY, e.ViewportX = 0, 0
	e.setCursor(types.Position{})

	logger.Infof("Editor: opened %s (%d lines)", path, e.buffer.LineCount())
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	}
	return nil
}

// SaveFileAs writes the document, trimmed of leading and trailing whitespace,
// to path and makes path the current file.
func (e *Editor) SaveFileAs(path string) error {
	if err := e.store.WriteAllText(path, strings.TrimSpace(e.buffer.Text())); err != nil {
		logger.Warnf("Editor: save %q failed: %v", path, err)
		return err
	}

	e.buffer.SetFilePath(path)
	e.buffer.SetModified(false)

	logger.Infof("Editor: saved %s", path)
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	}
	return nil
}
