package app

import (
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/tui"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	a.editor.SetViewSize(width, height)

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), ViewHeight: %d",
		width, height, a.editor.ViewHeight())

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, activeTheme)
	tui.DrawCursor(a.tuiManager, a.editor)
	// Drawn last so an active prompt can take the terminal cursor.
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}
