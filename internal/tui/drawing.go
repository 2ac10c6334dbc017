// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawBuffer draws the visible portion of the document using the given theme.
func DrawBuffer(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawBuffer called with nil theme, using %s.", theme.QuillLight.Name)
		activeTheme = &theme.QuillLight
	}

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	lineNumberStyle := activeTheme.GetStyle(theme.StyleLineNumber)
	selectionStyle := activeTheme.GetStyle(theme.StyleSelection)
	searchHighlightStyle := activeTheme.GetStyle(theme.StyleSearchHighlight)

	screen := tuiManager.screen
	width, height := tuiManager.Size()
	viewY, viewX := editor.GetViewport()
	selStart, selEnd, selectionActive := editor.GetSelection()
	highlights := editor.GetHighlights()
	viewHeight := height - config.StatusBarHeight
	tabWidth := editor.TabWidth

	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := editor.GetBuffer().Lines()
	gutterWidth := core.GutterWidth(len(lines), width)
	maxDigits := gutterWidth - 1
	textAreaWidth := width - gutterWidth
	cursorLine := editor.GetCursor().Line

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if bufferLineIdx >= len(lines) {
			continue
		}

		// --- Line Number Gutter ---
		if gutterWidth > 0 {
			style := lineNumberStyle
			if bufferLineIdx == cursorLine {
				style = lineNumberStyle.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1) {
				screen.SetContent(i, screenY, r, nil, style)
			}
		}

		// --- Buffer Text ---
		gr := uniseg.NewGraphemes(string(lines[bufferLineIdx]))
		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := core.ClusterWidth(clusterRunes, gr.Width(), currentVisualX, tabWidth)
			clusterVisualEnd := currentVisualX + clusterWidth

			if clusterVisualEnd > viewX && currentVisualX < viewX+textAreaWidth {
				currentStyle := defaultStyle
				currentPos := types.Position{Line: bufferLineIdx, Col: currentRuneIndex}

				for _, h := range highlights {
					if h.Type == types.HighlightSearch && h.Contains(currentPos) {
						currentStyle = searchHighlightStyle
						break
					}
				}
				if selectionActive && !currentPos.Before(selStart) && currentPos.Before(selEnd) {
					currentStyle = selectionStyle
				}

				drawCluster(screen, clusterRunes, currentVisualX, clusterWidth, viewX, gutterWidth, width, screenY, currentStyle)
			}

			currentVisualX = clusterVisualEnd
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= viewX+textAreaWidth {
				break
			}
		}
	}
}

// drawCluster paints one grapheme cluster, clipping cells that fall left of
// the text area or off screen. Tabs, and wide clusters cut by the left edge,
// are drawn as blanks.
func drawCluster(screen tcell.Screen, runes []rune, visualX, cellWidth, viewX, gutterWidth, width, y int, style tcell.Style) {
	startX := visualX - viewX + gutterWidth
	if runes[0] != '\t' && startX >= gutterWidth {
		if startX < width {
			screen.SetContent(startX, y, runes[0], runes[1:], style)
		}
		return
	}
	for cw := 0; cw < cellWidth; cw++ {
		screenX := startX + cw
		if screenX >= gutterWidth && screenX < width {
			screen.SetContent(screenX, y, ' ', nil, style)
		}
	}
}

// DrawCursor positions the terminal cursor at the caret, hiding it when the
// caret is scrolled out of view.
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	cursor := editor.GetCursor()
	viewY, viewX := editor.GetViewport()
	width, height := tuiManager.Size()
	gutterWidth := core.GutterWidth(editor.GetBuffer().LineCount(), width)

	cursorVisualCol := 0
	if lineBytes, err := editor.GetBuffer().Line(cursor.Line); err == nil {
		cursorVisualCol = core.VisualColumn(lineBytes, cursor.Col, editor.TabWidth)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", cursor.Line, err)
	}

	screenX := (cursorVisualCol - viewX) + gutterWidth
	screenY := cursor.Line - viewY
	viewHeight := height - config.StatusBarHeight

	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight {
		tuiManager.screen.HideCursor()
	} else {
		tuiManager.screen.ShowCursor(screenX, screenY)
	}
}
