package core

import (
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// clampPosition keeps pos inside the document.
func (e *Editor) clampPosition(pos types.Position) types.Position {
	lineCount := e.buffer.LineCount()
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if pos.Col > e.lineLength(pos.Line) {
		pos.Col = e.lineLength(pos.Line)
	}
	return pos
}

// lineLength returns the number of runes on a line, 0 for invalid lines.
func (e *Editor) lineLength(line int) int {
	lineBytes, err := e.buffer.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(lineBytes)
}

// SetCursor moves the caret to pos (clamped) and keeps it visible.
func (e *Editor) SetCursor(pos types.Position) {
	e.setCursor(e.clampPosition(pos))
}

func (e *Editor) setCursor(pos types.Position) {
	moved := pos != e.Cursor
	e.Cursor = pos
	if e.selecting {
		e.selectionEnd = pos
	}
	e.ScrollToCursor()
	if moved && e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
	}
}

// MoveCursor moves by whole lines and runes. Horizontal moves wrap across line
// ends; vertical moves keep the column where the new line allows it.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	pos := e.Cursor
	pos.Line += deltaLine
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= e.buffer.LineCount() {
		pos.Line = e.buffer.LineCount() - 1
	}

	pos.Col += deltaCol
	for pos.Col < 0 && pos.Line > 0 {
		pos.Line--
		pos.Col += e.lineLength(pos.Line) + 1
	}
	for pos.Col > e.lineLength(pos.Line) && pos.Line < e.buffer.LineCount()-1 {
		pos.Col -= e.lineLength(pos.Line) + 1
		pos.Line++
	}

	e.SetCursor(pos)
	logger.DebugTagf("core", "MoveCursor: Delta(%d,%d) → NewCursor(%d,%d)",
		deltaLine, deltaCol, e.Cursor.Line, e.Cursor.Col)
}

// PageMove moves the cursor by whole screens.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.MoveCursor(deltaPages*e.viewHeight, 0)
}

// Home moves to the start of the current line.
func (e *Editor) Home() {
	e.SetCursor(types.Position{Line: e.Cursor.Line, Col: 0})
}

// End moves to the end of the current line.
func (e *Editor) End() {
	e.SetCursor(types.Position{Line: e.Cursor.Line, Col: e.lineLength(e.Cursor.Line)})
}

// ScrollToCursor adjusts the viewport so the caret is visible.
func (e *Editor) ScrollToCursor() {
	e.ScrollTo(e.Cursor)
}

// ScrollTo adjusts the viewport so pos is visible, keeping ScrollOff lines of
// context where the view is tall enough.
func (e *Editor) ScrollTo(pos types.Position) {
	if e.viewHeight <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if pos.Line < e.ViewportY+scrollOff {
		e.ViewportY = pos.Line - scrollOff
	} else if pos.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = pos.Line - e.viewHeight + scrollOff + 1
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}

	textWidth := e.viewWidth - GutterWidth(e.buffer.LineCount(), e.viewWidth)
	if textWidth <= 0 {
		return
	}
	lineBytes, err := e.buffer.Line(pos.Line)
	if err != nil {
		return
	}
	visualCol := VisualColumn(lineBytes, pos.Col, e.TabWidth)
	if visualCol < e.ViewportX {
		e.ViewportX = visualCol
	} else if visualCol >= e.ViewportX+textWidth {
		e.ViewportX = visualCol - textWidth + 1
	}
}
