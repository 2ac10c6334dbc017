package modehandler

import (
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
)

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	actionProcessed := true

	if action.IsMovement() {
		if actionEvent.Shift {
			mh.editor.StartOrUpdateSelection()
		} else {
			mh.editor.ClearSelection()
		}
	}

	switch action {
	// --- Dialogs ---
	case input.ActionFind:
		mh.enterPrompt(PromptFind, "")
	case input.ActionOpen:
		mh.enterPrompt(PromptOpen, "")
	case input.ActionSaveAs:
		mh.enterPrompt(PromptSaveAs, mh.editor.GetBuffer().FilePath())
	case input.ActionEnterCommandMode:
		mh.editor.ClearSelection()
		mh.lineBuffer = ""
		mh.setMode(ModeCommand)
		mh.statusBar.SetPrompt(":", "")

	case input.ActionFindNext:
		mh.search.FindNext()

	// --- Quit ---
	case input.ActionQuit:
		switch {
		case mh.editor.HasHighlights():
			mh.editor.ClearHighlights()
			mh.statusBar.SetTemporaryMessage("Highlights cleared")
		case mh.editor.GetBuffer().IsModified() && !mh.forceQuitPending:
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			mh.forceQuitPending = true
			return true
		default:
			mh.requestQuit()
			return false
		}
	case input.ActionForceQuit:
		mh.requestQuit()
		return false

	// --- Movement ---
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	// --- Clipboard ---
	case input.ActionCopy:
		copied, err := mh.editor.Copy()
		switch {
		case !copied:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copied (system clipboard unavailable)")
		default:
			mh.statusBar.SetTemporaryMessage("Text copied to clipboard")
		}
	case input.ActionCut:
		cut, err := mh.editor.Cut()
		if !cut && err != nil {
			mh.statusBar.SetTemporaryMessage("Cut failed: %v", err)
		} else if !cut {
			mh.statusBar.SetTemporaryMessage("Nothing selected to cut")
		}
	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Debugf("Paste error: %v", err)
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	// --- Undo/Redo ---
	case input.ActionUndo:
		undone, err := mh.editor.Undo()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Undo failed: %v", err)
		} else if !undone {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		redone, err := mh.editor.Redo()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Redo failed: %v", err)
		} else if !redone {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	// --- Text Modification ---
	case input.ActionInsertRune:
		actionProcessed = mh.logEditError("InsertRune", mh.editor.InsertRune(actionEvent.Rune))
	case input.ActionInsertNewLine:
		actionProcessed = mh.logEditError("InsertNewLine", mh.editor.InsertNewLine())
	case input.ActionInsertTab:
		actionProcessed = mh.logEditError("InsertTab", mh.editor.InsertTab())
	case input.ActionDeleteCharBackward:
		actionProcessed = mh.logEditError("DeleteBackward", mh.editor.DeleteBackward())
	case input.ActionDeleteCharForward:
		actionProcessed = mh.logEditError("DeleteForward", mh.editor.DeleteForward())

	default:
		actionProcessed = false
	}

	if action != input.ActionQuit && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

func (mh *ModeHandler) logEditError(op string, err error) bool {
	if err != nil {
		logger.Errorf("ModeHandler: %s failed: %v", op, err)
		return false
	}
	return true
}
