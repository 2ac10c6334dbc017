package modehandler

import (
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/utils"
)

// PromptKind selects what a submitted prompt does.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptFind
	PromptOpen
	PromptSaveAs
)

// Label is the text shown before the user's input.
func (p PromptKind) Label() string {
	switch p {
	case PromptFind:
		return "Find: "
	case PromptOpen:
		return "Open: "
	case PromptSaveAs:
		return "Save As: "
	}
	return ""
}

// enterPrompt opens a one-line dialog pre-filled with initial.
func (mh *ModeHandler) enterPrompt(kind PromptKind, initial string) {
	mh.editor.ClearSelection()
	mh.prompt = kind
	mh.lineBuffer = initial
	mh.setMode(ModePrompt)
	mh.statusBar.SetPrompt(kind.Label(), initial)
}

// handleLineInput edits the prompt or command line. Enter submits, Esc
// cancels, Backspace removes one rune.
func (mh *ModeHandler) handleLineInput(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.lineBuffer += string(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		mh.lineBuffer = utils.TrimLastRune(mh.lineBuffer)
	case input.ActionInsertNewLine:
		text, mode, kind := mh.lineBuffer, mh.currentMode, mh.prompt
		mh.leaveLineInput()
		if mode == ModeCommand {
			mh.executeCommand(text)
		} else {
			mh.submitPrompt(kind, text)
		}
		return true
	case input.ActionQuit:
		logger.DebugTagf("mode", "Canceled %v input", mh.currentMode)
		mh.leaveLineInput()
		return true
	default:
		return false
	}

	label := ":"
	if mh.currentMode == ModePrompt {
		label = mh.prompt.Label()
	}
	mh.statusBar.SetPrompt(label, mh.lineBuffer)
	return true
}

func (mh *ModeHandler) leaveLineInput() {
	mh.lineBuffer = ""
	mh.prompt = PromptNone
	mh.statusBar.ClearPrompt()
	mh.setMode(ModeNormal)
}

// submitPrompt runs the dialog's operation. Empty Open and Save As input is
// treated like a cancel.
func (mh *ModeHandler) submitPrompt(kind PromptKind, text string) {
	switch kind {
	case PromptFind:
		mh.search.BeginSearch(text)
	case PromptOpen:
		if text != "" {
			mh.openFile(text)
		}
	case PromptSaveAs:
		if text != "" {
			mh.saveFileAs(text)
		}
	}
}

func (mh *ModeHandler) openFile(path string) {
	if err := mh.editor.OpenFile(path); err != nil {
		mh.statusBar.SetTemporaryMessage("Open failed: %v", err)
		logger.Warnf("ModeHandler: open '%s': %v", path, err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Opened %s", path)
}

func (mh *ModeHandler) saveFileAs(path string) {
	if err := mh.editor.SaveFileAs(path); err != nil {
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		logger.Errorf("ModeHandler: save '%s': %v", path, err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Buffer saved to %s", path)
}
