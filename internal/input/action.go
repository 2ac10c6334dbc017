// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota // Default/invalid action
	ActionQuit                    // Esc: clears the search highlight first, then quits
	ActionForceQuit               // Quit without checking modified status
	ActionOpen
	ActionSaveAs

	// --- Search ---
	ActionFind
	ActionFindNext

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune    // Requires Rune argument
	ActionInsertNewLine // Specific action for Enter
	ActionInsertTab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- Clipboard / History ---
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionUndo
	ActionRedo

	// --- Editor Mode ---
	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionOpen:               "Open",
	ActionSaveAs:             "SaveAs",
	ActionFind:               "Find",
	ActionFindNext:           "FindNext",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionSelectAll:          "SelectAll",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionEnterCommandMode:   "EnterCommandMode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether the action only moves the caret.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	Shift  bool // Movement extends the selection
}
