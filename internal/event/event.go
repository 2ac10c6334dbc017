// internal/event/event.go
package event

import (
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferModified // Fired when buffer content changes (insert/delete)
	TypeBufferLoaded   // Fired after a buffer is successfully loaded
	TypeBufferSaved    // Fired after a buffer is successfully saved
	TypeCursorMoved    // Fired when the cursor position changes
	TypeModeChanged

	// Search Events
	TypeSearchStarted
	TypeSearchMatched
	TypeSearchExhausted

	TypeKeyPressed

	// Application Lifecycle Events
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeModeChanged:
		return "ModeChanged"
	case TypeSearchStarted:
		return "SearchStarted"
	case TypeSearchMatched:
		return "SearchMatched"
	case TypeSearchExhausted:
		return "SearchExhausted"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData is sent after an insert or delete.
type BufferModifiedData struct{}

type BufferLoadedData struct {
	FilePath string
}

type BufferSavedData struct {
	FilePath string
}

type CursorMovedData struct {
	NewPosition types.Position
}

type ModeChangedData struct {
	Mode string
}

// SearchStartedData carries the query of a fresh search.
type SearchStartedData struct {
	Query string
}

// SearchMatchedData carries the occurrence just found.
type SearchMatchedData struct {
	Query string
	Match types.Match
}

// SearchExhaustedData is sent when no occurrence remains after Cursor.
type SearchExhaustedData struct {
	Query  string
	Cursor types.Position
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppQuitData struct{}

type AppReadyData struct{}

type ThemeChangedData struct {
	Name string
}
