// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/types"
)

// CommandFunc is a command registered by a plugin. arg is the raw text after
// the command name.
type CommandFunc func(arg string) error

// EditorAPI is the part of the editor plugins may use. Plugins read the
// document; they never edit it directly.
type EditorAPI interface {
	// --- Document (read-only) ---
	DocumentText() string
	LineCount() int
	FilePath() string
	IsModified() bool
	GetCursor() types.Position

	// --- Event Bus Interaction ---
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup to subscribe to events and
	// register commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
