// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/search"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrompt
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModePrompt:
		return "Prompt"
	case ModeCommand:
		return "Command"
	default:
		return "Normal"
	}
}

// CommandFunc runs a command; arg is everything after the command name.
type CommandFunc func(arg string) error

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	search         *search.Controller
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	themes         *theme.Manager
	quitSignal     chan<- struct{}

	currentMode      InputMode
	prompt           PromptKind
	lineBuffer       string // Text typed into a prompt or the command line
	commands         map[string]CommandFunc
	forceQuitPending bool
	quitting         bool
}

// Config holds dependencies for the ModeHandler. Themes is optional.
type Config struct {
	Editor         *core.Editor
	Search         *search.Controller
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Themes         *theme.Manager
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
}

// New creates a new ModeHandler with the built-in commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.Search == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		search:         cfg.Search,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		themes:         cfg.Themes,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]CommandFunc),
	}
	mh.registerBuiltinCommands()
	mh.statusBar.SetEditorMode(mh.currentMode.String())

	// A new document invalidates the search cursor but keeps the query.
	mh.eventManager.Subscribe(event.TypeBufferLoaded, func(event.Event) bool {
		mh.search.Rewind()
		return false
	})
	return mh
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "Key %v -> %v in %v mode", ev.Name(), actionEvent.Action, mh.currentMode)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModePrompt, ModeCommand:
		return mh.handleLineInput(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// setMode switches modes and announces the change.
func (mh *ModeHandler) setMode(mode InputMode) {
	if mh.currentMode == mode {
		return
	}
	mh.currentMode = mode
	mh.statusBar.SetEditorMode(mode.String())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
	logger.DebugTagf("mode", "Entered %v mode", mode)
}

// requestQuit signals the application once.
func (mh *ModeHandler) requestQuit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	mh.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	close(mh.quitSignal)
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("mode", "Registered command ':%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetLineBuffer returns the text typed into the active prompt or command line.
func (mh *ModeHandler) GetLineBuffer() string {
	if mh.currentMode == ModeNormal {
		return ""
	}
	return mh.lineBuffer
}
