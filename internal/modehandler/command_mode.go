package modehandler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
)

// executeCommand parses and runs a command line such as "theme Quill Dark".
func (mh *ModeHandler) executeCommand(cmdStr string) {
	cmdStr = strings.TrimLeft(cmdStr, " ")
	if cmdStr == "" {
		return
	}

	cmdName, arg, _ := strings.Cut(cmdStr, " ")
	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}

	logger.DebugTagf("mode", "Executing command ':%s' with arg %q", cmdName, arg)
	if err := cmdFunc(arg); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}

func (mh *ModeHandler) registerBuiltinCommands() {
	builtins := map[string]CommandFunc{
		"open":     mh.cmdOpen,
		"saveas":   mh.cmdSaveAs,
		"find":     mh.cmdFind,
		"next":     mh.cmdNext,
		"theme":    mh.cmdTheme,
		"themes":   mh.cmdThemes,
		"tabwidth": mh.cmdTabWidth,
		"q":        mh.cmdQuit,
		"q!":       mh.cmdForceQuit,
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			logger.Errorf("ModeHandler: %v", err)
		}
	}
}

func (mh *ModeHandler) cmdOpen(arg string) error {
	path := strings.TrimSpace(arg)
	if path == "" {
		return fmt.Errorf("usage: open <path>")
	}
	mh.openFile(path)
	return nil
}

func (mh *ModeHandler) cmdSaveAs(arg string) error {
	path := strings.TrimSpace(arg)
	if path == "" {
		path = mh.editor.GetBuffer().FilePath()
	}
	if path == "" {
		return fmt.Errorf("usage: saveas <path>")
	}
	mh.saveFileAs(path)
	return nil
}

// cmdFind searches for the argument exactly as typed, inner spaces included.
func (mh *ModeHandler) cmdFind(arg string) error {
	mh.search.BeginSearch(arg)
	return nil
}

func (mh *ModeHandler) cmdNext(string) error {
	mh.search.FindNext()
	return nil
}

func (mh *ModeHandler) cmdTheme(arg string) error {
	if mh.themes == nil {
		return fmt.Errorf("themes are not available")
	}
	name := strings.TrimSpace(arg)
	if name == "" {
		mh.statusBar.SetTemporaryMessage("Theme: %s", mh.themes.Current().Name)
		return nil
	}
	if err := mh.themes.SetTheme(name); err != nil {
		return err
	}
	current := mh.themes.Current().Name
	mh.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current})
	mh.statusBar.SetTemporaryMessage("Theme: %s", current)
	return nil
}

func (mh *ModeHandler) cmdThemes(string) error {
	if mh.themes == nil {
		return fmt.Errorf("themes are not available")
	}
	mh.statusBar.SetTemporaryMessage("Themes: %s", strings.Join(mh.themes.ListThemes(), ", "))
	return nil
}

func (mh *ModeHandler) cmdTabWidth(arg string) error {
	width, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return fmt.Errorf("invalid tab width %q", strings.TrimSpace(arg))
	}
	if width < config.MinTabWidth || width > config.MaxTabWidth {
		return fmt.Errorf("tab width must be between %d and %d", config.MinTabWidth, config.MaxTabWidth)
	}
	mh.editor.SetTabWidth(width)
	mh.statusBar.SetTemporaryMessage("Tab width: %d", width)
	return nil
}

func (mh *ModeHandler) cmdQuit(string) error {
	if mh.editor.GetBuffer().IsModified() {
		return fmt.Errorf("unsaved changes, use :q! to quit without saving")
	}
	mh.requestQuit()
	return nil
}

func (mh *ModeHandler) cmdForceQuit(string) error {
	mh.requestQuit()
	return nil
}
