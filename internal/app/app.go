// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/search"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/textfile"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/tui"
	"github.com/bethropolis/quill/plugins/wordcount"
)

// Options replaces the terminal, filesystem or themes directory. Zero values
// mean the real terminal, the OS filesystem and config.DefaultThemesDir.
type Options struct {
	Screen    tcell.Screen
	Fs        afero.Fs
	ThemesDir string
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager    *tui.TUI
	editor        *core.Editor
	search        *search.Controller
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	themeManager  *theme.Manager
	modeHandler   *modehandler.ModeHandler
	pluginManager *plugin.Manager
	store         *textfile.Store

	// Channels managed by the App
	quit          chan struct{}
	events        chan tcell.Event
	redrawRequest chan struct{}
}

// NewApp creates an editor on the real terminal. filePath may be empty.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	return NewAppWithOptions(cfg, filePath, Options{})
}

// NewAppWithOptions creates and wires all components.
func NewAppWithOptions(cfg *config.Config, filePath string, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	themesDir := opts.ThemesDir
	if themesDir == "" {
		themesDir = config.DefaultThemesDir()
	}

	themeManager := theme.NewManager(themesDir, cfg.Editor.Theme)
	activeTheme := themeManager.Current()

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme)
	} else {
		tuiManager, err = tui.New(activeTheme)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	store := textfile.NewStore(opts.Fs)

	editor := core.NewEditor(buffer.NewSliceBuffer())
	editor.SetEventManager(eventManager)
	editor.SetStore(store)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))
	editor.SetTabWidth(cfg.Editor.TabWidth)
	editor.SetMaxHistory(cfg.Editor.MaxHistory)
	editor.ScrollOff = cfg.Editor.ScrollOff

	statusBar := statusbar.New(statusbar.ConfigFromTheme(activeTheme))

	searchCtl := search.New(search.Config{
		Finder:       editor,
		View:         editor,
		Reporter:     statusBar,
		EventManager: eventManager,
	})

	quitChan := make(chan struct{})
	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		Search:         searchCtl,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Themes:         themeManager,
		QuitSignal:     quitChan,
	})

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		search:        searchCtl,
		statusBar:     statusBar,
		eventManager:  eventManager,
		themeManager:  themeManager,
		modeHandler:   modeHandler,
		pluginManager: plugin.NewManager(),
		store:         store,
		quit:          quitChan,
		events:        make(chan tcell.Event, 16),
		redrawRequest: make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	eventManager.Subscribe(event.TypeBufferLoaded, a.handleDocumentChanged)
	eventManager.Subscribe(event.TypeBufferSaved, a.handleDocumentChanged)

	// --- Register Built-in Plugins ---
	if err := a.pluginManager.Register(wordcount.New()); err != nil {
		logger.Warnf("Failed to register WordCount plugin: %v", err)
	}
	a.pluginManager.InitializePlugins(newEditorAPI(a))

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	a.loadInitialFile(filePath)
	return a, nil
}

// loadInitialFile opens filePath if it exists; otherwise the empty document
// is given that name so the first Save As is pre-filled.
func (a *App) loadInitialFile(filePath string) {
	if filePath == "" {
		return
	}
	if !a.store.Exists(filePath) {
		a.editor.GetBuffer().SetFilePath(filePath)
		a.statusBar.SetTemporaryMessage("New file: %s", filePath)
		logger.Infof("App: '%s' does not exist, starting empty", filePath)
		return
	}
	if err := a.editor.OpenFile(filePath); err != nil {
		a.statusBar.SetTemporaryMessage("Open failed: %v", err)
		logger.Errorf("App: %v", err)
	}
}

// Run starts the application's main event and drawing loops. Key handling and
// drawing both happen on the calling goroutine.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.pollEvents()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	if !a.statusBar.HasTemporaryMessage() {
		a.statusBar.SetTemporaryMessage("Quill - Ctrl+F Find | Ctrl+N Next | Ctrl+O Open | Ctrl+S Save As | Esc Quit")
	}
	a.drawEditor()

	for {
		select {
		case <-a.quit:
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-ticker.C:
			// Expire temporary messages without waiting for a key.
			a.requestRedraw()
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reports whether ev changed what is on screen.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		w, h := a.tuiManager.Size()
		a.editor.SetViewSize(w, h)
		a.editor.ScrollToCursor()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)
	}
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

func (a *App) handleThemeChanged(e event.Event) bool {
	current := a.themeManager.Current()
	a.tuiManager.ApplyTheme(current)
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(current))
	logger.DebugTagf("theme", "App: switched to theme '%s'", current.Name)
	a.requestRedraw()
	return false
}

func (a *App) handleDocumentChanged(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}
