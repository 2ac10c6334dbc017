// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StylePrompt    tcell.Style // Style for prompt input
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return ConfigFromTheme(&theme.QuillLight)
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleModified:  th.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StylePrompt:    th.GetStyle(theme.StyleStatusBarPrompt),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields
	now    func() time.Time

	filePath   string
	cursorPos  types.Position
	isModified bool
	editorMode string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time

	// Prompt state; a prompt stays until cleared and hides other content
	promptLabel  string
	promptText   string
	promptActive bool
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetConfig swaps styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// HasTemporaryMessage reports whether a message is set and not yet expired.
func (sb *StatusBar) HasTemporaryMessage() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// SetPrompt shows an input line such as "Find: " followed by text.
func (sb *StatusBar) SetPrompt(label, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptLabel = label
	sb.promptText = text
	sb.promptActive = true
}

func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptLabel, sb.promptText = "", ""
	sb.promptActive = false
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [+]"
	}
	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}
	return fmt.Sprintf("%s%s -- Ln %d, Col %d%s",
		name, modifiedIndicator, sb.cursorPos.Line+1, sb.cursorPos.Col+1, modeIndicator)
}

// DisplayText returns what Draw would show and the style it would use.
func (sb *StatusBar) DisplayText() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.promptActive {
		return sb.promptLabel + sb.promptText, sb.config.StylePrompt
	}

	isTempMsgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if isTempMsgActive {
		return sb.tempMessage, sb.config.StyleMessage
	}
	if sb.isModified {
		return sb.getDefaultDisplayText(), sb.config.StyleModified
	}
	return sb.getDefaultDisplayText(), sb.config.StyleDefault
}

// Draw renders the status bar onto the last screen row. While a prompt is
// active the terminal cursor is placed after its text.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, style := sb.DisplayText()
	sb.mu.RLock()
	promptActive := sb.promptActive
	sb.mu.RUnlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}

	if promptActive {
		if currentX >= width {
			currentX = width - 1
		}
		screen.ShowCursor(currentX, y)
	}
}
