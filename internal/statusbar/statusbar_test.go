package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBar() (*StatusBar, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }
	return sb, &now
}

func TestDefaultText(t *testing.T) {
	sb, _ := newTestBar()
	sb.SetCursorInfo(types.Position{Line: 2, Col: 4})
	sb.SetEditorMode("Normal")

	text, style := sb.DisplayText()
	assert.Equal(t, "[No Name] -- Ln 3, Col 5 -- Normal", text)
	assert.Equal(t, sb.config.StyleDefault, style)

	sb.SetFileInfo("/tmp/notes/todo.txt", true)
	text, style = sb.DisplayText()
	assert.True(t, strings.HasPrefix(text, "todo.txt [+]"))
	assert.Equal(t, sb.config.StyleModified, style)
}

func TestTemporaryMessageExpires(t *testing.T) {
	sb, now := newTestBar()

	sb.SetTemporaryMessage("Saved %d bytes", 12)
	text, style := sb.DisplayText()
	assert.Equal(t, "Saved 12 bytes", text)
	assert.Equal(t, sb.config.StyleMessage, style)
	assert.True(t, sb.HasTemporaryMessage())

	*now = now.Add(sb.config.MessageTimeout + time.Second)
	text, _ = sb.DisplayText()
	assert.Contains(t, text, "[No Name]")
	assert.Empty(t, sb.tempMessage)
	assert.False(t, sb.HasTemporaryMessage())
}

func TestPromptHidesMessage(t *testing.T) {
	sb, _ := newTestBar()
	sb.SetTemporaryMessage("hello")
	sb.SetPrompt("Find: ", "cat")

	text, style := sb.DisplayText()
	assert.Equal(t, "Find: cat", text)
	assert.Equal(t, sb.config.StylePrompt, style)

	sb.ClearPrompt()
	text, _ = sb.DisplayText()
	assert.Equal(t, "hello", text)
}

func TestDrawWritesLastRow(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 3)

	sb, _ := newTestBar()
	sb.SetConfig(ConfigFromTheme(&theme.QuillDark))
	sb.SetPrompt("Open: ", "a.txt")
	sb.Draw(screen, 20, 3)
	screen.Show()

	cells, width, _ := screen.GetContents()
	var row strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[2*width+x]
		if len(cell.Runes) > 0 {
			row.WriteRune(cell.Runes[0])
		}
	}
	assert.Equal(t, "Open: a.txt", strings.TrimRight(row.String(), " "))

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 11, x)
	assert.Equal(t, 2, y)
}
