package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tm, err := NewWithScreen(sim, &theme.QuillLight)
	require.NoError(t, err)
	t.Cleanup(tm.Close)
	sim.SetSize(w, h)
	return tm, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		if r := cells[y*width+x].Runes; len(r) > 0 {
			sb.WriteRune(r[0])
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDrawBufferGutterAndTabs(t *testing.T) {
	tm, sim := newSimTUI(t, 20, 4)
	ed := core.NewEditor(buffer.NewSliceBufferFromText("a\tb\nsecond"))
	ed.SetTabWidth(4)
	ed.SetViewSize(20, 4)

	DrawBuffer(tm, ed, &theme.QuillLight)
	DrawCursor(tm, ed)
	tm.Show()

	assert.Equal(t, "1 a   b", rowText(sim, 0))
	assert.Equal(t, "2 second", rowText(sim, 1))
	assert.Equal(t, "", rowText(sim, 2))

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
}

func TestDrawBufferSearchHighlight(t *testing.T) {
	tm, sim := newSimTUI(t, 30, 3)
	ed := core.NewEditor(buffer.NewSliceBufferFromText("the cat sat"))
	ed.SetViewSize(30, 3)
	ed.Highlight(types.Position{Line: 0, Col: 5}, types.Position{Line: 0, Col: 7})

	DrawBuffer(tm, ed, &theme.QuillLight)
	tm.Show()

	cells, _, _ := sim.GetContents()
	highlight := theme.QuillLight.GetStyle(theme.StyleSearchHighlight)
	normal := theme.QuillLight.GetStyle(theme.StyleDefault)
	gutter := 2
	assert.Equal(t, normal, cells[gutter+4].Style)
	assert.Equal(t, highlight, cells[gutter+5].Style)
	assert.Equal(t, highlight, cells[gutter+6].Style)
	assert.Equal(t, normal, cells[gutter+7].Style)
}

func TestDrawCursorHiddenWhenScrolledAway(t *testing.T) {
	tm, sim := newSimTUI(t, 20, 3)
	ed := core.NewEditor(buffer.NewSliceBufferFromText("a\nb\nc\nd\ne"))
	ed.SetViewSize(20, 3)
	ed.SetCursor(types.Position{Line: 4, Col: 0})
	ed.ViewportY = 0

	DrawCursor(tm, ed)
	tm.Show()

	_, _, visible := sim.GetCursor()
	assert.False(t, visible)
}
