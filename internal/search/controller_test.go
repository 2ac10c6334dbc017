package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/types"
)

// lineFinder searches a single line of plain text.
type lineFinder string

func (f lineFinder) Find(query string, from types.Position) (types.Position, bool) {
	runes := []rune(string(f))
	if from.Line > 0 || from.Col > len(runes) {
		return types.Position{}, false
	}
	idx := strings.Index(string(runes[from.Col:]), query)
	if idx < 0 {
		return types.Position{}, false
	}
	return types.Position{Col: from.Col + len([]rune(string(runes[from.Col:])[:idx]))}, true
}

type recordingView struct {
	calls      []string
	highlights []types.HighlightRegion
	cursor     types.Position
	scrolledTo types.Position
}

func (v *recordingView) ClearHighlights() {
	v.calls = append(v.calls, "clear")
	v.highlights = nil
}

func (v *recordingView) Highlight(start, end types.Position) {
	v.calls = append(v.calls, "highlight")
	v.highlights = append(v.highlights, types.HighlightRegion{Start: start, End: end})
}

func (v *recordingView) SetCursor(pos types.Position) {
	v.calls = append(v.calls, "cursor")
	v.cursor = pos
}

func (v *recordingView) ScrollTo(pos types.Position) {
	v.calls = append(v.calls, "scroll")
	v.scrolledTo = pos
}

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) SetTemporaryMessage(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func newTestController(f Finder) (*Controller, *recordingView, *recordingReporter) {
	view := &recordingView{}
	reporter := &recordingReporter{}
	return New(Config{Finder: f, View: view, Reporter: reporter}), view, reporter
}

func col(c int) types.Position {
	return types.Position{Col: c}
}

func TestBeginSearchFindsFirstOccurrence(t *testing.T) {
	c, view, reporter := newTestController(lineFinder("one two one two"))

	m, outcome := c.BeginSearch("two")

	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, types.Match{Start: col(4), End: col(7)}, m)
	assert.Equal(t, []string{"clear", "highlight", "cursor", "scroll"}, view.calls)
	assert.Equal(t, col(7), view.cursor, "caret moves to the match end")
	assert.Equal(t, col(4), view.scrolledTo)
	assert.Equal(t, col(7), c.Cursor())
	assert.Empty(t, reporter.messages)
}

func TestConcreteScenarioOffsets(t *testing.T) {
	c, _, reporter := newTestController(buffer.NewSliceBufferFromText("the cat sat on the mat"))

	m, outcome := c.BeginSearch("at")
	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, col(5), m.Start)

	var starts []int
	starts = append(starts, m.Start.Col)
	for {
		m, outcome = c.FindNext()
		if outcome != OutcomeFound {
			break
		}
		starts = append(starts, m.Start.Col)
	}

	assert.Equal(t, []int{5, 9, 20}, starts)
	assert.Equal(t, OutcomeExhausted, outcome)
	assert.Equal(t, []string{ExhaustedMessage}, reporter.messages)
}

func TestVisitsEachOccurrenceOnceThenExhausts(t *testing.T) {
	cases := []struct {
		text  string
		query string
		want  []int
	}{
		{"abcabcabc", "abc", []int{0, 3, 6}},
		{"xx-xx", "xx", []int{0, 3}},
		{"needle", "needle", []int{0}},
		{"ünï ünï", "nï", []int{1, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.query+"/"+tc.text, func(t *testing.T) {
			c, _, reporter := newTestController(lineFinder(tc.text))

			m, outcome := c.BeginSearch(tc.query)
			got := []int{}
			for outcome == OutcomeFound {
				got = append(got, m.Start.Col)
				m, outcome = c.FindNext()
			}

			assert.Equal(t, tc.want, got)
			assert.Equal(t, OutcomeExhausted, outcome)
			assert.Len(t, reporter.messages, 1)
		})
	}
}

func TestOverlappingOccurrencesAreNotDoubleCounted(t *testing.T) {
	c, _, _ := newTestController(lineFinder("aaa"))

	m, outcome := c.BeginSearch("aa")
	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, col(0), m.Start)

	_, outcome = c.FindNext()
	assert.Equal(t, OutcomeExhausted, outcome)
}

func TestEmptyQueryIsNoOp(t *testing.T) {
	c, view, reporter := newTestController(lineFinder("anything"))

	_, outcome := c.FindNext()
	assert.Equal(t, OutcomeIdle, outcome)

	_, outcome = c.BeginSearch("")
	assert.Equal(t, OutcomeIdle, outcome)
	_, outcome = c.FindNext()
	assert.Equal(t, OutcomeIdle, outcome)

	assert.Empty(t, view.calls, "no highlight change, no caret move")
	assert.Empty(t, reporter.messages, "no exhaustion message")
	assert.Equal(t, StateIdle, c.State())
}

func TestBeginSearchResetsAfterExhaustion(t *testing.T) {
	c, _, _ := newTestController(lineFinder("ab ab"))

	c.BeginSearch("ab")
	c.FindNext()
	_, outcome := c.FindNext()
	require.Equal(t, OutcomeExhausted, outcome)

	m, outcome := c.BeginSearch("ab")
	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, col(0), m.Start)
}

func TestExhaustionKeepsQueryAndCursor(t *testing.T) {
	c, view, reporter := newTestController(lineFinder("only once"))

	c.BeginSearch("once")
	callsAfterMatch := len(view.calls)

	for i := 0; i < 3; i++ {
		_, outcome := c.FindNext()
		assert.Equal(t, OutcomeExhausted, outcome)
	}

	assert.Equal(t, "once", c.Query())
	assert.Equal(t, col(9), c.Cursor())
	assert.Equal(t, StateSearching, c.State(), "exhaustion does not return to idle")
	assert.Len(t, view.calls, callsAfterMatch, "a failed scan leaves the highlight and caret alone")
	assert.Len(t, reporter.messages, 3)
}

func TestHighlightIsSingular(t *testing.T) {
	c, view, _ := newTestController(lineFinder("a a a"))

	c.BeginSearch("a")
	c.FindNext()
	c.FindNext()

	require.Len(t, view.highlights, 1)
	assert.Equal(t, types.HighlightRegion{Start: col(4), End: col(5)}, view.highlights[0])
}

func TestMatchSpanningLines(t *testing.T) {
	doc := buffer.NewSliceBufferFromText("first line\nsecond line")
	c, view, _ := newTestController(doc)

	m, outcome := c.BeginSearch("line\nsec")
	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, types.Position{Line: 0, Col: 6}, m.Start)
	assert.Equal(t, types.Position{Line: 1, Col: 3}, m.End)
	assert.Equal(t, m.End, view.cursor)
}

func TestControllerWithoutViewOrReporter(t *testing.T) {
	c := New(Config{Finder: lineFinder("x")})
	assert.NotPanics(t, func() {
		c.BeginSearch("x")
		c.FindNext()
	})
}

func TestRewindKeepsQuery(t *testing.T) {
	c, _, _ := newTestController(lineFinder("go go"))
	c.BeginSearch("go")
	c.FindNext()

	c.Rewind()
	assert.Equal(t, types.Position{}, c.Cursor())
	assert.Equal(t, "go", c.Query())

	m, outcome := c.FindNext()
	require.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, col(0), m.Start)
}

func TestEventsAreDispatched(t *testing.T) {
	events := event.NewManager()
	var got []event.Type
	record := func(e event.Event) bool {
		got = append(got, e.Type)
		return false
	}
	events.Subscribe(event.TypeSearchStarted, record)
	events.Subscribe(event.TypeSearchMatched, record)
	events.Subscribe(event.TypeSearchExhausted, record)

	c := New(Config{Finder: lineFinder("abc"), EventManager: events})
	c.BeginSearch("b")
	c.FindNext()

	assert.Equal(t, []event.Type{event.TypeSearchStarted, event.TypeSearchMatched, event.TypeSearchExhausted}, got)
}

func TestNewRequiresFinder(t *testing.T) {
	assert.Panics(t, func() { New(Config{}) })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "IDLE", StateIdle.String())
	assert.Equal(t, "SEARCHING", StateSearching.String())
}
