// Package search implements find / find-next over a document.
//
// A Controller owns the active query and the cursor where the next forward
// scan begins. Scans never wrap: once the end of the document is reached the
// controller reports exhaustion and keeps its cursor, so repeating FindNext
// repeats the same failing scan until BeginSearch starts over from the top.
package search

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// ExhaustedMessage is shown when a scan reaches the end without a match.
const ExhaustedMessage = "No more occurrences found."

// Finder is the substring primitive the controller scans with.
type Finder interface {
	// Find returns the start of the first occurrence of query at or after from.
	Find(query string, from types.Position) (types.Position, bool)
}

// View receives the presentation side effects of a match.
type View interface {
	ClearHighlights()
	Highlight(start, end types.Position)
	SetCursor(pos types.Position)
	ScrollTo(pos types.Position)
}

// Reporter shows informational notices to the user.
type Reporter interface {
	SetTemporaryMessage(format string, args ...interface{})
}

// State is the controller's state machine position.
type State int

const (
	StateIdle      State = iota // No active query
	StateSearching              // Active query with a cursor
)

func (s State) String() string {
	if s == StateSearching {
		return "SEARCHING"
	}
	return "IDLE"
}

// Outcome describes what a FindNext call did.
type Outcome int

const (
	OutcomeIdle      Outcome = iota // Empty query, nothing happened
	OutcomeFound                    // A match was highlighted and the cursor advanced
	OutcomeExhausted                // No match between the cursor and the document end
)

// Config holds the controller's collaborators. Only Finder is required.
type Config struct {
	Finder       Finder
	View         View
	Reporter     Reporter
	EventManager *event.Manager
}

// Controller tracks the active search term and cursor.
type Controller struct {
	finder   Finder
	view     View
	reporter Reporter
	events   *event.Manager

	query  string
	cursor types.Position
}

// New creates a Controller in the idle state.
func New(cfg Config) *Controller {
	if cfg.Finder == nil {
		panic("search.New: Finder is required")
	}
	return &Controller{
		finder:   cfg.Finder,
		view:     cfg.View,
		reporter: cfg.Reporter,
		events:   cfg.EventManager,
	}
}

// BeginSearch makes query the active term, rewinds to the document start and
// looks for the first occurrence.
func (c *Controller) BeginSearch(query string) (types.Match, Outcome) {
	c.query = query
	c.cursor = types.Position{}
	logger.DebugTagf("search", "Begin search for %q", query)
	if query != "" && c.events != nil {
		c.events.Dispatch(event.TypeSearchStarted, event.SearchStartedData{Query: query})
	}
	return c.FindNext()
}

// FindNext looks for the next occurrence of the active query at or after the
// cursor. It is a no-op while the query is empty.
func (c *Controller) FindNext() (types.Match, Outcome) {
	if c.query == "" {
		return types.Match{}, OutcomeIdle
	}

	start, found := c.finder.Find(c.query, c.cursor)
	if !found {
		logger.DebugTagf("search", "No occurrence of %q after %v", c.query, c.cursor)
		if c.reporter != nil {
			c.reporter.SetTemporaryMessage(ExhaustedMessage)
		}
		if c.events != nil {
			c.events.Dispatch(event.TypeSearchExhausted, event.SearchExhaustedData{Query: c.query, Cursor: c.cursor})
		}
		return types.Match{}, OutcomeExhausted
	}

	match := types.Match{Start: start, End: start.Advance(c.query)}
	if c.view != nil {
		c.view.ClearHighlights()
		c.view.Highlight(match.Start, match.End)
		c.view.SetCursor(match.End)
		c.view.ScrollTo(match.Start)
	}
	// Resuming at the end of the match means overlapping occurrences are skipped.
	c.cursor = match.End

	logger.DebugTagf("search", "Found %q at %v-%v", c.query, match.Start, match.End)
	if c.events != nil {
		c.events.Dispatch(event.TypeSearchMatched, event.SearchMatchedData{Query: c.query, Match: match})
	}
	return match, OutcomeFound
}

// Rewind moves the cursor back to the document start, keeping the query.
// Called when the document is replaced so the cursor stays valid.
func (c *Controller) Rewind() {
	c.cursor = types.Position{}
}

func (c *Controller) Query() string {
	return c.query
}

func (c *Controller) Cursor() types.Position {
	return c.cursor
}

func (c *Controller) State() State {
	if c.query == "" {
		return StateIdle
	}
	return StateSearching
}
