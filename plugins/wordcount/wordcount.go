// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds the :wc command, which reports line, word and character
// counts for the document.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

func (p *WordCount) Shutdown() error {
	return nil
}

// Counts holds the numbers shown by :wc. Chars counts runes.
type Counts struct {
	Lines int
	Words int
	Chars int
}

// Count computes the counts for text. Words are runs of non-whitespace.
func Count(text string, lineCount int) Counts {
	return Counts{
		Lines: lineCount,
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}

func (p *WordCount) executeWordCount(string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	c := Count(p.api.DocumentText(), p.api.LineCount())
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d", c.Lines, c.Words, c.Chars)
	return nil
}
