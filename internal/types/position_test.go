package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionAdvance(t *testing.T) {
	start := Position{Line: 2, Col: 4}

	assert.Equal(t, Position{Line: 2, Col: 6}, start.Advance("at"))
	assert.Equal(t, Position{Line: 2, Col: 7}, start.Advance("héé"), "columns count runes, not bytes")
	assert.Equal(t, Position{Line: 3, Col: 2}, start.Advance("a\nbc"))
	assert.Equal(t, start, start.Advance(""))
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Line: 1, Col: 9}
	b := Position{Line: 2, Col: 0}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))

	first, second := Order(b, a)
	assert.Equal(t, a, first)
	assert.Equal(t, b, second)
}

func TestHighlightRegionContains(t *testing.T) {
	h := HighlightRegion{Start: Position{0, 5}, End: Position{0, 7}}

	assert.False(t, h.Contains(Position{0, 4}))
	assert.True(t, h.Contains(Position{0, 5}))
	assert.True(t, h.Contains(Position{0, 6}))
	assert.False(t, h.Contains(Position{0, 7}), "end is exclusive")
}
