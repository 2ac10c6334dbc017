package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndData(t *testing.T) {
	m := NewManager()
	var seen []string

	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		data, ok := e.Data.(BufferSavedData)
		assert.True(t, ok)
		seen = append(seen, "first:"+data.FilePath)
		return false
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		seen = append(seen, "second")
		return false
	})

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "notes.txt"})
	assert.Equal(t, []string{"first:notes.txt", "second"}, seen)
}

func TestDispatchConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeSearchMatched, func(Event) bool { calls++; return true })
	m.Subscribe(TypeSearchMatched, func(Event) bool { calls++; return false })

	m.Dispatch(TypeSearchMatched, SearchMatchedData{})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "SearchExhausted", TypeSearchExhausted.String())
	assert.Equal(t, "Unknown", Type(999).String())
}
