package types

// HighlightType distinguishes decorations drawn over the text.
type HighlightType int

const (
	HighlightSearch HighlightType = iota
)

// HighlightRegion is a decorated span [Start, End).
type HighlightRegion struct {
	Start Position
	End   Position
	Type  HighlightType
}

// Contains reports whether pos falls inside the region.
func (h HighlightRegion) Contains(pos Position) bool {
	return !pos.Before(h.Start) && pos.Before(h.End)
}

// Match is one occurrence of a search query in the document.
type Match struct {
	Start Position
	End   Position
}
