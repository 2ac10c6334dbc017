// internal/types/position.go
package types

import "unicode/utf8"

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Advance returns the position reached by walking over text starting at p.
// A newline moves to column 0 of the next line; every other rune moves one column.
func (p Position) Advance(text string) Position {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if r == '\n' {
			p.Line++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
