// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/types"
	"github.com/bethropolis/quill/internal/utils"
)

// SliceBuffer stores the document as a slice of lines without their newlines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new files
		lines: [][]byte{{}},
	}
}

// NewSliceBufferFromText creates a buffer holding text.
func NewSliceBufferFromText(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.SetText(text)
	return sb
}

// SetText replaces the content. The modified flag is left alone; callers
// that load from disk reset it themselves.
func (sb *SliceBuffer) SetText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	sb.lines = lines
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

func (sb *SliceBuffer) Text() string {
	return string(bytes.Join(sb.lines, []byte("\n")))
}

// End returns the position just past the last rune of the document.
func (sb *SliceBuffer) End() types.Position {
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) SetModified(modified bool) {
	sb.modified = modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

func (sb *SliceBuffer) SetFilePath(path string) {
	sb.filePath = path
}

// --- Search ---

// Find implements a literal, case-sensitive forward scan over the flattened
// text, so a query may span a line break.
func (sb *SliceBuffer) Find(query string, from types.Position) (types.Position, bool) {
	if query == "" {
		return types.Position{}, false
	}
	validFrom, lineOffset, err := sb.validatePosition(from)
	if err != nil {
		return types.Position{}, false
	}

	text := sb.Text()
	startByte := sb.lineStartByte(validFrom.Line) + lineOffset
	idx := strings.Index(text[startByte:], query)
	if idx < 0 {
		return types.Position{}, false
	}
	return sb.positionForByte(startByte + idx), true
}

// Offset converts a position to a rune offset into Text().
func (sb *SliceBuffer) Offset(pos types.Position) int {
	validPos, _, err := sb.validatePosition(pos)
	if err != nil {
		return 0
	}
	offset := 0
	for i := 0; i < validPos.Line; i++ {
		offset += utf8.RuneCount(sb.lines[i]) + 1
	}
	return offset + validPos.Col
}

// PositionAt converts a rune offset into Text() to a position, clamping to the end.
func (sb *SliceBuffer) PositionAt(offset int) types.Position {
	if offset < 0 {
		offset = 0
	}
	for i, line := range sb.lines {
		n := utf8.RuneCount(line)
		if offset <= n {
			return types.Position{Line: i, Col: offset}
		}
		offset -= n + 1
	}
	return sb.End()
}

// lineStartByte is the byte offset of line in Text().
func (sb *SliceBuffer) lineStartByte(line int) int {
	offset := 0
	for i := 0; i < line && i < len(sb.lines); i++ {
		offset += len(sb.lines[i]) + 1
	}
	return offset
}

// positionForByte maps a byte offset in Text() back to a position.
func (sb *SliceBuffer) positionForByte(offset int) types.Position {
	for i, line := range sb.lines {
		if offset <= len(line) {
			return types.Position{Line: i, Col: utils.ByteOffsetToRuneIndex(line, offset)}
		}
		offset -= len(line) + 1
	}
	return sb.End()
}

// --- Modification ---

// Insert inserts text at a given position. Handles single/multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) error {
	if len(text) == 0 {
		return nil
	}

	validPos, byteOffset, err := sb.validatePosition(pos)
	if err != nil {
		return fmt.Errorf("invalid insert position: %w", err)
	}

	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	head := append([]byte{}, currentLine[:byteOffset]...)
	tail := append([]byte{}, currentLine[byteOffset:]...)
	insertLines := bytes.Split(text, []byte("\n"))

	if len(insertLines) == 1 {
		sb.lines[validPos.Line] = append(append(head, insertLines[0]...), tail...)
		return nil
	}

	newLines := make([][]byte, 0, len(insertLines))
	newLines = append(newLines, append(head, insertLines[0]...))
	for _, l := range insertLines[1 : len(insertLines)-1] {
		newLines = append(newLines, append([]byte{}, l...))
	}
	last := append([]byte{}, insertLines[len(insertLines)-1]...)
	newLines = append(newLines, append(last, tail...))

	result := make([][]byte, 0, len(sb.lines)+len(newLines)-1)
	result = append(result, sb.lines[:validPos.Line]...)
	result = append(result, newLines...)
	result = append(result, sb.lines[validPos.Line+1:]...)
	sb.lines = result
	return nil
}

// Delete removes text within a given range (start inclusive, end exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	start, end = types.Order(start, end)
	if start == end {
		return nil
	}

	vStart, startOffset, err := sb.validatePosition(start)
	if err != nil {
		return fmt.Errorf("invalid delete range: %w", err)
	}
	vEnd, endOffset, err := sb.validatePosition(end)
	if err != nil {
		return fmt.Errorf("invalid delete range: %w", err)
	}
	if vStart == vEnd {
		return nil
	}

	sb.modified = true

	merged := append([]byte{}, sb.lines[vStart.Line][:startOffset]...)
	merged = append(merged, sb.lines[vEnd.Line][endOffset:]...)

	result := make([][]byte, 0, len(sb.lines)-(vEnd.Line-vStart.Line))
	result = append(result, sb.lines[:vStart.Line]...)
	result = append(result, merged)
	result = append(result, sb.lines[vEnd.Line+1:]...)
	sb.lines = result
	return nil
}

// validatePosition clamps pos into the document and returns the byte offset
// of its column within its line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (validPos types.Position, byteOffset int, err error) {
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{{}}
	}
	if pos.Line < 0 {
		pos = types.Position{}
	}
	if pos.Line >= len(sb.lines) {
		return sb.End(), len(sb.lines[len(sb.lines)-1]), nil
	}
	if pos.Col < 0 {
		pos.Col = 0
	}

	line := sb.lines[pos.Line]
	byteOffset = utils.RuneIndexToByteOffset(line, pos.Col)
	if byteOffset < 0 {
		pos.Col = utf8.RuneCount(line)
		byteOffset = len(line)
	}
	return pos, byteOffset, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
