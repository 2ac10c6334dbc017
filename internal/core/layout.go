package core

import (
	"math"

	"github.com/rivo/uniseg"
)

const lineNumberPadding = 1

// GutterWidth returns the width of the line number column for a document of
// lineCount lines on a screen of the given width. It is zero when the screen is
// too narrow to show both numbers and text.
func GutterWidth(lineCount, width int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	gutter := int(math.Log10(float64(lineCount))) + 1 + lineNumberPadding
	if gutter >= width {
		return 0
	}
	return gutter
}

// VisualColumn returns the screen column of the rune at runeIndex, counting
// grapheme widths and expanding tabs to the next multiple of tabWidth.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visual := 0
	current := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if current >= runeIndex {
			break
		}
		visual += ClusterWidth(gr.Runes(), gr.Width(), visual, tabWidth)
		current += len(gr.Runes())
	}
	return visual
}

// ClusterWidth returns the screen width of a grapheme cluster drawn at visual column col.
func ClusterWidth(runes []rune, width, col, tabWidth int) int {
	if len(runes) > 0 && runes[0] == '\t' {
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - col%tabWidth
	}
	return width
}
