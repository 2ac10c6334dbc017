// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the drawing code.
const (
	StyleDefault           = "Default"
	StyleLineNumber        = "LineNumber"
	StyleSelection         = "Selection"
	StyleSearchHighlight   = "SearchHighlight"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarPrompt   = "StatusBarPrompt"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the first
// dot, then to "Default", then to tcell's default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// QuillLight mirrors a classic notepad: dark text on white, yellow search background.
var QuillLight = func() Theme {
	paper := tcell.NewHexColor(0xffffff)
	ink := tcell.NewHexColor(0x1e1e1e)
	gutter := tcell.NewHexColor(0x9a9a9a)
	bar := tcell.NewHexColor(0xe4e4e4)
	accent := tcell.NewHexColor(0x005fb8)

	base := tcell.StyleDefault.Background(paper).Foreground(ink)
	return Theme{
		Name:   "Quill Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLineNumber:        base.Foreground(gutter),
			StyleSelection:         base.Background(tcell.NewHexColor(0xadd6ff)),
			StyleSearchHighlight:   base.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack),
			StyleStatusBar:         tcell.StyleDefault.Background(bar).Foreground(ink),
			StyleStatusBarModified: tcell.StyleDefault.Background(bar).Foreground(tcell.NewHexColor(0xb35900)).Bold(true),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bar).Foreground(ink).Bold(true),
			StyleStatusBarPrompt:   tcell.StyleDefault.Background(bar).Foreground(accent).Bold(true),
		},
	}
}()

// QuillDark is the dark counterpart, using the terminal background.
var QuillDark = func() Theme {
	fg := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	bar := tcell.NewHexColor(0x2a2f38)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	return Theme{
		Name:   "Quill Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLineNumber:        base.Foreground(comment),
			StyleSelection:         base.Reverse(true),
			StyleSearchHighlight:   tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			StyleStatusBar:         tcell.StyleDefault.Background(bar).Foreground(fg),
			StyleStatusBarModified: tcell.StyleDefault.Background(bar).Foreground(yellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bar).Foreground(fg).Bold(true),
			StyleStatusBarPrompt:   tcell.StyleDefault.Background(bar).Foreground(green).Bold(true),
		},
	}
}()
