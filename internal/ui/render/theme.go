package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/peek/internal/syntax"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	KeywordFg  tcell.Color
	StringFg   tcell.Color
	CommentFg  tcell.Color
	NumberFg   tcell.Color
	TypeFg     tcell.Color
	FunctionFg tcell.Color
	ChromeBg   tcell.Color
	ChromeFg   tcell.Color
	LineNrFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		KeywordFg:  tcell.ColorFuchsia,
		StringFg:   tcell.ColorGreen,
		CommentFg:  tcell.ColorAqua,
		NumberFg:   tcell.ColorYellow,
		TypeFg:     tcell.ColorBlue,
		FunctionFg: tcell.ColorYellow,
		ChromeBg:   tcell.ColorAqua,
		ChromeFg:   tcell.ColorBlack,
		LineNrFg:   tcell.ColorYellow,
	}
}

// textStyle maps a token style onto a terminal style. Keywords are always
// bold; emphasis adds bold to everything else, matching overstruck man text.
func (t ColorTheme) textStyle(style syntax.Style, emphasis bool) tcell.Style {
	base := tcell.StyleDefault.Background(t.Background)
	var out tcell.Style
	switch style {
	case syntax.StyleKeyword:
		out = base.Foreground(t.KeywordFg).Bold(true)
	case syntax.StyleString:
		out = base.Foreground(t.StringFg)
	case syntax.StyleComment:
		out = base.Foreground(t.CommentFg)
	case syntax.StyleNumber:
		out = base.Foreground(t.NumberFg)
	case syntax.StyleType:
		out = base.Foreground(t.TypeFg)
	case syntax.StyleFunction:
		out = base.Foreground(t.FunctionFg)
	default:
		out = base.Foreground(t.Foreground)
	}
	if emphasis {
		out = out.Bold(true)
	}
	return out
}

func (t ColorTheme) chromeStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.ChromeBg).Foreground(t.ChromeFg)
}

func (t ColorTheme) lineNumberStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.LineNrFg)
}
