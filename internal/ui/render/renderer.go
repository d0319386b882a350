package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/peek/internal/syntax"
	"github.com/kk-code-lab/peek/internal/viewer"
)

// gutterWidth matches the content offset the viewer reserves for line numbers.
const gutterWidth = 6

// Renderer paints a session state onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI: tab bar, content window, status bar and the
// bottom hint/prompt line.
func (r *Renderer) Render(st *viewer.State) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawTabBar(st, w)
	r.drawContent(st, w, h)
	r.drawStatusBar(st, w, h)
	r.drawBottomLine(st, w, h)

	r.screen.Show()
}

func (r *Renderer) drawTabBar(st *viewer.State, w int) {
	chrome := r.theme.chromeStyle()
	active := chrome.Reverse(true).Bold(true)

	text, hlStart, hlEnd := buildTabBarText(st)
	x := 0
	byteIdx := 0
	for _, ru := range text {
		if x >= w {
			break
		}
		style := chrome
		if byteIdx >= hlStart && byteIdx < hlEnd {
			style = active
		}
		r.screen.SetContent(x, 0, ru, nil, style)
		x += displayWidth(ru)
		byteIdx += len(string(ru))
	}
	r.fillRow(x, 0, w, chrome)
}

func (r *Renderer) drawContent(st *viewer.State, w, h int) {
	rows := viewer.BuildPlan(st)
	numberStyle := r.theme.lineNumberStyle()

	contentX := 0
	if st.ShowLineNumbers {
		contentX = gutterWidth
	}

	for i, row := range rows {
		y := 1 + i
		if y >= h-2 {
			break
		}

		if st.ShowLineNumbers {
			gutter := "      "
			if row.Number > 0 {
				gutter = fmt.Sprintf("%5d ", row.Number)
			}
			r.drawText(0, y, gutter, numberStyle)
		}

		r.drawSpans(contentX, y, w, row)
	}
}

// drawSpans paints one content row rune by rune, picking the style of the
// span covering each rune offset. Selected rows render reversed.
func (r *Renderer) drawSpans(x, y, w int, row viewer.Row) {
	spanIdx := 0
	runeIdx := 0
	for _, ru := range row.Text {
		if x >= w {
			break
		}
		for spanIdx < len(row.Spans) && runeIdx >= row.Spans[spanIdx].End {
			spanIdx++
		}
		style := r.theme.textStyle(syntax.StyleNormal, false)
		if spanIdx < len(row.Spans) {
			sp := row.Spans[spanIdx]
			style = r.theme.textStyle(sp.Style, sp.Emphasis)
		}
		if row.Selected {
			style = style.Reverse(true)
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += displayWidth(ru)
		runeIdx++
	}
	if row.Selected {
		r.fillRow(x, y, w, r.theme.textStyle(syntax.StyleNormal, false).Reverse(true))
	}
}

func (r *Renderer) drawStatusBar(st *viewer.State, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	chrome := r.theme.chromeStyle()

	left := formatStatusLeft(st)
	right := formatStatusRight(st)

	x := r.drawText(0, y, left, chrome)
	r.fillRow(x, y, w, chrome)

	rightWidth := 0
	for _, ru := range right {
		rightWidth += displayWidth(ru)
	}
	if rightWidth > 0 && w-rightWidth > x {
		r.drawText(w-rightWidth, y, right, chrome)
	}
}

func (r *Renderer) drawBottomLine(st *viewer.State, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault
	x := r.drawText(0, y, formatBottomLine(st), style)
	if st.PromptActive {
		// block cursor at the input position
		r.screen.SetContent(x, y, ' ', nil, style.Reverse(true))
		x++
	}
	r.fillRow(x, y, w, style)
}

// drawText paints text at (x, y) and returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ru := range text {
		r.screen.SetContent(x, y, ru, nil, style)
		x += displayWidth(ru)
	}
	return x
}

func (r *Renderer) fillRow(x, y, w int, style tcell.Style) {
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func displayWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		w = 1
	}
	return w
}
