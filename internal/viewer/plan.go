package viewer

import (
	"github.com/kk-code-lab/peek/internal/syntax"
	"github.com/kk-code-lab/peek/internal/textutil"
)

// Row is one display row of the render plan: the text to paint, its styled
// spans, an optional 1-based line number (0 on wrap continuations and when
// numbers are off) and whether the row lies inside the active selection.
type Row struct {
	Text     string
	Spans    []syntax.Span
	Number   int
	Selected bool
}

// BuildPlan computes the visible window into the current buffer: logical
// lines from the scroll offset downward, each expanded through the wrapper
// or panned horizontally, tokenized, and flagged for selection highlight.
// Rendering stops when the row budget is spent regardless of how many
// logical lines were consumed.
func BuildPlan(st *State) []Row {
	b := st.Store.Current()
	if b == nil {
		return nil
	}

	budget := st.ContentRows()
	width := st.ContentWidth()
	tok := syntax.ForLanguage(b.Lang)

	selLo, selHi := -1, -1
	if st.CopyMode {
		selLo, selHi = st.SelectionBounds()
	}

	rows := make([]Row, 0, budget)
	for lineIdx := b.Scroll; budget > 0 && lineIdx < b.LineCount(); lineIdx++ {
		text := textutil.ExpandTabs(b.Line(lineIdx), textutil.DefaultTabWidth)
		selected := st.CopyMode && lineIdx >= selLo && lineIdx <= selHi

		number := 0
		if st.ShowLineNumbers {
			number = lineIdx + 1
		}

		if st.WrapEnabled {
			segments, err := textutil.Wrap(text, width)
			if err != nil {
				segments = []string{text}
			}
			for i, seg := range segments {
				if budget == 0 {
					break
				}
				row := Row{Text: seg, Spans: tokenizeRow(tok, seg), Selected: selected}
				if i == 0 {
					row.Number = number
				}
				rows = append(rows, row)
				budget--
			}
			continue
		}

		display := panRunes(text, st.HorizScroll, width)
		rows = append(rows, Row{
			Text:     display,
			Spans:    tokenizeRow(tok, display),
			Number:   number,
			Selected: selected,
		})
		budget--
	}
	return rows
}

func tokenizeRow(tok syntax.Tokenizer, text string) []syntax.Span {
	if tok == nil {
		if text == "" {
			return nil
		}
		return []syntax.Span{{Start: 0, End: len([]rune(text)), Style: syntax.StyleNormal}}
	}
	return tok.Tokenize(text)
}

// panRunes slices a horizontal window [offset, offset+width) out of a line.
func panRunes(text string, offset, width int) string {
	if offset <= 0 && len(text) <= width {
		return text
	}
	runes := []rune(text)
	if offset >= len(runes) {
		return ""
	}
	runes = runes[offset:]
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}
