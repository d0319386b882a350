package syntax

// Style is the semantic class a span of line text is rendered with.
type Style int

const (
	StyleNormal Style = iota
	StyleKeyword
	StyleString
	StyleComment
	StyleNumber
	StyleType
	StyleFunction
)

// Span is a contiguous run of a line with one style. Start and End are rune
// offsets, End exclusive. Emphasis requests bold rendering on top of the
// style's color.
type Span struct {
	Start    int
	End      int
	Style    Style
	Emphasis bool
}

// spanBuilder accumulates spans left to right, merging adjacent runs that
// share a style so tokenizers can emit per-character without producing a
// span per rune.
type spanBuilder struct {
	spans []Span
}

func (b *spanBuilder) add(start, end int, style Style, emphasis bool) {
	if end <= start {
		return
	}
	if n := len(b.spans); n > 0 {
		last := &b.spans[n-1]
		if last.End == start && last.Style == style && last.Emphasis == emphasis {
			last.End = end
			return
		}
	}
	b.spans = append(b.spans, Span{Start: start, End: end, Style: style, Emphasis: emphasis})
}

func (b *spanBuilder) normal(start, end int) {
	b.add(start, end, StyleNormal, false)
}
