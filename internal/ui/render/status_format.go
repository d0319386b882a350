package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/peek/internal/buffer"
	"github.com/kk-code-lab/peek/internal/textutil"
	"github.com/kk-code-lab/peek/internal/viewer"
)

// maxTabLabelWidth caps one tab segment so a long query or URL cannot crowd
// the other tabs off the bar.
const maxTabLabelWidth = 24

// tabLabel is the display name of a buffer in the tab bar. Command and query
// labels already carry their bracketed form; file labels reduce to the base
// name.
func tabLabel(b *buffer.Buffer) string {
	if strings.HasPrefix(b.Label, "[") {
		return textutil.TruncateToWidth(b.Label, maxTabLabelWidth)
	}
	return textutil.TruncateToWidth(filepath.Base(b.Label), maxTabLabelWidth)
}

// buildTabBarText assembles the tab bar: one padded segment per buffer and a
// position indicator at the end. The returned pair is the byte range of the
// current buffer's segment, for highlight painting.
func buildTabBarText(st *viewer.State) (string, int, int) {
	var sb strings.Builder
	hlStart, hlEnd := 0, 0
	for i := 0; i < st.Store.Count(); i++ {
		seg := " " + tabLabel(st.Store.At(i)) + " "
		if i == st.Store.CurrentIndex() {
			hlStart = sb.Len()
			hlEnd = hlStart + len(seg)
		}
		sb.WriteString(seg)
	}
	sb.WriteString(fmt.Sprintf(" [%d/%d]", st.Store.CurrentIndex()+1, st.Store.Count()))
	return sb.String(), hlStart, hlEnd
}

// formatStatusLeft builds the left half of the status bar. A pending status
// message replaces the usual mode/position summary for one render.
func formatStatusLeft(st *viewer.State) string {
	if st.Status != "" {
		return " " + st.Status
	}

	b := st.Store.Current()
	if b == nil {
		return " NORMAL"
	}

	mode := "NORMAL"
	if st.CopyMode {
		mode = "COPY"
	}

	total := b.LineCount()
	line := b.Scroll + 1
	pct := 100
	if total > 0 {
		bottom := b.Scroll + st.ContentRows()
		if bottom > total {
			bottom = total
		}
		pct = bottom * 100 / total
	}
	return fmt.Sprintf(" %s | %s | %d%% | %d/%d lines", mode, tabLabel(b), pct, line, total)
}

// formatStatusRight summarizes the active search, or returns "" without one.
func formatStatusRight(st *viewer.State) string {
	if st.SearchTerm == "" {
		return ""
	}
	if st.MatchCount == 0 {
		return fmt.Sprintf("Search: %q [0/0] ", st.SearchTerm)
	}
	return fmt.Sprintf("Search: %q [%d/%d] ", st.SearchTerm, st.CurrentMatch+1, st.MatchCount)
}

// formatBottomLine is the search prompt while it is open, contextual key
// hints otherwise.
func formatBottomLine(st *viewer.State) string {
	if st.PromptActive {
		return "/" + st.PromptInput
	}
	if st.CopyMode {
		return " j/k: extend  y: copy  Esc: cancel"
	}
	return " j/k: scroll  d/u: page  /: search  n/N: match  Tab: buffer  v: select  t: wrap  o: open  x: close  q: quit"
}
