// Package viewer owns the in-memory model of a running session: the buffer
// store, search and selection state, display toggles, and the reducer that
// applies every input event. It performs no IO and draws nothing; IO intents
// surface as effects for the caller and rendering consumes a computed plan.
package viewer

import "github.com/kk-code-lab/peek/internal/buffer"

const (
	// chrome rows: tab bar on top, status bar and help line at the bottom
	chromeRows = 3
	// gutterWidth is the "%4d " line-number prefix plus one space.
	gutterWidth = 6
	// horizStep is how far h/l shift the view when wrap is off.
	horizStep = 8
)

// State is the single mutable value describing the whole viewer session.
// It is owned by the run loop and mutated only through Apply.
type State struct {
	Store *buffer.Store

	// search
	SearchTerm   string
	MatchCount   int
	CurrentMatch int
	PromptActive bool
	PromptInput  string

	// display toggles
	ShowLineNumbers bool
	WrapEnabled     bool

	// HorizScroll pans the view when wrap is off; enabling wrap resets it.
	HorizScroll int

	// selection / copy mode
	CopyMode bool
	SelStart int
	SelEnd   int

	// Status holds the transient status-bar message for the next render.
	Status string

	Width  int
	Height int
}

// NewState builds the initial session state around a populated store.
func NewState(store *buffer.Store, wrap bool, width, height int) *State {
	return &State{
		Store:           store,
		ShowLineNumbers: true,
		WrapEnabled:     wrap,
		Width:           width,
		Height:          height,
	}
}

// ContentRows is the number of rows available for buffer content.
func (st *State) ContentRows() int {
	rows := st.Height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ContentWidth is the number of columns available for line text after the
// line-number gutter.
func (st *State) ContentWidth() int {
	width := st.Width
	if st.ShowLineNumbers {
		width -= gutterWidth
	}
	if width < 1 {
		width = 1
	}
	return width
}

// SelectionBounds normalizes the unordered selection range to (low, high).
func (st *State) SelectionBounds() (int, int) {
	if st.SelStart <= st.SelEnd {
		return st.SelStart, st.SelEnd
	}
	return st.SelEnd, st.SelStart
}

// SelectedLines copies the lines covered by the selection range out of the
// current buffer, in document order.
func (st *State) SelectedLines() []string {
	b := st.Store.Current()
	if b == nil {
		return nil
	}
	lo, hi := st.SelectionBounds()
	if lo < 0 {
		lo = 0
	}
	if hi >= b.LineCount() {
		hi = b.LineCount() - 1
	}
	if hi < lo {
		return nil
	}
	lines := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		lines = append(lines, b.Line(i))
	}
	return lines
}
