package viewer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kk-code-lab/peek/internal/buffer"
	"github.com/kk-code-lab/peek/internal/source"
	"github.com/kk-code-lab/peek/internal/syntax"
)

// newTestState builds a state with one 40-line buffer in a 80x23 window
// (20 content rows).
func newTestState(t *testing.T) *State {
	t.Helper()
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return stateWithBuffers(t, lines)
}

func stateWithBuffers(t *testing.T, contents ...[]string) *State {
	t.Helper()
	store := buffer.NewStore()
	for i, lines := range contents {
		label := fmt.Sprintf("buf%d", i)
		b, _ := buffer.New(label, syntax.LangNone, source.FileDescriptor(label), lines)
		if err := store.Add(b); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	store.Select(0)
	return NewState(store, true, 80, 23)
}

func typeSearch(st *State, term string) {
	Apply(st, SearchStartAction{})
	for _, r := range term {
		Apply(st, SearchCharAction{Rune: r})
	}
	Apply(st, SearchCommitAction{})
}

func TestVerticalMotions(t *testing.T) {
	st := newTestState(t)
	b := st.Store.Current()

	Apply(st, ScrollDownAction{})
	Apply(st, ScrollDownAction{})
	if b.Scroll != 2 {
		t.Fatalf("scroll = %d, want 2", b.Scroll)
	}
	Apply(st, ScrollUpAction{})
	if b.Scroll != 1 {
		t.Fatalf("scroll = %d, want 1", b.Scroll)
	}
	Apply(st, JumpBottomAction{})
	if want := 40 - st.ContentRows(); b.Scroll != want {
		t.Fatalf("jump bottom scroll = %d, want %d", b.Scroll, want)
	}
	Apply(st, JumpTopAction{})
	if b.Scroll != 0 {
		t.Fatalf("jump top scroll = %d, want 0", b.Scroll)
	}
}

func TestScrollClampsAtEdges(t *testing.T) {
	st := newTestState(t)
	b := st.Store.Current()

	Apply(st, ScrollUpAction{})
	if b.Scroll != 0 {
		t.Fatalf("scroll above top: %d", b.Scroll)
	}
	for i := 0; i < 100; i++ {
		Apply(st, ScrollDownAction{})
	}
	if b.Scroll != 39 {
		t.Fatalf("scroll = %d, want clamp at line_count-1 = 39", b.Scroll)
	}
}

func TestHalfPageMotions(t *testing.T) {
	st := newTestState(t)
	b := st.Store.Current()
	half := st.ContentRows() / 2

	Apply(st, HalfPageDownAction{})
	if b.Scroll != half {
		t.Fatalf("scroll = %d, want %d", b.Scroll, half)
	}
	Apply(st, HalfPageUpAction{})
	if b.Scroll != 0 {
		t.Fatalf("scroll = %d, want 0", b.Scroll)
	}
	// half-page down never scrolls past the jump-bottom position
	for i := 0; i < 10; i++ {
		Apply(st, HalfPageDownAction{})
	}
	if want := 40 - st.ContentRows(); b.Scroll != want {
		t.Fatalf("scroll = %d, want %d", b.Scroll, want)
	}
}

func TestHorizontalScrollOnlyWhenWrapOff(t *testing.T) {
	st := newTestState(t)

	Apply(st, ScrollRightAction{})
	if st.HorizScroll != 0 {
		t.Fatalf("horizontal scroll moved while wrap is on: %d", st.HorizScroll)
	}

	Apply(st, ToggleWrapAction{}) // wrap off
	Apply(st, ScrollRightAction{})
	Apply(st, ScrollRightAction{})
	if st.HorizScroll == 0 {
		t.Fatal("horizontal scroll did not move with wrap off")
	}
	Apply(st, ScrollLeftAction{})
	Apply(st, ScrollLeftAction{})
	Apply(st, ScrollLeftAction{})
	if st.HorizScroll != 0 {
		t.Fatalf("horizontal scroll = %d, want clamp at 0", st.HorizScroll)
	}
}

func TestLineEndJumpsToLongestVisibleLine(t *testing.T) {
	st := stateWithBuffers(t, []string{strings.Repeat("x", 200), "short"})
	st.WrapEnabled = false

	Apply(st, LineEndAction{})
	if want := 200 - st.ContentWidth(); st.HorizScroll != want {
		t.Fatalf("horizontal scroll = %d, want %d", st.HorizScroll, want)
	}
	Apply(st, LineStartAction{})
	if st.HorizScroll != 0 {
		t.Fatalf("horizontal scroll = %d, want 0", st.HorizScroll)
	}
}

func TestToggleWrapResetsHorizontalScroll(t *testing.T) {
	st := newTestState(t)
	st.WrapEnabled = false
	st.HorizScroll = 24
	b := st.Store.Current()
	b.Scroll = 5

	Apply(st, ToggleWrapAction{}) // wrap on
	if !st.WrapEnabled || st.HorizScroll != 0 {
		t.Fatalf("wrap=%v horiz=%d, want wrap on with horizontal reset", st.WrapEnabled, st.HorizScroll)
	}
	if b.Scroll != 5 {
		t.Fatalf("vertical scroll changed to %d", b.Scroll)
	}

	Apply(st, ToggleWrapAction{}) // wrap off again
	if st.WrapEnabled {
		t.Fatal("wrap should toggle off")
	}
	if b.Scroll != 5 {
		t.Fatalf("vertical scroll changed to %d on wrap off", b.Scroll)
	}
}

func TestSearchCommit(t *testing.T) {
	st := stateWithBuffers(t, []string{"foo", "bar", "baz"})
	typeSearch(st, "ba")

	if st.SearchTerm != "ba" {
		t.Fatalf("term = %q", st.SearchTerm)
	}
	if st.MatchCount != 2 {
		t.Fatalf("match count = %d, want 2", st.MatchCount)
	}
	if got := st.Store.Current().Scroll; got != 1 {
		t.Fatalf("scroll = %d, want first match line 1", got)
	}
	if st.CurrentMatch != 0 {
		t.Fatalf("current match = %d, want 0", st.CurrentMatch)
	}

	Apply(st, NextMatchAction{})
	if got := st.Store.Current().Scroll; got != 2 {
		t.Fatalf("scroll after n = %d, want 2", got)
	}
	if st.CurrentMatch != 1 {
		t.Fatalf("current match = %d, want 1", st.CurrentMatch)
	}

	// wraps around to the first match
	Apply(st, NextMatchAction{})
	if got := st.Store.Current().Scroll; got != 1 {
		t.Fatalf("scroll after wrap = %d, want 1", got)
	}

	Apply(st, PrevMatchAction{})
	if got := st.Store.Current().Scroll; got != 2 {
		t.Fatalf("scroll after N = %d, want 2 (backward wrap)", got)
	}
}

func TestSearchCommitTrimsTrailingWhitespace(t *testing.T) {
	st := stateWithBuffers(t, []string{"foo", "bar"})
	typeSearch(st, "bar  ")
	if st.SearchTerm != "bar" {
		t.Fatalf("term = %q, want %q", st.SearchTerm, "bar")
	}
}

func TestSearchPromptEditing(t *testing.T) {
	st := newTestState(t)
	Apply(st, SearchStartAction{})
	if !st.PromptActive {
		t.Fatal("prompt should be active")
	}
	Apply(st, SearchCharAction{Rune: 'a'})
	Apply(st, SearchCharAction{Rune: 'b'})
	Apply(st, SearchBackspaceAction{})
	if st.PromptInput != "a" {
		t.Fatalf("prompt input = %q, want %q", st.PromptInput, "a")
	}
	Apply(st, SearchCancelAction{})
	if st.PromptActive || st.SearchTerm != "" {
		t.Fatalf("cancel left prompt=%v term=%q", st.PromptActive, st.SearchTerm)
	}
}

func TestEmptySearchCommitKeepsOldTerm(t *testing.T) {
	st := stateWithBuffers(t, []string{"foo", "bar"})
	typeSearch(st, "bar")
	typeSearch(st, "")
	if st.SearchTerm != "bar" {
		t.Fatalf("term = %q, want previous term kept", st.SearchTerm)
	}
}

func TestBufferCycling(t *testing.T) {
	st := stateWithBuffers(t, []string{"a"}, []string{"b"}, []string{"c"})

	Apply(st, NextBufferAction{})
	if st.Store.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", st.Store.CurrentIndex())
	}
	Apply(st, PrevBufferAction{})
	Apply(st, PrevBufferAction{})
	if st.Store.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want wrap to 2", st.Store.CurrentIndex())
	}
}

func TestBufferSwitchDisabledInCopyMode(t *testing.T) {
	st := stateWithBuffers(t, []string{"a"}, []string{"b"})
	st.Store.Select(0)
	Apply(st, EnterCopyModeAction{})
	Apply(st, NextBufferAction{})
	if st.Store.CurrentIndex() != 0 {
		t.Fatalf("buffer switched during copy mode to %d", st.Store.CurrentIndex())
	}
}

func TestCloseLastBufferSetsStatus(t *testing.T) {
	st := stateWithBuffers(t, []string{"a"})
	Apply(st, CloseBufferAction{})
	if st.Store.Count() != 1 {
		t.Fatalf("count = %d, want 1", st.Store.Count())
	}
	if st.Status == "" {
		t.Fatal("expected a status message for the rejected close")
	}
}

func TestCopyModeSelection(t *testing.T) {
	st := newTestState(t)
	b := st.Store.Current()
	b.Scroll = 10

	Apply(st, EnterCopyModeAction{})
	if !st.CopyMode || st.SelStart != 10 || st.SelEnd != 10 {
		t.Fatalf("copy mode start: mode=%v sel=(%d,%d)", st.CopyMode, st.SelStart, st.SelEnd)
	}

	Apply(st, ScrollDownAction{})
	Apply(st, ScrollDownAction{})
	if st.SelStart != 10 || st.SelEnd != 12 {
		t.Fatalf("sel = (%d,%d), want (10,12)", st.SelStart, st.SelEnd)
	}

	// selection is unordered internally; moving above the anchor is fine
	for i := 0; i < 5; i++ {
		Apply(st, ScrollUpAction{})
	}
	if st.SelStart != 10 || st.SelEnd != 7 {
		t.Fatalf("sel = (%d,%d), want (10,7)", st.SelStart, st.SelEnd)
	}
	lo, hi := st.SelectionBounds()
	if lo != 7 || hi != 10 {
		t.Fatalf("bounds = (%d,%d), want (7,10)", lo, hi)
	}
}

func TestCommitSelectionEmitsEffect(t *testing.T) {
	st := newTestState(t)
	Apply(st, EnterCopyModeAction{})
	Apply(st, ScrollDownAction{})

	if effect := Apply(st, CommitSelectionAction{}); effect != EffectCopySelection {
		t.Fatalf("effect = %v, want EffectCopySelection", effect)
	}
	if st.CopyMode {
		t.Fatal("copy mode should end on commit")
	}
	// bounds survive the commit for the exporter to read
	lo, hi := st.SelectionBounds()
	if lo != 0 || hi != 1 {
		t.Fatalf("bounds = (%d,%d), want (0,1)", lo, hi)
	}
}

func TestCommitOutsideCopyModeIsNoop(t *testing.T) {
	st := newTestState(t)
	if effect := Apply(st, CommitSelectionAction{}); effect != EffectNone {
		t.Fatalf("effect = %v, want EffectNone", effect)
	}
}

func TestCancelCopyMode(t *testing.T) {
	st := newTestState(t)
	Apply(st, EnterCopyModeAction{})
	Apply(st, CancelAction{})
	if st.CopyMode {
		t.Fatal("copy mode should be canceled")
	}
}

func TestSelectedLines(t *testing.T) {
	st := stateWithBuffers(t, []string{"a", "b", "c", "d"})
	Apply(st, EnterCopyModeAction{})
	Apply(st, ScrollDownAction{})
	Apply(st, ScrollDownAction{})

	got := st.SelectedLines()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("selected = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selected = %v, want %v", got, want)
		}
	}
}

func TestQuitEffect(t *testing.T) {
	st := newTestState(t)
	if effect := Apply(st, QuitAction{}); effect != EffectQuit {
		t.Fatalf("effect = %v, want EffectQuit", effect)
	}
}

func TestReloadEffect(t *testing.T) {
	st := newTestState(t)
	if effect := Apply(st, ReloadBufferAction{}); effect != EffectReload {
		t.Fatalf("effect = %v, want EffectReload", effect)
	}
}

func TestResize(t *testing.T) {
	st := newTestState(t)
	Apply(st, ResizeAction{Width: 120, Height: 50})
	if st.Width != 120 || st.Height != 50 {
		t.Fatalf("size = %dx%d, want 120x50", st.Width, st.Height)
	}
}
