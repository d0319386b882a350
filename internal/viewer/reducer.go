package viewer

import (
	"strings"

	"github.com/kk-code-lab/peek/internal/buffer"
)

// Apply mutates the state with one action and reports any side effect the
// caller must perform. Every input event flows through here exactly once
// before the next render.
func Apply(st *State, action Action) Effect {
	st.Status = ""

	if st.PromptActive {
		return applyPrompt(st, action)
	}

	b := st.Store.Current()

	switch act := action.(type) {
	case QuitAction:
		return EffectQuit

	case ResizeAction:
		st.Width = act.Width
		st.Height = act.Height

	case ScrollUpAction:
		if b.Scroll > 0 {
			setScroll(st, b, b.Scroll-1)
		}
	case ScrollDownAction:
		if b.Scroll < b.LineCount()-1 {
			setScroll(st, b, b.Scroll+1)
		}
	case JumpTopAction:
		setScroll(st, b, 0)
	case JumpBottomAction:
		setScroll(st, b, clampLow(b.LineCount()-st.ContentRows(), 0))
	case HalfPageDownAction:
		target := b.Scroll + st.ContentRows()/2
		limit := clampLow(b.LineCount()-st.ContentRows(), 0)
		if target > limit {
			target = limit
		}
		setScroll(st, b, target)
	case HalfPageUpAction:
		setScroll(st, b, clampLow(b.Scroll-st.ContentRows()/2, 0))

	case ScrollLeftAction:
		if !st.WrapEnabled {
			st.HorizScroll = clampLow(st.HorizScroll-horizStep, 0)
		}
	case ScrollRightAction:
		if !st.WrapEnabled {
			st.HorizScroll += horizStep
		}
	case LineStartAction:
		if !st.WrapEnabled {
			st.HorizScroll = 0
		}
	case LineEndAction:
		if !st.WrapEnabled {
			st.HorizScroll = clampLow(longestVisible(st, b)-st.ContentWidth(), 0)
		}

	case SearchStartAction:
		st.PromptActive = true
		st.PromptInput = ""
	case NextMatchAction:
		jumpToMatch(st, b, b.Scroll+1, 1)
	case PrevMatchAction:
		jumpToMatch(st, b, b.Scroll-1, -1)

	case NextBufferAction:
		if !st.CopyMode {
			st.Store.Next()
		}
	case PrevBufferAction:
		if !st.CopyMode {
			st.Store.Prev()
		}
	case CloseBufferAction:
		if err := st.Store.Close(); err != nil {
			st.Status = err.Error()
		}
	case ReloadBufferAction:
		return EffectReload
	case OpenPickerAction:
		if !st.CopyMode {
			return EffectOpenPicker
		}

	case ToggleWrapAction:
		st.WrapEnabled = !st.WrapEnabled
		if st.WrapEnabled {
			st.HorizScroll = 0
		}
	case ToggleLineNumbersAction:
		st.ShowLineNumbers = !st.ShowLineNumbers

	case EnterCopyModeAction:
		st.CopyMode = true
		st.SelStart = b.Scroll
		st.SelEnd = b.Scroll
		st.Status = "copy mode: move to select, y to copy, Esc to cancel"
	case CommitSelectionAction:
		if st.CopyMode {
			st.CopyMode = false
			return EffectCopySelection
		}
	case CancelAction:
		if st.CopyMode {
			st.CopyMode = false
			st.Status = "copy canceled"
		}
	}

	return EffectNone
}

// applyPrompt handles events while the search prompt is open.
func applyPrompt(st *State, action Action) Effect {
	switch act := action.(type) {
	case SearchCharAction:
		st.PromptInput += string(act.Rune)
	case SearchBackspaceAction:
		if runes := []rune(st.PromptInput); len(runes) > 0 {
			st.PromptInput = string(runes[:len(runes)-1])
		}
	case SearchCancelAction:
		st.PromptActive = false
		st.PromptInput = ""
	case SearchCommitAction:
		st.PromptActive = false
		term := strings.TrimRight(st.PromptInput, " \t")
		st.PromptInput = ""
		if term == "" {
			return EffectNone
		}
		st.SearchTerm = term
		b := st.Store.Current()
		st.MatchCount = CountMatches(b, term)
		jumpToMatch(st, b, 0, 1)
	case ResizeAction:
		st.Width = act.Width
		st.Height = act.Height
	case QuitAction:
		return EffectQuit
	}
	return EffectNone
}

// setScroll moves the viewport and, in copy mode, drags the selection end
// along with it.
func setScroll(st *State, b *buffer.Buffer, offset int) {
	b.Scroll = offset
	b.ClampScroll()
	if st.CopyMode {
		st.SelEnd = b.Scroll
	}
}

func jumpToMatch(st *State, b *buffer.Buffer, start, direction int) {
	if st.SearchTerm == "" {
		return
	}
	match, ok := FindMatch(b, st.SearchTerm, start, direction)
	if !ok {
		st.Status = "no match: " + st.SearchTerm
		return
	}
	setScroll(st, b, match)
	st.CurrentMatch = MatchRank(b, st.SearchTerm, match)
}

// longestVisible finds the longest line length among the logical lines in
// the current viewport; horizontal jump-to-end pans to its tail.
func longestVisible(st *State, b *buffer.Buffer) int {
	longest := 0
	end := b.Scroll + st.ContentRows()
	if end > b.LineCount() {
		end = b.LineCount()
	}
	for i := b.Scroll; i < end; i++ {
		if n := len([]rune(b.Line(i))); n > longest {
			longest = n
		}
	}
	return longest
}

func clampLow(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
