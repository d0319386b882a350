// Package input converts tcell events into viewer actions.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/peek/internal/viewer"
)

// Handler is mode-aware: the same key means different things depending on
// whether the search prompt is open.
type Handler struct {
	state *viewer.State
}

func NewHandler(state *viewer.State) *Handler {
	return &Handler{state: state}
}

// Translate maps one event to an action. The second return is false when
// the event has no binding.
func (h *Handler) Translate(ev tcell.Event) (viewer.Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if h.state.PromptActive {
			return h.translatePrompt(ev)
		}
		return h.translateNormal(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		return viewer.ResizeAction{Width: w, Height: ht}, true
	}
	return nil, false
}

func (h *Handler) translatePrompt(ev *tcell.EventKey) (viewer.Action, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return viewer.SearchCommitAction{}, true
	case tcell.KeyEscape:
		return viewer.SearchCancelAction{}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return viewer.SearchBackspaceAction{}, true
	case tcell.KeyCtrlC:
		return viewer.QuitAction{}, true
	case tcell.KeyRune:
		return viewer.SearchCharAction{Rune: ev.Rune()}, true
	}
	return nil, false
}

func (h *Handler) translateNormal(ev *tcell.EventKey) (viewer.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return viewer.ScrollUpAction{}, true
	case tcell.KeyDown:
		return viewer.ScrollDownAction{}, true
	case tcell.KeyLeft:
		return viewer.ScrollLeftAction{}, true
	case tcell.KeyRight:
		return viewer.ScrollRightAction{}, true
	case tcell.KeyTab:
		return viewer.NextBufferAction{}, true
	case tcell.KeyBacktab:
		return viewer.PrevBufferAction{}, true
	case tcell.KeyCtrlD:
		return viewer.HalfPageDownAction{}, true
	case tcell.KeyCtrlU:
		return viewer.HalfPageUpAction{}, true
	case tcell.KeyEscape:
		return viewer.CancelAction{}, true
	case tcell.KeyCtrlC:
		return viewer.QuitAction{}, true
	case tcell.KeyRune:
		return h.translateRune(ev.Rune())
	}
	return nil, false
}

func (h *Handler) translateRune(r rune) (viewer.Action, bool) {
	switch r {
	case 'j':
		return viewer.ScrollDownAction{}, true
	case 'k':
		return viewer.ScrollUpAction{}, true
	case 'h':
		return viewer.ScrollLeftAction{}, true
	case 'l':
		return viewer.ScrollRightAction{}, true
	case '0':
		return viewer.LineStartAction{}, true
	case '$':
		return viewer.LineEndAction{}, true
	case 'g':
		return viewer.JumpTopAction{}, true
	case 'G':
		return viewer.JumpBottomAction{}, true
	case 'd':
		return viewer.HalfPageDownAction{}, true
	case 'u':
		return viewer.HalfPageUpAction{}, true
	case '/':
		return viewer.SearchStartAction{}, true
	case 'n':
		return viewer.NextMatchAction{}, true
	case 'N':
		return viewer.PrevMatchAction{}, true
	case 'v':
		return viewer.EnterCopyModeAction{}, true
	case 'y':
		return viewer.CommitSelectionAction{}, true
	case 'L':
		return viewer.ToggleLineNumbersAction{}, true
	case 't', 'T':
		return viewer.ToggleWrapAction{}, true
	case 'x':
		return viewer.CloseBufferAction{}, true
	case 'o', 'O':
		return viewer.OpenPickerAction{}, true
	case 'r':
		return viewer.ReloadBufferAction{}, true
	case 'q', 'Q':
		return viewer.QuitAction{}, true
	}
	return nil, false
}
