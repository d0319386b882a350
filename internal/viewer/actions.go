package viewer

// Action is one input event's intent against the session state.
type Action interface{}

// vertical motion
type ScrollUpAction struct{}
type ScrollDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type HalfPageUpAction struct{}
type HalfPageDownAction struct{}

// horizontal motion (wrap off only)
type ScrollLeftAction struct{}
type ScrollRightAction struct{}
type LineStartAction struct{}
type LineEndAction struct{}

// search
type SearchStartAction struct{}
type SearchCharAction struct{ Rune rune }
type SearchBackspaceAction struct{}
type SearchCommitAction struct{}
type SearchCancelAction struct{}
type NextMatchAction struct{}
type PrevMatchAction struct{}

// buffers
type NextBufferAction struct{}
type PrevBufferAction struct{}
type CloseBufferAction struct{}
type ReloadBufferAction struct{}
type OpenPickerAction struct{}

// display toggles
type ToggleWrapAction struct{}
type ToggleLineNumbersAction struct{}

// copy mode
type EnterCopyModeAction struct{}
type CommitSelectionAction struct{}
type CancelAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

type QuitAction struct{}

// Effect is a side effect the reducer asks the caller to perform; the core
// itself never touches the clipboard, processes or the filesystem.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectCopySelection
	EffectReload
	EffectOpenPicker
)
