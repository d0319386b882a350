// Package app wires the viewer core to the terminal: screen lifecycle, the
// event loop, and the side effects the reducer requests (clipboard writes,
// reloads, the file picker).
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/peek/internal/buffer"
	"github.com/kk-code-lab/peek/internal/source"
	"github.com/kk-code-lab/peek/internal/syntax"
	inputui "github.com/kk-code-lab/peek/internal/ui/input"
	renderui "github.com/kk-code-lab/peek/internal/ui/render"
	"github.com/kk-code-lab/peek/internal/viewer"
)

// Options carries the injectable edges of the application. Zero fields get
// production defaults.
type Options struct {
	Wrap         bool
	Loader       source.TextSource
	Picker       Picker
	ClipboardOut io.Writer
}

// Application represents the running app.
type Application struct {
	screen       tcell.Screen
	state        *viewer.State
	renderer     *renderui.Renderer
	input        *inputui.Handler
	loader       source.TextSource
	picker       Picker
	clipboardOut io.Writer
}

// NewApplication opens the terminal screen around a populated store.
func NewApplication(store *buffer.Store, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newWithScreen(screen, store, opts), nil
}

// newWithScreen finishes construction on an initialized screen; tests pass a
// simulation screen here.
func newWithScreen(screen tcell.Screen, store *buffer.Store, opts Options) *Application {
	if opts.Loader == nil {
		opts.Loader = source.NewLoader(os.Stdin)
	}
	if opts.Picker == nil {
		opts.Picker = fzfPicker{}
	}
	if opts.ClipboardOut == nil {
		opts.ClipboardOut = os.Stdout
	}

	w, h := screen.Size()
	state := viewer.NewState(store, opts.Wrap, w, h)

	return &Application{
		screen:       screen,
		state:        state,
		renderer:     renderui.NewRenderer(screen),
		input:        inputui.NewHandler(state),
		loader:       opts.Loader,
		picker:       opts.Picker,
		clipboardOut: opts.ClipboardOut,
	}
}

// Close cleans up terminal state.
func (app *Application) Close() {
	app.screen.Fini()
}

// openPath loads path into a new buffer and makes it current.
func (app *Application) openPath(path string) {
	desc := source.FileDescriptor(path)
	lines, err := app.loader.Load(desc)
	if err != nil {
		app.state.Status = fmt.Sprintf("cannot open %s: %v", path, err)
		return
	}

	b, trunc := buffer.New(path, syntax.Detect(path), desc, lines)
	if err := app.state.Store.Add(b); err != nil {
		app.state.Status = err.Error()
		return
	}
	if trunc.Any() {
		app.state.Status = truncationMessage(trunc)
	}
}

func truncationMessage(trunc buffer.Truncation) string {
	switch {
	case trunc.DroppedLines > 0 && trunc.ClippedLines > 0:
		return fmt.Sprintf("truncated: %d lines dropped, %d clipped", trunc.DroppedLines, trunc.ClippedLines)
	case trunc.DroppedLines > 0:
		return fmt.Sprintf("truncated: %d lines dropped", trunc.DroppedLines)
	default:
		return fmt.Sprintf("truncated: %d lines clipped", trunc.ClippedLines)
	}
}
