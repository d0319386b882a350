package app

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/peek/internal/viewer"
)

// Run drives the synchronous event loop: render, wait for an event,
// translate, apply, perform the requested effect. It returns when the user
// quits.
func (app *Application) Run() {
	for {
		app.renderer.Render(app.state)

		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		action, ok := app.input.Translate(ev)
		if !ok {
			continue
		}
		if app.dispatch(action) {
			return
		}
	}
}

// dispatch applies one action and performs its effect. It reports true when
// the application should exit.
func (app *Application) dispatch(action viewer.Action) bool {
	switch viewer.Apply(app.state, action) {
	case viewer.EffectQuit:
		return true
	case viewer.EffectCopySelection:
		app.copySelection()
	case viewer.EffectReload:
		app.reloadCurrent()
	case viewer.EffectOpenPicker:
		app.pickAndOpen()
	}
	return false
}

func (app *Application) copySelection() {
	lines := app.state.SelectedLines()
	if len(lines) == 0 {
		return
	}
	if err := writeClipboard(strings.Join(lines, "\n"), app.clipboardOut); err != nil {
		app.state.Status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	app.state.Status = fmt.Sprintf("copied %d lines", len(lines))
	if len(lines) == 1 {
		app.state.Status = "copied 1 line"
	}
}

func (app *Application) reloadCurrent() {
	b := app.state.Store.Current()
	if b == nil {
		return
	}
	lines, err := app.loader.Load(b.Origin)
	if err != nil {
		app.state.Status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	trunc := app.state.Store.Reload(lines)
	app.state.Status = "reloaded"
	if trunc.Any() {
		app.state.Status = truncationMessage(trunc)
	}
}

func (app *Application) pickAndOpen() {
	path, err := app.picker.Pick(app.screen)
	if err != nil {
		app.state.Status = fmt.Sprintf("picker failed: %v", err)
		return
	}
	if path == "" {
		return
	}
	app.openPath(path)
}
