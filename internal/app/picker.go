package app

import (
	"os"
	"os/exec"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Picker chooses a file path interactively. An empty path with a nil error
// means the user cancelled.
type Picker interface {
	Pick(screen tcell.Screen) (string, error)
}

// fzfPicker suspends the screen and hands the terminal to fzf fed by find.
type fzfPicker struct{}

func (fzfPicker) Pick(screen tcell.Screen) (string, error) {
	if err := screen.Suspend(); err != nil {
		return "", err
	}
	defer func() { _ = screen.Resume() }()

	cmd := exec.Command("sh", "-c", "find . -type f 2>/dev/null | fzf")
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		// fzf exits 130 on Esc/Ctrl-C, 1 on no match; both mean no pick.
		if exitErr, ok := err.(*exec.ExitError); ok && (exitErr.ExitCode() == 130 || exitErr.ExitCode() == 1) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
