package app

import (
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const clipboardLimit = 100 * 1024

// writeClipboard emits an OSC 52 copy sequence for text, wrapped for tmux or
// screen when the environment says the terminal sits inside one. The writer
// is the controlling terminal in production and a buffer in tests.
func writeClipboard(text string, out io.Writer) error {
	seq := osc52.New(text).Limit(clipboardLimit)

	term := strings.ToLower(os.Getenv("TERM"))
	if tmux := os.Getenv("TMUX"); tmux != "" || strings.HasPrefix(term, "tmux") {
		seq = seq.Tmux()
	} else if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	}

	_, err := seq.WriteTo(out)
	return err
}
