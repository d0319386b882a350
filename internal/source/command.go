package source

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsManCommand reports whether a CLI argument should be auto-detected as a
// man invocation and loaded as a command buffer. Plain "man x" matches, and
// so does an environment-prefixed form like "MANWIDTH=200 man grep" as long
// as an operand follows the man token.
func IsManCommand(arg string) bool {
	idx := -1
	switch {
	case strings.HasPrefix(arg, "man "):
		idx = 0
	default:
		if i := strings.Index(arg, " man "); i >= 0 {
			idx = i + 1
		}
	}
	if idx < 0 {
		return false
	}
	return strings.TrimSpace(arg[idx+4:]) != ""
}

// loadCommand runs a shell command and captures its standard output. Stderr
// is discarded; a command that prints nothing is a load failure even when
// it exits zero.
func (l *Loader) loadCommand(command string) ([]string, error) {
	if command == "" {
		return nil, fmt.Errorf("command: %w", ErrNoLines)
	}
	out, err := exec.Command("sh", "-c", command).Output()
	if err != nil && len(out) == 0 {
		return nil, fmt.Errorf("run %q: %w", command, err)
	}
	lines := SplitLines(string(out))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%q: %w", command, ErrNoLines)
	}
	return lines, nil
}
