package textutil

import "errors"

// ErrBadWrapWidth is returned when Wrap is called with a non-positive width.
var ErrBadWrapWidth = errors.New("wrap width must be positive")

// Wrap splits a logical line into hard fixed-width segments of exactly width
// characters each, with a shorter final remainder. There is no word-boundary
// awareness and no display-width accounting; chunking is purely positional.
// An empty line yields a single empty segment so that every logical line
// produces at least one display row. Concatenating the segments reproduces
// the input exactly.
func Wrap(line string, width int) ([]string, error) {
	if width <= 0 {
		return nil, ErrBadWrapWidth
	}
	if line == "" {
		return []string{""}, nil
	}

	runes := []rune(line)
	segments := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, string(runes[start:end]))
	}
	return segments, nil
}

// WrapCount reports how many display rows a line occupies at the given
// width without materializing the segments.
func WrapCount(line string, width int) int {
	if width <= 0 {
		return 1
	}
	n := len([]rune(line))
	if n == 0 {
		return 1
	}
	rows := n / width
	if n%width != 0 {
		rows++
	}
	return rows
}
