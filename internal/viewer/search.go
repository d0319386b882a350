package viewer

import (
	"strings"

	"github.com/kk-code-lab/peek/internal/buffer"
)

// FindMatch scans at most one full pass of the buffer starting at startLine,
// stepping by direction (+1 or -1) and wrapping around both ends. It returns
// the first line containing term as a plain case-sensitive substring.
func FindMatch(b *buffer.Buffer, term string, startLine, direction int) (int, bool) {
	if term == "" || b == nil || b.LineCount() == 0 {
		return 0, false
	}

	line := startLine
	for i := 0; i < b.LineCount(); i++ {
		if line < 0 {
			line = b.LineCount() - 1
		}
		if line >= b.LineCount() {
			line = 0
		}
		if strings.Contains(b.Line(line), term) {
			return line, true
		}
		line += direction
	}
	return 0, false
}

// CountMatches counts the lines containing term. It is recomputed whenever
// the term changes and cached on the state for status display.
func CountMatches(b *buffer.Buffer, term string) int {
	if term == "" || b == nil {
		return 0
	}
	count := 0
	for _, line := range b.Lines() {
		if strings.Contains(line, term) {
			count++
		}
	}
	return count
}

// MatchRank reports the 0-based ordinal of matchLine among all matching
// lines by counting matches strictly before it. This is a full rescan on
// every navigation step; with the buffer line cap it is cheaper than
// maintaining an index would be worth.
func MatchRank(b *buffer.Buffer, term string, matchLine int) int {
	if term == "" || b == nil {
		return 0
	}
	rank := 0
	for i := 0; i < matchLine && i < b.LineCount(); i++ {
		if strings.Contains(b.Line(i), term) {
			rank++
		}
	}
	return rank
}
