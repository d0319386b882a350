// Package buffer holds loaded documents and their per-document view state.
// Storage is capacity-bounded: ingestion truncates rather than failing, and
// a report of what was dropped travels back to the caller.
package buffer

import (
	"github.com/kk-code-lab/peek/internal/source"
	"github.com/kk-code-lab/peek/internal/syntax"
	"github.com/kk-code-lab/peek/internal/textutil"
)

const (
	// MaxBuffers bounds how many documents can be open at once.
	MaxBuffers = 16
	// MaxLines bounds how many lines a single buffer ingests.
	MaxLines = 10000
	// MaxLineLen bounds each line's length in characters.
	MaxLineLen = 2048
)

// Truncation reports what the capacity policy dropped during ingestion.
type Truncation struct {
	DroppedLines int // lines beyond MaxLines
	ClippedLines int // lines clipped to MaxLineLen
}

func (t Truncation) Any() bool {
	return t.DroppedLines > 0 || t.ClippedLines > 0
}

// Buffer is one loaded document: normalized lines, identity, language tag
// and vertical scroll state. The stored descriptor allows a later in-place
// reload from the same origin.
type Buffer struct {
	Label  string
	Lang   syntax.Language
	Origin source.Descriptor
	Active bool

	// Scroll is the index of the topmost visible logical line. It stays in
	// [0, max(1, line count)).
	Scroll int

	lines []string
}

// New builds a buffer and ingests the raw lines through the normalizer.
func New(label string, lang syntax.Language, origin source.Descriptor, raw []string) (*Buffer, Truncation) {
	b := &Buffer{
		Label:  label,
		Lang:   lang,
		Origin: origin,
		Active: true,
	}
	trunc := b.SetLines(raw)
	return b, trunc
}

// Kind reports where this buffer's content came from.
func (b *Buffer) Kind() source.Kind {
	return b.Origin.Kind
}

// SetLines replaces the buffer's content. Each raw line is normalized
// (overstrike collapse, escape stripping, trailing trim), clipped to
// MaxLineLen characters, and stored up to MaxLines lines. The scroll offset
// is clamped into the new line range.
func (b *Buffer) SetLines(raw []string) Truncation {
	var trunc Truncation

	count := len(raw)
	if count > MaxLines {
		trunc.DroppedLines = count - MaxLines
		count = MaxLines
	}

	lines := make([]string, 0, count)
	for _, line := range raw[:count] {
		clean := textutil.Normalize(line)
		if runes := []rune(clean); len(runes) > MaxLineLen {
			clean = string(runes[:MaxLineLen])
			trunc.ClippedLines++
		}
		lines = append(lines, clean)
	}

	b.lines = lines
	b.ClampScroll()
	return trunc
}

// Lines exposes the stored lines for read-only traversal.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Line returns one line by index, or "" when out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// ClampScroll restores the scroll invariant after content or motion changes.
func (b *Buffer) ClampScroll() {
	if b.Scroll < 0 {
		b.Scroll = 0
	}
	if maxOffset := len(b.lines) - 1; b.Scroll > maxOffset {
		if maxOffset < 0 {
			maxOffset = 0
		}
		b.Scroll = maxOffset
	}
}

// free drops the line storage when the buffer leaves the store.
func (b *Buffer) free() {
	b.lines = nil
	b.Active = false
}
