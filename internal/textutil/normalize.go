package textutil

import "strings"

// escState is one state of the escape-sequence scanner. The scanner walks a
// line byte by byte and decides which bytes survive into the cleaned output.
type escState int

const (
	escNormal escState = iota // copying plain bytes
	escSeen                   // ESC consumed, dispatching on the next byte
	escCSI                    // inside ESC[ ... , runs until a final byte @-~
	escOSC                    // inside ESC] ... , runs until BEL
)

const (
	backspace = 0x08
	escByte   = 0x1b
	belByte   = 0x07
)

// Normalize cleans a raw captured line for ingestion: backspace overstrike
// sequences collapse to their final glyph, terminal escape sequences are
// removed, and trailing spaces/tabs are trimmed. Overstrike collapse runs
// first because escape bytes can sit right next to backspaces in raw
// terminal captures.
func Normalize(raw string) string {
	return TrimTrailing(StripEscapes(CollapseOverstrikes(raw)))
}

// CollapseOverstrikes removes classic man-page backspace formatting:
// "x\bx" (bold) and "_\bx" (underline) both become just "x". Each backspace
// deletes the previously kept byte; a leading backspace deletes nothing.
func CollapseOverstrikes(s string) string {
	if !strings.ContainsRune(s, backspace) {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == backspace {
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// StripEscapes removes ANSI escape sequences (CSI, OSC and two-byte simple
// escapes). Unterminated sequences at end of input are dropped silently.
// The output contains no ESC bytes, so applying StripEscapes twice is the
// same as applying it once.
func StripEscapes(s string) string {
	if !strings.ContainsRune(s, escByte) {
		return s
	}
	out := make([]byte, 0, len(s))
	state := escNormal
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch state {
		case escNormal:
			if b == escByte {
				state = escSeen
				continue
			}
			out = append(out, b)
		case escSeen:
			switch b {
			case '[':
				state = escCSI
			case ']':
				state = escOSC
			default:
				// simple escape: the dispatch byte itself is the payload
				state = escNormal
			}
		case escCSI:
			if b >= '@' && b <= '~' {
				state = escNormal
			}
		case escOSC:
			if b == belByte {
				state = escNormal
			}
		}
	}
	return string(out)
}

// TrimTrailing removes trailing spaces and tabs only. Other whitespace is
// preserved.
func TrimTrailing(s string) string {
	return strings.TrimRight(s, " \t")
}
