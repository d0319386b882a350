package syntax

import (
	"strings"
	"unicode"
)

// Tokenizer splits one line into styled spans. Scanning is single-pass and
// carries no state across lines, so block comments and multi-line strings
// are not recognized — a documented limitation of the heuristic approach.
type Tokenizer interface {
	Tokenize(line string) []Span
}

// codeTokenizer is the shared scanner for every non-man language. The
// comment markers and keyword table vary per language; string, number and
// identifier scanning are common.
type codeTokenizer struct {
	comments []string
	keywords map[string]struct{}
	foldCase bool
}

var tokenizers = map[Language]Tokenizer{
	LangC:        &codeTokenizer{comments: []string{"//"}, keywords: cKeywords},
	LangCPP:      &codeTokenizer{comments: []string{"//"}, keywords: cppKeywords},
	LangJava:     &codeTokenizer{comments: []string{"//"}, keywords: javaKeywords},
	LangJS:       &codeTokenizer{comments: []string{"//"}, keywords: jsKeywords},
	LangTS:       &codeTokenizer{comments: []string{"//"}, keywords: tsKeywords},
	LangCSS:      &codeTokenizer{comments: []string{"//"}},
	LangGo:       &codeTokenizer{comments: []string{"//"}, keywords: goKeywords},
	LangRust:     &codeTokenizer{comments: []string{"//"}, keywords: rustKeywords},
	LangPHP:      &codeTokenizer{comments: []string{"//", "#"}, keywords: phpKeywords},
	LangPython:   &codeTokenizer{comments: []string{"#"}, keywords: pythonKeywords},
	LangShell:    &codeTokenizer{comments: []string{"#"}, keywords: shellKeywords},
	LangRuby:     &codeTokenizer{comments: []string{"#"}, keywords: rubyKeywords},
	LangYAML:     &codeTokenizer{comments: []string{"#"}, keywords: yamlKeywords},
	LangSQL:      &codeTokenizer{comments: []string{"--"}, keywords: sqlKeywords, foldCase: true},
	LangHTML:     &codeTokenizer{},
	LangMarkdown: &codeTokenizer{},
	LangJSON:     &codeTokenizer{},
	LangXML:      &codeTokenizer{},
	LangMan:      manTokenizer{},
}

// ForLanguage looks up the tokenizer for a language tag. LangNone returns
// nil: such buffers render as plain text.
func ForLanguage(lang Language) Tokenizer {
	return tokenizers[lang]
}

func (t *codeTokenizer) Tokenize(line string) []Span {
	runes := []rune(line)
	var b spanBuilder

	i := 0
	for i < len(runes) {
		ch := runes[i]

		if marker := t.commentAt(runes, i); marker != "" {
			b.add(i, len(runes), StyleComment, false)
			break
		}

		if ch == '"' || ch == '\'' {
			i = t.scanString(&b, runes, i)
			continue
		}

		if unicode.IsDigit(ch) {
			start := i
			for i < len(runes) && isNumberRune(runes[i]) {
				i++
			}
			b.add(start, i, StyleNumber, false)
			continue
		}

		if unicode.IsLetter(ch) || ch == '_' {
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			if t.isKeyword(word) {
				b.add(start, i, StyleKeyword, true)
			} else {
				b.normal(start, i)
			}
			continue
		}

		b.normal(i, i+1)
		i++
	}

	return b.spans
}

// scanString consumes a quoted literal starting at the opening quote and
// returns the index just past the closing quote (or end of line when the
// literal is unterminated). A quote preceded by a backslash does not
// terminate. The i==0 guard is dead in practice (the opening quote was
// already consumed) but is kept to match the long-standing behavior; a
// doubled backslash before the quote is deliberately not special-cased.
func (t *codeTokenizer) scanString(b *spanBuilder, runes []rune, start int) int {
	quote := runes[start]
	i := start + 1
	for i < len(runes) {
		c := runes[i]
		if c == quote && (i == 0 || runes[i-1] != '\\') {
			i++
			break
		}
		i++
	}
	b.add(start, i, StyleString, false)
	return i
}

func (t *codeTokenizer) commentAt(runes []rune, i int) string {
	for _, marker := range t.comments {
		if matchesAt(runes, i, marker) {
			return marker
		}
	}
	return ""
}

func (t *codeTokenizer) isKeyword(word string) bool {
	if len(t.keywords) == 0 {
		return false
	}
	if t.foldCase {
		word = strings.ToUpper(word)
	}
	_, ok := t.keywords[word]
	return ok
}

func matchesAt(runes []rune, i int, marker string) bool {
	for _, mc := range marker {
		if i >= len(runes) || runes[i] != mc {
			return false
		}
		i++
	}
	return true
}

// isNumberRune accepts digits, the decimal point and hex-style characters.
// Hex-looking tokens are admitted generically rather than via a strict
// grammar.
func isNumberRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.':
		return true
	case r == 'x' || r == 'X':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
