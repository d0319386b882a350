package syntax

import "unicode"

// manTokenizer styles rendered man pages: section headings, CLI flags and
// cross references like grep(1). It is not a general language scanner.
type manTokenizer struct{}

// IsManSectionHeader reports whether a line is a man-page section heading:
// after leading spaces, only uppercase letters and spaces, with at least
// three letters. Examples: NAME, SYNOPSIS, SEE ALSO.
func IsManSectionHeader(line string) bool {
	letters := 0
	for _, r := range line {
		if r == ' ' {
			continue
		}
		if !unicode.IsLetter(r) || !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 3
}

func (manTokenizer) Tokenize(line string) []Span {
	runes := []rune(line)
	var b spanBuilder

	if IsManSectionHeader(line) {
		b.add(0, len(runes), StyleKeyword, true)
		return b.spans
	}

	i := 0
	for i < len(runes) {
		ch := runes[i]

		if unicode.IsSpace(ch) {
			b.normal(i, i+1)
			i++
			continue
		}

		// CLI flags: -x, --long-option
		if ch == '-' {
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
			b.add(start, i, StyleNumber, true)
			continue
		}

		if isWordRune(ch) {
			start := i
			for i < len(runes) && (isWordRune(runes[i]) || runes[i] == '-') {
				i++
			}
			if end, ok := crossRefSuffix(runes, i); ok {
				b.add(start, i, StyleFunction, true)
				b.add(i, end, StyleType, false)
				i = end
				continue
			}
			b.normal(start, i)
			continue
		}

		b.normal(i, i+1)
		i++
	}

	return b.spans
}

// crossRefSuffix matches the exact shape "(<digits>)" starting at i and
// returns the index past the closing paren.
func crossRefSuffix(runes []rune, i int) (int, bool) {
	j := i
	if j >= len(runes) || runes[j] != '(' {
		return 0, false
	}
	j++
	digits := 0
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		digits++
		j++
	}
	if digits == 0 || j >= len(runes) || runes[j] != ')' {
		return 0, false
	}
	return j + 1, true
}
