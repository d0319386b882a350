package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func (l *Loader) loadFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines := SplitLines(decodeContent(content))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoLines)
	}
	return lines, nil
}

// loadStdin drains the injected stdin reader. Stdin can only be consumed
// once per process, so a second load (a reload) fails.
func (l *Loader) loadStdin() ([]string, error) {
	if l.stdinUsed || l.Stdin == nil {
		return nil, fmt.Errorf("stdin: %w", ErrNotReloadable)
	}
	l.stdinUsed = true

	var lines []string
	scanner := bufio.NewScanner(l.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("stdin: %w", ErrNoLines)
	}
	return lines, nil
}

// decodeContent converts BOM-marked UTF-8 and UTF-16 content to plain UTF-8.
// Everything else passes through untouched.
func decodeContent(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

// SplitLines breaks decoded content into lines, tolerating CRLF endings and
// a missing final newline. A trailing newline does not create an extra
// empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
