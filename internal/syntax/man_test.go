package syntax

import "testing"

func TestIsManSectionHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"NAME", true},
		{"SEE ALSO", true},
		{"   DESCRIPTION", true},
		{"Name", false},
		{"AB", false}, // below the 3-letter minimum
		{"OPTIONS:", false},
		{"", false},
		{"   ", false},
		{"EXIT STATUS", true},
	}
	for _, tt := range tests {
		if got := IsManSectionHeader(tt.line); got != tt.want {
			t.Fatalf("IsManSectionHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestManSectionHeaderShortCircuits(t *testing.T) {
	spans := spansFor(t, LangMan, "SYNOPSIS")
	want := []Span{{Start: 0, End: 8, Style: StyleKeyword, Emphasis: true}}
	if len(spans) != 1 || spans[0] != want[0] {
		t.Fatalf("section heading spans = %v, want %v", spans, want)
	}
}

func TestManFlags(t *testing.T) {
	line := "  -r, --recursive  search recursively"
	spans := spansFor(t, LangMan, line)

	var flags []Span
	for _, sp := range spans {
		if sp.Style == StyleNumber {
			flags = append(flags, sp)
		}
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 flag spans in %q, got %v", line, spans)
	}
	runes := []rune(line)
	if got := string(runes[flags[0].Start:flags[0].End]); got != "-r," {
		t.Fatalf("first flag span covers %q, want %q", got, "-r,")
	}
	if got := string(runes[flags[1].Start:flags[1].End]); got != "--recursive" {
		t.Fatalf("second flag span covers %q, want %q", got, "--recursive")
	}
	for _, f := range flags {
		if !f.Emphasis {
			t.Fatalf("flag spans should carry emphasis: %+v", f)
		}
	}
}

func TestManCrossReference(t *testing.T) {
	line := "see grep(1) and sed(1p) for details"
	spans := spansFor(t, LangMan, line)
	runes := []rune(line)

	var fn, ty []string
	for _, sp := range spans {
		text := string(runes[sp.Start:sp.End])
		switch sp.Style {
		case StyleFunction:
			fn = append(fn, text)
		case StyleType:
			ty = append(ty, text)
		}
	}
	if len(fn) != 1 || fn[0] != "grep" {
		t.Fatalf("cross-reference names = %v, want [grep]", fn)
	}
	if len(ty) != 1 || ty[0] != "(1)" {
		t.Fatalf("cross-reference sections = %v, want [(1)]", ty)
	}
}

func TestManPlainWords(t *testing.T) {
	spans := spansFor(t, LangMan, "print lines matching a pattern")
	for _, sp := range spans {
		if sp.Style != StyleNormal {
			t.Fatalf("plain description must stay normal: %v", spans)
		}
	}
}

func TestManSpansCoverLine(t *testing.T) {
	lines := []string{
		"  -q, --quiet  suppress output, see grep(1)",
		"SYNOPSIS",
		"       grep [OPTION]... PATTERNS [FILE]...",
	}
	for _, line := range lines {
		spans := spansFor(t, LangMan, line)
		pos := 0
		for _, sp := range spans {
			if sp.Start != pos || sp.End <= sp.Start {
				t.Fatalf("bad span sequence for %q: %v", line, spans)
			}
			pos = sp.End
		}
		if pos != len([]rune(line)) {
			t.Fatalf("spans do not cover %q: covered %d of %d", line, pos, len([]rune(line)))
		}
	}
}
