package main

import (
	"testing"

	"github.com/kk-code-lab/peek/internal/source"
	"github.com/kk-code-lab/peek/internal/syntax"
)

func TestParseArgsFilesAndFlags(t *testing.T) {
	requests, wrap, err := parseArgs([]string{"--no-wrap", "main.py", "notes.txt"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if wrap {
		t.Errorf("--no-wrap should disable wrapping")
	}
	if len(requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(requests))
	}
	if requests[0].desc.Kind != source.KindFile || requests[0].lang != syntax.LangPython {
		t.Errorf("first request = %+v", requests[0])
	}
	if requests[1].lang != syntax.LangNone {
		t.Errorf("plain text file should carry no language, got %v", requests[1].lang)
	}
}

func TestParseArgsManFlag(t *testing.T) {
	// -m takes the command verbatim; nothing is prepended to it.
	tests := []struct {
		command string
	}{
		{"man grep"},
		{"MANWIDTH=200 man ls"},
		{"ls -la"},
	}
	for _, tt := range tests {
		requests, _, err := parseArgs([]string{"-m", tt.command})
		if err != nil {
			t.Fatalf("parse -m %q: %v", tt.command, err)
		}
		if len(requests) != 1 {
			t.Fatalf("requests = %d, want 1", len(requests))
		}
		req := requests[0]
		if req.desc.Kind != source.KindCommand || req.desc.Command != tt.command {
			t.Errorf("-m %q descriptor = %+v", tt.command, req.desc)
		}
		if req.lang != syntax.LangMan {
			t.Errorf("-m %q lang = %v, want LangMan", tt.command, req.lang)
		}
	}
}

func TestParseArgsManCommandAutoDetect(t *testing.T) {
	requests, _, err := parseArgs([]string{"man 3 printf"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if requests[0].desc.Kind != source.KindCommand || requests[0].lang != syntax.LangMan {
		t.Errorf("man invocation not detected: %+v", requests[0])
	}
}

func TestParseArgsSQL(t *testing.T) {
	requests, _, err := parseArgs([]string{"-s", "app.db", "select * from users"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	req := requests[0]
	if req.desc.Kind != source.KindSQL || req.desc.DSN != "app.db" || req.desc.Query != "select * from users" {
		t.Errorf("descriptor = %+v", req.desc)
	}
}

func TestParseArgsMissingOperand(t *testing.T) {
	for _, args := range [][]string{{"-m"}, {"-u"}, {"-s", "app.db"}} {
		if _, _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v) should fail", args)
		}
	}
}

func TestLoadBuffersSkipsFailures(t *testing.T) {
	loader := source.NewLoader(nil)
	store := loadBuffers(loader, []request{
		{desc: source.FileDescriptor("/nonexistent/definitely-missing"), lang: syntax.LangNone},
	})
	if store.Count() != 0 {
		t.Errorf("missing file should not create a buffer")
	}
}
