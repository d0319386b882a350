// Package source acquires raw text lines for the viewer. Every acquisition
// path — file read, stdin drain, subprocess capture, HTTP fetch, SQL query —
// yields the same thing: an ordered, finite slice of raw lines or an error.
// The viewer never distinguishes between them once lines are returned; only
// the descriptor kept for reloads differs.
package source

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Kind selects the acquisition path for a descriptor.
type Kind int

const (
	KindFile Kind = iota
	KindStdin
	KindCommand
	KindHTTP
	KindSQL
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStdin:
		return "stdin"
	case KindCommand:
		return "command"
	case KindHTTP:
		return "http"
	case KindSQL:
		return "sql"
	}
	return "unknown"
}

// ErrNoLines reports a source that was readable but produced nothing; the
// viewer treats it the same as an unreadable source and creates no buffer.
var ErrNoLines = errors.New("source produced no lines")

// ErrNotReloadable marks descriptors whose input cannot be fetched again.
var ErrNotReloadable = errors.New("source cannot be reloaded")

// Descriptor tells a TextSource what to fetch. It is stored on the buffer it
// loaded so the buffer can be reloaded in place later.
type Descriptor struct {
	Kind    Kind
	Label   string
	Path    string // KindFile
	Command string // KindCommand
	URL     string // KindHTTP
	DSN     string // KindSQL: SQLite database path
	Query   string // KindSQL
}

func FileDescriptor(path string) Descriptor {
	return Descriptor{Kind: KindFile, Label: path, Path: path}
}

func StdinDescriptor() Descriptor {
	return Descriptor{Kind: KindStdin, Label: "<stdin>"}
}

func CommandDescriptor(command string) Descriptor {
	return Descriptor{Kind: KindCommand, Label: "[" + command + "]", Command: command}
}

func HTTPDescriptor(url string) Descriptor {
	return Descriptor{Kind: KindHTTP, Label: url, URL: url}
}

func SQLDescriptor(dsn, query string) Descriptor {
	return Descriptor{Kind: KindSQL, Label: "[sql] " + query, DSN: dsn, Query: query}
}

// TextSource produces raw lines for a descriptor. Implementations block
// until the fetch completes; the caller owns pacing and error display.
type TextSource interface {
	Load(desc Descriptor) ([]string, error)
}

// Loader is the production TextSource. Stdin is injected so tests can feed
// canned input; the HTTP client defaults to http.DefaultClient.
type Loader struct {
	Stdin     io.Reader
	Client    *http.Client
	stdinUsed bool
}

func NewLoader(stdin io.Reader) *Loader {
	return &Loader{Stdin: stdin}
}

func (l *Loader) Load(desc Descriptor) ([]string, error) {
	switch desc.Kind {
	case KindFile:
		return l.loadFile(desc.Path)
	case KindStdin:
		return l.loadStdin()
	case KindCommand:
		return l.loadCommand(desc.Command)
	case KindHTTP:
		return l.loadHTTP(desc.URL)
	case KindSQL:
		return l.loadSQL(desc.DSN, desc.Query)
	}
	return nil, fmt.Errorf("unknown source kind %d", desc.Kind)
}
