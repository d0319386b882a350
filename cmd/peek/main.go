package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/peek/internal/app"
	"github.com/kk-code-lab/peek/internal/buffer"
	"github.com/kk-code-lab/peek/internal/source"
	"github.com/kk-code-lab/peek/internal/syntax"
)

func printHelp() {
	fmt.Print(`peek - Terminal-based text viewer

USAGE:
    peek [OPTIONS] [FILE ...]
    command | peek [OPTIONS] [-]

OPTIONS:
    -h, --help           Show this help message and exit
    -w, --no-wrap        Start with line wrapping disabled
    -m, --man COMMAND    Run COMMAND and view its output as a man page
    -u, --url URL        Fetch URL over HTTP into a buffer
    -s, --sql DB QUERY   Run QUERY against the SQLite database DB

A FILE of "-" reads standard input. An argument like "man 3 printf" is
recognized as a man invocation and captured the same way as --man.
`)
}

// request pairs a source descriptor with the language its buffer should use.
type request struct {
	desc source.Descriptor
	lang syntax.Language
}

// parseArgs splits the command line into open requests and the wrap flag.
func parseArgs(args []string) ([]request, bool, error) {
	var requests []request
	wrap := true

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "-w", "--no-wrap":
			wrap = false
		case "-m", "--man":
			if i+1 >= len(args) {
				return nil, wrap, fmt.Errorf("%s requires a command argument", arg)
			}
			i++
			// The argument is the command itself, run verbatim.
			requests = append(requests, request{
				desc: source.CommandDescriptor(args[i]),
				lang: syntax.LangMan,
			})
		case "-u", "--url":
			if i+1 >= len(args) {
				return nil, wrap, fmt.Errorf("%s requires a URL argument", arg)
			}
			i++
			requests = append(requests, request{
				desc: source.HTTPDescriptor(args[i]),
				lang: syntax.Detect(args[i]),
			})
		case "-s", "--sql":
			if i+2 >= len(args) {
				return nil, wrap, fmt.Errorf("%s requires a database and a query", arg)
			}
			requests = append(requests, request{
				desc: source.SQLDescriptor(args[i+1], args[i+2]),
				lang: syntax.LangNone,
			})
			i += 2
		case "-":
			requests = append(requests, request{
				desc: source.StdinDescriptor(),
				lang: stdinLanguage(),
			})
		default:
			if source.IsManCommand(arg) {
				requests = append(requests, request{
					desc: source.CommandDescriptor(arg),
					lang: syntax.LangMan,
				})
				continue
			}
			requests = append(requests, request{
				desc: source.FileDescriptor(arg),
				lang: syntax.Detect(arg),
			})
		}
	}

	if len(requests) == 0 && stdinIsPiped() {
		requests = append(requests, request{
			desc: source.StdinDescriptor(),
			lang: stdinLanguage(),
		})
	}
	return requests, wrap, nil
}

// stdinLanguage picks man formatting when man itself invoked us as a pager.
func stdinLanguage() syntax.Language {
	if os.Getenv("MAN_PN") != "" {
		return syntax.LangMan
	}
	return syntax.LangNone
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// loadBuffers resolves every request, keeping the session going past
// individual failures. Failures and truncations go to stderr before the
// screen takes over the terminal.
func loadBuffers(loader source.TextSource, requests []request) *buffer.Store {
	store := buffer.NewStore()
	for _, req := range requests {
		lines, err := loader.Load(req.desc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "peek: %s: %v\n", req.desc.Label, err)
			continue
		}
		b, trunc := buffer.New(req.desc.Label, req.lang, req.desc, lines)
		if err := store.Add(b); err != nil {
			fmt.Fprintf(os.Stderr, "peek: %s: %v\n", req.desc.Label, err)
			break
		}
		if trunc.Any() {
			fmt.Fprintf(os.Stderr, "peek: %s: truncated (%d lines dropped, %d clipped)\n",
				req.desc.Label, trunc.DroppedLines, trunc.ClippedLines)
		}
	}
	return store
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	requests, wrap, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "peek: %v\n", err)
		os.Exit(1)
	}
	if len(requests) == 0 {
		printHelp()
		os.Exit(1)
	}

	store := loadBuffers(source.NewLoader(os.Stdin), requests)
	if store.Count() == 0 {
		fmt.Fprintln(os.Stderr, "peek: no readable input")
		os.Exit(1)
	}
	store.Select(0)

	app, err := apppkg.NewApplication(store, apppkg.Options{Wrap: wrap})
	if err != nil {
		fmt.Fprintf(os.Stderr, "peek: cannot initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}
