package syntax

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifies which tokenizer a buffer's lines run through.
type Language int

const (
	LangNone Language = iota
	LangC
	LangCPP
	LangPython
	LangJava
	LangJS
	LangTS
	LangHTML
	LangCSS
	LangShell
	LangMarkdown
	LangRust
	LangGo
	LangRuby
	LangPHP
	LangSQL
	LangJSON
	LangXML
	LangYAML
	LangMan
)

var langNames = map[Language]string{
	LangNone:     "none",
	LangC:        "c",
	LangCPP:      "c++",
	LangPython:   "python",
	LangJava:     "java",
	LangJS:       "javascript",
	LangTS:       "typescript",
	LangHTML:     "html",
	LangCSS:      "css",
	LangShell:    "shell",
	LangMarkdown: "markdown",
	LangRust:     "rust",
	LangGo:       "go",
	LangRuby:     "ruby",
	LangPHP:      "php",
	LangSQL:      "sql",
	LangJSON:     "json",
	LangXML:      "xml",
	LangYAML:     "yaml",
	LangMan:      "man",
}

func (l Language) String() string {
	if name, ok := langNames[l]; ok {
		return name
	}
	return "none"
}

// extLanguages maps file extensions (case-sensitive, exact) onto languages.
var extLanguages = map[string]Language{
	".c":        LangC,
	".h":        LangC,
	".cpp":      LangCPP,
	".cc":       LangCPP,
	".hpp":      LangCPP,
	".py":       LangPython,
	".java":     LangJava,
	".js":       LangJS,
	".jsx":      LangJS,
	".ts":       LangTS,
	".tsx":      LangTS,
	".html":     LangHTML,
	".htm":      LangHTML,
	".css":      LangCSS,
	".sh":       LangShell,
	".bash":     LangShell,
	".zsh":      LangShell,
	".md":       LangMarkdown,
	".markdown": LangMarkdown,
	".rs":       LangRust,
	".go":       LangGo,
	".rb":       LangRuby,
	".php":      LangPHP,
	".sql":      LangSQL,
	".json":     LangJSON,
	".xml":      LangXML,
	".yaml":     LangYAML,
	".yml":      LangYAML,
}

// enryLanguages maps enry's language names onto our fixed tag set.
var enryLanguages = map[string]Language{
	"C":          LangC,
	"C++":        LangCPP,
	"Python":     LangPython,
	"Java":       LangJava,
	"JavaScript": LangJS,
	"TypeScript": LangTS,
	"HTML":       LangHTML,
	"CSS":        LangCSS,
	"Shell":      LangShell,
	"Markdown":   LangMarkdown,
	"Rust":       LangRust,
	"Go":         LangGo,
	"Ruby":       LangRuby,
	"PHP":        LangPHP,
	"SQL":        LangSQL,
	"JSON":       LangJSON,
	"XML":        LangXML,
	"YAML":       LangYAML,
}

// Detect classifies a path or label. The fixed extension table wins; when it
// misses, man-page path markers are checked, then enry's filename-based
// detection maps onto the same tag set. Anything unrecognized gets LangNone
// and renders without highlighting. Buffers created from command, network or
// SQL output are tagged explicitly by the caller instead.
func Detect(path string) Language {
	if ext := extension(path); ext != "" {
		if lang, ok := extLanguages[ext]; ok {
			return lang
		}
	}

	if strings.Contains(path, "/man/") || strings.Contains(path, ".man") {
		return LangMan
	}

	if name := enry.GetLanguage(filepath.Base(path), nil); name != "" {
		if lang, ok := enryLanguages[name]; ok {
			return lang
		}
	}

	return LangNone
}

func extension(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[idx:]
}
