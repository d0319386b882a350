package syntax

// Reserved-word tables, one per language family. Lookup is exact and
// case-sensitive except SQL, which folds case before the lookup.

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var cKeywords = wordSet(
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"int", "long", "register", "return", "short", "signed", "sizeof", "static",
	"struct", "switch", "typedef", "union", "unsigned", "void", "volatile", "while",
)

var cppKeywords = func() map[string]struct{} {
	set := wordSet(
		"bool", "catch", "class", "delete", "explicit", "false", "friend",
		"inline", "namespace", "new", "nullptr", "operator", "private",
		"protected", "public", "template", "this", "throw", "true", "try",
		"typename", "using", "virtual",
	)
	for w := range cKeywords {
		set[w] = struct{}{}
	}
	return set
}()

var pythonKeywords = wordSet(
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
)

var javaKeywords = wordSet(
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
)

var jsKeywords = wordSet(
	"async", "await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "export", "extends", "finally",
	"for", "function", "if", "import", "in", "instanceof", "let", "new",
	"return", "super", "switch", "this", "throw", "try", "typeof", "var",
	"void", "while", "with", "yield",
)

var tsKeywords = func() map[string]struct{} {
	set := wordSet(
		"abstract", "any", "boolean", "declare", "enum", "implements",
		"interface", "namespace", "number", "readonly", "string", "type",
	)
	for w := range jsKeywords {
		set[w] = struct{}{}
	}
	return set
}()

var shellKeywords = wordSet(
	"case", "do", "done", "elif", "else", "esac", "export", "fi", "for",
	"function", "if", "in", "local", "return", "select", "then", "time",
	"until", "while",
)

var rustKeywords = wordSet(
	"as", "async", "await", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in",
	"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return",
	"self", "static", "struct", "super", "trait", "true", "type", "unsafe",
	"use", "where", "while",
)

var goKeywords = wordSet(
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
)

var rubyKeywords = wordSet(
	"alias", "and", "begin", "break", "case", "class", "def", "defined?",
	"do", "else", "elsif", "end", "ensure", "false", "for", "if", "in",
	"module", "next", "nil", "not", "or", "redo", "rescue", "retry",
	"return", "self", "super", "then", "true", "unless", "until", "when",
	"while", "yield",
)

var phpKeywords = wordSet(
	"abstract", "array", "as", "break", "case", "catch", "class", "clone",
	"const", "continue", "declare", "default", "do", "echo", "else",
	"elseif", "extends", "final", "finally", "for", "foreach", "function",
	"global", "if", "implements", "include", "instanceof", "interface",
	"namespace", "new", "print", "private", "protected", "public", "require",
	"return", "static", "switch", "throw", "trait", "try", "use", "var",
	"while", "yield",
)

// sqlKeywords holds the canonical uppercase form; the tokenizer folds
// identifiers to uppercase before the lookup.
var sqlKeywords = wordSet(
	"ALTER", "AND", "AS", "BY", "CASE", "CREATE", "DELETE", "DISTINCT",
	"DROP", "ELSE", "END", "FROM", "GROUP", "HAVING", "INDEX", "INNER",
	"INSERT", "INTO", "JOIN", "LEFT", "LIMIT", "NOT", "NULL", "ON", "OR",
	"ORDER", "OUTER", "RIGHT", "SELECT", "SET", "TABLE", "THEN", "UNION",
	"UPDATE", "VALUES", "WHEN", "WHERE",
)

var yamlKeywords = wordSet(
	"true", "false", "null", "yes", "no",
)
