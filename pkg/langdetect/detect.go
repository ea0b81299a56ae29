// Package langdetect validates and suggests language identifiers for
// fenced code blocks. It uses go-enry's language catalog so a fence info
// string like "golang" or "Go" resolves to a known language.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// aliases maps common fence identifiers that enry does not resolve
// directly to a language it knows.
var aliases = map[string]string{
	"sh":         "shell",
	"zsh":        "shell",
	"console":    "shell",
	"terminal":   "shell",
	"dockerfile": "dockerfile",
	"jsonc":      "json",
	"yml":        "yaml",
	"plaintext":  "text",
	"txt":        "text",
	"text":       "text",
	"mermaid":    "mermaid",
	"math":       "math",
	"latex":      "latex",
}

// Known reports whether a fence info identifier names a recognized
// language. The empty string is not known.
func Known(info string) bool {
	ident := strings.ToLower(strings.TrimSpace(info))
	if ident == "" {
		return false
	}
	if _, ok := aliases[ident]; ok {
		return true
	}
	if _, ok := enry.GetLanguageByAlias(ident); ok {
		return true
	}
	return false
}

// Suggest returns a language identifier for code content, or "text" when
// detection is not confident. Used to propose an info string for fences
// that lack one.
func Suggest(content []byte) string {
	if len(content) == 0 {
		return "text"
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "TOML", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return "text"
}

func normalize(lang string) string {
	l := strings.ToLower(lang)
	switch l {
	case "shell":
		return "bash"
	case "c++":
		return "cpp"
	default:
		return l
	}
}
