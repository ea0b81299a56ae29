package mdast

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// FrontMatter is a YAML front matter block at the top of a document.
type FrontMatter struct {
	// Span covers the whole block including both delimiter lines.
	Span SourceRange

	// EndLine is the 1-based line of the closing delimiter.
	EndLine int

	// Raw is the YAML payload between the delimiters.
	Raw []byte

	// Fields holds the decoded YAML mapping. Nil when the payload is not
	// valid YAML; the block is still treated as front matter so rules
	// skip over it rather than linting YAML as Markdown.
	Fields map[string]any
}

var frontMatterClose = [][]byte{[]byte("---"), []byte("...")}

// ParseFrontMatter extracts a YAML front matter block from content.
// The block must start at the very first line with "---" and end with a
// "---" or "..." delimiter line. Returns nil if no block is present.
// Malformed YAML degrades to a block with nil Fields; parsing never fails.
func ParseFrontMatter(content []byte, lines []LineInfo) *FrontMatter {
	if len(lines) < 2 {
		return nil
	}

	first := content[lines[0].StartOffset:lines[0].NewlineStart]
	if !bytes.Equal(bytes.TrimRight(first, " \t"), []byte("---")) {
		return nil
	}

	closeIdx := -1
	for i := 1; i < len(lines); i++ {
		line := bytes.TrimRight(content[lines[i].StartOffset:lines[i].NewlineStart], " \t")
		for _, delim := range frontMatterClose {
			if bytes.Equal(line, delim) {
				closeIdx = i
				break
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		// Unterminated: not front matter, lint it as regular text.
		return nil
	}

	fm := &FrontMatter{
		Span: SourceRange{
			StartOffset: lines[0].StartOffset,
			EndOffset:   lines[closeIdx].EndOffset,
		},
		EndLine: closeIdx + 1,
		Raw:     content[lines[0].EndOffset:lines[closeIdx].StartOffset],
	}

	var fields map[string]any
	if err := yaml.Unmarshal(fm.Raw, &fields); err == nil {
		fm.Fields = fields
	}

	return fm
}

// Title returns the "title" field as a string, if present.
func (fm *FrontMatter) Title() (string, bool) {
	if fm == nil || fm.Fields == nil {
		return "", false
	}
	if s, ok := fm.Fields["title"].(string); ok {
		return s, true
	}
	return "", false
}
