// Package mdast provides the Markdown document model for notelint.
// It defines an immutable view of a Markdown text including:
// - Document: the complete parsed representation
// - Line metadata: byte offsets for every line
// - AST nodes: block and inline structure anchored to byte spans
// - Dialect spans: extended-syntax constructs recognized in the obsidian flavor
package mdast

// Document is an immutable view of a Markdown text at parse time.
// It holds the raw content, line metadata, front matter, the block/inline
// node tree, and any dialect spans collected for the extended flavor.
//
// All positions in the tree are byte offsets into Content. Fixes are
// expressed against Content, never against a re-serialized form, so every
// line/column a rule reports is recoverable as an exact byte range.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full source bytes.
	Content []byte

	// Lines contains metadata for each line, in order.
	Lines []LineInfo

	// Root is the AST root node (kind NodeDocument).
	Root *Node

	// FrontMatter holds the parsed YAML front matter, or nil if absent.
	FrontMatter *FrontMatter

	// Dialect holds extended-syntax spans, or nil when parsed as standard.
	Dialect *DialectSpans
}

// LineInfo holds byte offsets for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the first byte of the line.
	StartOffset int

	// NewlineStart is the byte index where the newline sequence begins.
	// For a final line without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just past the newline (or end of text).
	EndOffset int
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// InFrontMatter reports whether the 1-based line lies inside the
// front matter block (including its delimiters).
func (d *Document) InFrontMatter(line int) bool {
	if d.FrontMatter == nil {
		return false
	}
	return line >= 1 && line <= d.FrontMatter.EndLine
}
