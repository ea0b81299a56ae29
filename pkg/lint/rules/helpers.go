package rules

import (
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
)

// lineScanner iterates the lintable lines of a document: front matter is
// always skipped, and code-block lines are skipped unless requested.
type lineScanner struct {
	doc       *mdast.Document
	codeLines map[int]bool
	skipCode  bool
}

func newLineScanner(ctx *lint.RuleContext, skipCode bool) *lineScanner {
	s := &lineScanner{doc: ctx.Doc, skipCode: skipCode}
	if skipCode {
		s.codeLines = lint.CodeLineSet(ctx.Root)
	}
	return s
}

// skip reports whether the 1-based line should not be linted.
func (s *lineScanner) skip(line int) bool {
	if s.doc.InFrontMatter(line) {
		return true
	}
	return s.skipCode && s.codeLines[line]
}

// leadingWhitespace returns the number of leading space/tab bytes.
func leadingWhitespace(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// trailingWhitespace returns the number of trailing space/tab bytes.
func trailingWhitespace(line []byte) int {
	n := 0
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] != ' ' && line[i] != '\t' {
			break
		}
		n++
	}
	return n
}

// nodeStartLine returns the 1-based line a node starts on, or 0.
func nodeStartLine(n *mdast.Node) int {
	if n == nil || n.Doc == nil {
		return 0
	}
	line, _ := n.Doc.LineAt(n.Span.StartOffset)
	return line
}

// nodeEndLine returns the 1-based line a node ends on, or 0.
func nodeEndLine(n *mdast.Node) int {
	if n == nil || n.Doc == nil {
		return 0
	}
	end := n.Span.EndOffset
	if end > n.Span.StartOffset {
		end--
	}
	line, _ := n.Doc.LineAt(end)
	return line
}

// hasBlockquoteAncestor reports whether any ancestor is a blockquote.
func hasBlockquoteAncestor(n *mdast.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == mdast.NodeBlockquote {
			return true
		}
	}
	return false
}

// listDepth counts how many List ancestors lie above a list item's list.
func listDepth(item *mdast.Node) int {
	depth := 0
	for p := item.Parent; p != nil; p = p.Parent {
		if p.Kind == mdast.NodeList {
			depth++
		}
	}
	if depth > 0 {
		depth--
	}
	return depth
}
