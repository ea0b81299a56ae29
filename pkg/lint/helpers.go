package lint

import "github.com/notelint/notelint/pkg/mdast"

// Node query helpers shared by the rule catalog.

// Headings returns all heading nodes in document order.
func Headings(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeHeading)
}

// Lists returns all list nodes in document order.
func Lists(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeList)
}

// CodeBlocks returns all code block nodes in document order.
func CodeBlocks(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeCodeBlock)
}

// HeadingLevel returns the level of a heading node, or 0.
func HeadingLevel(n *mdast.Node) int {
	if n == nil || n.Kind != mdast.NodeHeading || n.Heading == nil {
		return 0
	}
	return n.Heading.Level
}

// CodeLineSet returns the set of 1-based lines covered by code blocks,
// including fence lines.
func CodeLineSet(root *mdast.Node) map[int]bool {
	lines := make(map[int]bool)
	for _, cb := range CodeBlocks(root) {
		if cb.Doc == nil {
			continue
		}
		startLine, _ := cb.Doc.LineAt(cb.Span.StartOffset)
		endLine, _ := cb.Doc.LineAt(cb.Span.EndOffset)
		for l := startLine; l <= endLine; l++ {
			lines[l] = true
		}
	}
	return lines
}

// TableLineSet returns the set of 1-based lines covered by tables.
func TableLineSet(root *mdast.Node) map[int]bool {
	lines := make(map[int]bool)
	for _, tbl := range mdast.FindByKind(root, mdast.NodeTable) {
		if tbl.Doc == nil {
			continue
		}
		startLine, _ := tbl.Doc.LineAt(tbl.Span.StartOffset)
		endLine, _ := tbl.Doc.LineAt(tbl.Span.EndOffset)
		for l := startLine; l <= endLine; l++ {
			lines[l] = true
		}
	}
	return lines
}
