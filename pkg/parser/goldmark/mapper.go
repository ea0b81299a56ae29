package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/notelint/notelint/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree.
// All goldmark segments are offsets into the parsed body; base is added
// to translate them into offsets of the full document content.
type mapper struct {
	doc  *mdast.Document
	base int
}

func newMapper(doc *mdast.Document, base int) *mapper {
	return &mapper{doc: doc, base: base}
}

// mapDocument converts the goldmark document node into the mdast root.
func (m *mapper) mapDocument(gmRoot ast.Node) *mdast.Node {
	root := &mdast.Node{
		Kind: mdast.NodeDocument,
		Span: mdast.SourceRange{StartOffset: 0, EndOffset: len(m.doc.Content)},
	}
	m.mapChildren(gmRoot, root)
	return root
}

func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			parent.AppendChild(node)
		}
	}
}

//nolint:cyclop // one case per goldmark node type
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	switch gmn := gmNode.(type) {
	case *ast.Heading:
		return m.mapHeading(gmn)

	case *ast.Paragraph:
		node := m.newBlockNode(mdast.NodeParagraph, gmNode)
		m.mapChildren(gmNode, node)
		return node

	case *ast.TextBlock:
		node := m.newBlockNode(mdast.NodeParagraph, gmNode)
		m.mapChildren(gmNode, node)
		return node

	case *ast.List:
		return m.mapList(gmn)

	case *ast.ListItem:
		return m.mapListItem(gmn)

	case *ast.Blockquote:
		node := m.newBlockNode(mdast.NodeBlockquote, gmNode)
		m.mapChildren(gmNode, node)
		m.growToChildren(node)
		return node

	case *ast.FencedCodeBlock:
		return m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node := m.newBlockNode(mdast.NodeCodeBlock, gmNode)
		node.Code = &mdast.CodeAttrs{Fenced: false}
		return node

	case *ast.ThematicBreak:
		return m.mapThematicBreak()

	case *ast.HTMLBlock:
		return m.newBlockNode(mdast.NodeHTMLBlock, gmNode)

	case *ast.Text:
		seg := gmn.Segment
		return &mdast.Node{
			Kind: mdast.NodeText,
			Span: m.span(seg.Start, seg.Stop),
		}

	case *ast.String:
		return &mdast.Node{Kind: mdast.NodeText}

	case *ast.Emphasis:
		return m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *ast.Link:
		return m.mapLink(gmn, mdast.NodeLink)

	case *ast.Image:
		return m.mapImage(gmn)

	case *ast.AutoLink:
		return m.mapAutoLink(gmn)

	case *ast.RawHTML:
		return &mdast.Node{Kind: mdast.NodeHTMLInline}

	case *east.Table:
		return m.newBlockNode(mdast.NodeTable, gmNode)

	default:
		// Unknown constructs degrade to a raw node with mapped children.
		node := &mdast.Node{Kind: mdast.NodeRaw}
		m.mapChildren(gmNode, node)
		m.growToChildren(node)
		return node
	}
}

// span translates body-relative offsets into a document SourceRange.
func (m *mapper) span(start, stop int) mdast.SourceRange {
	return mdast.SourceRange{StartOffset: m.base + start, EndOffset: m.base + stop}
}

// newBlockNode builds a node whose span covers the block's content lines,
// extended left to the start of the first line.
func (m *mapper) newBlockNode(kind mdast.NodeKind, gmNode ast.Node) *mdast.Node {
	node := &mdast.Node{Kind: kind}

	lines := gmNode.Lines()
	if lines != nil && lines.Len() > 0 {
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		node.Span = m.span(first.Start, last.Stop)
		node.Span.StartOffset = m.lineStartAt(node.Span.StartOffset)
	}

	return node
}

// lineStartAt returns the start offset of the line containing offset.
func (m *mapper) lineStartAt(offset int) int {
	line, _ := m.doc.LineAt(offset)
	if line < 1 || line > len(m.doc.Lines) {
		return offset
	}
	return m.doc.Lines[line-1].StartOffset
}

// growToChildren widens a container span to cover all mapped children.
func (m *mapper) growToChildren(node *mdast.Node) {
	for child := node.FirstChild; child != nil; child = child.Next {
		if child.Span.IsEmpty() && child.Span.StartOffset == 0 {
			continue
		}
		if node.Span.IsEmpty() && node.Span.StartOffset == 0 {
			node.Span = child.Span
			continue
		}
		if child.Span.StartOffset < node.Span.StartOffset {
			node.Span.StartOffset = child.Span.StartOffset
		}
		if child.Span.EndOffset > node.Span.EndOffset {
			node.Span.EndOffset = child.Span.EndOffset
		}
	}
}

func (m *mapper) mapHeading(h *ast.Heading) *mdast.Node {
	node := m.newBlockNode(mdast.NodeHeading, h)
	node.Heading = &mdast.HeadingAttrs{Level: h.Level, Style: mdast.HeadingATX}
	m.mapChildren(h, node)

	// Distinguish ATX from setext by looking at the first line's marker.
	lineText := bytes.TrimLeft(m.lineBytesAt(node.Span.StartOffset), " ")
	if len(lineText) == 0 || lineText[0] != '#' {
		node.Heading.Style = mdast.HeadingSetext
		// Extend the span over the underline.
		line, _ := m.doc.LineAt(node.Span.StartOffset)
		if line > 0 && line < len(m.doc.Lines) {
			node.Span.EndOffset = m.doc.Lines[line].NewlineStart
		}
	}

	return node
}

func (m *mapper) lineBytesAt(offset int) []byte {
	line, _ := m.doc.LineAt(offset)
	return m.doc.Line(line)
}

func (m *mapper) mapList(list *ast.List) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeList}
	node.List = &mdast.ListAttrs{
		Ordered: list.IsOrdered(),
		Start:   list.Start,
		Marker:  list.Marker,
		Tight:   list.IsTight,
	}
	m.mapChildren(list, node)
	m.growToChildren(node)
	return node
}

func (m *mapper) mapListItem(item *ast.ListItem) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeListItem}
	m.mapChildren(item, node)
	m.growToChildren(node)

	// The marker precedes the first content; widen to the line start and
	// record marker geometry from the source line.
	lineStart := m.lineStartAt(node.Span.StartOffset)
	node.Span.StartOffset = lineStart

	attrs := &mdast.ListItemAttrs{}
	line := m.doc.Content[lineStart:]
	if nl := bytes.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	attrs.MarkerOffset = lineStart + indent
	attrs.Indent = indent
	attrs.TaskMarker = taskMarker(line[indent:])
	node.Item = attrs

	return node
}

// taskMarker extracts the character inside "[x]" after a list marker,
// or 0 when the item is not a task. The obsidian flavor allows any
// single-character status marker.
func taskMarker(rest []byte) byte {
	// Skip the bullet or ordered marker.
	i := 0
	switch {
	case len(rest) > 0 && (rest[0] == '-' || rest[0] == '*' || rest[0] == '+'):
		i = 1
	default:
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 || i >= len(rest) || (rest[i] != '.' && rest[i] != ')') {
			return 0
		}
		i++
	}

	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	if i+2 < len(rest) && rest[i] == '[' && rest[i+2] == ']' {
		return rest[i+1]
	}
	return 0
}

func (m *mapper) mapFencedCodeBlock(cb *ast.FencedCodeBlock) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeCodeBlock}
	attrs := &mdast.CodeAttrs{Fenced: true, FenceChar: '`'}

	// Locate the opening fence line.
	openOffset := -1
	switch {
	case cb.Info != nil:
		openOffset = m.base + cb.Info.Segment.Start
		attrs.Info = string(bytes.TrimSpace(cb.Info.Segment.Value(m.doc.Content[m.base:])))
	case cb.Lines().Len() > 0:
		firstLine, _ := m.doc.LineAt(m.base + cb.Lines().At(0).Start)
		if firstLine > 1 {
			openOffset = m.doc.Lines[firstLine-2].StartOffset
		}
	}
	if openOffset < 0 {
		m.mapChildren(cb, node)
		node.Code = attrs
		return node
	}

	openLine, _ := m.doc.LineAt(openOffset)
	attrs.OpenLine = openLine
	fence := bytes.TrimLeft(m.doc.Line(openLine), " ")
	if len(fence) > 0 && (fence[0] == '`' || fence[0] == '~') {
		attrs.FenceChar = fence[0]
	}

	// The closing fence, if any, is the line after the last content line
	// (or the very next line for an empty block).
	lastContent := openLine
	if cb.Lines().Len() > 0 {
		lastContent, _ = m.doc.LineAt(m.base + cb.Lines().At(cb.Lines().Len()-1).Start)
	}
	closeLine := lastContent + 1
	if closeLine <= len(m.doc.Lines) {
		trimmed := bytes.TrimLeft(m.doc.Line(closeLine), " ")
		if len(trimmed) > 0 && trimmed[0] == attrs.FenceChar {
			attrs.CloseLine = closeLine
		}
	}

	start := m.doc.Lines[openLine-1].StartOffset
	end := m.doc.Lines[lastContent-1].EndOffset
	if attrs.CloseLine > 0 {
		end = m.doc.Lines[attrs.CloseLine-1].NewlineStart
	}
	node.Span = mdast.SourceRange{StartOffset: start, EndOffset: end}
	node.Code = attrs

	return node
}

func (m *mapper) mapThematicBreak() *mdast.Node {
	return &mdast.Node{Kind: mdast.NodeThematicBreak}
}

func (m *mapper) mapEmphasis(em *ast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if em.Level >= 2 {
		kind = mdast.NodeStrong
	}
	node := &mdast.Node{Kind: kind}
	m.mapChildren(em, node)
	m.growToChildren(node)

	attrs := &mdast.EmphasisAttrs{Marker: '*', Level: em.Level}

	// Widen over the marker runs and record the marker character.
	start := node.Span.StartOffset - em.Level
	end := node.Span.EndOffset + em.Level
	if start >= 0 && end <= len(m.doc.Content) {
		if m.doc.Content[start] == '*' || m.doc.Content[start] == '_' {
			attrs.Marker = m.doc.Content[start]
			node.Span = mdast.SourceRange{StartOffset: start, EndOffset: end}
		}
	}
	node.Emph = attrs

	return node
}

func (m *mapper) mapCodeSpan(cs *ast.CodeSpan) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeCodeSpan}
	m.mapChildren(cs, node)
	m.growToChildren(node)

	// Widen over the backtick runs.
	start := node.Span.StartOffset
	end := node.Span.EndOffset
	for start > 0 && m.doc.Content[start-1] == '`' {
		start--
	}
	for end < len(m.doc.Content) && m.doc.Content[end] == '`' {
		end++
	}
	node.Span = mdast.SourceRange{StartOffset: start, EndOffset: end}

	return node
}

func (m *mapper) mapLink(link *ast.Link, kind mdast.NodeKind) *mdast.Node {
	node := &mdast.Node{Kind: kind}
	node.Link = &mdast.LinkAttrs{
		Destination: string(link.Destination),
		Title:       string(link.Title),
	}
	m.mapChildren(link, node)
	m.growToChildren(node)
	return node
}

func (m *mapper) mapImage(img *ast.Image) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeImage}
	node.Link = &mdast.LinkAttrs{
		Destination: string(img.Destination),
		Title:       string(img.Title),
	}
	m.mapChildren(img, node)
	m.growToChildren(node)
	return node
}

func (m *mapper) mapAutoLink(al *ast.AutoLink) *mdast.Node {
	node := &mdast.Node{Kind: mdast.NodeAutoLink}
	node.Link = &mdast.LinkAttrs{
		Destination: string(al.URL(m.doc.Content[m.base:])),
	}
	return node
}
