package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock
	NodeTable

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeAutoLink
	NodeHTMLInline

	// Fallback for unrecognized content.
	NodeRaw
)

// HeadingStyle identifies how a heading is written in the source.
type HeadingStyle uint8

const (
	HeadingATX HeadingStyle = iota
	HeadingSetext
)

// Node is a single node in the Markdown AST. Nodes form a tree with
// parent/child/sibling pointers and carry a byte span into the source.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the byte range this node covers in Document.Content.
	Span SourceRange

	// Doc is a back-reference to the containing Document.
	Doc *Document

	// Heading holds attributes for NodeHeading nodes.
	Heading *HeadingAttrs

	// List holds attributes for NodeList nodes.
	List *ListAttrs

	// Item holds attributes for NodeListItem nodes.
	Item *ListItemAttrs

	// Code holds attributes for NodeCodeBlock nodes.
	Code *CodeAttrs

	// Link holds attributes for NodeLink, NodeImage and NodeAutoLink nodes.
	Link *LinkAttrs

	// Emph holds attributes for NodeEmphasis and NodeStrong nodes.
	Emph *EmphasisAttrs
}

// HeadingAttrs describes a heading node.
type HeadingAttrs struct {
	// Level is 1-6.
	Level int

	// Style distinguishes ATX (#) from setext (underline) headings.
	Style HeadingStyle
}

// ListAttrs describes a list node.
type ListAttrs struct {
	// Ordered is true for numbered lists.
	Ordered bool

	// Start is the first number of an ordered list.
	Start int

	// Marker is the list marker byte: '-', '*', '+' for unordered,
	// '.' or ')' (the delimiter) for ordered.
	Marker byte

	// Tight is true when items are not separated by blank lines.
	Tight bool
}

// ListItemAttrs describes a list item node.
type ListItemAttrs struct {
	// MarkerOffset is the byte offset of the item marker.
	MarkerOffset int

	// Indent is the column of the marker relative to line start, in bytes.
	Indent int

	// TaskMarker is the character inside "[x]" for task items, 0 otherwise.
	// The obsidian flavor allows markers beyond ' ' and 'x' (e.g. '/', '-').
	TaskMarker byte
}

// CodeAttrs describes a code block node.
type CodeAttrs struct {
	// Fenced is true for fenced blocks, false for indented ones.
	Fenced bool

	// FenceChar is '`' or '~' for fenced blocks.
	FenceChar byte

	// Info is the info string after the opening fence (e.g. "go").
	Info string

	// OpenLine and CloseLine are the 1-based fence lines.
	// CloseLine is 0 when the fence is unterminated.
	OpenLine  int
	CloseLine int
}

// LinkAttrs describes a link, image, or autolink node.
type LinkAttrs struct {
	// Destination is the link target.
	Destination string

	// Title is the optional link title.
	Title string
}

// EmphasisAttrs describes an emphasis or strong node.
type EmphasisAttrs struct {
	// Marker is '*' or '_'.
	Marker byte

	// Level is 1 for emphasis, 2 for strong.
	Level int
}

// AppendChild adds child as the last child of n, maintaining sibling links.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.Next = child
		child.Prev = n.LastChild
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock, NodeTable:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Text returns the source bytes this node spans.
// Returns nil if the node has no associated document.
func (n *Node) Text() []byte {
	if n.Doc == nil {
		return nil
	}
	r := n.Span
	if r.StartOffset < 0 || r.EndOffset > len(n.Doc.Content) || r.StartOffset > r.EndOffset {
		return nil
	}
	return n.Doc.Content[r.StartOffset:r.EndOffset]
}

// SetDoc sets the Doc back-reference on n and all its descendants.
func SetDoc(n *Node, doc *Document) {
	if n == nil {
		return
	}
	n.Doc = doc
	for child := n.FirstChild; child != nil; child = child.Next {
		SetDoc(child, doc)
	}
}
