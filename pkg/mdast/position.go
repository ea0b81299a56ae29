package mdast

// SourceRange is a half-open byte range [StartOffset, EndOffset) into
// the document content.
type SourceRange struct {
	StartOffset int
	EndOffset   int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset lies within the range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Overlaps returns true if the two ranges intersect.
// Touching ranges ([0,2) and [2,4)) do not overlap.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.StartOffset < other.EndOffset && other.StartOffset < r.EndOffset
}

// SourcePosition is a range expressed as 1-based line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid returns true if both start and end positions are positive.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// SourcePosition returns the line/column range for this node.
// Returns the zero value if the node has no associated document.
func (n *Node) SourcePosition() SourcePosition {
	if n.Doc == nil {
		return SourcePosition{}
	}

	startLine, startCol := n.Doc.LineAt(n.Span.StartOffset)
	endLine, endCol := n.Doc.LineAt(n.Span.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// PositionAt builds a single-point SourcePosition from a byte offset.
func (d *Document) PositionAt(offset int) SourcePosition {
	line, col := d.LineAt(offset)
	return SourcePosition{
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col,
	}
}

// PositionForRange builds a SourcePosition covering a byte range.
func (d *Document) PositionForRange(r SourceRange) SourcePosition {
	startLine, startCol := d.LineAt(r.StartOffset)
	endLine, endCol := d.LineAt(r.EndOffset)
	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}
