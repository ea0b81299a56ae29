package mdast

import "sort"

// BuildLines constructs line metadata from source content.
// Both LF and CRLF line endings are handled.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, b := range content {
		if b == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Final line without a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Returns (0, 0) for out-of-range offsets.
func (d *Document) LineAt(offset int) (int, int) {
	if offset < 0 || len(d.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(d.Content) {
		last := d.Lines[len(d.Lines)-1]
		return len(d.Lines), offset - last.StartOffset + 1
	}

	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	info := d.Lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
// Column may point one past the end of the line content.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.Lines) || col < 1 {
		return 0, false
	}

	info := d.Lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// Line returns the content of a 1-based line, excluding the newline.
// Returns nil if the line number is out of range.
func (d *Document) Line(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}

	info := d.Lines[line-1]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// LineSpan returns the byte range of a 1-based line, excluding the newline.
func (d *Document) LineSpan(line int) (SourceRange, bool) {
	if line < 1 || line > len(d.Lines) {
		return SourceRange{}, false
	}

	info := d.Lines[line-1]
	return SourceRange{StartOffset: info.StartOffset, EndOffset: info.NewlineStart}, true
}

// IsBlankLine reports whether a 1-based line is empty or whitespace-only.
func (d *Document) IsBlankLine(line int) bool {
	for _, b := range d.Line(line) {
		if b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}
