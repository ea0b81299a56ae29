package fix

import "bytes"

// ApplyEdits applies a sorted, non-overlapping slice of edits to content.
// Edits must come from PrepareEdits. All ranges address the original
// content: the rewrite is a single concatenation of unmodified gaps and
// replacement texts, so no offset drift is possible.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
