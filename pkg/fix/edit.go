// Package fix provides text edit types, conflict resolution, and
// application logic for auto-fixing.
package fix

// TextEdit represents a single text replacement anchored to the snapshot
// of the text it was computed from.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string

	// RuleOrder is the registration index of the rule that produced the
	// edit. When two edits overlap, the lower RuleOrder wins the pass.
	RuleOrder int
}

// Overlaps reports whether two edits intersect.
// Touching edits ([0,2) and [2,4)) do not overlap, but two insertions at
// the same offset do: applying both in one pass would be order-dependent.
func (e TextEdit) Overlaps(other TextEdit) bool {
	if e.StartOffset == e.EndOffset && other.StartOffset == other.EndOffset {
		return e.StartOffset == other.StartOffset
	}
	return e.StartOffset < other.EndOffset && other.StartOffset < e.EndOffset
}

// EditBuilder accumulates text edits for a single rule invocation.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{Edits: make([]TextEdit, 0)}
}

// ReplaceRange adds an edit replacing bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit inserting text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit removing bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}
