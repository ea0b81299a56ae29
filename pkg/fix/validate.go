package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an out-of-bounds or inverted range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ValidateEdits checks that every edit has a well-formed range for the
// given content length. Returns the first validation error encountered.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// FilterInvalid splits edits into well-formed and rejected sets.
// Rejected edits are dropped rather than failing the whole pass.
func FilterInvalid(edits []TextEdit, contentLen int) (valid, rejected []TextEdit) {
	for _, edit := range edits {
		if edit.StartOffset < 0 || edit.EndOffset < edit.StartOffset || edit.EndOffset > contentLen {
			rejected = append(rejected, edit)
			continue
		}
		valid = append(valid, edit)
	}
	return valid, rejected
}

// SortEdits sorts edits by start offset, then end offset, then rule order.
// This is the application order.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		if edits[i].EndOffset != edits[j].EndOffset {
			return edits[i].EndOffset < edits[j].EndOffset
		}
		return edits[i].RuleOrder < edits[j].RuleOrder
	})
}

// ResolveConflicts selects a non-overlapping subset of edits.
//
// Edits are considered in rule registration order (then by position), and
// an edit is accepted only if it overlaps no previously accepted edit, so
// when two rules collide the earlier-registered rule wins. Skipped edits
// are returned for reporting; the caller may retry them on a later pass
// against the rewritten text.
//
// The accepted set is returned sorted in application order.
func ResolveConflicts(edits []TextEdit) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	candidates := make([]TextEdit, len(edits))
	copy(candidates, edits)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].RuleOrder != candidates[j].RuleOrder {
			return candidates[i].RuleOrder < candidates[j].RuleOrder
		}
		if candidates[i].StartOffset != candidates[j].StartOffset {
			return candidates[i].StartOffset < candidates[j].StartOffset
		}
		return candidates[i].EndOffset < candidates[j].EndOffset
	})

	accepted = make([]TextEdit, 0, len(candidates))
	for _, edit := range candidates {
		conflict := false
		for _, a := range accepted {
			if edit.Overlaps(a) {
				conflict = true
				break
			}
		}
		if conflict {
			skipped = append(skipped, edit)
			continue
		}
		accepted = append(accepted, edit)
	}

	SortEdits(accepted)
	return accepted, skipped
}

// PrepareEdits validates, resolves conflicts, and orders edits for
// application. Invalid edits are rejected (never applied); overlapping
// edits lose to the earliest-registered rule.
// Returns (accepted, skipped) where skipped includes both conflict losers
// and rejected invalid edits.
func PrepareEdits(edits []TextEdit, contentLen int) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	valid, rejected := FilterInvalid(edits, contentLen)
	accepted, skipped = ResolveConflicts(valid)
	skipped = append(skipped, rejected...)
	return accepted, skipped
}
