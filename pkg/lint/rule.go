// Package lint provides the rule engine, findings, and registry for notelint.
package lint

import (
	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/fix"
	"github.com/notelint/notelint/pkg/mdast"
)

// Finding represents a single lint issue found in a document.
// Findings are recomputed from scratch on every check run; they are
// never persisted across runs.
type Finding struct {
	// Rule is the stable identifier of the rule that produced this
	// finding (e.g. "MD013").
	Rule string

	// Message is the human-readable description of the issue.
	Message string

	// Line is the 1-based line number where the issue starts.
	Line int

	// Column is the 1-based column number where the issue starts.
	Column int

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// Fix is the optional text edit that resolves this finding,
	// anchored to the text the finding was computed from.
	Fix *fix.TextEdit
}

// HasFix returns true if this finding carries an edit.
func (f *Finding) HasFix() bool {
	return f.Fix != nil
}

// Rule defines the interface every lint rule implements.
//
// Rules are stateless with respect to documents: each Check invocation
// receives a parsed document and resolved options through the RuleContext
// and returns zero or more findings. Rules are registered once at process
// start and never mutated afterwards.
type Rule interface {
	// Name returns the stable unique identifier (e.g. "MD013").
	Name() string

	// Alias returns the human-readable name (e.g. "line-length").
	Alias() string

	// Description returns what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule runs without explicit config.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule's findings.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags (e.g. ["headings", "style"]).
	Tags() []string

	// CanFix returns whether the rule attaches fixes to its findings.
	CanFix() bool

	// Check executes the rule against the given context.
	//
	// Rules must:
	//   - Return findings for each violation found.
	//   - Anchor every fix to the context's document content.
	//   - Return an error only for internal failures, never for violations.
	Check(ctx *RuleContext) ([]Finding, error)
}

// NewFinding builds a finding at the start of the given node.
func NewFinding(rule string, node *mdast.Node, message string) Finding {
	pos := node.SourcePosition()
	return Finding{
		Rule:    rule,
		Message: message,
		Line:    pos.StartLine,
		Column:  pos.StartColumn,
	}
}

// NewFindingAt builds a finding at an explicit 1-based position.
func NewFindingAt(rule string, line, column int, message string) Finding {
	return Finding{
		Rule:    rule,
		Message: message,
		Line:    line,
		Column:  column,
	}
}

// WithFix attaches a single edit to the finding and returns it.
func (f Finding) WithFix(start, end int, newText string) Finding {
	f.Fix = &fix.TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	}
	return f
}
