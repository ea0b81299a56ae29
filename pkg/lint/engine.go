package lint

import (
	"fmt"
	"sort"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/fix"
	"github.com/notelint/notelint/pkg/mdast"
)

// Parser parses raw Markdown into documents. Implemented by the
// goldmark-backed parser; defined here so the engine owns the contract.
type Parser interface {
	Parse(path string, content []byte) *mdast.Document
}

// Result contains the outcome of checking a single text.
type Result struct {
	// Doc is the parsed document the findings refer to.
	Doc *mdast.Document

	// Findings contains all issues, sorted by (line, column, rule name).
	Findings []Finding

	// RuleErrors maps rule names to internal failures contained during
	// the run. A failing rule contributes no findings but never aborts
	// the check.
	RuleErrors map[string]error
}

// HasIssues returns true if any findings were produced.
func (r *Result) HasIssues() bool {
	return len(r.Findings) > 0
}

// FixableCount returns the number of findings carrying an edit.
func (r *Result) FixableCount() int {
	count := 0
	for i := range r.Findings {
		if r.Findings[i].HasFix() {
			count++
		}
	}
	return count
}

// Edits extracts all fix edits from the findings, tagged with their
// rule's registration order for conflict resolution.
func (r *Result) Edits() []fix.TextEdit {
	var edits []fix.TextEdit
	for i := range r.Findings {
		if r.Findings[i].Fix != nil {
			edits = append(edits, *r.Findings[i].Fix)
		}
	}
	return edits
}

// Engine coordinates parsing and rule execution over one resolved plan.
// An Engine is immutable after construction; every Check call allocates
// its own working state, so concurrent Check calls are safe.
type Engine struct {
	parser Parser
	plan   []ResolvedRule
	cfg    *config.Config
}

// NewEngine creates an Engine from a parser and a resolved rule plan.
func NewEngine(parser Parser, plan []ResolvedRule, cfg *config.Config) *Engine {
	return &Engine{
		parser: parser,
		plan:   plan,
		cfg:    cfg,
	}
}

// Plan returns the resolved rule plan.
func (e *Engine) Plan() []ResolvedRule {
	return e.plan
}

// Check parses content once and runs every enabled rule over it.
//
// The combined findings are sorted by (line, column, rule name) ascending.
// This total order is a contract: consumers render findings in exactly
// this order and two identical runs yield identical sequences.
func (e *Engine) Check(path string, content []byte) *Result {
	doc := e.parser.Parse(path, content)
	return e.CheckDocument(doc)
}

// CheckDocument runs the rule plan over an already-parsed document.
func (e *Engine) CheckDocument(doc *mdast.Document) *Result {
	result := &Result{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range e.plan {
		ctx := NewRuleContext(doc, e.cfg, rr.Options)

		findings, err := runRule(rr.Rule, ctx)
		if err != nil {
			// Containment: the failing rule is skipped for this run.
			result.RuleErrors[rr.Rule.Name()] = err
			continue
		}

		for i := range findings {
			findings[i].Severity = rr.Severity
			if findings[i].Rule == "" {
				findings[i].Rule = rr.Rule.Name()
			}
			if findings[i].Fix != nil {
				findings[i].Fix.RuleOrder = rr.Order
			}
		}
		result.Findings = append(result.Findings, findings...)
	}

	SortFindings(result.Findings)
	return result
}

// runRule invokes a rule with panic containment. A panicking rule is
// reported as a rule error, identical to one returning an error.
func runRule(rule Rule, ctx *RuleContext) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.Name(), r)
		}
	}()
	return rule.Check(ctx)
}

// SortFindings orders findings by (line, column, rule name) ascending.
// Findings at the same position from different rules are all kept;
// findings are never deduplicated across rules.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		if findings[i].Column != findings[j].Column {
			return findings[i].Column < findings[j].Column
		}
		return findings[i].Rule < findings[j].Rule
	})
}
