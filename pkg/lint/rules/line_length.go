package rules

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/notelint/notelint/pkg/lint"
)

// LineLengthRule checks rendered line width against a configured limit.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"MD013",
			"line-length",
			"Line length should not exceed the configured limit",
			[]string{"line_length"},
			false,
		),
	}
}

// Check measures lines in display cells, so CJK and other wide runes
// count double. The limit comes from the rule's "line-length" option,
// falling back to the global setting; 0 means unlimited. Code blocks
// and tables are controlled by the "code-blocks" and "tables" options
// (both default true). Lines with no breakable space past the limit,
// such as a long bare URL, are exempt. There is no automatic fix:
// rewrapping prose is an editorial decision.
func (r *LineLengthRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	limit := ctx.LineLength()
	if limit <= 0 {
		return nil, nil
	}
	checkCode := ctx.OptionBool("code-blocks", true)
	checkTables := ctx.OptionBool("tables", true)

	codeLines := lint.CodeLineSet(ctx.Root)
	tableLines := lint.TableLineSet(ctx.Root)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if ctx.Doc.InFrontMatter(line) {
			continue
		}
		if !checkCode && codeLines[line] {
			continue
		}
		if !checkTables && tableLines[line] {
			continue
		}

		text := ctx.Doc.Line(line)
		width := runewidth.StringWidth(string(text))
		if width <= limit {
			continue
		}
		if !breakableBeyond(text, limit) {
			continue
		}

		findings = append(findings, lint.NewFindingAt(r.Name(), line, limit+1,
			fmt.Sprintf("Line length %d exceeds %d", width, limit)))
	}

	return findings, nil
}

// breakableBeyond reports whether text has a space at or past the
// limit column, meaning the line could actually be wrapped there.
func breakableBeyond(text []byte, limit int) bool {
	width := 0
	for _, r := range string(text) {
		if width >= limit && (r == ' ' || r == '\t') {
			return true
		}
		width += runewidth.RuneWidth(r)
	}
	return false
}
