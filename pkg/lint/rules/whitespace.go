package rules

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/lint"
)

// TrailingSpacesRule checks for trailing whitespace on lines.
type TrailingSpacesRule struct {
	lint.BaseRule
}

// NewTrailingSpacesRule creates a new trailing spaces rule.
func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"no-trailing-spaces",
			"Lines should not have trailing spaces",
			[]string{"whitespace"},
			true,
		),
	}
}

// Check flags trailing whitespace. Exactly "br-spaces" trailing spaces
// (default 2) form a hard line break and are allowed; anything else is
// deleted by the fix.
func (r *TrailingSpacesRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	brSpaces := ctx.OptionInt("br-spaces", 2)
	scanner := newLineScanner(ctx, false)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}

		text := ctx.Doc.Line(line)
		n := trailingWhitespace(text)
		if n == 0 || n == len(text) {
			continue
		}

		// A hard break is exactly brSpaces spaces, no tabs.
		tail := text[len(text)-n:]
		if brSpaces >= 2 && len(tail) == brSpaces && strings.Count(string(tail), " ") == brSpaces {
			continue
		}

		span, _ := ctx.Doc.LineSpan(line)
		col := len(text) - n + 1
		f := lint.NewFindingAt(r.Name(), line, col, "Trailing whitespace").
			WithFix(span.StartOffset+len(text)-n, span.EndOffset, "")
		findings = append(findings, f)
	}

	return findings, nil
}

// HardTabsRule checks for tab characters.
type HardTabsRule struct {
	lint.BaseRule
}

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"MD010",
			"no-hard-tabs",
			"Hard tabs should not be used",
			[]string{"whitespace", "hard_tab"},
			true,
		),
	}
}

// Check flags each run of tabs outside code blocks; the fix replaces the
// run with "spaces-per-tab" spaces per tab (default 1).
func (r *HardTabsRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	spacesPerTab := ctx.OptionInt("spaces-per-tab", 1)
	scanner := newLineScanner(ctx, !ctx.OptionBool("code-blocks", false))

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}

		text := ctx.Doc.Line(line)
		span, _ := ctx.Doc.LineSpan(line)

		for i := 0; i < len(text); {
			if text[i] != '\t' {
				i++
				continue
			}
			runStart := i
			for i < len(text) && text[i] == '\t' {
				i++
			}

			f := lint.NewFindingAt(r.Name(), line, runStart+1, "Hard tab").
				WithFix(span.StartOffset+runStart, span.StartOffset+i,
					strings.Repeat(" ", spacesPerTab*(i-runStart)))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// MultipleBlanksRule checks for runs of consecutive blank lines.
type MultipleBlanksRule struct {
	lint.BaseRule
}

// NewMultipleBlanksRule creates a new multiple blanks rule.
func NewMultipleBlanksRule() *MultipleBlanksRule {
	return &MultipleBlanksRule{
		BaseRule: lint.NewBaseRule(
			"MD012",
			"no-multiple-blanks",
			"Multiple consecutive blank lines",
			[]string{"whitespace", "blank_lines"},
			true,
		),
	}
}

// Check reports one finding per run of blank lines longer than "maximum"
// (default 1), anchored at the first excess line. The fix deletes the
// excess lines in one edit.
func (r *MultipleBlanksRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	maximum := ctx.OptionInt("maximum", 1)
	scanner := newLineScanner(ctx, true)

	var findings []lint.Finding
	runStart := 0

	flush := func(runEnd int) {
		runLen := runEnd - runStart
		if runStart == 0 || runLen <= maximum {
			return
		}
		excessLine := runStart + maximum
		f := lint.NewFindingAt(r.Name(), excessLine, 1,
			fmt.Sprintf("Multiple consecutive blank lines (%d > %d)", runLen, maximum)).
			WithFix(ctx.Doc.Lines[excessLine-1].StartOffset, ctx.Doc.Lines[runEnd-2].EndOffset, "")
		findings = append(findings, f)
	}

	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if !scanner.skip(line) && ctx.Doc.IsBlankLine(line) {
			if runStart == 0 {
				runStart = line
			}
			continue
		}
		flush(line)
		runStart = 0
	}
	flush(ctx.Doc.LineCount() + 1)

	return findings, nil
}

// TrailingNewlineRule checks that files end with a single newline.
type TrailingNewlineRule struct {
	lint.BaseRule
}

// NewTrailingNewlineRule creates a new trailing newline rule.
func NewTrailingNewlineRule() *TrailingNewlineRule {
	return &TrailingNewlineRule{
		BaseRule: lint.NewBaseRule(
			"MD047",
			"single-trailing-newline",
			"Files should end with a single newline character",
			[]string{"blank_lines"},
			true,
		),
	}
}

// Check flags a missing final newline; the fix appends one.
func (r *TrailingNewlineRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	content := ctx.Doc.Content
	if len(content) == 0 || content[len(content)-1] == '\n' {
		return nil, nil
	}

	lastLine := ctx.Doc.LineCount()
	col := len(ctx.Doc.Line(lastLine)) + 1
	f := lint.NewFindingAt(r.Name(), lastLine, col,
		"File should end with a single newline character").
		WithFix(len(content), len(content), "\n")

	return []lint.Finding{f}, nil
}
