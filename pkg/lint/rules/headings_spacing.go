package rules

import (
	"regexp"

	"github.com/notelint/notelint/pkg/lint"
)

var (
	missingSpaceATXRe  = regexp.MustCompile(`^(#{1,6})([^#\s])`)
	multipleSpaceATXRe = regexp.MustCompile(`^(#{1,6})([ \t]{2,})\S`)
	indentedHeadingRe  = regexp.MustCompile(`^([ \t]+)#{1,6}[ \t]`)
)

// MissingSpaceATXRule checks for a missing space after ATX heading markers.
type MissingSpaceATXRule struct {
	lint.BaseRule
}

// NewMissingSpaceATXRule creates a new missing space rule.
func NewMissingSpaceATXRule() *MissingSpaceATXRule {
	return &MissingSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD018",
			"no-missing-space-atx",
			"No space after hash on ATX style heading",
			[]string{"headings", "atx"},
			true,
		),
	}
}

// Check scans lines for "#Heading" forms. CommonMark does not parse these
// as headings at all, so this is a line scan rather than an AST query.
// In the obsidian flavor a single hash followed by a tag name is a tag,
// not a botched heading, and is skipped.
func (r *MissingSpaceATXRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	scanner := newLineScanner(ctx, true)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}

		text := ctx.Doc.Line(line)
		m := missingSpaceATXRe.FindSubmatch(text)
		if m == nil {
			continue
		}

		span, _ := ctx.Doc.LineSpan(line)
		hashes := len(m[1])

		if hashes == 1 && ctx.Extended() {
			if _, ok := ctx.Doc.Dialect.TagAt(span.StartOffset); ok {
				continue
			}
		}

		f := lint.NewFindingAt(r.Name(), line, 1, "No space after hash on ATX style heading").
			WithFix(span.StartOffset+hashes, span.StartOffset+hashes, " ")
		findings = append(findings, f)
	}

	return findings, nil
}

// MultipleSpaceATXRule checks for extra spaces after ATX heading markers.
type MultipleSpaceATXRule struct {
	lint.BaseRule
}

// NewMultipleSpaceATXRule creates a new multiple space rule.
func NewMultipleSpaceATXRule() *MultipleSpaceATXRule {
	return &MultipleSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD019",
			"no-multiple-space-atx",
			"Multiple spaces after hash on ATX style heading",
			[]string{"headings", "atx"},
			true,
		),
	}
}

// Check flags headings written "#  Heading"; the fix collapses the run
// of whitespace after the hashes to a single space.
func (r *MultipleSpaceATXRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	scanner := newLineScanner(ctx, true)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}

		text := ctx.Doc.Line(line)
		m := multipleSpaceATXRe.FindSubmatchIndex(text)
		if m == nil {
			continue
		}

		span, _ := ctx.Doc.LineSpan(line)
		f := lint.NewFindingAt(r.Name(), line, m[4]+1,
			"Multiple spaces after hash on ATX style heading").
			WithFix(span.StartOffset+m[4], span.StartOffset+m[5], " ")
		findings = append(findings, f)
	}

	return findings, nil
}

// BlanksAroundHeadingsRule checks that headings are surrounded by blanks.
type BlanksAroundHeadingsRule struct {
	lint.BaseRule
}

// NewBlanksAroundHeadingsRule creates a new blanks around headings rule.
func NewBlanksAroundHeadingsRule() *BlanksAroundHeadingsRule {
	return &BlanksAroundHeadingsRule{
		BaseRule: lint.NewBaseRule(
			"MD022",
			"blanks-around-headings",
			"Headings should be surrounded by blank lines",
			[]string{"headings", "blank_lines"},
			true,
		),
	}
}

// Check requires a blank line above and below every heading, except at
// the document boundaries (and directly after front matter). Each missing
// blank is its own finding with an insertion fix.
func (r *BlanksAroundHeadingsRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, heading := range lint.Headings(ctx.Root) {
		if hasBlockquoteAncestor(heading) {
			continue
		}
		startLine := nodeStartLine(heading)
		endLine := nodeEndLine(heading)
		if startLine == 0 {
			continue
		}

		aboveBoundary := startLine == 1 || ctx.Doc.InFrontMatter(startLine-1)
		if !aboveBoundary && !ctx.Doc.IsBlankLine(startLine-1) {
			span, _ := ctx.Doc.LineSpan(startLine)
			f := lint.NewFindingAt(r.Name(), startLine, 1,
				"Heading should be preceded by a blank line").
				WithFix(span.StartOffset, span.StartOffset, "\n")
			findings = append(findings, f)
		}

		if endLine < ctx.Doc.LineCount() && !ctx.Doc.IsBlankLine(endLine+1) {
			insertAt := ctx.Doc.Lines[endLine-1].EndOffset
			f := lint.NewFindingAt(r.Name(), startLine, 1,
				"Heading should be followed by a blank line").
				WithFix(insertAt, insertAt, "\n")
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// HeadingStartLeftRule checks that headings start at the line beginning.
type HeadingStartLeftRule struct {
	lint.BaseRule
}

// NewHeadingStartLeftRule creates a new heading indent rule.
func NewHeadingStartLeftRule() *HeadingStartLeftRule {
	return &HeadingStartLeftRule{
		BaseRule: lint.NewBaseRule(
			"MD023",
			"heading-start-left",
			"Headings must start at the beginning of the line",
			[]string{"headings", "indentation"},
			true,
		),
	}
}

// Check flags indented ATX headings; the fix deletes the leading
// whitespace.
func (r *HeadingStartLeftRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	scanner := newLineScanner(ctx, true)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}

		text := ctx.Doc.Line(line)
		m := indentedHeadingRe.FindSubmatchIndex(text)
		if m == nil {
			continue
		}

		span, _ := ctx.Doc.LineSpan(line)
		f := lint.NewFindingAt(r.Name(), line, 1,
			"Headings must start at the beginning of the line").
			WithFix(span.StartOffset, span.StartOffset+m[3], "")
		findings = append(findings, f)
	}

	return findings, nil
}
