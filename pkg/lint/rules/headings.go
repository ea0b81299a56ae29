package rules

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
)

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"heading-increment",
			"Heading levels should only increment by one level at a time",
			[]string{"headings"},
			false,
		),
	}
}

// Check reports headings that jump more than one level.
func (r *HeadingIncrementRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	prevLevel := 0

	for _, heading := range lint.Headings(ctx.Root) {
		level := lint.HeadingLevel(heading)
		if level == 0 {
			continue
		}
		if prevLevel > 0 && level > prevLevel+1 {
			findings = append(findings, lint.NewFinding(r.Name(), heading,
				fmt.Sprintf("Heading level jumped from H%d to H%d", prevLevel, level)))
		}
		prevLevel = level
	}

	return findings, nil
}

// HeadingStyleRule checks that all headings use one style.
type HeadingStyleRule struct {
	lint.BaseRule
}

// NewHeadingStyleRule creates a new heading style rule.
func NewHeadingStyleRule() *HeadingStyleRule {
	return &HeadingStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD003",
			"heading-style",
			"Headings should use a single style (atx or setext)",
			[]string{"headings", "style"},
			false,
		),
	}
}

// Check compares each heading's style against the configured or inferred one.
// The "style" option accepts "consistent" (default), "atx", or "setext".
func (r *HeadingStyleRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	styleOpt := ctx.OptionString("style", config.StyleConsistent)

	var expected mdast.HeadingStyle
	haveExpected := false
	switch styleOpt {
	case "atx":
		expected, haveExpected = mdast.HeadingATX, true
	case "setext":
		expected, haveExpected = mdast.HeadingSetext, true
	}

	var findings []lint.Finding
	for _, heading := range lint.Headings(ctx.Root) {
		if heading.Heading == nil {
			continue
		}
		if !haveExpected {
			expected = heading.Heading.Style
			haveExpected = true
			continue
		}
		// Setext only has two levels; deeper headings are necessarily ATX.
		if expected == mdast.HeadingSetext && heading.Heading.Level > 2 {
			continue
		}
		if heading.Heading.Style != expected {
			findings = append(findings, lint.NewFinding(r.Name(), heading,
				fmt.Sprintf("Expected %s heading style", styleName(expected))))
		}
	}

	return findings, nil
}

func styleName(s mdast.HeadingStyle) string {
	if s == mdast.HeadingSetext {
		return "setext"
	}
	return "atx"
}

// SingleH1Rule checks that there is at most one top-level heading.
type SingleH1Rule struct {
	lint.BaseRule
}

// NewSingleH1Rule creates a new single H1 rule.
func NewSingleH1Rule() *SingleH1Rule {
	return &SingleH1Rule{
		BaseRule: lint.NewBaseRule(
			"MD025",
			"single-h1",
			"Multiple top-level headings in the same document",
			[]string{"headings"},
			false,
		),
	}
}

// Check reports every H1 beyond the first. A front matter "title" field
// counts as the document's H1 when the "front-matter-title" option is
// true (the default), so any body H1 is then a duplicate.
func (r *SingleH1Rule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	useTitle := ctx.OptionBool("front-matter-title", true)

	seen := 0
	if useTitle {
		if _, ok := ctx.Doc.FrontMatter.Title(); ok {
			seen = 1
		}
	}

	var findings []lint.Finding
	for _, heading := range lint.Headings(ctx.Root) {
		if lint.HeadingLevel(heading) != 1 {
			continue
		}
		seen++
		if seen > 1 {
			findings = append(findings, lint.NewFinding(r.Name(), heading,
				"Multiple top-level headings in the same document"))
		}
	}

	return findings, nil
}

// TrailingPunctuationRule checks for punctuation at the end of headings.
type TrailingPunctuationRule struct {
	lint.BaseRule
}

// NewTrailingPunctuationRule creates a new trailing punctuation rule.
func NewTrailingPunctuationRule() *TrailingPunctuationRule {
	return &TrailingPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"MD026",
			"no-trailing-punctuation",
			"Headings should not end with punctuation",
			[]string{"headings"},
			true,
		),
	}
}

// Check flags headings whose text ends with a punctuation character from
// the "punctuation" option (default ".,;:!"). The fix deletes the run of
// trailing punctuation.
func (r *TrailingPunctuationRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	punctuation := ctx.OptionString("punctuation", ".,;:!")
	if punctuation == "" {
		return nil, nil
	}

	var findings []lint.Finding
	for _, heading := range lint.Headings(ctx.Root) {
		line := nodeStartLine(heading)
		if line == 0 {
			continue
		}

		text := ctx.Doc.Line(line)
		span, _ := ctx.Doc.LineSpan(line)

		// Ignore trailing whitespace and closing ATX hashes.
		end := len(text) - trailingWhitespace(text)
		for end > 0 && text[end-1] == '#' {
			end--
		}
		for end > 0 && (text[end-1] == ' ' || text[end-1] == '\t') {
			end--
		}

		runStart := end
		for runStart > 0 && strings.IndexByte(punctuation, text[runStart-1]) >= 0 {
			runStart--
		}
		if runStart == end {
			continue
		}

		f := lint.NewFindingAt(r.Name(), line, runStart+1,
			fmt.Sprintf("Heading ends with punctuation %q", string(text[runStart:end]))).
			WithFix(span.StartOffset+runStart, span.StartOffset+end, "")
		findings = append(findings, f)
	}

	return findings, nil
}
