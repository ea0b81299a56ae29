package rules

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
)

// SpaceInEmphasisRule flags emphasis markers separated from their
// content by spaces, which stops the emphasis from rendering.
type SpaceInEmphasisRule struct {
	lint.BaseRule
}

// NewSpaceInEmphasisRule creates a new space in emphasis rule.
func NewSpaceInEmphasisRule() *SpaceInEmphasisRule {
	return &SpaceInEmphasisRule{
		BaseRule: lint.NewBaseRule(
			"MD037",
			"no-space-in-emphasis",
			"Spaces inside emphasis markers",
			[]string{"whitespace", "emphasis"},
			true,
		),
	}
}

// Check pairs identical marker runs on each line and reports those
// whose content carries leading or trailing spaces, like "** bold **".
// The fix rewrites the whole span with the content trimmed.
func (r *SpaceInEmphasisRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	scanner := newLineScanner(ctx, true)

	var findings []lint.Finding
	for line := 1; line <= ctx.Doc.LineCount(); line++ {
		if scanner.skip(line) {
			continue
		}
		span, ok := ctx.Doc.LineSpan(line)
		if !ok {
			continue
		}
		masked := maskInlineSpans(ctx.Doc.Line(line))

		for _, cand := range emphasisCandidates(masked) {
			inner := string(masked[cand.contentStart:cand.contentEnd])
			trimmed := strings.TrimSpace(inner)
			if trimmed == inner || trimmed == "" {
				continue
			}

			marker := strings.Repeat(string(cand.marker), cand.width)
			start := span.StartOffset + cand.start
			end := span.StartOffset + cand.end
			f := lint.NewFindingAt(r.Name(), line, cand.start+1,
				"Spaces inside emphasis markers").
				WithFix(start, end, marker+trimmed+marker)
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// emphasisSpan is a candidate emphasis found by pairing marker runs.
type emphasisSpan struct {
	start, end               int
	contentStart, contentEnd int
	marker                   byte
	width                    int
}

// emphasisCandidates pairs consecutive marker runs of equal character
// and width on one line. Underscore runs flanked by word characters
// are skipped: snake_case is not emphasis.
func emphasisCandidates(line []byte) []emphasisSpan {
	type run struct {
		start, end int
		marker     byte
	}
	var runs []run
	for i := 0; i < len(line); {
		c := line[i]
		if c != '*' && c != '_' {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == c {
			j++
		}
		intraWord := c == '_' &&
			i > 0 && isWordByte(line[i-1]) &&
			j < len(line) && isWordByte(line[j])
		if !intraWord {
			runs = append(runs, run{start: i, end: j, marker: c})
		}
		i = j
	}

	var spans []emphasisSpan
	for i := 0; i+1 < len(runs); i++ {
		open, close := runs[i], runs[i+1]
		if open.marker != close.marker || open.end-open.start != close.end-close.start {
			continue
		}
		width := open.end - open.start
		if width > 2 || close.start == open.end {
			continue
		}
		spans = append(spans, emphasisSpan{
			start:        open.start,
			end:          close.end,
			contentStart: open.end,
			contentEnd:   close.start,
			marker:       open.marker,
			width:        width,
		})
		i++ // runs are consumed in pairs
	}
	return spans
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// EmphasisStyleRule checks that emphasis uses one marker character.
type EmphasisStyleRule struct {
	lint.BaseRule
}

// NewEmphasisStyleRule creates a new emphasis style rule.
func NewEmphasisStyleRule() *EmphasisStyleRule {
	return &EmphasisStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD049",
			"emphasis-style",
			"Emphasis style should be consistent",
			[]string{"emphasis"},
			true,
		),
	}
}

// Check walks parsed emphasis nodes, so it only sees spans that
// actually render. The "style" option accepts "consistent" (default),
// "asterisk", or "underscore". The fix replaces the whole emphasis
// span in a single edit to keep both markers in step.
func (r *EmphasisStyleRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var expected byte
	switch ctx.OptionString("style", config.StyleConsistent) {
	case "asterisk":
		expected = '*'
	case "underscore":
		expected = '_'
	}

	var findings []lint.Finding
	for _, node := range mdast.FindByKind(ctx.Root, mdast.NodeEmphasis) {
		if node.Emph == nil || node.Emph.Level != 1 {
			continue
		}
		marker := node.Emph.Marker
		if expected == 0 {
			expected = marker
			continue
		}
		if marker == expected {
			continue
		}

		span := node.Span
		if span.Len() < 2 || span.EndOffset > len(ctx.Doc.Content) {
			continue
		}
		inner := string(ctx.Doc.Content[span.StartOffset+1 : span.EndOffset-1])
		line, col := ctx.Doc.LineAt(span.StartOffset)
		f := lint.NewFindingAt(r.Name(), line, col,
			fmt.Sprintf("Emphasis style: expected %s, found %s",
				emphasisStyleName(expected), emphasisStyleName(marker))).
			WithFix(span.StartOffset, span.EndOffset,
				string(expected)+inner+string(expected))
		findings = append(findings, f)
	}

	return findings, nil
}

func emphasisStyleName(marker byte) string {
	if marker == '_' {
		return "underscore"
	}
	return "asterisk"
}
