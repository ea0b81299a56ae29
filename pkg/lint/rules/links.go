package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notelint/notelint/pkg/lint"
)

var (
	reversedLinkRe = regexp.MustCompile(`\(([^()\n]+)\)\[([^\]\[\n]+)\]`)
	bareURLRe      = regexp.MustCompile(`(^|[\s(])((?:https?|ftp)://[^\s<>\[\]()]+[^\s<>\[\]().,;:!?'"])`)
)

// ReversedLinkRule flags (text)[url] where [text](url) was meant.
type ReversedLinkRule struct {
	lint.BaseRule
}

// NewReversedLinkRule creates a new reversed link rule.
func NewReversedLinkRule() *ReversedLinkRule {
	return &ReversedLinkRule{
		BaseRule: lint.NewBaseRule(
			"MD011",
			"no-reversed-links",
			"Reversed link syntax",
			[]string{"links"},
			true,
		),
	}
}

// Check scans text lines for the reversed pattern. Footnote markers
// like (text)[^1] are legitimate syntax and are skipped, as is
// anything inside code.
func (r *ReversedLinkRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
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

		for _, m := range reversedLinkRe.FindAllSubmatchIndex(masked, -1) {
			text := string(masked[m[2]:m[3]])
			dest := string(masked[m[4]:m[5]])
			if strings.HasPrefix(dest, "^") {
				continue
			}

			start := span.StartOffset + m[0]
			f := lint.NewFindingAt(r.Name(), line, m[0]+1,
				"Reversed link syntax").
				WithFix(start, span.StartOffset+m[1],
					fmt.Sprintf("[%s](%s)", text, dest))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// BareURLRule flags URLs pasted without angle brackets or link syntax.
type BareURLRule struct {
	lint.BaseRule
}

// NewBareURLRule creates a new bare URL rule.
func NewBareURLRule() *BareURLRule {
	return &BareURLRule{
		BaseRule: lint.NewBaseRule(
			"MD034",
			"no-bare-urls",
			"Bare URL used",
			[]string{"links", "url"},
			true,
		),
	}
}

// Check wraps each bare URL in angle brackets. Inline code is masked
// before matching so URLs in backticks stay untouched, and URLs
// already inside wikilinks are left to the wikilink rules.
func (r *BareURLRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
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

		for _, m := range bareURLRe.FindAllSubmatchIndex(masked, -1) {
			urlStart, urlEnd := m[4], m[5]
			if enclosedURL(masked, urlStart, urlEnd) {
				continue
			}

			start := span.StartOffset + urlStart
			end := span.StartOffset + urlEnd
			url := string(ctx.Doc.Content[start:end])
			f := lint.NewFindingAt(r.Name(), line, urlStart+1,
				"Bare URL used").
				WithFix(start, end, "<"+url+">")
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// enclosedURL reports whether the URL at [start,end) already sits in
// angle brackets or markdown link destination syntax.
func enclosedURL(line []byte, start, end int) bool {
	if start > 0 {
		switch line[start-1] {
		case '<', '(', '"', '\'':
			return true
		}
	}
	if start > 1 && line[start-1] == '[' {
		return true
	}
	if end < len(line) {
		switch line[end] {
		case '>', ')':
			return true
		}
	}
	return false
}

// maskInlineSpans blanks backtick code spans in a single line so the
// link regexes cannot match inside them. Backtick runs must balance;
// an unclosed run masks nothing.
func maskInlineSpans(line []byte) []byte {
	masked := make([]byte, len(line))
	copy(masked, line)

	i := 0
	for i < len(masked) {
		if masked[i] != '`' {
			i++
			continue
		}
		runStart := i
		for i < len(masked) && masked[i] == '`' {
			i++
		}
		runLen := i - runStart

		j := i
		for j < len(masked) {
			if masked[j] != '`' {
				j++
				continue
			}
			closeStart := j
			for j < len(masked) && masked[j] == '`' {
				j++
			}
			if j-closeStart == runLen {
				for k := runStart; k < j; k++ {
					masked[k] = ' '
				}
				i = j
				break
			}
		}
		if i < j {
			i = j
		}
	}
	return masked
}
