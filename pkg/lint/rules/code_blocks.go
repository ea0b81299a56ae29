package rules

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/langdetect"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
)

// BlanksAroundFencesRule checks that fenced code blocks are surrounded
// by blank lines.
type BlanksAroundFencesRule struct {
	lint.BaseRule
}

// NewBlanksAroundFencesRule creates a new blanks around fences rule.
func NewBlanksAroundFencesRule() *BlanksAroundFencesRule {
	return &BlanksAroundFencesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"blanks-around-fences",
			"Fenced code blocks should be surrounded by blank lines",
			[]string{"code", "blank_lines"},
			true,
		),
	}
}

// Check inserts a blank line before the opening fence and after the
// closing fence where one is missing. Fences at the document edges and
// fences nested in list items are left alone.
func (r *BlanksAroundFencesRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, block := range lint.CodeBlocks(ctx.Root) {
		if block.Code == nil || !block.Code.Fenced {
			continue
		}
		if block.Parent != nil && block.Parent.Kind != mdast.NodeDocument {
			continue
		}
		open := block.Code.OpenLine
		if open < 1 || open > ctx.Doc.LineCount() {
			continue
		}

		aboveBoundary := open == 1 || ctx.Doc.InFrontMatter(open-1)
		if !aboveBoundary && !ctx.Doc.IsBlankLine(open-1) {
			span, _ := ctx.Doc.LineSpan(open)
			f := lint.NewFindingAt(r.Name(), open, 1,
				"Fenced code block should be preceded by a blank line").
				WithFix(span.StartOffset, span.StartOffset, "\n")
			findings = append(findings, f)
		}

		closing := block.Code.CloseLine
		if closing == 0 {
			// Unterminated fence runs to EOF; nothing follows it.
			continue
		}
		if closing < ctx.Doc.LineCount() && !ctx.Doc.IsBlankLine(closing+1) {
			insertAt := ctx.Doc.Lines[closing-1].EndOffset
			f := lint.NewFindingAt(r.Name(), closing, 1,
				"Fenced code block should be followed by a blank line").
				WithFix(insertAt, insertAt, "\n")
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// FencedCodeLanguageRule checks that fenced code blocks declare a
// language.
type FencedCodeLanguageRule struct {
	lint.BaseRule
}

// NewFencedCodeLanguageRule creates a new fenced code language rule.
func NewFencedCodeLanguageRule() *FencedCodeLanguageRule {
	return &FencedCodeLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD040",
			"fenced-code-language",
			"Fenced code blocks should have a language specified",
			[]string{"code", "language"},
			false,
		),
	}
}

// Check flags fences with an empty info string. With "validate" set the
// declared language must also be one linguist knows about; in that mode
// naming an unrecognized language gets a suggestion when classification
// of the block's content is confident enough. There is no automatic
// fix because guessing a language risks mislabeling the block.
func (r *FencedCodeLanguageRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	validate := ctx.OptionBool("validate", false)

	var findings []lint.Finding
	for _, block := range lint.CodeBlocks(ctx.Root) {
		if block.Code == nil || !block.Code.Fenced {
			continue
		}
		open := block.Code.OpenLine
		if open < 1 {
			continue
		}

		info := strings.TrimSpace(block.Code.Info)
		if info == "" {
			msg := "Fenced code block is missing a language"
			if validate {
				if lang := langdetect.Suggest(block.Text()); lang != "text" {
					msg = fmt.Sprintf("%s (content looks like %s)", msg, lang)
				}
			}
			findings = append(findings, lint.NewFindingAt(r.Name(), open, 1, msg))
			continue
		}

		if validate {
			lang := strings.Fields(info)[0]
			if !langdetect.Known(lang) {
				findings = append(findings, lint.NewFindingAt(r.Name(), open, 1,
					fmt.Sprintf("Unknown code block language %q", lang)))
			}
		}
	}

	return findings, nil
}
