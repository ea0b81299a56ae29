package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
)

// ulMarkerName maps marker bytes to option-value names.
var ulMarkerName = map[byte]string{'-': "dash", '*': "asterisk", '+': "plus"}

// ulMarkerByte is the inverse of ulMarkerName.
var ulMarkerByte = map[string]byte{"dash": '-', "asterisk": '*', "plus": '+'}

// listItems returns the direct item children of a list node.
func listItems(list *mdast.Node) []*mdast.Node {
	var items []*mdast.Node
	for child := list.FirstChild; child != nil; child = child.Next {
		if child.Kind == mdast.NodeListItem && child.Item != nil {
			items = append(items, child)
		}
	}
	return items
}

// ULStyleRule checks that unordered lists use one marker style.
type ULStyleRule struct {
	lint.BaseRule
}

// NewULStyleRule creates a new unordered list style rule.
func NewULStyleRule() *ULStyleRule {
	return &ULStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD004",
			"ul-style",
			"Unordered list style should be consistent",
			[]string{"bullet", "ul"},
			true,
		),
	}
}

// Check compares each bullet marker to the expected style. The "style"
// option accepts "consistent" (default), "dash", "asterisk", or "plus";
// with "consistent" the document's first bullet sets the style.
func (r *ULStyleRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	styleOpt := ctx.OptionString("style", config.StyleConsistent)
	expected, haveExpected := ulMarkerByte[styleOpt]

	var findings []lint.Finding
	for _, list := range lint.Lists(ctx.Root) {
		if list.List == nil || list.List.Ordered {
			continue
		}
		for _, item := range listItems(list) {
			offset := item.Item.MarkerOffset
			if offset >= len(ctx.Doc.Content) {
				continue
			}
			marker := ctx.Doc.Content[offset]
			if _, ok := ulMarkerName[marker]; !ok {
				continue
			}
			if !haveExpected {
				expected = marker
				haveExpected = true
				continue
			}
			if marker == expected {
				continue
			}

			line, col := ctx.Doc.LineAt(offset)
			f := lint.NewFindingAt(r.Name(), line, col,
				fmt.Sprintf("Unordered list style: expected %s, found %s",
					ulMarkerName[expected], ulMarkerName[marker])).
				WithFix(offset, offset+1, string(expected))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// ULIndentRule checks nested unordered list indentation.
type ULIndentRule struct {
	lint.BaseRule
}

// NewULIndentRule creates a new unordered list indent rule.
func NewULIndentRule() *ULIndentRule {
	return &ULIndentRule{
		BaseRule: lint.NewBaseRule(
			"MD007",
			"ul-indent",
			"Unordered list indentation should use a fixed width per level",
			[]string{"bullet", "ul", "indentation"},
			true,
		),
	}
}

// Check requires each nesting level to indent by "indent" spaces
// (default 2). Lists inside blockquotes are left alone: their indent is
// relative to the quote marker, not the line start.
func (r *ULIndentRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	indent := ctx.OptionInt("indent", 2)
	if indent == 0 {
		return nil, nil
	}

	var findings []lint.Finding
	for _, list := range lint.Lists(ctx.Root) {
		if list.List == nil || list.List.Ordered || hasBlockquoteAncestor(list) {
			continue
		}
		for _, item := range listItems(list) {
			depth := listDepth(item)
			expected := depth * indent
			if item.Item.Indent == expected {
				continue
			}

			lineStart := item.Item.MarkerOffset - item.Item.Indent
			line, _ := ctx.Doc.LineAt(lineStart)
			f := lint.NewFindingAt(r.Name(), line, 1,
				fmt.Sprintf("Unordered list indentation: expected %d spaces, found %d",
					expected, item.Item.Indent)).
				WithFix(lineStart, item.Item.MarkerOffset, strings.Repeat(" ", expected))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// OLPrefixRule checks ordered list numbering.
type OLPrefixRule struct {
	lint.BaseRule
}

// NewOLPrefixRule creates a new ordered list prefix rule.
func NewOLPrefixRule() *OLPrefixRule {
	return &OLPrefixRule{
		BaseRule: lint.NewBaseRule(
			"MD029",
			"ol-prefix",
			"Ordered list item prefixes should be sequential or all ones",
			[]string{"ol"},
			true,
		),
	}
}

// Check validates ordered list numbering against the "style" option:
// "one" (all 1.), "ordered" (1. 2. 3.), or "one-or-ordered" (default),
// which infers the intent from the list's second item.
func (r *OLPrefixRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	style := ctx.OptionString("style", "one-or-ordered")

	var findings []lint.Finding
	for _, list := range lint.Lists(ctx.Root) {
		if list.List == nil || !list.List.Ordered {
			continue
		}
		items := listItems(list)
		if len(items) == 0 {
			continue
		}

		numbers := make([]int, len(items))
		widths := make([]int, len(items))
		for i, item := range items {
			numbers[i], widths[i] = itemNumber(ctx.Doc.Content, item.Item.MarkerOffset)
		}

		sequential := style == "ordered"
		if style == "one-or-ordered" && len(items) > 1 {
			sequential = numbers[1] == numbers[0]+1
		}

		start := list.List.Start
		if start == 0 {
			start = 1
		}
		for i, item := range items {
			if widths[i] == 0 {
				continue
			}
			expected := 1
			if sequential {
				expected = start + i
			} else if i == 0 {
				expected = numbers[0] // any first number anchors an all-ones list
			}
			if numbers[i] == expected {
				continue
			}

			offset := item.Item.MarkerOffset
			line, col := ctx.Doc.LineAt(offset)
			f := lint.NewFindingAt(r.Name(), line, col,
				fmt.Sprintf("Ordered list item prefix: expected %d, found %d", expected, numbers[i])).
				WithFix(offset, offset+widths[i], strconv.Itoa(expected))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// itemNumber parses the digits of an ordered list marker at offset.
// Returns (number, digit count); width 0 means no digits were found.
func itemNumber(content []byte, offset int) (int, int) {
	i := offset
	for i < len(content) && content[i] >= '0' && content[i] <= '9' {
		i++
	}
	if i == offset {
		return 0, 0
	}
	n, err := strconv.Atoi(string(content[offset:i]))
	if err != nil {
		return 0, 0
	}
	return n, i - offset
}

// ListMarkerSpaceRule checks spacing after list markers.
type ListMarkerSpaceRule struct {
	lint.BaseRule
}

// NewListMarkerSpaceRule creates a new list marker space rule.
func NewListMarkerSpaceRule() *ListMarkerSpaceRule {
	return &ListMarkerSpaceRule{
		BaseRule: lint.NewBaseRule(
			"MD030",
			"list-marker-space",
			"Spaces after list markers",
			[]string{"ol", "ul", "whitespace"},
			true,
		),
	}
}

// Check requires exactly "spaces" spaces (default 1) between a list
// marker and its content; the fix rewrites the space run.
func (r *ListMarkerSpaceRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	expected := ctx.OptionInt("spaces", 1)
	if expected == 0 {
		expected = 1
	}

	var findings []lint.Finding
	for _, list := range lint.Lists(ctx.Root) {
		if list.List == nil {
			continue
		}
		for _, item := range listItems(list) {
			markerEnd := markerEndOffset(ctx.Doc.Content, item.Item.MarkerOffset, list.List.Ordered)
			if markerEnd < 0 {
				continue
			}

			spaces := 0
			for markerEnd+spaces < len(ctx.Doc.Content) && ctx.Doc.Content[markerEnd+spaces] == ' ' {
				spaces++
			}
			// An empty item or one with no run to fix is fine.
			if spaces == expected || spaces == 0 {
				continue
			}
			next := markerEnd + spaces
			if next >= len(ctx.Doc.Content) || ctx.Doc.Content[next] == '\n' {
				continue
			}

			line, col := ctx.Doc.LineAt(markerEnd)
			f := lint.NewFindingAt(r.Name(), line, col,
				fmt.Sprintf("Spaces after list marker: expected %d, found %d", expected, spaces)).
				WithFix(markerEnd, markerEnd+spaces, strings.Repeat(" ", expected))
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// markerEndOffset returns the offset just past a list marker, or -1.
func markerEndOffset(content []byte, markerOffset int, ordered bool) int {
	if markerOffset >= len(content) {
		return -1
	}
	if !ordered {
		return markerOffset + 1
	}
	i := markerOffset
	for i < len(content) && content[i] >= '0' && content[i] <= '9' {
		i++
	}
	if i == markerOffset || i >= len(content) || (content[i] != '.' && content[i] != ')') {
		return -1
	}
	return i + 1
}

// BlanksAroundListsRule checks that lists are surrounded by blank lines.
type BlanksAroundListsRule struct {
	lint.BaseRule
}

// NewBlanksAroundListsRule creates a new blanks around lists rule.
func NewBlanksAroundListsRule() *BlanksAroundListsRule {
	return &BlanksAroundListsRule{
		BaseRule: lint.NewBaseRule(
			"MD032",
			"blanks-around-lists",
			"Lists should be surrounded by blank lines",
			[]string{"bullet", "ul", "ol", "blank_lines"},
			true,
		),
	}
}

// Check applies to top-level lists only; nested lists are part of their
// parent item. Each missing blank is an insertion fix.
func (r *BlanksAroundListsRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, list := range lint.Lists(ctx.Root) {
		if list.Parent == nil || list.Parent.Kind != mdast.NodeDocument {
			continue
		}
		startLine := nodeStartLine(list)
		endLine := nodeEndLine(list)
		if startLine == 0 {
			continue
		}

		aboveBoundary := startLine == 1 || ctx.Doc.InFrontMatter(startLine-1)
		if !aboveBoundary && !ctx.Doc.IsBlankLine(startLine-1) {
			span, _ := ctx.Doc.LineSpan(startLine)
			f := lint.NewFindingAt(r.Name(), startLine, 1,
				"List should be preceded by a blank line").
				WithFix(span.StartOffset, span.StartOffset, "\n")
			findings = append(findings, f)
		}

		if endLine < ctx.Doc.LineCount() && !ctx.Doc.IsBlankLine(endLine+1) {
			insertAt := ctx.Doc.Lines[endLine-1].EndOffset
			f := lint.NewFindingAt(r.Name(), endLine, 1,
				"List should be followed by a blank line").
				WithFix(insertAt, insertAt, "\n")
			findings = append(findings, f)
		}
	}

	return findings, nil
}
