package rules

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/lint"
)

// DuplicateBlockAnchorRule flags block anchors reused within one note.
type DuplicateBlockAnchorRule struct {
	lint.BaseRule
}

// NewDuplicateBlockAnchorRule creates a new duplicate block anchor rule.
func NewDuplicateBlockAnchorRule() *DuplicateBlockAnchorRule {
	return &DuplicateBlockAnchorRule{
		BaseRule: lint.NewBaseRule(
			"NL001",
			"no-duplicate-block-anchor",
			"Block anchors should be unique within a note",
			[]string{"obsidian", "anchors"},
			false,
		),
	}
}

// Check reports every repeat of an anchor name after its first use.
// Block references resolve to one target, so duplicates silently
// shadow each other. The rule is inert outside the obsidian flavor.
func (r *DuplicateBlockAnchorRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	if !ctx.Extended() {
		return nil, nil
	}

	var findings []lint.Finding
	for _, anchor := range ctx.Vault().DuplicateAnchors() {
		_, col := ctx.Doc.LineAt(anchor.Span.StartOffset)
		findings = append(findings, lint.NewFindingAt(r.Name(), anchor.Line, col,
			fmt.Sprintf("Duplicate block anchor %s", anchor.Name)))
	}

	return findings, nil
}

// EmptyWikiLinkRule flags wikilinks with nothing to resolve.
type EmptyWikiLinkRule struct {
	lint.BaseRule
}

// NewEmptyWikiLinkRule creates a new empty wikilink rule.
func NewEmptyWikiLinkRule() *EmptyWikiLinkRule {
	return &EmptyWikiLinkRule{
		BaseRule: lint.NewBaseRule(
			"NL002",
			"no-empty-wikilink",
			"Wikilinks should have a target",
			[]string{"obsidian", "links"},
			true,
		),
	}
}

// Check flags [[]] and [[|alias]]. A link with an alias but no target
// is fixed to plain text, since the alias is what the author wanted
// shown; a fully empty link is deleted. Inert outside the obsidian
// flavor.
func (r *EmptyWikiLinkRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	if !ctx.Extended() {
		return nil, nil
	}

	var findings []lint.Finding
	for _, link := range ctx.Vault().EmptyLinks() {
		line, col := ctx.Doc.LineAt(link.Span.StartOffset)
		replacement := strings.TrimSpace(link.Alias)
		f := lint.NewFindingAt(r.Name(), line, col, "Empty wikilink").
			WithFix(link.Span.StartOffset, link.Span.EndOffset, replacement)
		findings = append(findings, f)
	}

	return findings, nil
}
