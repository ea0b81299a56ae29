// Package goldmark provides a Markdown parser built on the goldmark library.
// It produces mdast.Document values with every node anchored to a byte span
// in the original text.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/notelint/notelint/pkg/mdast"
)

// Flavor identifies the Markdown dialect the parser recognizes.
const (
	FlavorStandard = "standard"
	FlavorObsidian = "obsidian"
)

// Parser converts raw Markdown into mdast.Document values.
// A Parser is immutable after construction and safe for concurrent use;
// each Parse call allocates its own working state.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for the given flavor.
// Supported flavors are "standard" and "obsidian"; anything else
// falls back to "standard".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Flavor returns the configured flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a fully-populated Document.
// Parsing is best-effort and never fails: malformed constructs degrade
// to plain text nodes rather than aborting.
//
// The method:
//  1. Copies content so later caller mutation cannot corrupt the document.
//  2. Builds the line table and extracts YAML front matter.
//  3. Parses the body with goldmark and maps its AST onto mdast nodes.
//  4. For the obsidian flavor, scans for dialect spans.
func (p *Parser) Parse(path string, content []byte) *mdast.Document {
	doc := &mdast.Document{
		Path:    path,
		Content: copyContent(content),
	}
	doc.Lines = mdast.BuildLines(doc.Content)
	doc.FrontMatter = mdast.ParseFrontMatter(doc.Content, doc.Lines)

	// Parse the body only; front matter is YAML, not Markdown.
	bodyStart := 0
	if doc.FrontMatter != nil {
		bodyStart = doc.FrontMatter.Span.EndOffset
	}
	body := doc.Content[bodyStart:]

	reader := text.NewReader(body)
	gmRoot := p.md.Parser().Parse(reader, gparser.WithContext(gparser.NewContext()))

	m := newMapper(doc, bodyStart)
	doc.Root = m.mapDocument(gmRoot)
	mdast.SetDoc(doc.Root, doc)

	if p.flavor == FlavorObsidian {
		doc.Dialect = mdast.ScanDialect(doc.Content, doc.Lines)
	}

	return doc
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorStandard, FlavorObsidian:
		return flavor
	default:
		return FlavorStandard
	}
}

func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
