package goldmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/mdast"
)

func TestNew_FlavorFallback(t *testing.T) {
	assert.Equal(t, FlavorStandard, New("").Flavor())
	assert.Equal(t, FlavorStandard, New("bogus").Flavor())
	assert.Equal(t, FlavorObsidian, New(FlavorObsidian).Flavor())
}

func TestParse_Empty(t *testing.T) {
	doc := New(FlavorStandard).Parse("", nil)
	require.NotNil(t, doc)
	require.NotNil(t, doc.Root)
	assert.Equal(t, mdast.NodeDocument, doc.Root.Kind)
	assert.Equal(t, 0, doc.LineCount())
}

func TestParse_ContentIsCopied(t *testing.T) {
	content := []byte("# Heading\n")
	doc := New(FlavorStandard).Parse("", content)

	content[0] = 'X'
	assert.Equal(t, byte('#'), doc.Content[0])
}

func TestParse_Headings(t *testing.T) {
	input := "# Title\n\ntext\n\n## Section\n\nUnderlined\n----------\n"
	doc := New(FlavorStandard).Parse("note.md", []byte(input))

	headings := mdast.FindByKind(doc.Root, mdast.NodeHeading)
	require.Len(t, headings, 3)

	assert.Equal(t, 1, headings[0].Heading.Level)
	assert.Equal(t, mdast.HeadingATX, headings[0].Heading.Style)

	assert.Equal(t, 2, headings[1].Heading.Level)

	assert.Equal(t, 2, headings[2].Heading.Level)
	assert.Equal(t, mdast.HeadingSetext, headings[2].Heading.Style)

	// First heading spans the whole "# Title" line.
	pos := headings[0].SourcePosition()
	assert.Equal(t, 1, pos.StartLine)
	assert.Equal(t, 1, pos.StartColumn)
}

func TestParse_Lists(t *testing.T) {
	input := "- one\n- two\n  - nested\n\n1. first\n2. second\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	lists := mdast.FindByKind(doc.Root, mdast.NodeList)
	require.Len(t, lists, 3)

	assert.False(t, lists[0].List.Ordered)
	assert.Equal(t, byte('-'), lists[0].List.Marker)

	items := mdast.FindByKind(lists[0], mdast.NodeListItem)
	require.NotEmpty(t, items)
	require.NotNil(t, items[0].Item)
	assert.Equal(t, 0, items[0].Item.Indent)
	assert.Equal(t, byte('-'), doc.Content[items[0].Item.MarkerOffset])

	var ordered *mdast.Node
	for _, l := range lists {
		if l.List.Ordered {
			ordered = l
		}
	}
	require.NotNil(t, ordered)
	assert.Equal(t, 1, ordered.List.Start)
}

func TestParse_TaskItems(t *testing.T) {
	input := "- [ ] todo\n- [x] done\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	items := mdast.FindByKind(doc.Root, mdast.NodeListItem)
	require.Len(t, items, 2)
	assert.Equal(t, byte(' '), items[0].Item.TaskMarker)
	assert.Equal(t, byte('x'), items[1].Item.TaskMarker)
}

func TestParse_FencedCode(t *testing.T) {
	input := "text\n\n```go\nfmt.Println()\n```\n\nafter\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	blocks := mdast.FindByKind(doc.Root, mdast.NodeCodeBlock)
	require.Len(t, blocks, 1)

	code := blocks[0].Code
	require.NotNil(t, code)
	assert.True(t, code.Fenced)
	assert.Equal(t, "go", code.Info)
	assert.Equal(t, 3, code.OpenLine)
	assert.Equal(t, 5, code.CloseLine)
}

func TestParse_UnterminatedFence(t *testing.T) {
	input := "```\ncode to the end\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	blocks := mdast.FindByKind(doc.Root, mdast.NodeCodeBlock)
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].Code.OpenLine)
	assert.Equal(t, 0, blocks[0].Code.CloseLine)
}

func TestParse_FrontMatter(t *testing.T) {
	input := "---\ntitle: Note\n---\n# Heading\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	require.NotNil(t, doc.FrontMatter)
	assert.Equal(t, 3, doc.FrontMatter.EndLine)

	// The YAML payload is not parsed as Markdown.
	headings := mdast.FindByKind(doc.Root, mdast.NodeHeading)
	require.Len(t, headings, 1)
	line, _ := doc.LineAt(headings[0].Span.StartOffset)
	assert.Equal(t, 4, line)
}

func TestParse_DialectOnlyForObsidian(t *testing.T) {
	input := "A [[link]] and a #tag\n"

	std := New(FlavorStandard).Parse("", []byte(input))
	assert.Nil(t, std.Dialect)

	obs := New(FlavorObsidian).Parse("", []byte(input))
	require.NotNil(t, obs.Dialect)
	assert.Len(t, obs.Dialect.WikiLinks, 1)
	assert.Len(t, obs.Dialect.Tags, 1)
}

func TestParse_DocBackRefs(t *testing.T) {
	doc := New(FlavorStandard).Parse("", []byte("# A\n\npara with *emph*\n"))

	err := mdast.Walk(doc.Root, func(n *mdast.Node) error {
		assert.Same(t, doc, n.Doc)
		return nil
	})
	require.NoError(t, err)
}

func TestParse_SpansAnchorIntoContent(t *testing.T) {
	input := "# Title\n\nSome *emphasis* here.\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	emph := mdast.FindByKind(doc.Root, mdast.NodeEmphasis)
	require.Len(t, emph, 1)
	assert.Equal(t, "*emphasis*", string(emph[0].Text()))
	require.NotNil(t, emph[0].Emph)
	assert.Equal(t, byte('*'), emph[0].Emph.Marker)
	assert.Equal(t, 1, emph[0].Emph.Level)
}

func TestParse_Tables(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	doc := New(FlavorStandard).Parse("", []byte(input))

	tables := mdast.FindByKind(doc.Root, mdast.NodeTable)
	assert.Len(t, tables, 1)
}
