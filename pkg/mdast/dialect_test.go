package mdast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(content string) *DialectSpans {
	c := []byte(content)
	return ScanDialect(c, BuildLines(c))
}

func TestScanDialect_WikiLinks(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTarget string
		wantAlias  string
		wantEmbed  bool
	}{
		{"plain link", "See [[Other Note]].\n", "Other Note", "", false},
		{"aliased link", "See [[Other Note|that one]].\n", "Other Note", "that one", false},
		{"embed", "![[image.png]]\n", "image.png", "", true},
		{"empty target with alias", "[[|shown]]\n", "", "shown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := scan(tt.input)
			require.Len(t, spans.WikiLinks, 1)
			wl := spans.WikiLinks[0]
			assert.Equal(t, tt.wantTarget, wl.Target)
			assert.Equal(t, tt.wantAlias, wl.Alias)
			assert.Equal(t, tt.wantEmbed, wl.Embed)
		})
	}
}

func TestScanDialect_Tags(t *testing.T) {
	spans := scan("#project and later #area/sub-topic here\n")
	require.Len(t, spans.Tags, 2)
	assert.Equal(t, "project", spans.Tags[0].Name)
	assert.Equal(t, "area/sub-topic", spans.Tags[1].Name)

	// The span includes the hash.
	tag, ok := spans.TagAt(0)
	require.True(t, ok)
	assert.Equal(t, "project", tag.Name)

	_, ok = spans.TagAt(10)
	assert.False(t, ok)
}

func TestScanDialect_TagNotInWord(t *testing.T) {
	spans := scan("issue#42 is not a tag\n")
	assert.Empty(t, spans.Tags)
}

func TestScanDialect_Callouts(t *testing.T) {
	spans := scan("> [!note] Title\n> body\n\n> [!warning]- folded\n")
	require.Len(t, spans.Callouts, 2)

	assert.Equal(t, "note", spans.Callouts[0].Kind)
	assert.Equal(t, 1, spans.Callouts[0].Line)
	assert.Equal(t, byte(0), spans.Callouts[0].Fold)

	assert.Equal(t, "warning", spans.Callouts[1].Kind)
	assert.Equal(t, byte('-'), spans.Callouts[1].Fold)
}

func TestScanDialect_BlockAnchors(t *testing.T) {
	spans := scan("Some fact. ^fact-1\nAnother line\nMore. ^fact-2\n")
	require.Len(t, spans.BlockAnchors, 2)
	assert.Equal(t, "fact-1", spans.BlockAnchors[0].Name)
	assert.Equal(t, 1, spans.BlockAnchors[0].Line)
	assert.Equal(t, "fact-2", spans.BlockAnchors[1].Name)
	assert.Equal(t, 3, spans.BlockAnchors[1].Line)
}

func TestScanDialect_InlineFieldsAndHighlights(t *testing.T) {
	spans := scan("status:: active\nThis is ==important== text\n")
	require.Len(t, spans.InlineFields, 1)
	assert.Equal(t, "status", spans.InlineFields[0].Key)
	require.Len(t, spans.Highlights, 1)
}

func TestScanDialect_Comments(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		spans := scan("before %%hidden%% after\n")
		require.Len(t, spans.Comments, 1)
		assert.Equal(t, SourceRange{StartOffset: 7, EndOffset: 17}, spans.Comments[0])
	})

	t.Run("multi line swallows content", func(t *testing.T) {
		spans := scan("%%\n#tag [[link]]\n%%\nvisible #real\n")
		assert.Len(t, spans.Comments, 1)
		require.Len(t, spans.Tags, 1)
		assert.Equal(t, "real", spans.Tags[0].Name)
		assert.Empty(t, spans.WikiLinks)
	})
}

func TestScanDialect_SkipsCode(t *testing.T) {
	input := "```\n#not-a-tag [[not-a-link]]\n```\n`inline [[masked]]` but [[real]]\n"
	spans := scan(input)

	assert.Empty(t, spans.Tags)
	require.Len(t, spans.WikiLinks, 1)
	assert.Equal(t, "real", spans.WikiLinks[0].Target)
}

func TestScanDialect_Templates(t *testing.T) {
	spans := scan("<% tp.date.now() %> and {{title}}\n")
	assert.Len(t, spans.Templates, 2)
}

func TestSuppresses(t *testing.T) {
	spans := scan("a [[target]] b ==hl== c\n")
	require.Len(t, spans.WikiLinks, 1)

	link := spans.WikiLinks[0].Span
	assert.True(t, spans.Suppresses(link))
	assert.True(t, spans.Suppresses(SourceRange{StartOffset: link.StartOffset + 1, EndOffset: link.StartOffset + 2}))
	assert.False(t, spans.Suppresses(SourceRange{StartOffset: 0, EndOffset: 1}))

	var nilSpans *DialectSpans
	assert.False(t, nilSpans.Suppresses(link))
}
