package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/parser/goldmark"
)

func TestDuplicateBlockAnchor(t *testing.T) {
	rule := NewDuplicateBlockAnchorRule()

	t.Run("inert on standard flavor", func(t *testing.T) {
		input := "one ^ref\n\ntwo ^ref\n"
		findings := checkRule(t, rule, input, nil)
		assert.Empty(t, findings)
	})

	t.Run("unique anchors pass", func(t *testing.T) {
		input := "one ^first\n\ntwo ^second\n"
		findings := checkRuleFlavor(t, rule, goldmark.FlavorObsidian, input, nil)
		assert.Empty(t, findings)
	})

	t.Run("repeats after the first are flagged", func(t *testing.T) {
		input := "one ^ref\n\ntwo ^ref\n\nthree ^ref\n"
		findings := checkRuleFlavor(t, rule, goldmark.FlavorObsidian, input, nil)
		require.Len(t, findings, 2)

		assert.Equal(t, 3, findings[0].Line)
		assert.Equal(t, 5, findings[1].Line)
		assert.Contains(t, findings[0].Message, "Duplicate block anchor ref")
		assert.False(t, findings[0].HasFix())
	})
}

func TestEmptyWikiLink(t *testing.T) {
	rule := NewEmptyWikiLinkRule()

	t.Run("inert on standard flavor", func(t *testing.T) {
		findings := checkRule(t, rule, "an [[]] empty link\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("targeted links pass", func(t *testing.T) {
		input := "see [[Other Note]] and [[Note|an alias]]\n"
		findings := checkRuleFlavor(t, rule, goldmark.FlavorObsidian, input, nil)
		assert.Empty(t, findings)
	})

	t.Run("empty link deleted", func(t *testing.T) {
		input := "an [[]] empty link\n"
		findings := checkRuleFlavor(t, rule, goldmark.FlavorObsidian, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, "Empty wikilink", findings[0].Message)
		assert.Equal(t, 4, findings[0].Column)
		assert.Equal(t, "an  empty link\n", applyFixes(t, input, findings))
	})

	t.Run("alias-only link becomes plain text", func(t *testing.T) {
		input := "see [[|the alias]] here\n"
		findings := checkRuleFlavor(t, rule, goldmark.FlavorObsidian, input, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, "see the alias here\n", applyFixes(t, input, findings))
	})
}
