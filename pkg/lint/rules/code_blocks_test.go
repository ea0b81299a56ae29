package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
)

func TestBlanksAroundFences(t *testing.T) {
	rule := NewBlanksAroundFencesRule()

	t.Run("surrounded passes", func(t *testing.T) {
		findings := checkRule(t, rule, "text\n\n```go\ncode\n```\n\nmore\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("missing both blanks", func(t *testing.T) {
		input := "text\n```go\ncode\n```\nmore\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 2)

		assert.Contains(t, findings[0].Message, "preceded by a blank line")
		assert.Equal(t, 2, findings[0].Line)
		assert.Contains(t, findings[1].Message, "followed by a blank line")
		assert.Equal(t, 4, findings[1].Line)
		assert.Equal(t, "text\n\n```go\ncode\n```\n\nmore\n", applyFixes(t, input, findings))
	})

	t.Run("document edges are fine", func(t *testing.T) {
		findings := checkRule(t, rule, "```\ncode\n```\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("unterminated fence", func(t *testing.T) {
		findings := checkRule(t, rule, "text\n\n```\ncode to eof\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("fences in list items exempt", func(t *testing.T) {
		findings := checkRule(t, rule, "- item\n  ```\n  code\n  ```\n- next\n", nil)
		assert.Empty(t, findings)
	})
}

func TestFencedCodeLanguage(t *testing.T) {
	rule := NewFencedCodeLanguageRule()

	t.Run("language present", func(t *testing.T) {
		findings := checkRule(t, rule, "```go\nfunc main() {}\n```\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("missing language", func(t *testing.T) {
		findings := checkRule(t, rule, "```\nsome text\n```\n", nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 1, findings[0].Line)
		assert.Contains(t, findings[0].Message, "missing a language")
		assert.False(t, findings[0].HasFix())
	})

	t.Run("indented blocks exempt", func(t *testing.T) {
		findings := checkRule(t, rule, "text\n\n    indented code\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("validate accepts known languages", func(t *testing.T) {
		input := "```python\nprint('hi')\n```\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"validate": true})
		assert.Empty(t, findings)
	})

	t.Run("validate flags unknown language", func(t *testing.T) {
		input := "```notareallanguage\nx\n```\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"validate": true})
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, `Unknown code block language "notareallanguage"`)
	})

	t.Run("without validate any info passes", func(t *testing.T) {
		findings := checkRule(t, rule, "```notareallanguage\nx\n```\n", nil)
		assert.Empty(t, findings)
	})
}
