package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/parser/goldmark"
)

func TestLineLength(t *testing.T) {
	rule := NewLineLengthRule()
	limit := config.RuleOptions{"line-length": int64(20)}

	t.Run("disabled without a limit", func(t *testing.T) {
		long := strings.Repeat("word ", 40) + "\n"
		findings := checkRule(t, rule, long, nil)
		assert.Empty(t, findings)
	})

	t.Run("short line passes", func(t *testing.T) {
		findings := checkRule(t, rule, "short enough\n", limit)
		assert.Empty(t, findings)
	})

	t.Run("long line flagged at the limit column", func(t *testing.T) {
		input := "This is a rather long line of text\n"
		findings := checkRule(t, rule, input, limit)
		require.Len(t, findings, 1)

		assert.Equal(t, 1, findings[0].Line)
		assert.Equal(t, 21, findings[0].Column)
		assert.Contains(t, findings[0].Message, "Line length 34 exceeds 20")
		assert.False(t, findings[0].HasFix())
	})

	t.Run("unbreakable line exempt", func(t *testing.T) {
		input := strings.Repeat("a", 40) + "\n"
		findings := checkRule(t, rule, input, limit)
		assert.Empty(t, findings)
	})

	t.Run("long url exempt", func(t *testing.T) {
		input := "<https://example.com/a/very/deep/path/segment>\n"
		findings := checkRule(t, rule, input, limit)
		assert.Empty(t, findings)
	})

	t.Run("wide runes count double", func(t *testing.T) {
		// 12 CJK characters render 24 cells wide.
		input := strings.Repeat("漢", 12) + " end\n"
		findings := checkRule(t, rule, input, limit)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "Line length 28 exceeds 20")
	})

	t.Run("code blocks exempt on request", func(t *testing.T) {
		input := "```\n" + strings.Repeat("x", 30) + " tail\n```\n"
		opts := config.RuleOptions{"line-length": int64(20), "code-blocks": false}
		findings := checkRule(t, rule, input, opts)
		assert.Empty(t, findings)

		findings = checkRule(t, rule, input, limit)
		require.Len(t, findings, 1)
		assert.Equal(t, 2, findings[0].Line)
	})

	t.Run("global limit from config", func(t *testing.T) {
		cfg := config.New()
		cfg.LineLength = 10
		doc := goldmark.New(goldmark.FlavorStandard).Parse("test.md", []byte("well beyond ten characters\n"))
		findings, err := rule.Check(lint.NewRuleContext(doc, cfg, nil))
		require.NoError(t, err)
		require.Len(t, findings, 1)
	})
}
