package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
)

func TestULStyle(t *testing.T) {
	rule := NewULStyleRule()

	t.Run("consistent uses first marker", func(t *testing.T) {
		input := "- one\n- two\n\n* three\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 4, findings[0].Line)
		assert.Contains(t, findings[0].Message, "expected dash, found asterisk")
		assert.Equal(t, "- one\n- two\n\n- three\n", applyFixes(t, input, findings))
	})

	t.Run("explicit style", func(t *testing.T) {
		input := "- one\n- two\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"style": "asterisk"})
		require.Len(t, findings, 2)
		assert.Equal(t, "* one\n* two\n", applyFixes(t, input, findings))
	})

	t.Run("ordered lists ignored", func(t *testing.T) {
		findings := checkRule(t, rule, "1. one\n2. two\n", config.RuleOptions{"style": "dash"})
		assert.Empty(t, findings)
	})
}

func TestULIndent(t *testing.T) {
	rule := NewULIndentRule()

	t.Run("two space nesting passes", func(t *testing.T) {
		findings := checkRule(t, rule, "- parent\n  - child\n    - grandchild\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("over-indented child", func(t *testing.T) {
		input := "- parent\n    - child\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 2, findings[0].Line)
		assert.Contains(t, findings[0].Message, "expected 2 spaces, found 4")
		assert.Equal(t, "- parent\n  - child\n", applyFixes(t, input, findings))
	})

	t.Run("custom indent width", func(t *testing.T) {
		findings := checkRule(t, rule, "- parent\n    - child\n",
			config.RuleOptions{"indent": int64(4)})
		assert.Empty(t, findings)
	})

	t.Run("blockquoted lists exempt", func(t *testing.T) {
		findings := checkRule(t, rule, "> - one\n>   - nested\n", nil)
		assert.Empty(t, findings)
	})
}

func TestOLPrefix(t *testing.T) {
	rule := NewOLPrefixRule()

	tests := []struct {
		name     string
		input    string
		opts     config.RuleOptions
		wantLine int
		wantMsg  string
		wantFix  string
	}{
		{
			name:  "sequential passes",
			input: "1. one\n2. two\n3. three\n",
		},
		{
			name:  "all ones passes",
			input: "1. one\n1. two\n1. three\n",
		},
		{
			name:     "broken sequence",
			input:    "1. one\n2. two\n4. four\n",
			wantLine: 3,
			wantMsg:  "expected 3, found 4",
			wantFix:  "1. one\n2. two\n3. four\n",
		},
		{
			name:     "ordered style rejects ones",
			input:    "1. one\n1. two\n",
			opts:     config.RuleOptions{"style": "ordered"},
			wantLine: 2,
			wantMsg:  "expected 2, found 1",
			wantFix:  "1. one\n2. two\n",
		},
		{
			name:     "one style rejects sequence",
			input:    "1. one\n2. two\n",
			opts:     config.RuleOptions{"style": "one"},
			wantLine: 2,
			wantMsg:  "expected 1, found 2",
			wantFix:  "1. one\n1. two\n",
		},
		{
			name:  "list starting above one",
			input: "3. three\n4. four\n5. five\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkRule(t, rule, tt.input, tt.opts)
			if tt.wantLine == 0 {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLine, findings[0].Line)
			assert.Contains(t, findings[0].Message, tt.wantMsg)
			assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, findings))
		})
	}
}

func TestListMarkerSpace(t *testing.T) {
	rule := NewListMarkerSpaceRule()

	t.Run("single space passes", func(t *testing.T) {
		findings := checkRule(t, rule, "- one\n1. two\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("extra spaces collapsed", func(t *testing.T) {
		input := "-   wide\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Contains(t, findings[0].Message, "expected 1, found 3")
		assert.Equal(t, "- wide\n", applyFixes(t, input, findings))
	})

	t.Run("configured width", func(t *testing.T) {
		input := "- tight\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"spaces": int64(3)})
		require.Len(t, findings, 1)
		assert.Equal(t, "-   tight\n", applyFixes(t, input, findings))
	})

	t.Run("ordered markers", func(t *testing.T) {
		input := "1.  one\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, "1. one\n", applyFixes(t, input, findings))
	})
}

func TestBlanksAroundLists(t *testing.T) {
	rule := NewBlanksAroundListsRule()

	t.Run("surrounded passes", func(t *testing.T) {
		findings := checkRule(t, rule, "text\n\n- one\n- two\n\nmore\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("missing preceding blank", func(t *testing.T) {
		input := "text\n- one\n- two\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Contains(t, findings[0].Message, "preceded by a blank line")
		assert.Equal(t, 2, findings[0].Line)
		assert.Equal(t, "text\n\n- one\n- two\n", applyFixes(t, input, findings))
	})

	t.Run("missing following blank", func(t *testing.T) {
		input := "- one\n- two\n# Next\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Contains(t, findings[0].Message, "followed by a blank line")
		assert.Equal(t, "- one\n- two\n\n# Next\n", applyFixes(t, input, findings))
	})

	t.Run("document edges are fine", func(t *testing.T) {
		findings := checkRule(t, rule, "- one\n- two\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("nested lists not double reported", func(t *testing.T) {
		findings := checkRule(t, rule, "- one\n  - nested\n- two\n", nil)
		assert.Empty(t, findings)
	})
}
