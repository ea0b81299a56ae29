package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
)

func TestTrailingSpaces(t *testing.T) {
	rule := NewTrailingSpacesRule()

	tests := []struct {
		name     string
		input    string
		opts     config.RuleOptions
		wantCol  int
		wantFix  string
		wantNone bool
	}{
		{
			name:     "clean line",
			input:    "no trailing here\n",
			wantNone: true,
		},
		{
			name:    "single trailing space",
			input:   "text \n",
			wantCol: 5,
			wantFix: "text\n",
		},
		{
			name:     "two spaces form a hard break",
			input:    "line one  \nline two\n",
			wantNone: true,
		},
		{
			name:    "three spaces are not a break",
			input:   "text   \n",
			wantCol: 5,
			wantFix: "text\n",
		},
		{
			name:    "trailing tab",
			input:   "text\t\n",
			wantCol: 5,
			wantFix: "text\n",
		},
		{
			name:    "custom br-spaces",
			input:   "text  \n",
			opts:    config.RuleOptions{"br-spaces": int64(3)},
			wantCol: 5,
			wantFix: "text\n",
		},
		{
			name:     "all-whitespace line left to blank-line rules",
			input:    "a\n   \nb\n",
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkRule(t, rule, tt.input, tt.opts)
			if tt.wantNone {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantCol, findings[0].Column)
			assert.Equal(t, "Trailing whitespace", findings[0].Message)
			assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, findings))
		})
	}
}

func TestHardTabs(t *testing.T) {
	rule := NewHardTabsRule()

	t.Run("tab runs are one finding each", func(t *testing.T) {
		input := "a\tb\t\tc\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 2)

		assert.Equal(t, 2, findings[0].Column)
		assert.Equal(t, 4, findings[1].Column)
		assert.Equal(t, "a b  c\n", applyFixes(t, input, findings))
	})

	t.Run("spaces-per-tab", func(t *testing.T) {
		input := "\tindented\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"spaces-per-tab": int64(4)})
		require.Len(t, findings, 1)
		assert.Equal(t, "    indented\n", applyFixes(t, input, findings))
	})

	t.Run("code blocks skipped by default", func(t *testing.T) {
		input := "```\n\tindented code\n```\n"
		findings := checkRule(t, rule, input, nil)
		assert.Empty(t, findings)
	})

	t.Run("code blocks checked on request", func(t *testing.T) {
		input := "```\n\tindented code\n```\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"code-blocks": true})
		require.Len(t, findings, 1)
		assert.Equal(t, 2, findings[0].Line)
	})
}

func TestMultipleBlanks(t *testing.T) {
	rule := NewMultipleBlanksRule()

	t.Run("single blank passes", func(t *testing.T) {
		findings := checkRule(t, rule, "a\n\nb\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("run collapses to one finding", func(t *testing.T) {
		input := "a\n\n\n\nb\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 3, findings[0].Line)
		assert.Equal(t, 1, findings[0].Column)
		assert.Contains(t, findings[0].Message, "(3 > 1)")
		assert.Equal(t, "a\n\nb\n", applyFixes(t, input, findings))
	})

	t.Run("two separate runs", func(t *testing.T) {
		input := "a\n\n\nb\n\n\n\nc\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 2)
		assert.Equal(t, 3, findings[0].Line)
		assert.Equal(t, 6, findings[1].Line)
		assert.Equal(t, "a\n\nb\n\nc\n", applyFixes(t, input, findings))
	})

	t.Run("trailing run at end of file", func(t *testing.T) {
		input := "a\n\n\n\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, "a\n\n", applyFixes(t, input, findings))
	})

	t.Run("maximum option", func(t *testing.T) {
		findings := checkRule(t, rule, "a\n\n\nb\n", config.RuleOptions{"maximum": int64(2)})
		assert.Empty(t, findings)
	})
}

func TestTrailingNewline(t *testing.T) {
	rule := NewTrailingNewlineRule()

	t.Run("ends with newline", func(t *testing.T) {
		findings := checkRule(t, rule, "content\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("empty file passes", func(t *testing.T) {
		findings := checkRule(t, rule, "", nil)
		assert.Empty(t, findings)
	})

	t.Run("missing newline appended", func(t *testing.T) {
		input := "line one\nlast line"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 2, findings[0].Line)
		assert.Equal(t, 10, findings[0].Column)
		assert.Equal(t, "line one\nlast line\n", applyFixes(t, input, findings))
	})
}
