package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
)

func TestSpaceInEmphasis(t *testing.T) {
	rule := NewSpaceInEmphasisRule()

	tests := []struct {
		name     string
		input    string
		wantFix  string
		wantNone bool
	}{
		{
			name:    "strong with padding",
			input:   "some ** bold ** text\n",
			wantFix: "some **bold** text\n",
		},
		{
			name:    "single asterisk",
			input:   "a * padded * b\n",
			wantFix: "a *padded* b\n",
		},
		{
			name:    "underscore",
			input:   "a _ padded _ b\n",
			wantFix: "a _padded_ b\n",
		},
		{
			name:    "leading space only",
			input:   "a *_padded* b\n",
			wantNone: true,
		},
		{
			name:     "proper emphasis untouched",
			input:    "some **bold** text\n",
			wantNone: true,
		},
		{
			name:     "snake case is not emphasis",
			input:    "the variable_name here\n",
			wantNone: true,
		},
		{
			name:     "inline code masked",
			input:    "use `** raw **` here\n",
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkRule(t, rule, tt.input, nil)
			if tt.wantNone {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, "Spaces inside emphasis markers", findings[0].Message)
			assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, findings))
		})
	}
}

func TestEmphasisStyle(t *testing.T) {
	rule := NewEmphasisStyleRule()

	t.Run("consistent uses first marker", func(t *testing.T) {
		input := "*one* and _two_\n"
		findings := checkRule(t, rule, input, nil)
		require.Len(t, findings, 1)

		assert.Equal(t, 11, findings[0].Column)
		assert.Contains(t, findings[0].Message, "expected asterisk, found underscore")
		assert.Equal(t, "*one* and *two*\n", applyFixes(t, input, findings))
	})

	t.Run("explicit underscore", func(t *testing.T) {
		input := "*one*\n"
		findings := checkRule(t, rule, input, config.RuleOptions{"style": "underscore"})
		require.Len(t, findings, 1)
		assert.Equal(t, "_one_\n", applyFixes(t, input, findings))
	})

	t.Run("strong is not flagged", func(t *testing.T) {
		findings := checkRule(t, rule, "*one* and __two__\n", nil)
		assert.Empty(t, findings)
	})

	t.Run("all consistent passes", func(t *testing.T) {
		findings := checkRule(t, rule, "_one_ and _two_\n", nil)
		assert.Empty(t, findings)
	})
}
