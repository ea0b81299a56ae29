package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/fix"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/parser/goldmark"
)

// checkRule parses input with the standard flavor and runs one rule.
func checkRule(t *testing.T, rule lint.Rule, input string, opts config.RuleOptions) []lint.Finding {
	t.Helper()
	return checkRuleFlavor(t, rule, goldmark.FlavorStandard, input, opts)
}

func checkRuleFlavor(t *testing.T, rule lint.Rule, flavor, input string, opts config.RuleOptions) []lint.Finding {
	t.Helper()
	doc := goldmark.New(flavor).Parse("test.md", []byte(input))
	findings, err := rule.Check(lint.NewRuleContext(doc, config.New(), opts))
	require.NoError(t, err)
	return findings
}

// applyFixes runs the findings' edits through the full fix pipeline.
func applyFixes(t *testing.T, input string, findings []lint.Finding) string {
	t.Helper()
	var edits []fix.TextEdit
	for _, f := range findings {
		if f.Fix != nil {
			edits = append(edits, *f.Fix)
		}
	}
	accepted, _ := fix.PrepareEdits(edits, len(input))
	return string(fix.ApplyEdits([]byte(input), accepted))
}

func TestTrailingWhitespaceHelper(t *testing.T) {
	require.Equal(t, 0, trailingWhitespace([]byte("abc")))
	require.Equal(t, 2, trailingWhitespace([]byte("abc  ")))
	require.Equal(t, 3, trailingWhitespace([]byte(" \t ")))
	require.Equal(t, 2, leadingWhitespace([]byte("  abc")))
}
