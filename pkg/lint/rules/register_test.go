package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/lint"
)

func TestDefaultRegistration(t *testing.T) {
	wantOrder := []string{
		"MD001", "MD003", "MD004", "MD007", "MD009", "MD010", "MD011",
		"MD012", "MD013", "MD018", "MD019", "MD022", "MD023", "MD025",
		"MD026", "MD029", "MD030", "MD031", "MD032", "MD034", "MD037",
		"MD040", "MD047", "MD049", "NL001", "NL002",
	}

	rules := lint.DefaultRegistry.Rules()
	require.Len(t, rules, len(wantOrder))

	for i, rule := range rules {
		assert.Equal(t, wantOrder[i], rule.Name(), "registration order at %d", i)
	}
}

func TestRegisteredRuleMetadata(t *testing.T) {
	for _, rule := range lint.DefaultRegistry.Rules() {
		assert.NotEmpty(t, rule.Alias(), "rule %s needs an alias", rule.Name())
		assert.NotEmpty(t, rule.Description(), "rule %s needs a description", rule.Name())
		assert.NotEmpty(t, rule.Tags(), "rule %s needs tags", rule.Name())
	}
}

func TestAliasLookup(t *testing.T) {
	tests := []struct {
		alias string
		name  string
	}{
		{"heading-increment", "MD001"},
		{"line-length", "MD013"},
		{"no-trailing-spaces", "MD009"},
		{"single-trailing-newline", "MD047"},
		{"no-empty-wikilink", "NL002"},
	}

	for _, tt := range tests {
		rule, ok := lint.DefaultRegistry.Get(tt.alias)
		require.True(t, ok, "alias %s", tt.alias)
		assert.Equal(t, tt.name, rule.Name())
	}
}
