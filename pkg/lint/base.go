package lint

import "github.com/notelint/notelint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Check.
//
// Fields are unexported to avoid collisions with the interface methods.
type BaseRule struct {
	name    string
	alias   string
	desc    string
	tags    []string
	fixable bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(name, alias, desc string, tags []string, fixable bool) BaseRule {
	return BaseRule{
		name:    name,
		alias:   alias,
		desc:    desc,
		tags:    tags,
		fixable: fixable,
	}
}

// Name returns the stable unique identifier for this rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Alias returns the human-readable name of the rule.
func (r *BaseRule) Alias() string {
	return r.alias
}

// Description returns what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule runs without explicit config.
// Override to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// CanFix returns whether the rule attaches fixes to its findings.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Check must be overridden by concrete rule implementations.
func (r *BaseRule) Check(_ *RuleContext) ([]Finding, error) {
	return nil, nil
}
