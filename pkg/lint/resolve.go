package lint

import (
	"fmt"
	"sort"

	"github.com/notelint/notelint/pkg/config"
)

// ResolvedRule pairs a rule with its execution plan for one Linter.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Order is the rule's registration index. It is the tiebreak for
	// finding ordering and the priority for overlapping fixes.
	Order int

	// Severity is the resolved severity for this rule's findings.
	Severity config.Severity

	// Options is the rule-specific option table (may be nil).
	Options config.RuleOptions
}

// ResolveRules turns a validated Config into the definitive execution
// plan: the enabled subset of the registry, in registration order, each
// with a typed option bag. Unknown rule names referenced by the config
// are returned as warnings, never errors.
func ResolveRules(registry *Registry, cfg *config.Config) ([]ResolvedRule, []string) {
	var warnings []string
	warnings = append(warnings, unknownNameWarnings(registry, cfg)...)

	include := map[string]bool{}
	if cfg != nil {
		for _, name := range cfg.Enable {
			if rule, ok := registry.Get(name); ok {
				include[rule.Name()] = true
			}
		}
	}

	var resolved []ResolvedRule
	for order, rule := range registry.Rules() {
		enabled := rule.DefaultEnabled()
		if len(include) > 0 {
			enabled = include[rule.Name()]
		}
		if cfg != nil && (cfg.IsDisabled(rule.Name()) || cfg.IsDisabled(rule.Alias())) {
			enabled = false
		}
		if !enabled {
			continue
		}

		rr := ResolvedRule{
			Rule:     rule,
			Order:    order,
			Severity: rule.DefaultSeverity(),
		}
		if cfg != nil {
			if opts, ok := ruleOptions(cfg, rule); ok {
				rr.Options = opts
				if s, ok := opts["severity"].(string); ok {
					rr.Severity = config.Severity(s)
				}
			}
		}
		resolved = append(resolved, rr)
	}

	return resolved, warnings
}

// ruleOptions finds a rule's option table by name or alias.
func ruleOptions(cfg *config.Config, rule Rule) (config.RuleOptions, bool) {
	if opts, ok := cfg.Rules[rule.Name()]; ok {
		return opts, true
	}
	if opts, ok := cfg.Rules[rule.Alias()]; ok {
		return opts, true
	}
	return nil, false
}

// unknownNameWarnings reports config references to rules the registry
// does not know. The unknown name is ignored for enable/disable purposes.
func unknownNameWarnings(registry *Registry, cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}

	var warnings []string
	for _, name := range cfg.Disable {
		if !registry.Has(name) {
			warnings = append(warnings, fmt.Sprintf("unknown rule %q in disable list", name))
		}
	}
	for _, name := range cfg.Enable {
		if !registry.Has(name) {
			warnings = append(warnings, fmt.Sprintf("unknown rule %q in enable list", name))
		}
	}
	var sectionNames []string
	for name := range cfg.Rules {
		if !registry.Has(name) {
			sectionNames = append(sectionNames, name)
		}
	}
	sort.Strings(sectionNames)
	for _, name := range sectionNames {
		warnings = append(warnings, fmt.Sprintf("unknown rule %q in rules section", name))
	}
	return warnings
}
