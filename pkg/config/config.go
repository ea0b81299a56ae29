// Package config defines the configuration types for notelint.
// These are pure data structures: file discovery and merging belong to
// the host (editor plugin or CLI), which hands the engine one Config.
package config

import "fmt"

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Flavor selects which Markdown dialect the engine recognizes.
type Flavor string

const (
	// FlavorStandard recognizes CommonMark plus GFM tables and task lists.
	FlavorStandard Flavor = "standard"

	// FlavorObsidian additionally tolerates vault syntax: wikilinks, tags,
	// callouts, highlights, comments, block anchors, inline fields,
	// template placeholders, and extended task markers.
	FlavorObsidian Flavor = "obsidian"
)

// StyleConsistent is the sentinel option value meaning "infer the style
// from the first use in the file rather than enforce a fixed one".
const StyleConsistent = "consistent"

// RuleOptions is a loosely-typed per-rule option table.
// Values are validated at construction time and read through the typed
// accessors on lint.RuleContext.
type RuleOptions map[string]any

// Config is the raw configuration for a Linter. It mirrors the layout of
// a .notelint.toml file; the programmatic and TOML entry points converge
// on this one struct before resolution.
type Config struct {
	// Flavor selects the dialect. Empty means standard.
	Flavor Flavor `toml:"flavor"`

	// LineLength is the global maximum line length. 0 means unlimited.
	LineLength int `toml:"line-length"`

	// Disable lists rule names that must not run.
	Disable []string `toml:"disable"`

	// Enable, when non-empty, is an include-list: only the named rules
	// run (minus any that are also disabled).
	Enable []string `toml:"enable"`

	// FixPasses caps the fix iteration count. 0 means the default cap.
	FixPasses int `toml:"fix-passes"`

	// Rules holds per-rule option tables keyed by rule name.
	Rules map[string]RuleOptions `toml:"rules"`

	// Warnings collects non-fatal findings from construction, such as
	// unrecognized top-level keys in a TOML payload. Not serialized.
	Warnings []string `toml:"-"`
}

// New returns a Config with defaults: standard flavor, no length limit,
// all default-enabled rules active.
func New() *Config {
	return &Config{
		Flavor: FlavorStandard,
		Rules:  make(map[string]RuleOptions),
	}
}

// Error is a configuration error tied to a specific key.
// It is the only error class the engine surfaces as a hard failure, and
// only at construction time.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Message)
}

// Validate checks the configuration for invalid values. It fails fast:
// a bad value is a construction-time error, never a silent fallback.
func (c *Config) Validate() error {
	switch c.Flavor {
	case "", FlavorStandard, FlavorObsidian:
	default:
		return &Error{Key: "flavor", Message: fmt.Sprintf("unknown flavor %q", c.Flavor)}
	}

	if c.LineLength < 0 {
		return &Error{Key: "line-length", Message: "must be a non-negative integer"}
	}
	if c.FixPasses < 0 {
		return &Error{Key: "fix-passes", Message: "must be a non-negative integer"}
	}

	for ruleName, opts := range c.Rules {
		for key, value := range opts {
			if err := validateOptionValue(ruleName, key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateOptionValue rejects negative or fractional numeric options.
// Non-numeric values are validated by each rule's typed accessor.
func validateOptionValue(ruleName, key string, value any) error {
	fullKey := fmt.Sprintf("rules.%s.%s", ruleName, key)

	switch v := value.(type) {
	case int:
		if v < 0 {
			return &Error{Key: fullKey, Message: "must be a non-negative integer"}
		}
	case int64:
		if v < 0 {
			return &Error{Key: fullKey, Message: "must be a non-negative integer"}
		}
	case float64:
		if v != float64(int64(v)) {
			return &Error{Key: fullKey, Message: "must be an integer"}
		}
		if v < 0 {
			return &Error{Key: fullKey, Message: "must be a non-negative integer"}
		}
	}

	return nil
}

// ResolvedFlavor returns the effective flavor, defaulting to standard.
func (c *Config) ResolvedFlavor() Flavor {
	if c.Flavor == "" {
		return FlavorStandard
	}
	return c.Flavor
}

// IsDisabled reports whether a rule name is in the disable set.
func (c *Config) IsDisabled(name string) bool {
	for _, d := range c.Disable {
		if d == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	cp := *c
	cp.Disable = append([]string(nil), c.Disable...)
	cp.Enable = append([]string(nil), c.Enable...)
	cp.Warnings = append([]string(nil), c.Warnings...)
	cp.Rules = make(map[string]RuleOptions, len(c.Rules))
	for name, opts := range c.Rules {
		optsCopy := make(RuleOptions, len(opts))
		for k, v := range opts {
			optsCopy[k] = v
		}
		cp.Rules[name] = optsCopy
	}

	return &cp
}
