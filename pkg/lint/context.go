package lint

import (
	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint/wiki"
	"github.com/notelint/notelint/pkg/mdast"
)

// RuleContext carries everything a rule needs for one invocation: the
// parsed document, the global configuration, and the rule's resolved
// options. A fresh context is created per rule per run, so rules keep no
// state between invocations.
type RuleContext struct {
	// Doc is the parsed document.
	Doc *mdast.Document

	// Root is the AST root (convenience alias for Doc.Root).
	Root *mdast.Node

	// Config is the global configuration.
	Config *config.Config

	// Options is the rule-specific option table (may be nil).
	Options config.RuleOptions

	// vaultCtx is the lazily built wikilink/anchor index.
	vaultCtx *wiki.Index
}

// NewRuleContext creates a RuleContext for the given document and config.
func NewRuleContext(doc *mdast.Document, cfg *config.Config, opts config.RuleOptions) *RuleContext {
	var root *mdast.Node
	if doc != nil {
		root = doc.Root
	}
	return &RuleContext{
		Doc:     doc,
		Root:    root,
		Config:  cfg,
		Options: opts,
	}
}

// Option returns a rule option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.Options == nil {
		return defaultValue
	}
	if v, ok := rc.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns an integer rule option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	switch v := rc.Option(key, defaultValue).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// OptionString returns a string rule option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	if s, ok := rc.Option(key, defaultValue).(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a boolean rule option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := rc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a string-slice rule option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// TOML and JSON decoding produce []any.
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return defaultValue
}

// LineLength returns the effective line-length limit for this rule:
// the rule's own "line-length" option if set, else the global limit.
// 0 means unlimited.
func (rc *RuleContext) LineLength() int {
	global := 0
	if rc.Config != nil {
		global = rc.Config.LineLength
	}
	return rc.OptionInt("line-length", global)
}

// Extended reports whether the document was parsed with the obsidian
// flavor and carries dialect spans.
func (rc *RuleContext) Extended() bool {
	return rc.Doc != nil && rc.Doc.Dialect != nil
}

// Vault returns the wikilink/anchor index for this document, building it
// lazily on first use. Returns an empty index for the standard flavor.
func (rc *RuleContext) Vault() *wiki.Index {
	if rc.vaultCtx == nil {
		var spans *mdast.DialectSpans
		if rc.Doc != nil {
			spans = rc.Doc.Dialect
		}
		rc.vaultCtx = wiki.Collect(spans)
	}
	return rc.vaultCtx
}
