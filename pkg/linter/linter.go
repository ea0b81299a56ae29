// Package linter is the embedding surface of notelint: construct a
// Linter from a Config (or its TOML serialization) once, then feed it
// note text. Hosts that manage files on disk layer the runner package
// on top; hosts that hold buffers in memory, such as an editor plugin,
// call this package directly.
package linter

import (
	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/fix"
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/mdast"
	"github.com/notelint/notelint/pkg/parser/goldmark"

	// Register the built-in rule catalog.
	_ "github.com/notelint/notelint/pkg/lint/rules"
)

// Version is the engine version reported to hosts.
const Version = "0.4.0"

// DefaultFixPasses caps the fix loop when the config does not set one.
const DefaultFixPasses = 5

// Linter binds a validated configuration to a parser and a resolved
// rule plan. It is immutable and safe for concurrent use; configuration
// changes mean constructing a new Linter.
type Linter struct {
	cfg      *config.Config
	parser   *goldmark.Parser
	engine   *lint.Engine
	plan     []lint.ResolvedRule
	warnings []string
}

// New builds a Linter from a configuration. Invalid configuration is a
// hard error; references to unknown rule names are collected as
// warnings instead, so a config written for a newer rule set still
// loads.
func New(cfg *config.Config) (*Linter, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	plan, warnings := lint.ResolveRules(lint.DefaultRegistry, cfg)
	warnings = append(append([]string(nil), cfg.Warnings...), warnings...)

	parser := goldmark.New(string(cfg.ResolvedFlavor()))
	return &Linter{
		cfg:      cfg,
		parser:   parser,
		engine:   lint.NewEngine(parser, plan, cfg),
		plan:     plan,
		warnings: warnings,
	}, nil
}

// FromTOML builds a Linter from raw TOML configuration bytes. The
// resulting Linter behaves identically to one built from the
// equivalent programmatic Config.
func FromTOML(data []byte) (*Linter, error) {
	cfg, err := config.FromTOML(data)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Warnings returns non-fatal issues from construction: unrecognized
// config keys and unknown rule names.
func (l *Linter) Warnings() []string {
	return append([]string(nil), l.warnings...)
}

// Check lints one text and returns the result. The text is treated as
// a complete note; findings are ordered by (line, column, rule name).
func (l *Linter) Check(content []byte) *lint.Result {
	return l.engine.Check("", content)
}

// CheckFile is Check with a path attached for reporting.
func (l *Linter) CheckFile(path string, content []byte) *lint.Result {
	return l.engine.Check(path, content)
}

// CheckDocument runs the rule plan over an already-parsed document.
func (l *Linter) CheckDocument(doc *mdast.Document) *lint.Result {
	return l.engine.CheckDocument(doc)
}

// Parse exposes the configured parser, for hosts that want the
// document model without a lint run.
func (l *Linter) Parse(path string, content []byte) *mdast.Document {
	return l.parser.Parse(path, content)
}

// FixResult describes one Fix call.
type FixResult struct {
	// Content is the fixed text. Equal to the input when nothing
	// applied.
	Content []byte

	// Passes is the number of check-and-apply rounds that ran.
	Passes int

	// Applied counts edits applied across all passes.
	Applied int

	// Skipped counts edits dropped in conflict resolution or rejected
	// as invalid, across all passes. Skipped edits usually reappear as
	// findings on the next pass once the winning edit has landed.
	Skipped int

	// Remaining holds the findings of the final verification check, so
	// callers can report what fixing could not resolve.
	Remaining []lint.Finding
}

// Fix repeatedly checks content and applies the surviving edits until
// the text reaches a fixed point or the pass cap is hit. Overlapping
// edits are resolved in favor of the earlier-registered rule; losers
// are skipped for the pass rather than risking a garbled splice.
//
// Each pass re-parses, so edits always anchor into the text they were
// computed against. Fix never fails: a pass that produces no valid
// edits simply terminates the loop.
func (l *Linter) Fix(content []byte) *FixResult {
	passCap := l.cfg.FixPasses
	if passCap <= 0 {
		passCap = DefaultFixPasses
	}

	result := &FixResult{Content: content}
	current := content

	for pass := 0; pass < passCap; pass++ {
		checked := l.engine.Check("", current)
		edits := checked.Edits()
		if len(edits) == 0 {
			result.Remaining = checked.Findings
			break
		}
		result.Passes++

		accepted, skipped := fix.PrepareEdits(edits, len(current))
		result.Skipped += len(skipped)
		if len(accepted) == 0 {
			result.Remaining = checked.Findings
			break
		}

		next := fix.ApplyEdits(current, accepted)
		result.Applied += len(accepted)
		if string(next) == string(current) {
			result.Remaining = checked.Findings
			break
		}
		current = next
	}
	result.Content = current

	if result.Remaining == nil {
		result.Remaining = l.engine.Check("", current).Findings
	}
	return result
}

// ListRules returns the full rule catalog in registration order,
// regardless of what the configuration enables.
func (l *Linter) ListRules() []lint.RuleInfo {
	return lint.DefaultRegistry.List()
}

// ResolvedRuleConfig is one rule's effective settings after resolution.
type ResolvedRuleConfig struct {
	Name     string             `json:"name"`
	Alias    string             `json:"alias"`
	Severity config.Severity    `json:"severity"`
	Options  config.RuleOptions `json:"options,omitempty"`
}

// ResolvedConfig is the effective configuration after defaults and
// resolution, the one the engine actually runs with.
type ResolvedConfig struct {
	Flavor     config.Flavor        `json:"flavor"`
	LineLength int                  `json:"line_length"`
	FixPasses  int                  `json:"fix_passes"`
	Rules      []ResolvedRuleConfig `json:"rules"`
}

// Config returns the effective configuration: flavor and limits with
// defaults filled in, plus every enabled rule with its resolved
// severity and options, in execution order.
func (l *Linter) Config() *ResolvedConfig {
	rc := &ResolvedConfig{
		Flavor:     l.cfg.ResolvedFlavor(),
		LineLength: l.cfg.LineLength,
		FixPasses:  l.cfg.FixPasses,
	}
	if rc.FixPasses == 0 {
		rc.FixPasses = DefaultFixPasses
	}
	for _, rr := range l.plan {
		rc.Rules = append(rc.Rules, ResolvedRuleConfig{
			Name:     rr.Rule.Name(),
			Alias:    rr.Rule.Alias(),
			Severity: rr.Severity,
			Options:  rr.Options,
		})
	}
	return rc
}

// ConfigTOML renders the underlying raw configuration back to TOML.
func (l *Linter) ConfigTOML() ([]byte, error) {
	return l.cfg.ToTOML()
}
