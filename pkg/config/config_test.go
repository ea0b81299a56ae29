package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, FlavorStandard, cfg.Flavor)
	assert.Zero(t, cfg.LineLength)
	assert.Empty(t, cfg.Disable)
	assert.Empty(t, cfg.Enable)
	assert.NotNil(t, cfg.Rules)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:   "valid obsidian flavor",
			mutate: func(c *Config) { c.Flavor = FlavorObsidian },
		},
		{
			name:   "empty flavor allowed",
			mutate: func(c *Config) { c.Flavor = "" },
		},
		{
			name:    "unknown flavor",
			mutate:  func(c *Config) { c.Flavor = "gfm-plus" },
			wantKey: "flavor",
		},
		{
			name:    "negative line length",
			mutate:  func(c *Config) { c.LineLength = -1 },
			wantKey: "line-length",
		},
		{
			name:    "negative fix passes",
			mutate:  func(c *Config) { c.FixPasses = -3 },
			wantKey: "fix-passes",
		},
		{
			name: "negative rule option",
			mutate: func(c *Config) {
				c.Rules["MD007"] = RuleOptions{"indent": -2}
			},
			wantKey: "rules.MD007.indent",
		},
		{
			name: "fractional rule option",
			mutate: func(c *Config) {
				c.Rules["MD007"] = RuleOptions{"indent": 2.5}
			},
			wantKey: "rules.MD007.indent",
		},
		{
			name: "whole float rule option allowed",
			mutate: func(c *Config) {
				c.Rules["MD007"] = RuleOptions{"indent": float64(4)}
			},
		},
		{
			name: "string option passes numeric validation",
			mutate: func(c *Config) {
				c.Rules["MD004"] = RuleOptions{"style": "dash"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKey, cerr.Key)
		})
	}
}

func TestIsDisabled(t *testing.T) {
	cfg := New()
	cfg.Disable = []string{"MD013", "no-trailing-spaces"}

	assert.True(t, cfg.IsDisabled("MD013"))
	assert.True(t, cfg.IsDisabled("no-trailing-spaces"))
	assert.False(t, cfg.IsDisabled("MD001"))
}

func TestResolvedFlavor(t *testing.T) {
	cfg := New()
	cfg.Flavor = ""
	assert.Equal(t, FlavorStandard, cfg.ResolvedFlavor())

	cfg.Flavor = FlavorObsidian
	assert.Equal(t, FlavorObsidian, cfg.ResolvedFlavor())
}

func TestClone_DeepCopy(t *testing.T) {
	cfg := New()
	cfg.Disable = []string{"MD013"}
	cfg.Rules["MD007"] = RuleOptions{"indent": 4}

	cp := cfg.Clone()
	cp.Disable[0] = "MD001"
	cp.Rules["MD007"]["indent"] = 8
	cp.Rules["MD004"] = RuleOptions{"style": "dash"}

	assert.Equal(t, "MD013", cfg.Disable[0])
	assert.Equal(t, 4, cfg.Rules["MD007"]["indent"])
	assert.NotContains(t, cfg.Rules, "MD004")

	var nilCfg *Config
	assert.Nil(t, nilCfg.Clone())
}
