package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// FromTOML parses a TOML configuration payload into a validated Config.
// The result is identical to building the equivalent Config
// programmatically: both entry points converge before resolution, so
// check/fix behavior does not depend on how configuration was supplied.
//
// Decode failures and invalid values return a *Error naming the offending
// key. Unrecognized keys are collected as warnings, not errors, so a
// config written for a newer engine still loads.
func FromTOML(data []byte) (*Config, error) {
	cfg := New()

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, decodeError(err)
	}

	for _, key := range meta.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unrecognized key %q", key.String()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToTOML serializes the configuration for display or round-tripping.
func (c *Config) ToTOML() ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return []byte(sb.String()), nil
}

// decodeError converts a toml decode failure into a config.Error,
// preserving the key context BurntSushi includes in its messages.
func decodeError(err error) error {
	var parseErr toml.ParseError
	if ok := asParseError(err, &parseErr); ok {
		return &Error{Key: "toml", Message: parseErr.ErrorWithPosition()}
	}
	return &Error{Key: "toml", Message: err.Error()}
}

func asParseError(err error, target *toml.ParseError) bool {
	pe, ok := err.(toml.ParseError) //nolint:errorlint // toml returns the value, not a wrap
	if ok {
		*target = pe
	}
	return ok
}
