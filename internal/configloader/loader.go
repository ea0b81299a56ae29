package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/notelint/notelint/pkg/config"
)

// Load resolves the effective configuration for a run.
//
// An explicit path (from --config or NOTELINT_CONFIG) is authoritative
// and must exist. Otherwise the discovered layers are merged from
// broadest to narrowest: system, then user, then project, so a vault's
// .notelint.toml wins over machine defaults.
//
// No config file at all is not an error; the engine defaults apply.
func Load(ctx context.Context, workDir, explicitPath string) (*config.Config, string, error) {
	paths, err := Discover(ctx, workDir)
	if err != nil {
		return nil, "", err
	}
	if explicitPath != "" {
		paths.Explicit = explicitPath
	}

	if paths.Explicit != "" {
		cfg, err := loadFile(paths.Explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, paths.Explicit, nil
	}

	cfg := config.New()
	source := ""
	for _, path := range []string{paths.System, paths.User, paths.Project} {
		if path == "" {
			continue
		}
		layer, err := loadFile(path)
		if err != nil {
			return nil, "", err
		}
		cfg = merge(cfg, layer)
		source = path
	}

	return cfg, source, nil
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := config.FromTOML(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
