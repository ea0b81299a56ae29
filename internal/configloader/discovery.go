// Package configloader finds and loads .notelint.toml configuration
// for the CLI. The engine itself never touches the filesystem for
// config; this package resolves the layered file locations down to the
// one Config the engine is constructed with.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileName is the project-level configuration file name.
const ConfigFileName = ".notelint.toml"

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // read-only lookup table
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Paths holds the discovered configuration file locations. Missing
// files are empty strings, not errors.
type Paths struct {
	// System is the machine-wide config, e.g. /etc/notelint/config.toml.
	System string

	// User is the per-user config under XDG_CONFIG_HOME.
	User string

	// Project is the nearest .notelint.toml at or above the working
	// directory.
	Project string

	// Explicit is a path provided via --config or NOTELINT_CONFIG.
	Explicit string
}

// Discover finds configuration files in standard locations: the system
// directory, the user config directory, and the project tree searched
// upward from workDir.
func Discover(ctx context.Context, workDir string) (*Paths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &Paths{
		System:   findSystemConfig(),
		User:     findUserConfig(),
		Project:  project,
		Explicit: os.Getenv("NOTELINT_CONFIG"),
	}, nil
}

func findSystemConfig() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return existingFile(filepath.Join(programData, "notelint", "config.toml"))
	}
	return existingFile("/etc/notelint/config.toml")
}

func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return existingFile(filepath.Join(configHome, "notelint", "config.toml"))
}

// FindProjectConfig searches upward from startDir for .notelint.toml.
// The search stops at a VCS root, the home directory, or the
// filesystem root, so one vault's config never leaks into another.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, _ := os.UserHomeDir()

	currentDir := absDir
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := existingFile(filepath.Join(currentDir, ConfigFileName)); path != "" {
			return path, nil
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}
		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func existingFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
