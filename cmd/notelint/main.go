// Package main is the entry point for the notelint CLI.
package main

import (
	"errors"
	"os"

	"github.com/notelint/notelint/internal/cli"
	"github.com/notelint/notelint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/notelint/notelint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrFindingsReported) {
			return cli.ExitFindings
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}

	return cli.ExitSuccess
}
