package cli

import (
	"github.com/spf13/cobra"

	"github.com/notelint/notelint/pkg/runner"
)

const checkLongDescription = `Check Markdown files for style and syntax issues.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Specify paths to check specific files or directories.

Examples:
  notelint check                  # Check current directory
  notelint check notes/           # Check one directory
  notelint check README.md        # Check a single file
  notelint check --format json    # Output as JSON for CI
  notelint check --flavor obsidian vault/`

func newCheckCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, workDir, err := buildLinter(cmd, flags)
			if err != nil {
				return err
			}
			return runAndReport(cmd, l, workDir, args, flags, runner.ModeCheck, false)
		},
	}

	addRunFlags(cmd, flags)
	return cmd
}
