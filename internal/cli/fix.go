package cli

import (
	"github.com/spf13/cobra"

	"github.com/notelint/notelint/pkg/runner"
)

const fixLongDescription = `Fix Markdown files by applying rule fixes.

Without --write this is a dry run: fixes are computed and remaining
issues reported, but nothing touches disk. With --write, changed files
are rewritten in place atomically; a file modified by another program
mid-run is skipped rather than overwritten.

Examples:
  notelint fix notes/             # Preview fixes for a directory
  notelint fix --write notes/     # Apply fixes
  notelint fix --write --backup notes/   # Keep .notelint.bak sidecars`

func newFixCommand() *cobra.Command {
	flags := &runFlags{}
	var write bool
	var backup bool

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix Markdown files",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, workDir, err := buildLinter(cmd, flags)
			if err != nil {
				return err
			}
			mode := runner.ModeFixDry
			if write {
				mode = runner.ModeFix
			}
			return runAndReport(cmd, l, workDir, args, flags, mode, backup)
		},
	}

	addRunFlags(cmd, flags)
	cmd.Flags().BoolVar(&write, "write", false, "write fixes to disk")
	cmd.Flags().BoolVar(&backup, "backup", false, "keep a sidecar backup of each modified file")
	return cmd
}
