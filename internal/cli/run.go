package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notelint/notelint/internal/configloader"
	"github.com/notelint/notelint/internal/logging"
	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/linter"
	"github.com/notelint/notelint/pkg/reporter"
	"github.com/notelint/notelint/pkg/runner"
)

// ErrFindingsReported signals a successful run that found issues. The
// main function maps it to the findings exit code without logging.
var ErrFindingsReported = errors.New("findings reported")

// runFlags are the flags shared by check and fix.
type runFlags struct {
	format     string
	flavor     string
	lineLength int
	ignore     []string
	enable     []string
	disable    []string
	jobs       int
	noContext  bool
	compact    bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor: standard, obsidian")
	cmd.Flags().IntVar(&flags.lineLength, "line-length", 0, "maximum line length (0 = unlimited)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rules to enable (include-list)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rules to disable")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output")
}

// buildLinter loads the layered configuration, applies flag overrides,
// and constructs the Linter. Construction warnings (unknown rules,
// unrecognized keys) are logged, never fatal.
func buildLinter(cmd *cobra.Command, flags *runFlags) (*linter.Linter, string, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	cfg, source, err := configloader.Load(ctx, workDir, configPath)
	if err != nil {
		return nil, "", err
	}
	if source != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, source)
	}

	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("line-length") {
		cfg.LineLength = flags.lineLength
	}
	if len(flags.enable) > 0 {
		cfg.Enable = flags.enable
	}
	cfg.Disable = append(cfg.Disable, flags.disable...)

	l, err := linter.New(cfg)
	if err != nil {
		return nil, "", err
	}
	for _, warning := range l.Warnings() {
		logger.Warn(warning)
	}
	return l, workDir, nil
}

// runAndReport executes the runner and renders the result. The
// returned error is ErrFindingsReported when the run succeeded but
// found issues.
func runAndReport(cmd *cobra.Command, l *linter.Linter, workDir string, args []string, flags *runFlags, mode runner.Mode, backup bool) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Mode:         mode,
		Backup:       backup,
	}

	logger.Debug("starting run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := runner.New(l).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFindingsReported
	}
	return nil
}
