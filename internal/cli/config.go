package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notelint/notelint/internal/configloader"
	"github.com/notelint/notelint/internal/logging"
	"github.com/notelint/notelint/pkg/linter"
)

func newConfigCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the effective configuration the engine would run with:
flavor, limits, and every enabled rule with its resolved severity and
options, after layering config files and defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Default()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("get config flag: %w", err)
			}
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			cfg, source, err := configloader.Load(ctx, workDir, configPath)
			if err != nil {
				return err
			}

			l, err := linter.New(cfg)
			if err != nil {
				return err
			}
			for _, warning := range l.Warnings() {
				logger.Warn(warning)
			}
			if source != "" {
				logger.Info("configuration loaded", logging.FieldConfig, source)
			} else {
				logger.Info("no configuration file found, using defaults")
			}

			if format == "toml" {
				data, err := l.ConfigTOML()
				if err != nil {
					return fmt.Errorf("render TOML: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(l.Config()); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json, toml")
	return cmd
}
