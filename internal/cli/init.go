package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notelint/notelint/internal/configloader"
	"github.com/notelint/notelint/internal/logging"
	"github.com/notelint/notelint/pkg/config"
)

// configFilePermissions is the file mode for generated config files.
const configFilePermissions = 0644

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a .notelint.toml in the current directory with every setting
documented and commented out. Edit it to change the flavor, disable
rules, or set per-rule options.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := logging.Default()

			outputPath := output
			if outputPath == "" {
				outputPath = configloader.ConfigFileName
			}
			absPath, err := filepath.Abs(outputPath)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			if _, err := os.Stat(absPath); err == nil {
				if !force {
					return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
				}
				logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
			}

			if err := os.WriteFile(absPath, config.StarterTemplate(), configFilePermissions); err != nil {
				return fmt.Errorf("write file: %w", err)
			}

			logger.Info("created configuration file", logging.FieldPath, outputPath)
			logger.Info("run 'notelint rules' to see all available rules")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: .notelint.toml)")

	return cmd
}
