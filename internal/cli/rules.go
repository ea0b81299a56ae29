package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notelint/notelint/internal/logging"
	"github.com/notelint/notelint/pkg/lint"

	// Register the built-in rule catalog.
	_ "github.com/notelint/notelint/pkg/lint/rules"
)

const formatJSON = "json"

// ruleListing represents a rule in JSON output.
type ruleListing struct {
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their names, aliases,
default severity, and whether they support auto-fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if format == formatJSON {
				return outputRulesJSON(cmd, rules)
			}

			logger := logging.Default()
			logger.Info("available rules")
			for _, rule := range rules {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}
				logger.Info(fmt.Sprintf("%s (%s)", rule.Name(), rule.Alias()),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldFixable, fixable,
					logging.FieldDescription, rule.Description(),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}

func outputRulesJSON(cmd *cobra.Command, rules []lint.Rule) error {
	listings := make([]ruleListing, 0, len(rules))
	for _, rule := range rules {
		listings = append(listings, ruleListing{
			Name:        rule.Name(),
			Alias:       rule.Alias(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Fixable:     rule.CanFix(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(listings); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
