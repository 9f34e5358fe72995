package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/rowpick/internal/config"
)

// newConfigValidateCmd creates the config validate command for validating configuration.
func newConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Schema version compatibility
- Color values (#RRGGBB or ANSI 0-255)
- Logging format`,
		Example: `  # Validate current configuration
  rowpick config validate

  # Validate and show the effective settings
  rowpick config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Println("Configuration is valid")
			if verbose {
				printVerboseDetails(cmd, cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Printf("  version:           %s\n", cfg.Version)
	cmd.Printf("  colors.selected:   %s\n", cfg.Colors.Selected)
	cmd.Printf("  colors.unselected: %s\n", cfg.Colors.Unselected)
	cmd.Printf("  colors.text:       %s\n", cfg.Colors.Text)
	cmd.Printf("  list.show_header:  %t\n", cfg.List.ShowHeader)
	cmd.Printf("  list.title:        %s\n", cfg.List.Title)
	cmd.Printf("  logging.level:     %s\n", cfg.Logging.Level)
	cmd.Printf("  logging.format:    %s\n", cfg.Logging.Format)
}
