package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/config"
)

// NewConfigValidateCmd creates the config validate command, which checks the
// config file and the factor set it points at.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates ~/.esgfocus/config.yaml and, when factors.path is set, loads
the factor-set file and checks its version against the supported range.`,
		Example: `  # Validate current configuration
  esgfocus config validate

  # Validate and show detailed information
  esgfocus config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	set, err := config.ResolveFactorSet(cfg.Factors.Path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		cmd.Println()
		cmd.Println("Configuration details:")
		cmd.Printf("  Config file: %s\n", path)
		cmd.Printf("  Output formats: %s\n", cfg.Output.DefaultFormat)
		cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
		cmd.Printf("  Output directory: %s\n", cfg.Output.OutDir)
		cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
		cmd.Printf("  Factor set: %s %s\n", set.Name, set.Version)
	}
	return nil
}
