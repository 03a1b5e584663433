// Package cli implements the esgfocus command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/config"
	"github.com/rshade/esgfocus/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the esgfocus CLI.
// It wires up the --config overlay, logging and tracing, then the report,
// factors, topics and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "esgfocus",
		Short:         "GRI/BRSR ESG disclosure reports with emissions accounting",
		Long:          "esgfocus: compute Scope 1-3 emissions and export GRI-aligned ESG reports",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := applyConfigOverlay(configPath); err != nil {
					return err
				}
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML file whose top-level sections replace those of ~/.esgfocus/config.yaml")
	cmd.AddCommand(newReportCmd(), newFactorsCmd(), newTopicsCmd(), newConfigCmd())

	return cmd
}

// applyConfigOverlay merges the overlay onto a copy of the global config and
// installs the result.
func applyConfigOverlay(path string) error {
	merged := *config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(&merged, path); err != nil {
		return fmt.Errorf("applying --config: %w", err)
	}
	config.SetGlobalConfig(&merged)
	return nil
}

const rootCmdExample = `  # Generate report.json and report.md from an input document
  esgfocus report generate --input esg.yaml --out-dir ./reports

  # Preview the report in the terminal without writing files
  esgfocus report generate --input esg.yaml --format md --stdout

  # Browse a previously exported report
  esgfocus report show ./reports/gri_esg_report.json --interactive

  # List emission factor sets
  esgfocus factors list

  # Show the material topic catalog
  esgfocus topics list

  # Initialize configuration
  esgfocus config init`

// newReportCmd creates the report command group.
func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "report", Short: "Generate and view ESG reports"}
	cmd.AddCommand(NewReportGenerateCmd(), NewReportShowCmd())
	return cmd
}

// newFactorsCmd creates the factors command group.
func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "factors", Short: "Emission factor set commands"}
	cmd.AddCommand(NewFactorsListCmd(), NewFactorsShowCmd())
	return cmd
}

// newTopicsCmd creates the topics command group.
func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "topics", Short: "Material topic catalog commands"}
	cmd.AddCommand(NewTopicsListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
