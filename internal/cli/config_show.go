package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/esgfocus/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after the config file, environment and --config
// overlay have been applied.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			switch output {
			case outputYAML:
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshalling configuration: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case outputJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			default:
				return fmt.Errorf("unsupported output format %q (want yaml or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", outputYAML, "Output format: yaml or json")
	return cmd
}
