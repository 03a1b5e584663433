package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/config"
	"github.com/rshade/esgfocus/internal/emissions"
)

// Output formats for the factors commands.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	tabPadding    = 2
	sourceBuiltIn = "built-in"
)

// factorSetSummary is one row of "factors list".
type factorSetSummary struct {
	Name       string  `json:"name"`
	Version    string  `json:"version"`
	Source     string  `json:"source"`
	GridFactor float64 `json:"grid_factor"`
	Scope1     int     `json:"scope1_categories"`
	Scope3     int     `json:"scope3_categories"`
	Active     bool    `json:"active"`
}

// NewFactorsListCmd creates the "factors list" command. It lists the
// built-in factor set and the latest version of each set found in
// ~/.esgfocus/factors, marking the one reports will use.
func NewFactorsListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available emission factor sets",
		Example: `  # Table of factor sets
  esgfocus factors list

  # Machine-readable listing
  esgfocus factors list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFactorsList(cmd, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or json")
	return cmd
}

func runFactorsList(cmd *cobra.Command, output string) error {
	builtIn := emissions.DefaultFactorSet()
	summaries := []factorSetSummary{summarize(builtIn, sourceBuiltIn)}

	dir, err := config.GetFactorsDir()
	if err != nil {
		return err
	}
	sets, warnings, err := config.ListFactorSets(dir)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		cmd.PrintErrln("Warning:", w)
	}
	for _, info := range sets {
		summaries = append(summaries, summarize(info.Set, info.Path))
	}

	// Mark the set reports will use.
	active, err := config.ResolveFactorSet(config.GetFactorsPath())
	if err != nil {
		cmd.PrintErrln("Warning: configured factor set unusable:", err)
	} else {
		found := false
		for i := range summaries {
			if summaries[i].Name == active.Name && summaries[i].Version == active.Version {
				summaries[i].Active = true
				found = true
				break
			}
		}
		if !found {
			s := summarize(active, config.GetFactorsPath())
			s.Active = true
			summaries = append(summaries, s)
		}
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case outputTable:
		return renderFactorSetTable(cmd.OutOrStdout(), summaries)
	default:
		return fmt.Errorf("unsupported output format %q (want table or json)", output)
	}
}

func summarize(set emissions.FactorSet, source string) factorSetSummary {
	return factorSetSummary{
		Name:       set.Name,
		Version:    set.Version,
		Source:     source,
		GridFactor: set.GridFactor,
		Scope1:     set.Scope1.Len(),
		Scope3:     set.Scope3.Len(),
	}
}

func renderFactorSetTable(out io.Writer, summaries []factorSetSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Name\tVersion\tGrid (t/kWh)\tScope 1\tScope 3\tSource\tActive")
	fmt.Fprintln(w, "----\t-------\t------------\t-------\t-------\t------\t------")
	for _, s := range summaries {
		active := ""
		if s.Active {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			s.Name, s.Version, emissions.FormatPlain(s.GridFactor), s.Scope1, s.Scope3, s.Source, active)
	}
	return w.Flush()
}

// NewFactorsShowCmd creates the "factors show" command, which prints the
// categories and factors of the active (or given) factor set.
func NewFactorsShowCmd() *cobra.Command {
	var (
		output      string
		factorsPath string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the categories and factors of a factor set",
		Example: `  # Active factor set as a table
  esgfocus factors show

  # Dump the built-in set as a starting point for a custom one
  esgfocus factors show --output yaml > ~/.esgfocus/factors/custom.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := config.ResolveFactorSet(firstNonEmpty(factorsPath, config.GetFactorsPath()))
			if err != nil {
				return fmt.Errorf("loading factor set: %w", err)
			}
			switch output {
			case outputYAML:
				return config.EncodeFactorSet(cmd.OutOrStdout(), set)
			case outputTable:
				return renderFactorTable(cmd.OutOrStdout(), set)
			default:
				return fmt.Errorf("unsupported output format %q (want table or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table or yaml")
	cmd.Flags().StringVar(&factorsPath, "factors", "", "Factor-set YAML file (default from configuration)")
	return cmd
}

func renderFactorTable(out io.Writer, set emissions.FactorSet) error {
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintf(w, "%s %s\n\n", set.Name, set.Version)
	fmt.Fprintln(w, "Scope\tCategory\tFactor (tCO2e/unit)")
	fmt.Fprintln(w, "-----\t--------\t-------------------")
	for _, f := range set.Scope1.Factors() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", emissions.Scope1, f.Category, emissions.FormatPlain(f.Value))
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", emissions.Scope2, "Grid electricity (kWh)", emissions.FormatPlain(set.GridFactor))
	for _, f := range set.Scope3.Factors() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", emissions.Scope3, f.Category, emissions.FormatPlain(f.Value))
	}
	fmt.Fprintf(w, "\n%d fuels, %d Scope 3 categories\n", set.Scope1.Len(), set.Scope3.Len())
	return w.Flush()
}
