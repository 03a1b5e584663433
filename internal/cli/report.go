package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/config"
	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/logging"
	"github.com/rshade/esgfocus/internal/render"
	"github.com/rshade/esgfocus/internal/report"
	"github.com/rshade/esgfocus/internal/tui"
)

// stdinPath selects standard input for --input.
const stdinPath = "-"

// reportGenerateParams holds the parameters for the report generate command.
type reportGenerateParams struct {
	inputPath   string
	outDir      string
	baseName    string
	format      string
	factorsPath string
	stdout      bool
	preview     bool
	interactive bool
	plain       bool
}

// NewReportGenerateCmd creates the "report generate" command.
//
// Registered flags:
//   - --input: YAML or JSON input document, "-" for stdin (required)
//   - --out-dir: export directory (default from configuration)
//   - --name: file name stem for the exported files
//   - --format: comma-separated export formats, json and/or md
//   - --factors: factor-set YAML overriding the configured one
//   - --stdout: print the first format to stdout instead of writing files
//   - --preview: render the report in the terminal after exporting
//   - --interactive: open the report browser after exporting
//   - --plain: disable styling
func NewReportGenerateCmd() *cobra.Command {
	var params reportGenerateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute emissions and export a GRI ESG report",
		Long: `Reads an input document with company details, material topics, fuel,
electricity and Scope 3 activity data, and social and governance KPIs,
computes Scope 1, 2 and 3 emissions, and exports the report as JSON and
Markdown.`,
		Example: reportGenerateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReportGenerate(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.inputPath, "input", "i", "", "Input document (YAML or JSON); '-' reads stdin")
	cmd.Flags().StringVar(&params.outDir, "out-dir", "", "Directory for exported files (default from configuration)")
	cmd.Flags().StringVar(&params.baseName, "name", render.DefaultBaseName, "File name stem for exported files")
	cmd.Flags().StringVar(&params.format, "format", "", "Export formats: json, md, or json,md (default from configuration)")
	cmd.Flags().StringVar(&params.factorsPath, "factors", "", "Factor-set YAML file (default from configuration)")
	cmd.Flags().BoolVar(&params.stdout, "stdout", false, "Print the report to stdout instead of writing files")
	cmd.Flags().BoolVar(&params.preview, "preview", false, "Render the report in the terminal")
	cmd.Flags().BoolVar(&params.interactive, "interactive", false, "Browse the report interactively")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "Disable styled terminal output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

const reportGenerateExample = `  # Export report.json and report.md into ./reports
  esgfocus report generate --input esg.yaml --out-dir ./reports --name acme_fy26

  # Only JSON, piped from stdin
  cat esg.json | esgfocus report generate --input - --format json --stdout

  # Use a custom factor set and preview the result
  esgfocus report generate --input esg.yaml --factors ./factors/cea-2025.yaml --preview`

// executeReportGenerate loads the factor set and input, builds the record and
// exports or prints it.
func executeReportGenerate(cmd *cobra.Command, params reportGenerateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	formats, err := render.ParseFormats(firstNonEmpty(params.format, config.GetDefaultOutputFormat()))
	if err != nil {
		return err
	}

	factorsPath := firstNonEmpty(params.factorsPath, config.GetFactorsPath())
	set, err := config.ResolveFactorSet(factorsPath)
	if err != nil {
		return fmt.Errorf("loading factor set: %w", err)
	}
	log.Debug().Ctx(ctx).Str("factor_set", set.Name).Str("version", set.Version).Msg("factor set loaded")

	in, err := readInput(cmd.InOrStdin(), params.inputPath)
	if err != nil {
		return err
	}

	rec, err := report.NewBuilder(emissions.NewCalculator(set)).Build(ctx, in)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	log.Info().Ctx(ctx).
		Str("company", rec.Company).
		Float64("total_tco2e", rec.TotalEmissions()).
		Msg("report built")

	if params.stdout {
		return writeFormat(cmd.OutOrStdout(), formats[0], rec)
	}

	paths, err := render.Export(ctx, rec, render.ExportOptions{
		Dir:      firstNonEmpty(params.outDir, config.GetOutDir()),
		BaseName: params.baseName,
		Formats:  formats,
	})
	if err != nil {
		return err
	}
	for _, p := range paths {
		cmd.Printf("Wrote %s\n", p)
	}

	if params.preview || params.interactive {
		return showRecord(ctx, cmd, rec, params.interactive, params.plain)
	}
	cmd.Println(emissionsLine(rec))
	return nil
}

// NewReportShowCmd creates the "report show" command, which renders a
// previously exported JSON report.
func NewReportShowCmd() *cobra.Command {
	var interactive, plain bool

	cmd := &cobra.Command{
		Use:   "show <report.json>",
		Short: "Render an exported JSON report in the terminal",
		Example: `  # Styled preview
  esgfocus report show reports/gri_esg_report.json

  # Interactive browser
  esgfocus report show reports/gri_esg_report.json --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening report: %w", err)
			}
			defer f.Close()

			rec, err := render.DecodeJSON(f)
			if err != nil {
				return fmt.Errorf("report %s: %w", args[0], err)
			}
			return showRecord(cmd.Context(), cmd, rec, interactive, plain)
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the report interactively")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled terminal output")
	return cmd
}

// showRecord renders rec for the terminal in the detected output mode.
func showRecord(ctx context.Context, cmd *cobra.Command, rec *report.Record, interactive, plain bool) error {
	switch tui.DetectOutputMode(plain, interactive) {
	case tui.OutputModeInteractive:
		p := tea.NewProgram(tui.NewReportModel(ctx, rec), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
		return nil
	case tui.OutputModeStyled:
		out, err := render.RenderTerminal(rec, render.TerminalOptions{Style: render.StyleAuto})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEmissionsSummary(ctx, rec, terminalWidth()))
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	case tui.OutputModePlain:
		return render.RenderDocument(cmd.OutOrStdout(), rec)
	default:
		return render.RenderDocument(cmd.OutOrStdout(), rec)
	}
}

func writeFormat(w io.Writer, f render.Format, rec *report.Record) error {
	switch f {
	case render.FormatJSON:
		return render.RenderJSON(w, rec)
	case render.FormatMarkdown:
		return render.RenderDocument(w, rec)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// readInput decodes the input document from path, or from stdin for "-".
func readInput(stdin io.Reader, path string) (*report.Input, error) {
	switch path {
	case "":
		return nil, errors.New("--input is required")
	case stdinPath:
		in, err := report.DecodeInput(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading input from stdin: %w", err)
		}
		return in, nil
	default:
		return report.LoadInput(path)
	}
}

// emissionsLine is the one-line summary printed after an export.
func emissionsLine(rec *report.Record) string {
	return fmt.Sprintf("Total emissions: %s (Scope 1 %s, Scope 2 %s, Scope 3 %s)",
		emissions.FormatTonnes(rec.TotalEmissions()),
		emissions.FormatFloat(rec.ScopeTotal(emissions.Scope1), config.GetOutputPrecision()),
		emissions.FormatFloat(rec.ScopeTotal(emissions.Scope2), config.GetOutputPrecision()),
		emissions.FormatFloat(rec.ScopeTotal(emissions.Scope3), config.GetOutputPrecision()),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
