package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/disclosure"
)

// NewTopicsListCmd creates the "topics list" command, which prints the
// material topic catalog and the supported frameworks.
func NewTopicsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List material topics and reporting frameworks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "#\tMaterial topic")
			fmt.Fprintln(w, "-\t--------------")
			for i, t := range disclosure.MaterialTopics() {
				fmt.Fprintf(w, "%d\t%s\n", i+1, t)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Frameworks:")
			defaults := disclosure.DefaultFrameworks()
			for _, f := range disclosure.Frameworks() {
				marker := ""
				if slices.Contains(defaults, f) {
					marker = " (default)"
				}
				fmt.Fprintf(out, "  - %s%s\n", f, marker)
			}
			return nil
		},
	}
}
