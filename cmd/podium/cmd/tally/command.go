// Package tally provides the tally command.
package tally

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/podium/cmd/application"
	"github.com/agentstation/podium/internal/cmd/output"
	"github.com/agentstation/podium/pkg/summary"
)

// NewCommand creates the tally command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var edition string

	cmd := &cobra.Command{
		Use:     "tally",
		GroupID: "core",
		Short:   "Print the medal tally of the merged dataset",
		Long: `Tally runs the merge in memory and prints the per-edition, per-country
medal summary. A team medal counts once per country.`,
		Example: `  podium tally
  podium tally --edition-id 63 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.Pipeline()
			if err != nil {
				return err
			}
			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			rows := filter(result.Tally, edition)
			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Tally(rows, format))
		},
	}

	cmd.Flags().StringVar(&edition, "edition-id", "", "only show rows of this edition id")

	return cmd
}

func filter(rows []summary.Row, editionID string) []summary.Row {
	if editionID == "" {
		return rows
	}
	var out []summary.Row
	for _, r := range rows {
		if r.EditionID == editionID {
			out = append(out, r)
		}
	}
	return out
}
