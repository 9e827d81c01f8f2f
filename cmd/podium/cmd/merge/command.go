// Package merge provides the merge command.
package merge

import (
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/podium/cmd/application"
	"github.com/agentstation/podium/internal/cmd/output"
)

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var outputDir string
	var dry bool

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge the new edition into the legacy dataset",
		Long: `Merge loads both datasets, reconciles countries and athletes, synthesizes
result rows for the new edition and writes every legacy table back out with
a "new_" prefix, together with new_medal_tally.csv.

The merge statistics are printed when it completes.`,
		Example: `  podium merge --legacy-dir data --new-dir data/paris
  podium merge --event-map events.yaml --output-dir out
  podium merge --permutations --remove-duplicate-team-events
  podium merge --dry -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := app.Logger()
			if !cmd.Flags().Changed("output-dir") {
				outputDir = app.OutputDir()
			}

			p, err := app.Pipeline()
			if err != nil {
				return err
			}
			result, err := p.Run(ctx)
			if err != nil {
				return err
			}

			if dry {
				logger.Info().Msg("dry run, nothing written")
			} else {
				if err := result.Write(outputDir); err != nil {
					return err
				}
				files := make([]string, 0, len(result.Files()))
				for name := range result.Files() {
					files = append(files, filepath.Join(outputDir, name))
				}
				sort.Strings(files)
				logger.Info().Strs("files", files).Str("run_id", result.RunID).Msg("merged tables written")
			}

			format := output.DetectFormat(app.OutputFormat())
			var data any = result.Merge.Metadata.Stats
			if format == output.FormatTable || format == output.FormatCSV {
				data = output.StatsData(result.Merge.Metadata.Stats)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", app.OutputDir(), "directory merged tables are written to")
	cmd.Flags().BoolVar(&dry, "dry", false, "run the merge without writing any file")

	return cmd
}
