// Package validate provides the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/podium/cmd/application"
	"github.com/agentstation/podium/internal/cmd/output"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Check the new edition tables for consistency",
		Long: `Validate cross-checks the medal table of the new edition against its
athletes, events and country codes, and reports unparseable birth dates
and unknown genders. Nothing is merged or written.`,
		Example: `  podium validate
  podium validate --strict -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.Pipeline()
			if err != nil {
				return err
			}
			report, err := p.Validate(cmd.Context())
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if err := output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Report(report, format)); err != nil {
				return err
			}
			if strict && report.HasIssues() {
				return fmt.Errorf("validation found %d issues", report.Total())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any issue is found")

	return cmd
}
