package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/podium/cmd/podium/cmd/merge"
	"github.com/agentstation/podium/cmd/podium/cmd/tally"
	"github.com/agentstation/podium/cmd/podium/cmd/validate"
	"github.com/agentstation/podium/cmd/podium/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(merge.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(tally.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
