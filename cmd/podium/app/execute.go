package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the podium CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "podium",
		Short:   "Olympic dataset reconciliation",
		Version: a.version,
		Long: `Podium merges a multi-edition Olympic athlete dataset with the tables
published for a single new edition, then derives the medal tally.

Athletes are matched by folded name and country, new result rows are
synthesized from team rosters and individual event lists, and the merged
tables are written next to a per-country medal summary.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})

	c := a.config
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.ConfigFile, "config", "", "config file (default is $HOME/.podium.yaml)")
	flags.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
	flags.StringVarP(&c.Format, "format", "o", c.Format, "output format: table, json, yaml, csv")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	flags.StringVar(&c.LegacyDir, "legacy-dir", c.LegacyDir, "directory holding the multi-edition tables")
	flags.StringVar(&c.NewDir, "new-dir", c.NewDir, "directory holding the new edition tables")
	flags.StringVar(&c.EventMap, "event-map", c.EventMap, "event name translation table (.yaml or .csv)")
	flags.StringVar(&c.CharMap, "char-map", c.CharMap, "character folding table (.yaml)")
	flags.StringVar(&c.NewEditionID, "edition", c.NewEditionID, "edition id new results are attached to")
	flags.BoolVar(&c.UseNamePermutations, "permutations", c.UseNamePermutations, "match hyphenated surnames in any order")
	flags.BoolVar(&c.RemoveDuplicateTeamEvents, "remove-duplicate-team-events", c.RemoveDuplicateTeamEvents, "skip individual rows already emitted for a team")
	flags.BoolVar(&c.ExcludeInactiveAthletes, "exclude-inactive", c.ExcludeInactiveAthletes, "skip teams that are not current")
	flags.BoolVar(&c.ExcludeNotFoundAthletes, "exclude-not-found", c.ExcludeNotFoundAthletes, "drop roster athletes missing from the athletes table")

	rootCmd.SetVersionTemplate("podium {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	if cmd.Flags().Changed("config") {
		if err := a.config.ReadFile(a.config.ConfigFile, cmd.Flags().Changed); err != nil {
			return err
		}
	}
	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger
	cmd.SetContext(a.withLogger(cmd.Context()))

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
