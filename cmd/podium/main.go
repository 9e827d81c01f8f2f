// Package main provides the entry point for the podium CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/podium/cmd/podium/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling so a long merge can be interrupted
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Debug().Err(err).Msg("command failed")
		app.ExitOnError(err)
	}
}
