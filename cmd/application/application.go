// Package application provides the application interface for podium commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with a Mock:
//
//	mock := &application.Mock{
//	    PipelineFunc: func(opts ...podium.Option) (podium.Pipeline, error) {
//	        return fakePipeline, nil
//	    },
//	}
//	cmd := validate.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/podium"
)

// Application provides what commands need from the running CLI.
type Application interface {
	// Pipeline returns a reconciliation pipeline configured from flags,
	// environment and config file. Extra options are applied last.
	Pipeline(opts ...podium.Option) (podium.Pipeline, error)

	// OutputDir is where merged tables are written.
	OutputDir() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, csv).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
