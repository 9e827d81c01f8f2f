// Package app provides the application context and dependency management
// for the podium CLI. It centralizes configuration, logging and pipeline
// construction so commands only see the application.Application interface.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/podium"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/reconcile"
)

// App represents the podium application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the config
// file; options are applied afterwards.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// OutputDir returns the directory merged tables are written to.
func (a *App) OutputDir() string {
	return a.config.OutputDir
}

// Pipeline builds a pipeline from the current configuration. opts are
// applied after the configured ones and win over them.
func (a *App) Pipeline(opts ...podium.Option) (podium.Pipeline, error) {
	p, err := podium.New(append(a.pipelineOptions(), opts...)...)
	if err != nil {
		return nil, errors.NewConfigError("pipeline", "creating pipeline", err)
	}
	return p, nil
}

// pipelineOptions constructs pipeline options from the app configuration.
func (a *App) pipelineOptions() []podium.Option {
	c := a.config
	opts := []podium.Option{
		podium.WithLegacyDir(c.LegacyDir),
		podium.WithNewDir(c.NewDir),
		podium.WithNewEditionID(c.NewEditionID),
		podium.WithPolicy(reconcile.Policy{
			UseNamePermutations:       c.UseNamePermutations,
			RemoveDuplicateTeamEvents: c.RemoveDuplicateTeamEvents,
			ExcludeInactiveAthletes:   c.ExcludeInactiveAthletes,
			ExcludeNotFoundAthletes:   c.ExcludeNotFoundAthletes,
		}),
	}
	if c.EventMap != "" {
		opts = append(opts, podium.WithEventMapFile(c.EventMap))
	}
	if c.CharMap != "" {
		opts = append(opts, podium.WithCharMapFile(c.CharMap))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
