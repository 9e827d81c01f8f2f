// Package podium reconciles a multi-edition Olympic athlete dataset with a
// single-edition dataset of a different schema and derives the medal tally.
//
// A Pipeline reads both groups of tables, merges country codes, matches
// athletes, synthesizes result rows, post-processes the merged dataset and
// aggregates the tally:
//
//	p, err := podium.New(
//		podium.WithLegacyDir("data"),
//		podium.WithNewDir("data/paris"),
//		podium.WithEventMapFile("event_map.yaml"),
//	)
//	if err != nil {
//		return err
//	}
//	result, err := p.Run(ctx)
//	if err != nil {
//		return err
//	}
//	return result.Write("out")
package podium

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/agentstation/podium/internal/csvio"
	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/lookup"
	"github.com/agentstation/podium/pkg/names"
	"github.com/agentstation/podium/pkg/postprocess"
	"github.com/agentstation/podium/pkg/reconcile"
	"github.com/agentstation/podium/pkg/summary"
	"github.com/agentstation/podium/pkg/validation"
)

// Pipeline runs the reconciliation stages in order
type Pipeline interface {
	// Run loads, validates, merges and post-processes both datasets and
	// aggregates the medal tally.
	Run(ctx context.Context) (*Result, error)

	// Validate loads both datasets and returns the consistency report
	// without merging.
	Validate(ctx context.Context) (*validation.Report, error)
}

// config holds the settings applied by options
type config struct {
	legacyDir string
	newDir    string
	events    lookup.EventNames
	folder    *names.Folder
	policy    reconcile.Policy
	editionID string
}

// pipeline is the internal implementation of the Pipeline interface
type pipeline struct {
	config     *config
	reconciler reconcile.Reconciler
}

// New creates a new Pipeline with the given options
func New(opts ...Option) (Pipeline, error) {
	cfg := &config{
		legacyDir: ".",
		newDir:    "paris",
		events:    lookup.Table{},
		editionID: constants.DefaultNewEditionID,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	recOpts := []reconcile.Option{
		reconcile.WithPolicy(cfg.policy),
		reconcile.WithEventNames(cfg.events),
		reconcile.WithNewEditionID(cfg.editionID),
	}
	if cfg.folder != nil {
		recOpts = append(recOpts, reconcile.WithFolder(cfg.folder))
	}
	rec, err := reconcile.New(recOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating reconciler: %w", err)
	}

	return &pipeline{config: cfg, reconciler: rec}, nil
}

// Run implements Pipeline.
func (p *pipeline) Run(ctx context.Context) (*Result, error) {
	ctx, loaded, report, err := p.prepare(ctx)
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	merged, err := p.reconciler.Merge(ctx, loaded)
	if err != nil {
		return nil, err
	}

	legacy := loaded.Legacy
	postprocess.FormatEditions(ctx, legacy.Editions.Values())
	postprocess.Clean(legacy)
	if err := postprocess.AddAges(ctx, legacy); err != nil {
		return nil, errors.WrapStage("ages", err)
	}

	tally := summary.Tally(legacy.Results, legacy.Countries.Values())
	logger.Info().
		Int("athletes", legacy.Athletes.Len()).
		Int("results", len(legacy.Results)).
		Int("tally_rows", len(tally)).
		Msg("pipeline complete")

	return &Result{
		RunID:  logging.RunID(ctx),
		Legacy: legacy,
		Merge:  merged,
		Report: report,
		Tally:  tally,
	}, nil
}

// Validate implements Pipeline.
func (p *pipeline) Validate(ctx context.Context) (*validation.Report, error) {
	_, _, report, err := p.prepare(ctx)
	return report, err
}

// prepare tags the run, reads and loads both datasets, and validates the
// new dataset against the merged country registry.
func (p *pipeline) prepare(ctx context.Context) (context.Context, *reconcile.Loaded, *validation.Report, error) {
	ctx = logging.WithRunID(ctx, uuid.NewString())
	logging.FromContext(ctx).Info().
		Str("legacy_dir", p.config.legacyDir).
		Str("new_dir", p.config.newDir).
		Msg("starting run")

	legacyTables, newTables, err := p.readTables()
	if err != nil {
		return ctx, nil, nil, err
	}
	loaded, err := p.reconciler.Load(ctx, legacyTables, newTables)
	if err != nil {
		return ctx, nil, nil, err
	}
	report := validation.Validate(ctx, loaded.New, loaded.Legacy.Countries.Values(), loaded.Normalizer)
	return ctx, loaded, report, nil
}

func (p *pipeline) readTables() (reconcile.LegacyTables, reconcile.NewTables, error) {
	var lt reconcile.LegacyTables
	var nt reconcile.NewTables

	reads := []struct {
		dir, file string
		dst       **dataset.Table
	}{
		{p.config.legacyDir, constants.LegacyAthleteBioFile, &lt.Athletes},
		{p.config.legacyDir, constants.LegacyEventResultsFile, &lt.Results},
		{p.config.legacyDir, constants.LegacyCountryFile, &lt.Countries},
		{p.config.legacyDir, constants.LegacyGamesFile, &lt.Editions},
		{p.config.newDir, constants.NewAthletesFile, &nt.Athletes},
		{p.config.newDir, constants.NewEventsFile, &nt.Events},
		{p.config.newDir, constants.NewMedallistsFile, &nt.Medallists},
		{p.config.newDir, constants.NewNOCsFile, &nt.NOCs},
		{p.config.newDir, constants.NewTeamsFile, &nt.Teams},
	}
	for _, r := range reads {
		t, err := csvio.ReadFile(filepath.Join(r.dir, r.file))
		if err != nil {
			return lt, nt, err
		}
		*r.dst = t
	}
	return lt, nt, nil
}
