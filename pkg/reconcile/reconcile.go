package reconcile

import (
	"context"
	"strings"
	"time"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/lookup"
	"github.com/agentstation/podium/pkg/names"
)

// Reconciler merges the single-edition dataset into the legacy dataset.
type Reconciler interface {
	// Load decodes and keys both datasets.
	Load(ctx context.Context, legacy LegacyTables, incoming NewTables) (*Loaded, error)

	// Merge matches athletes, synthesizes result rows and folds both into
	// the legacy dataset held by loaded.
	Merge(ctx context.Context, loaded *Loaded) (*Result, error)
}

// reconciler is the default implementation of Reconciler
type reconciler struct {
	policy    Policy
	events    lookup.EventNames
	folder    *names.Folder
	editionID string
}

// Option configures a Reconciler
type Option func(*reconciler) error

// New creates a new Reconciler with options
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		events:    lookup.Table{},
		folder:    names.DefaultFolder(),
		editionID: constants.DefaultNewEditionID,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Load implements Reconciler.
func (r *reconciler) Load(ctx context.Context, legacy LegacyTables, incoming NewTables) (*Loaded, error) {
	loaded, err := Load(ctx, r.folder, legacy, incoming)
	return loaded, errors.WrapStage("load", err)
}

// Merge implements Reconciler.
func (r *reconciler) Merge(ctx context.Context, loaded *Loaded) (*Result, error) {
	ctx = logging.WithStage(ctx, "merge")
	logger := logging.FromContext(ctx)
	builder := NewResultBuilder().WithLegacy(loaded.Legacy).WithPolicy(r.policy)

	edition, ok := loaded.Legacy.Editions.Get(strings.ToLower(r.editionID))
	if !ok {
		return nil, errors.WrapStage("merge", errors.NewNotFoundError("edition", r.editionID))
	}

	medals := BuildMedalMap(ctx, loaded.New.Medallists)
	matcher := NewMatcher(loaded.Legacy.Athletes, loaded.Legacy.Countries, loaded.State, r.policy.UseNamePermutations)

	var stats ResultStatistics
	type pending struct {
		key     string
		athlete *dataset.Athlete
	}
	var created []pending

	roster := NewRoster()
	incoming := loaded.New.Athletes
	for _, key := range incoming.Keys() {
		a, _ := incoming.Get(key)
		athlete, outcome, err := matcher.Match(ctx, key, a)
		if err != nil {
			return nil, errors.WrapStage("match", err)
		}
		switch outcome {
		case Matched:
			stats.AthletesMatched++
		case Added:
			stats.AthletesAdded++
			created = append(created, pending{key: key, athlete: athlete})
		}
		roster.Set(a.Code, &Entry{Athlete: athlete, Events: a.Events, Sports: a.Disciplines})
	}

	resultIDs := AllocateResultIDs(loaded.State, loaded.New.Events)
	synth := NewSynthesizer(edition, r.events, resultIDs, medals, r.policy)
	rows, synthStats, err := synth.Synthesize(ctx, loaded.New.Teams, roster)
	if err != nil {
		return nil, errors.WrapStage("synthesize", err)
	}
	stats.TeamRows = synthStats.TeamRows
	stats.IndividualRows = synthStats.IndividualRows
	stats.UnmatchedRosterAthletes = synthStats.Unmatched
	stats.NOCsAdded = len(loaded.AddedNOCs)
	stats.Collisions = loaded.Collisions

	for _, p := range created {
		if put(logger, loaded.Legacy.Athletes, p.key, p.athlete) {
			stats.Collisions++
			builder.WithWarning("new athlete " + p.athlete.Name + " stored under a marked key")
		}
	}
	loaded.Legacy.Results = append(loaded.Legacy.Results, rows...)

	if stats.UnmatchedRosterAthletes > 0 {
		builder.WithWarning("roster athletes without a matching athlete record were found")
	}

	logger.Info().
		Int("matched", stats.AthletesMatched).
		Int("added", stats.AthletesAdded).
		Int("team_rows", stats.TeamRows).
		Int("individual_rows", stats.IndividualRows).
		Int("unmatched", stats.UnmatchedRosterAthletes).
		Msg("merge complete")

	return builder.WithRows(rows).WithStatistics(stats).Build(), nil
}

// Option Functions
// ================

// WithPolicy sets all merge switches at once
func WithPolicy(p Policy) Option {
	return func(r *reconciler) error {
		r.policy = p
		return nil
	}
}

// WithNamePermutations enables fuzzy identity matching
func WithNamePermutations(enabled bool) Option {
	return func(r *reconciler) error {
		r.policy.UseNamePermutations = enabled
		return nil
	}
}

// WithRemoveDuplicateTeamEvents enables duplicate suppression between passes
// and makes a repeated team entry fatal
func WithRemoveDuplicateTeamEvents(enabled bool) Option {
	return func(r *reconciler) error {
		r.policy.RemoveDuplicateTeamEvents = enabled
		return nil
	}
}

// WithExcludeInactiveAthletes skips rosters not marked current
func WithExcludeInactiveAthletes(enabled bool) Option {
	return func(r *reconciler) error {
		r.policy.ExcludeInactiveAthletes = enabled
		return nil
	}
}

// WithExcludeNotFoundAthletes drops roster athletes that match no record
func WithExcludeNotFoundAthletes(enabled bool) Option {
	return func(r *reconciler) error {
		r.policy.ExcludeNotFoundAthletes = enabled
		return nil
	}
}

// WithEventNames sets the event-name translation table
func WithEventNames(events lookup.EventNames) Option {
	return func(r *reconciler) error {
		if events == nil {
			return errors.NewConfigError("reconcile", "event names cannot be nil", nil)
		}
		r.events = events
		return nil
	}
}

// WithFolder sets the character folder used for legacy keys
func WithFolder(folder *names.Folder) Option {
	return func(r *reconciler) error {
		if folder == nil {
			return errors.NewConfigError("reconcile", "folder cannot be nil", nil)
		}
		r.folder = folder
		return nil
	}
}

// WithNewEditionID sets the edition new result rows are attached to
func WithNewEditionID(id string) Option {
	return func(r *reconciler) error {
		if strings.TrimSpace(id) == "" {
			return errors.NewValidationError("new_edition_id", id, "cannot be empty")
		}
		r.editionID = strings.TrimSpace(id)
		return nil
	}
}

// now is replaced in tests.
var now = time.Now
