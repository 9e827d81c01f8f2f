package reconcile

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/dates"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/names"
)

// LegacyTables are the raw tables of the multi-edition dataset.
type LegacyTables struct {
	Athletes  *dataset.Table
	Results   *dataset.Table
	Countries *dataset.Table
	Editions  *dataset.Table
}

// NewTables are the raw tables of the single-edition dataset.
type NewTables struct {
	Athletes   *dataset.Table
	Events     *dataset.Table
	Medallists *dataset.Table
	NOCs       *dataset.Table
	Teams      *dataset.Table
}

// Loaded is the keyed state of both datasets, ready to merge.
type Loaded struct {
	Legacy     *dataset.Legacy
	New        *dataset.NewGames
	State      *State
	Normalizer *dates.Normalizer

	// AddedNOCs lists countries that only the new dataset knew.
	AddedNOCs []*dataset.Country
	// Collisions counts identity keys that needed the collision marker.
	Collisions int
}

// Load decodes both datasets, merges the country registries, seeds the id
// allocators and the edition-year lookup, and keys athletes by identity.
// Birth dates are normalized on the way in.
func Load(ctx context.Context, folder *names.Folder, legacy LegacyTables, incoming NewTables) (*Loaded, error) {
	ctx = logging.WithStage(ctx, "load")
	logger := logging.FromContext(ctx)

	athletes, err := dataset.DecodeAthletes(legacy.Athletes)
	if err != nil {
		return nil, err
	}
	results, err := dataset.DecodeResults(legacy.Results)
	if err != nil {
		return nil, err
	}
	countries, err := dataset.DecodeCountries(legacy.Countries)
	if err != nil {
		return nil, err
	}
	editions, err := dataset.DecodeEditions(legacy.Editions)
	if err != nil {
		return nil, err
	}

	ng := &dataset.NewGames{}
	newAthletes, err := dataset.DecodeNewAthletes(incoming.Athletes)
	if err != nil {
		return nil, err
	}
	if ng.Events, err = dataset.DecodeEvents(incoming.Events); err != nil {
		return nil, err
	}
	if ng.Medallists, err = dataset.DecodeMedallists(incoming.Medallists); err != nil {
		return nil, err
	}
	if ng.NOCs, err = dataset.DecodeNOCs(incoming.NOCs); err != nil {
		return nil, err
	}
	if ng.Teams, err = dataset.DecodeTeams(incoming.Teams); err != nil {
		return nil, err
	}

	merged, added := MergeNOCs(ctx, countries, ng.NOCs)

	state := NewState()
	state.SeedAthleteIDs(athletes)
	if err := state.SeedResultIDs(results); err != nil {
		return nil, err
	}
	if err := state.BuildEditionYears(results, editions); err != nil {
		return nil, err
	}
	normalizer := dates.NewNormalizer(state.EditionYears(), logger)

	out := &Loaded{
		State:      state,
		Normalizer: normalizer,
		AddedNOCs:  added,
		New:        ng,
	}

	lg := &dataset.Legacy{
		Athletes:      dataset.NewRegistry[*dataset.Athlete](constants.CollisionMarker),
		Results:       results,
		Countries:     CountryRegistry(merged, constants.CollisionMarker),
		Editions:      dataset.NewRegistry[*dataset.Edition](constants.CollisionMarker),
		AthleteHeader: legacy.Athletes.Header,
		EditionHeader: legacy.Editions.Header,
	}
	for _, a := range athletes {
		a.Born = normalizer.Normalize(a.Born, strconv.Itoa(a.ID))
		a.CountryNOC = strings.ToUpper(a.CountryNOC)
		key := names.LegacyKey(folder, a.Name, a.CountryNOC)
		if put(logger, lg.Athletes, key, a) {
			out.Collisions++
		}
	}
	for _, e := range editions {
		put(logger, lg.Editions, strings.ToLower(e.ID), e)
	}
	out.Legacy = lg

	ng.Athletes = dataset.NewRegistry[*dataset.NewAthlete](constants.CollisionMarker)
	for _, a := range newAthletes {
		a.BirthDate = normalizer.Normalize(a.BirthDate, "")
		key := names.NewGamesKey(a.NameTV, a.Name, a.CountryCode)
		if put(logger, ng.Athletes, key, a) {
			out.Collisions++
		}
	}

	logger.Debug().
		Int("athletes", lg.Athletes.Len()).
		Int("new_athletes", ng.Athletes.Len()).
		Int("countries", lg.Countries.Len()).
		Int("collisions", out.Collisions).
		Msg("datasets loaded")
	return out, nil
}

// put stores v and reports whether the key collided.
func put[T any](logger *zerolog.Logger, r *dataset.Registry[T], key string, v T) bool {
	stored := r.Put(key, v)
	if stored == key {
		return false
	}
	logger.Warn().Str("key", key).Str("stored_as", stored).Msg("identity key collision")
	return true
}
