package reconcile

import (
	"context"
	"strings"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/names"
)

// Outcome is the result of matching one new-games athlete.
type Outcome int

const (
	// Matched means the athlete already existed in the legacy registry.
	Matched Outcome = iota
	// Added means a new legacy athlete was created.
	Added
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == Matched {
		return "matched"
	}
	return "added"
}

// Entry is a resolved athlete together with the raw event and discipline
// lists from the new-games record.
type Entry struct {
	Athlete *dataset.Athlete
	Events  string
	Sports  string
}

// Roster maps new-games athlete codes to resolved entries, in insertion
// order. Re-setting a code replaces its entry in place.
type Roster struct {
	codes   []string
	entries map[string]*Entry
}

// NewRoster returns an empty Roster.
func NewRoster() *Roster {
	return &Roster{entries: make(map[string]*Entry)}
}

// Set stores e under code.
func (r *Roster) Set(code string, e *Entry) {
	if _, ok := r.entries[code]; !ok {
		r.codes = append(r.codes, code)
	}
	r.entries[code] = e
}

// Get returns the entry for code.
func (r *Roster) Get(code string) (*Entry, bool) {
	e, ok := r.entries[code]
	return e, ok
}

// Codes returns codes in insertion order.
func (r *Roster) Codes() []string {
	return r.codes
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.codes)
}

// Matcher decides whether a new-games athlete already exists in the legacy
// registry.
type Matcher struct {
	athletes  *dataset.Registry[*dataset.Athlete]
	countries *dataset.Registry[*dataset.Country]
	state     *State
	permute   bool
}

// NewMatcher returns a Matcher over the legacy athlete and merged country
// registries. New ids are drawn from state.
func NewMatcher(athletes *dataset.Registry[*dataset.Athlete], countries *dataset.Registry[*dataset.Country], state *State, permute bool) *Matcher {
	return &Matcher{athletes: athletes, countries: countries, state: state, permute: permute}
}

// Match resolves the athlete stored under key. On a match, missing height
// and weight are copied onto the legacy record. Otherwise a new Athlete is
// built with the next id; it is not inserted into the registry. A country
// code absent from the merged registry is fatal for a new athlete.
func (m *Matcher) Match(ctx context.Context, key string, a *dataset.NewAthlete) (*dataset.Athlete, Outcome, error) {
	height := zeroAsEmpty(a.Height)
	weight := zeroAsEmpty(a.Weight)

	for _, candidate := range names.Candidates(key, m.permute) {
		existing, ok := m.athletes.Get(candidate)
		if !ok {
			continue
		}
		if existing.Height == "" && height != "" {
			existing.Height = height
		}
		if existing.Weight == "" && weight != "" {
			existing.Weight = weight
		}
		if candidate != key {
			logging.FromContext(ctx).Debug().Str("key", key).Str("matched", candidate).Msg("matched by name permutation")
		}
		return existing, Matched, nil
	}

	country, ok := m.countries.Get(strings.ToLower(a.CountryCode))
	if !ok {
		return nil, Added, errors.NewNotFoundError("noc", a.CountryCode)
	}

	name, _, _ := strings.Cut(key, names.KeySeparator)
	return &dataset.Athlete{
		ID:         m.state.NextAthleteID(),
		Name:       names.Title(name),
		Sex:        a.Gender,
		Born:       a.BirthDate,
		Height:     height,
		Weight:     weight,
		Country:    country.Name,
		CountryNOC: country.NOC,
	}, Added, nil
}

func zeroAsEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
