// Package validation cross-checks the single-edition dataset for internal
// consistency. It only reports; it never changes data.
package validation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/dates"
	"github.com/agentstation/podium/pkg/logging"
)

// Category names, in report order.
const (
	MissingAthletes = "missing_athletes"
	MissingEvents   = "missing_events"
	InvalidGender   = "invalid_gender"
	InvalidNOC      = "invalid_noc"
	InvalidDOB      = "invalid_dob"
)

// Categories lists every category in report order.
var Categories = []string{MissingAthletes, MissingEvents, InvalidGender, InvalidNOC, InvalidDOB}

// previewLimit caps how many offending NOCs are logged.
const previewLimit = 10

// Report holds the offending values found per category.
type Report struct {
	RunID  string              `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Issues map[string][]string `json:"issues" yaml:"issues"`
}

// Count returns the number of findings in category.
func (r *Report) Count(category string) int {
	return len(r.Issues[category])
}

// Total returns the number of findings across all categories.
func (r *Report) Total() int {
	n := 0
	for _, items := range r.Issues {
		n += len(items)
	}
	return n
}

// HasIssues reports whether anything was flagged.
func (r *Report) HasIssues() bool {
	return r.Total() > 0
}

func (r *Report) add(category, value string) {
	r.Issues[category] = append(r.Issues[category], value)
}

// Validate checks every medal-table row: the athlete code must exist in the
// athletes table, the event in the events catalogue, the gender must be
// MALE or FEMALE, a non-empty nationality must be a known NOC, and the
// birth date must be parseable without edition context.
func Validate(ctx context.Context, ng *dataset.NewGames, countries []*dataset.Country, normalizer *dates.Normalizer) *Report {
	logger := logging.FromContext(logging.WithStage(ctx, "validate"))

	report := &Report{
		RunID:  logging.RunID(ctx),
		Issues: make(map[string][]string, len(Categories)),
	}

	athletes := make(map[string]bool, ng.Athletes.Len())
	for _, a := range ng.Athletes.Values() {
		athletes[a.Code] = true
	}
	events := make(map[string]bool, len(ng.Events))
	for _, e := range ng.Events {
		events[e.Name] = true
	}
	nocs := make(map[string]bool, len(countries))
	for _, c := range countries {
		nocs[c.NOC] = true
	}

	for _, m := range ng.Medallists {
		if !athletes[m.AthleteCode] {
			report.add(MissingAthletes, m.AthleteCode)
		}
		if !events[m.Event] {
			report.add(MissingEvents, m.Event)
		}
		if g := strings.ToUpper(m.Gender); g != "MALE" && g != "FEMALE" {
			report.add(InvalidGender, m.Gender)
		}
		if noc := strings.ToUpper(m.NationalityCode); noc != "" && !nocs[noc] {
			report.add(InvalidNOC, noc)
		}
		if normalizer.Normalize(m.BirthDate, "") == "" {
			report.add(InvalidDOB, m.BirthDate)
		}
	}

	Log(logger, report)
	return report
}

// Log writes one event per non-empty category.
func Log(logger *zerolog.Logger, r *Report) {
	for _, category := range Categories {
		items := r.Issues[category]
		if len(items) == 0 {
			continue
		}
		event := logger.Warn().Str("category", category).Int("issues", len(items))
		if category == InvalidNOC {
			event = event.Strs("sample", items[:min(len(items), previewLimit)])
		}
		event.Msg("validation issues found")
	}
}
