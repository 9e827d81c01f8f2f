package reconcile

import (
	"context"
	"strconv"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/listlit"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/lookup"
	"github.com/agentstation/podium/pkg/names"
)

// Policy holds the switches that change how results are synthesized and
// athletes are matched. All default to false.
type Policy struct {
	UseNamePermutations       bool
	RemoveDuplicateTeamEvents bool
	ExcludeInactiveAthletes   bool
	ExcludeNotFoundAthletes   bool
}

// SynthesisStats counts the rows produced by each pass.
type SynthesisStats struct {
	TeamRows       int
	IndividualRows int
	Unmatched      int
}

// AllocateResultIDs assigns a fresh result-group id to every catalogue
// event, keyed "<event> <sport>". Ids continue from the state's counter
// with no gaps. A repeated key keeps the later id.
func AllocateResultIDs(state *State, events []*dataset.Event) map[string]int {
	ids := make(map[string]int, len(events))
	for _, e := range events {
		ids[lookup.Key(e.Name, e.Sport)] = state.NextResultID()
	}
	return ids
}

// Synthesizer produces result rows for one edition from team rosters and
// per-athlete event lists.
type Synthesizer struct {
	edition   *dataset.Edition
	events    lookup.EventNames
	resultIDs map[string]int
	medals    MedalMap
	policy    Policy
}

// NewSynthesizer returns a Synthesizer attaching rows to edition.
func NewSynthesizer(edition *dataset.Edition, events lookup.EventNames, resultIDs map[string]int, medals MedalMap, policy Policy) *Synthesizer {
	return &Synthesizer{
		edition:   edition,
		events:    events,
		resultIDs: resultIDs,
		medals:    medals,
		policy:    policy,
	}
}

// Synthesize runs the team pass followed by the individual pass. Team rows
// always precede individual rows.
func (s *Synthesizer) Synthesize(ctx context.Context, teams []*dataset.Team, roster *Roster) ([]*dataset.ResultRow, SynthesisStats, error) {
	var stats SynthesisStats
	added := make(map[string]bool)

	rows, err := s.teamPass(ctx, teams, roster, added, &stats)
	if err != nil {
		return nil, stats, err
	}
	rows = append(rows, s.individualPass(ctx, roster, added, &stats)...)
	return rows, stats, nil
}

func (s *Synthesizer) teamPass(ctx context.Context, teams []*dataset.Team, roster *Roster, added map[string]bool, stats *SynthesisStats) ([]*dataset.ResultRow, error) {
	logger := logging.FromContext(logging.WithStage(ctx, "team-pass"))

	var rows []*dataset.ResultRow
	for _, team := range teams {
		if s.policy.ExcludeInactiveAthletes && !team.Active() {
			continue
		}
		if team.AthleteCodes == "" {
			continue
		}
		codes, err := listlit.Parse(team.AthleteCodes)
		if err != nil {
			return nil, errors.WrapParse("list", "teams "+team.Code, err)
		}
		var athleteNames []string
		if team.Athletes != "" {
			if athleteNames, err = listlit.Parse(team.Athletes); err != nil {
				return nil, errors.WrapParse("list", "teams "+team.Code, err)
			}
		}

		sport := alias(team.Discipline)
		fullEvent := lookup.Key(team.Events, team.Discipline)
		display := fullEvent
		if name, ok := s.events.Lookup(fullEvent); ok {
			display = name
		}
		resultID := ""
		if id, ok := s.resultIDs[fullEvent]; ok {
			resultID = strconv.Itoa(id)
		}
		medal := s.medals.Get(team.Code)

		for i, code := range codes {
			row := &dataset.ResultRow{
				Edition:     s.edition.Name,
				EditionID:   s.edition.ID,
				Sport:       sport,
				Event:       display,
				ResultID:    resultID,
				Pos:         medal.Pos,
				Medal:       medal.Tier,
				IsTeamSport: true,
			}

			entry, ok := roster.Get(code)
			if !ok {
				stats.Unmatched++
				logger.Warn().Str("athlete_code", code).Str("team", team.Code).Msg("could not find athlete code")
				if s.policy.ExcludeNotFoundAthletes {
					continue
				}
				name := ""
				if i < len(athleteNames) {
					name = names.Title(names.SurnameLast(athleteNames[i]))
				}
				row.CountryNOC = team.CountryCode
				row.Athlete = name
				rows = append(rows, row)
				stats.TeamRows++
				continue
			}

			seen := code + " " + fullEvent
			if s.policy.RemoveDuplicateTeamEvents && added[seen] {
				return nil, errors.NewDuplicateResultError(code, fullEvent)
			}
			added[seen] = true

			row.CountryNOC = entry.Athlete.CountryNOC
			row.Athlete = entry.Athlete.Name
			row.AthleteID = strconv.Itoa(entry.Athlete.ID)
			rows = append(rows, row)
			stats.TeamRows++
		}
	}
	return rows, nil
}

func (s *Synthesizer) individualPass(ctx context.Context, roster *Roster, added map[string]bool, stats *SynthesisStats) []*dataset.ResultRow {
	logger := logging.FromContext(logging.WithStage(ctx, "individual-pass"))

	var rows []*dataset.ResultRow
	for _, code := range roster.Codes() {
		entry, _ := roster.Get(code)
		events := listlit.ParseLenient(entry.Events)
		sports := listlit.ParseLenient(entry.Sports)

		for _, event := range events {
			for _, sport := range sports {
				fullEvent := lookup.Key(event, sport)
				display, ok := s.events.Lookup(fullEvent)
				if !ok {
					continue
				}
				seen := code + " " + fullEvent
				if s.policy.RemoveDuplicateTeamEvents && added[seen] {
					continue
				}

				resultID := ""
				if id, ok := s.resultIDs[fullEvent]; ok {
					resultID = strconv.Itoa(id)
				} else {
					logger.Warn().Str("event", fullEvent).Msg("no result id for event")
				}
				medal := s.medals.Get(seen)

				rows = append(rows, &dataset.ResultRow{
					Edition:     s.edition.Name,
					EditionID:   s.edition.ID,
					CountryNOC:  entry.Athlete.CountryNOC,
					Sport:       alias(sport),
					Event:       display,
					ResultID:    resultID,
					Athlete:     entry.Athlete.Name,
					AthleteID:   strconv.Itoa(entry.Athlete.ID),
					Pos:         medal.Pos,
					Medal:       medal.Tier,
					IsTeamSport: false,
				})
				stats.IndividualRows++
			}
		}
	}
	return rows
}

func alias(sport string) string {
	if renamed, ok := constants.SportAliases[sport]; ok {
		return renamed
	}
	return sport
}
