package reconcile

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/logging"
	"github.com/agentstation/podium/pkg/lookup"
)

// Medal is the tier and placement attributed to an athlete or team.
type Medal struct {
	Tier string
	Pos  string
}

// MedalMap holds medal attributions keyed by team code, or by
// "<athlete code> <event> <discipline>" for individual entries.
type MedalMap map[string]Medal

// IndividualKey builds the key of an individual medal entry.
func IndividualKey(athleteCode, event, discipline string) string {
	return athleteCode + " " + lookup.Key(event, discipline)
}

// BuildMedalMap indexes the medal table. The first row for a key wins. The
// tier is the first word of the medal type; the placement is the medal code
// truncated to an integer.
func BuildMedalMap(ctx context.Context, medallists []*dataset.Medallist) MedalMap {
	logger := logging.FromContext(ctx)
	m := make(MedalMap, len(medallists))
	for _, row := range medallists {
		key := row.TeamCode
		if key == "" {
			key = IndividualKey(row.AthleteCode, row.Event, row.Discipline)
		}
		if _, seen := m[key]; seen {
			continue
		}
		tier, _, _ := strings.Cut(row.MedalType, " ")
		m[key] = Medal{Tier: tier, Pos: position(logger, row.MedalCode)}
	}
	return m
}

// Get returns the attribution for key, or a zero Medal.
func (m MedalMap) Get(key string) Medal {
	return m[key]
}

func position(logger *zerolog.Logger, code string) string {
	if code == "" {
		return ""
	}
	f, err := strconv.ParseFloat(code, 64)
	if err != nil {
		logger.Warn().Str("medal_code", code).Msg("unparseable medal code")
		return ""
	}
	return strconv.Itoa(int(f))
}
