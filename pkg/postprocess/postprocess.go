// Package postprocess finishes a merged dataset: edition date ranges are
// put into canonical form, ages at competition time are derived, and
// units, codes and placements are cleaned.
package postprocess

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/dates"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
)

var (
	number     = regexp.MustCompile(`[\d.]+`)
	rangeDash  = regexp.MustCompile(`–|â€“`)
	fourDigits = regexp.MustCompile(`\d{4}$`)
)

// Clean strips units from height and weight, uppercases NOC codes and
// empties non-numeric placements. Running it twice changes nothing.
func Clean(legacy *dataset.Legacy) {
	for _, a := range legacy.Athletes.Values() {
		a.Height = stripUnits(a.Height)
		a.Weight = stripUnits(a.Weight)
		a.CountryNOC = strings.ToUpper(a.CountryNOC)
	}
	for _, c := range legacy.Countries.Values() {
		c.NOC = strings.ToUpper(c.NOC)
	}
	for _, r := range legacy.Results {
		r.CountryNOC = strings.ToUpper(r.CountryNOC)
		r.Pos = cleanPosition(r.Pos)
	}
}

func stripUnits(s string) string {
	if s == "" || isDecimal(s) {
		return s
	}
	return number.FindString(s)
}

// isDecimal accepts digits with at most one dot.
func isDecimal(s string) bool {
	return isDigits(strings.Replace(s, ".", "", 1))
}

func cleanPosition(pos string) string {
	if pos == "" {
		return ""
	}
	pos = strings.TrimSpace(strings.ReplaceAll(pos, "=", ""))
	if !isDigits(pos) {
		return ""
	}
	return pos
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatEditions rewrites start, end and competition dates of every edition
// in canonical form. Pieces that cannot be parsed are left as they are.
func FormatEditions(ctx context.Context, editions []*dataset.Edition) {
	logger := logging.FromContext(logging.WithStage(ctx, "editions"))

	for _, e := range editions {
		if fixed, ok := constants.FixedEditionDates[e.Name]; ok {
			e.StartDate, e.EndDate = fixed[0], fixed[1]
			e.CompetitionDate = dates.FormatRange(fixed[0], fixed[1])
			continue
		}

		start := strings.TrimSpace(e.StartDate)
		end := strings.TrimSpace(e.EndDate)
		competition := strings.TrimSpace(e.CompetitionDate)
		formattedRange := ""

		if len(competition) > 1 {
			left, right, ok := splitRange(competition)
			if ok {
				from, errFrom := editionDay(left, e.Year)
				to, errTo := editionDay(right, e.Year)
				if errFrom == nil && errTo == nil {
					formattedRange = dates.FormatRange(from, to)
				} else {
					logger.Warn().Str("edition", e.Name).Str("competition_date", competition).Msg("unparseable competition range")
				}
				if start == "" {
					start = left
				}
				if end == "" {
					end = right
				}
			} else {
				logger.Warn().Str("edition", e.Name).Str("competition_date", competition).Msg("competition range has no separator")
			}
		}

		if start != "" {
			e.StartDate = formatOrKeep(logger, e, start)
		}
		if end != "" {
			e.EndDate = formatOrKeep(logger, e, end)
		}

		switch {
		case formattedRange != "":
			e.CompetitionDate = formattedRange
		case e.StartDate != "" || e.EndDate != "":
			e.CompetitionDate = dates.FormatRange(e.StartDate, e.EndDate)
		}
	}
}

// splitRange splits "24 July – 8 August" into its sides. A bare day on the
// left borrows the month of the right side.
func splitRange(s string) (left, right string, ok bool) {
	parts := rangeDash.Split(s, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	left = strings.TrimSpace(parts[0])
	right = strings.TrimSpace(parts[1])
	if isDigits(left) {
		if fields := strings.Fields(right); len(fields) > 1 {
			left += " " + fields[1]
		}
	}
	return left, right, true
}

// editionDay parses "24 July" or "24 July 2021", supplying year when the
// piece has none. Canonical input is returned unchanged.
func editionDay(s, year string) (string, error) {
	if t, err := dates.Parse(s); err == nil {
		return dates.Format(t), nil
	}
	if !fourDigits.MatchString(s) {
		s += " " + year
	}
	t, err := time.Parse(constants.EditionInputLayout, s)
	if err != nil {
		return "", errors.WrapParse("date", s, err)
	}
	return dates.Format(t), nil
}

func formatOrKeep(logger *zerolog.Logger, e *dataset.Edition, s string) string {
	out, err := editionDay(s, e.Year)
	if err != nil {
		logger.Warn().Str("edition", e.Name).Str("date", s).Msg("unparseable edition date")
		return s
	}
	return out
}

// AddAges sets the age of every result row whose athlete has a known birth
// date. Ages outside the plausible bounds are left empty. A row naming an
// edition that does not exist is fatal.
func AddAges(ctx context.Context, legacy *dataset.Legacy) error {
	logger := logging.FromContext(logging.WithStage(ctx, "ages"))

	born := make(map[string]time.Time, legacy.Athletes.Len())
	for _, a := range legacy.Athletes.Values() {
		if a.Born == "" {
			continue
		}
		if t, err := dates.Parse(a.Born); err == nil {
			born[strconv.Itoa(a.ID)] = t
		}
	}

	skipped := 0
	for _, r := range legacy.Results {
		r.Age = ""
		birth, ok := born[r.AthleteID]
		if !ok {
			continue
		}
		edition, ok := legacy.Editions.Get(strings.ToLower(r.EditionID))
		if !ok {
			return errors.NewNotFoundError("edition", r.EditionID)
		}
		end, err := dates.Parse(edition.EndDate)
		if err != nil {
			skipped++
			continue
		}
		if age := dates.Age(birth, end); dates.PlausibleAge(age) {
			r.Age = strconv.Itoa(age)
		}
	}
	if skipped > 0 {
		logger.Debug().Int("rows", skipped).Msg("edition end date unavailable for age")
	}
	return nil
}
