// Package dates normalizes free-text dates into the canonical DD-Mon-YYYY
// form, infers the century of two-digit years from the athlete's edition,
// and computes ages at competition time.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/logging"
)

// Layouts tried in order once the special forms have been ruled out.
var layouts = []string{
	"2 January 2006",
	"2006-1-2",
	"2-Jan-2006",
	"January 2006",
	"Jan 2, 2006",
	"2-1-2006",
}

var (
	yearOnly     = regexp.MustCompile(`^\d{4}$`)
	dayMonYear   = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2})$`)
	monYear      = regexp.MustCompile(`^([A-Za-z]{3})-(\d{2})$`)
	anyFourDigit = regexp.MustCompile(`\d{4}`)
)

// EditionYears maps an athlete id to the year of the first edition the
// athlete appears in.
type EditionYears map[string]int

// Year returns the edition year recorded for athleteID.
func (e EditionYears) Year(athleteID string) (int, bool) {
	y, ok := e[athleteID]
	return y, ok
}

// Normalizer converts raw dates to the canonical layout.
type Normalizer struct {
	years  EditionYears
	logger *zerolog.Logger
}

// NewNormalizer returns a Normalizer using years for century inference.
// A nil logger falls back to the package default.
func NewNormalizer(years EditionYears, logger *zerolog.Logger) *Normalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Normalizer{years: years, logger: logger}
}

// Normalize returns raw in canonical form, or "" when it cannot be parsed.
// Two-digit years are only resolved when athleteID has a known edition.
func (n *Normalizer) Normalize(raw, athleteID string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if yearOnly.MatchString(s) {
		y, _ := strconv.Atoi(s)
		return firstOfYear(y)
	}

	if edition, ok := n.editionYear(athleteID); ok {
		if m := dayMonYear.FindStringSubmatch(s); m != nil {
			if out, ok := inferCentury(m[1], m[2], m[3], edition); ok {
				return out
			}
		} else if m := monYear.FindStringSubmatch(s); m != nil {
			if out, ok := inferCentury("01", m[1], m[2], edition); ok {
				return out
			}
		}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Format(t)
		}
	}

	best := 0
	for _, m := range anyFourDigit.FindAllString(s, -1) {
		if y, _ := strconv.Atoi(m); y > best {
			best = y
		}
	}
	if best > 0 {
		return firstOfYear(best)
	}

	n.logger.Warn().Str("date", s).Str("athlete_id", athleteID).Msg("invalid date")
	return ""
}

func (n *Normalizer) editionYear(athleteID string) (int, bool) {
	if athleteID == "" || n.years == nil {
		return 0, false
	}
	return n.years.Year(athleteID)
}

// inferCentury picks the latest century that does not place the date after
// the edition year.
func inferCentury(day, mon, yy string, edition int) (string, bool) {
	short, err := strconv.Atoi(yy)
	if err != nil {
		return "", false
	}
	year := 2000 + short
	for year > edition {
		year -= 100
	}
	t, err := time.Parse("2-Jan-2006", day+"-"+mon+"-"+strconv.Itoa(year))
	if err != nil {
		return "", false
	}
	return Format(t), true
}

func firstOfYear(y int) string {
	if y <= 0 {
		return ""
	}
	return Format(time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// Format renders t in the canonical layout.
func Format(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// Parse reads a date in the canonical layout.
func Parse(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, strings.TrimSpace(s))
}

// FormatRange joins two canonical dates into a range string.
func FormatRange(start, end string) string {
	return start + constants.RangeSeparator + end
}

// Age returns the completed years between born and end. A Feb 29 birthday
// is taken as Feb 28 in non-leap years.
func Age(born, end time.Time) int {
	day := born.Day()
	if born.Month() == time.February && day == 29 && !isLeap(end.Year()) {
		day = 28
	}
	birthday := time.Date(end.Year(), born.Month(), day, 0, 0, 0, 0, time.UTC)
	age := end.Year() - born.Year()
	if birthday.After(end) {
		age--
	}
	return age
}

// PlausibleAge reports whether age lies within the accepted bounds.
func PlausibleAge(age int) bool {
	return age >= constants.MinPlausibleAge && age <= constants.MaxPlausibleAge
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
