package dataset

import (
	"strconv"
	"strings"

	"github.com/agentstation/podium/pkg/errors"
)

// Legacy column names.
const (
	ColAthleteID       = "athlete_id"
	ColName            = "name"
	ColSex             = "sex"
	ColBorn            = "born"
	ColHeight          = "height"
	ColWeight          = "weight"
	ColCountry         = "country"
	ColCountryNOC      = "country_noc"
	ColNOC             = "noc"
	ColEdition         = "edition"
	ColEditionID       = "edition_id"
	ColYear            = "year"
	ColStartDate       = "start_date"
	ColEndDate         = "end_date"
	ColCompetitionDate = "competition_date"
	ColSport           = "sport"
	ColEvent           = "event"
	ColResultID        = "result_id"
	ColAthlete         = "athlete"
	ColPos             = "pos"
	ColMedal           = "medal"
	ColIsTeamSport     = "isTeamSport"
	ColAge             = "age"
)

var (
	athleteColumns = []string{ColAthleteID, ColName, ColSex, ColBorn, ColHeight, ColWeight, ColCountry, ColCountryNOC}
	resultColumns  = []string{ColEdition, ColEditionID, ColCountryNOC, ColSport, ColEvent, ColResultID, ColAthlete, ColAthleteID, ColPos, ColMedal, ColIsTeamSport}
	countryColumns = []string{ColNOC, ColCountry}
	editionColumns = []string{ColEdition, ColEditionID, ColYear, ColStartDate, ColEndDate, ColCompetitionDate}
)

// Athlete is a legacy athlete bio entry.
type Athlete struct {
	ID         int
	Name       string
	Sex        string
	Born       string
	Height     string
	Weight     string
	Country    string
	CountryNOC string

	// Extra holds columns the pipeline does not interpret.
	Extra map[string]string
}

// Country maps a NOC code to its display name.
type Country struct {
	NOC  string
	Name string
}

// Edition is one Olympic Games instance.
type Edition struct {
	Name            string
	ID              string
	Year            string
	StartDate       string
	EndDate         string
	CompetitionDate string

	Extra map[string]string
}

// ResultRow binds an athlete to an event of an edition.
type ResultRow struct {
	Edition     string
	EditionID   string
	CountryNOC  string
	Sport       string
	Event       string
	ResultID    string
	Athlete     string
	AthleteID   string
	Pos         string
	Medal       string
	IsTeamSport bool

	// Age is filled in by post-processing.
	Age string
}

// Legacy is the multi-edition dataset after load.
type Legacy struct {
	Athletes  *Registry[*Athlete]
	Results   []*ResultRow
	Countries *Registry[*Country]
	Editions  *Registry[*Edition]

	// Headers remember the source column order for writing back.
	AthleteHeader []string
	EditionHeader []string
}

// DecodeAthletes reads athlete bios. Birth dates are returned raw.
func DecodeAthletes(t *Table) ([]*Athlete, error) {
	if err := t.Require(athleteColumns...); err != nil {
		return nil, err
	}
	out := make([]*Athlete, 0, t.Len())
	for i, row := range t.Rows {
		raw := t.Get(row, ColAthleteID)
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &errors.ParseError{Format: "id", File: t.Name, Line: i + 2, Column: t.Index(ColAthleteID) + 1, Message: "athlete_id " + strconv.Quote(raw) + " is not numeric", Err: err}
		}
		out = append(out, &Athlete{
			ID:         id,
			Name:       t.Get(row, ColName),
			Sex:        t.Get(row, ColSex),
			Born:       t.Get(row, ColBorn),
			Height:     t.Get(row, ColHeight),
			Weight:     t.Get(row, ColWeight),
			Country:    t.Get(row, ColCountry),
			CountryNOC: t.Get(row, ColCountryNOC),
			Extra:      t.Extras(row, athleteColumns),
		})
	}
	return out, nil
}

// DecodeResults reads event result rows.
func DecodeResults(t *Table) ([]*ResultRow, error) {
	if err := t.Require(resultColumns...); err != nil {
		return nil, err
	}
	out := make([]*ResultRow, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &ResultRow{
			Edition:     t.Get(row, ColEdition),
			EditionID:   t.Get(row, ColEditionID),
			CountryNOC:  t.Get(row, ColCountryNOC),
			Sport:       t.Get(row, ColSport),
			Event:       t.Get(row, ColEvent),
			ResultID:    t.Get(row, ColResultID),
			Athlete:     t.Get(row, ColAthlete),
			AthleteID:   t.Get(row, ColAthleteID),
			Pos:         t.Get(row, ColPos),
			Medal:       t.Get(row, ColMedal),
			IsTeamSport: strings.EqualFold(t.Get(row, ColIsTeamSport), "true"),
			Age:         t.Get(row, ColAge),
		})
	}
	return out, nil
}

// DecodeCountries reads the legacy country registry.
func DecodeCountries(t *Table) ([]*Country, error) {
	if err := t.Require(countryColumns...); err != nil {
		return nil, err
	}
	out := make([]*Country, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &Country{NOC: t.Get(row, ColNOC), Name: t.Get(row, ColCountry)})
	}
	return out, nil
}

// DecodeEditions reads the games table.
func DecodeEditions(t *Table) ([]*Edition, error) {
	if err := t.Require(editionColumns...); err != nil {
		return nil, err
	}
	out := make([]*Edition, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &Edition{
			Name:            t.Get(row, ColEdition),
			ID:              t.Get(row, ColEditionID),
			Year:            t.Get(row, ColYear),
			StartDate:       t.Get(row, ColStartDate),
			EndDate:         t.Get(row, ColEndDate),
			CompetitionDate: t.Get(row, ColCompetitionDate),
			Extra:           t.Extras(row, editionColumns),
		})
	}
	return out, nil
}

// EncodeAthletes renders athletes under header, defaulting to the known columns.
func EncodeAthletes(header []string, athletes []*Athlete) [][]string {
	header = orDefault(header, athleteColumns)
	rows := [][]string{header}
	for _, a := range athletes {
		row := make([]string, len(header))
		for i, col := range header {
			switch col {
			case ColAthleteID:
				row[i] = strconv.Itoa(a.ID)
			case ColName:
				row[i] = a.Name
			case ColSex:
				row[i] = a.Sex
			case ColBorn:
				row[i] = a.Born
			case ColHeight:
				row[i] = a.Height
			case ColWeight:
				row[i] = a.Weight
			case ColCountry:
				row[i] = a.Country
			case ColCountryNOC:
				row[i] = a.CountryNOC
			default:
				row[i] = a.Extra[col]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// EncodeResults renders result rows with a trailing age column.
func EncodeResults(results []*ResultRow) [][]string {
	header := append(append([]string{}, resultColumns...), ColAge)
	rows := [][]string{header}
	for _, r := range results {
		rows = append(rows, []string{
			r.Edition, r.EditionID, r.CountryNOC, r.Sport, r.Event, r.ResultID,
			r.Athlete, r.AthleteID, r.Pos, r.Medal, FormatBool(r.IsTeamSport), r.Age,
		})
	}
	return rows
}

// EncodeCountries renders the country registry.
func EncodeCountries(countries []*Country) [][]string {
	rows := [][]string{append([]string{}, countryColumns...)}
	for _, c := range countries {
		rows = append(rows, []string{c.NOC, c.Name})
	}
	return rows
}

// EncodeEditions renders editions under header, defaulting to the known columns.
func EncodeEditions(header []string, editions []*Edition) [][]string {
	header = orDefault(header, editionColumns)
	rows := [][]string{header}
	for _, e := range editions {
		row := make([]string, len(header))
		for i, col := range header {
			switch col {
			case ColEdition:
				row[i] = e.Name
			case ColEditionID:
				row[i] = e.ID
			case ColYear:
				row[i] = e.Year
			case ColStartDate:
				row[i] = e.StartDate
			case ColEndDate:
				row[i] = e.EndDate
			case ColCompetitionDate:
				row[i] = e.CompetitionDate
			default:
				row[i] = e.Extra[col]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatBool writes booleans the way the legacy tables spell them.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func orDefault(header, fallback []string) []string {
	if len(header) == 0 {
		return append([]string{}, fallback...)
	}
	return header
}
