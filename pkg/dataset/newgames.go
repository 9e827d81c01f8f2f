package dataset

// New-games column names.
const (
	ColCode            = "code"
	ColNameTV          = "name_tv"
	ColGender          = "gender"
	ColCountryCode     = "country_code"
	ColCountryLong     = "country_long"
	ColEvents          = "events"
	ColDisciplines     = "disciplines"
	ColBirthDate       = "birth_date"
	ColDiscipline      = "discipline"
	ColCodeAthlete     = "code_athlete"
	ColCodeTeam        = "code_team"
	ColMedalCode       = "medal_code"
	ColMedalType       = "medal_type"
	ColNationalityCode = "nationality_code"
	ColCurrent         = "current"
	ColAthletes        = "athletes"
	ColAthletesCodes   = "athletes_codes"
)

var (
	newAthleteColumns = []string{ColCode, ColName, ColNameTV, ColGender, ColCountryCode, ColHeight, ColWeight, ColEvents, ColDisciplines, ColBirthDate}
	eventColumns      = []string{ColEvent, ColSport}
	medallistColumns  = []string{ColMedalType, ColMedalCode, ColCodeAthlete, ColCodeTeam, ColEvent, ColDiscipline}
	nocColumns        = []string{ColCode, ColCountry}
	teamColumns       = []string{ColCode, ColCurrent, ColAthletes, ColAthletesCodes, ColDiscipline, ColEvents, ColCountryCode}
)

// NewAthlete is an athlete of the single-edition dataset. Events and
// Disciplines hold the raw list literals from the source cell.
type NewAthlete struct {
	Code        string
	Name        string
	NameTV      string
	Gender      string
	CountryCode string
	Height      string
	Weight      string
	Events      string
	Disciplines string
	BirthDate   string
}

// Event is one entry of the events catalogue.
type Event struct {
	Name  string
	Sport string
}

// Medallist is one row of the medal/placement table.
type Medallist struct {
	MedalType       string
	MedalCode       string
	AthleteCode     string
	TeamCode        string
	Event           string
	Discipline      string
	Gender          string
	NationalityCode string
	BirthDate       string
}

// NOC is a country code entry of the new-games dataset.
type NOC struct {
	Code        string
	Country     string
	CountryLong string
}

// DisplayName prefers the long country name.
func (n *NOC) DisplayName() string {
	if n.CountryLong != "" {
		return n.CountryLong
	}
	return n.Country
}

// Team is a team roster. AthleteCodes and Athletes hold raw list literals.
type Team struct {
	Code         string
	Current      string
	Athletes     string
	AthleteCodes string
	Discipline   string
	Events       string
	CountryCode  string
}

// Active reports whether the roster is marked current.
func (t *Team) Active() bool {
	return lower(t.Current) == "true"
}

// NewGames is the single-edition dataset after load.
type NewGames struct {
	Athletes   *Registry[*NewAthlete]
	Events     []*Event
	Medallists []*Medallist
	NOCs       []*NOC
	Teams      []*Team
}

// DecodeNewAthletes reads the new-games athletes table.
func DecodeNewAthletes(t *Table) ([]*NewAthlete, error) {
	if err := t.Require(newAthleteColumns...); err != nil {
		return nil, err
	}
	out := make([]*NewAthlete, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &NewAthlete{
			Code:        t.Get(row, ColCode),
			Name:        t.Get(row, ColName),
			NameTV:      t.Get(row, ColNameTV),
			Gender:      t.Get(row, ColGender),
			CountryCode: t.Get(row, ColCountryCode),
			Height:      t.Get(row, ColHeight),
			Weight:      t.Get(row, ColWeight),
			Events:      t.Get(row, ColEvents),
			Disciplines: t.Get(row, ColDisciplines),
			BirthDate:   t.Get(row, ColBirthDate),
		})
	}
	return out, nil
}

// DecodeEvents reads the events catalogue.
func DecodeEvents(t *Table) ([]*Event, error) {
	if err := t.Require(eventColumns...); err != nil {
		return nil, err
	}
	out := make([]*Event, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &Event{Name: t.Get(row, ColEvent), Sport: t.Get(row, ColSport)})
	}
	return out, nil
}

// DecodeMedallists reads the medal table. Gender, nationality and birth
// date are optional columns used only by validation.
func DecodeMedallists(t *Table) ([]*Medallist, error) {
	if err := t.Require(medallistColumns...); err != nil {
		return nil, err
	}
	out := make([]*Medallist, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &Medallist{
			MedalType:       t.Get(row, ColMedalType),
			MedalCode:       t.Get(row, ColMedalCode),
			AthleteCode:     t.Get(row, ColCodeAthlete),
			TeamCode:        t.Get(row, ColCodeTeam),
			Event:           t.Get(row, ColEvent),
			Discipline:      t.Get(row, ColDiscipline),
			Gender:          t.Get(row, ColGender),
			NationalityCode: t.Get(row, ColNationalityCode),
			BirthDate:       t.Get(row, ColBirthDate),
		})
	}
	return out, nil
}

// DecodeNOCs reads the new-games NOC table.
func DecodeNOCs(t *Table) ([]*NOC, error) {
	if err := t.Require(nocColumns...); err != nil {
		return nil, err
	}
	out := make([]*NOC, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &NOC{
			Code:        t.Get(row, ColCode),
			Country:     t.Get(row, ColCountry),
			CountryLong: t.Get(row, ColCountryLong),
		})
	}
	return out, nil
}

// DecodeTeams reads team rosters.
func DecodeTeams(t *Table) ([]*Team, error) {
	if err := t.Require(teamColumns...); err != nil {
		return nil, err
	}
	out := make([]*Team, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, &Team{
			Code:         t.Get(row, ColCode),
			Current:      t.Get(row, ColCurrent),
			Athletes:     t.Get(row, ColAthletes),
			AthleteCodes: t.Get(row, ColAthletesCodes),
			Discipline:   t.Get(row, ColDiscipline),
			Events:       t.Get(row, ColEvents),
			CountryCode:  t.Get(row, ColCountryCode),
		})
	}
	return out, nil
}
