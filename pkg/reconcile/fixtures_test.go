package reconcile

import (
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/lookup"
)

func legacyTables() LegacyTables {
	return LegacyTables{
		Athletes: dataset.FromRows("olympic_athlete_bio.csv", [][]string{
			{"athlete_id", "name", "sex", "born", "height", "weight", "country", "country_noc"},
			{"10", "Jean Pierre", "Male", "12-Mar-98", "", "", "France", "FRA"},
			{"11", "Zoé Lemaître", "Female", "1990", "170", "", "France", "FRA"},
			{"12", "Anna Smith", "Female", "4 April 1985", "", "", "United States", "usa"},
		}),
		Results: dataset.FromRows("olympic_athlete_event_results.csv", [][]string{
			{"edition", "edition_id", "country_noc", "sport", "event", "result_id", "athlete", "athlete_id", "pos", "medal", "isTeamSport"},
			{"2020 Summer Olympics", "61", "FRA", "Fencing", "Foil, Men", "500", "Jean Pierre", "10", "3", "Bronze", "False"},
			{"2020 Summer Olympics", "61", "USA", "Athletics", "100 metres, Women", "501", "Anna Smith", "12", "5", "", "False"},
		}),
		Countries: dataset.FromRows("olympics_country.csv", [][]string{
			{"noc", "country"},
			{"usa", "United States"},
			{"FRA", "France"},
		}),
		Editions: dataset.FromRows("olympics_games.csv", [][]string{
			{"edition", "edition_id", "edition_url", "year", "city", "start_date", "end_date", "competition_date", "isHeld"},
			{"2020 Summer Olympics", "61", "/editions/61", "2020", "Tokyo", "23 July", "8 August", "24 July – 8 August 2021", ""},
			{"2024 Summer Olympics", "63", "/editions/63", "2024", "Paris", "", "", "", ""},
		}),
	}
}

func newTables() NewTables {
	return NewTables{
		Athletes: dataset.FromRows("athletes.csv", [][]string{
			{"code", "name", "name_tv", "gender", "country_code", "height", "weight", "events", "disciplines", "birth_date"},
			{"1001", "PIERRE-PAUL Jean", "Jean PIERRE-PAUL", "Male", "FRA", "182", "80", "['Men\\'s Foil Team']", "['Fencing']", "1998-03-12"},
			{"1002", "SMITH Anna", "Anna SMITH", "Female", "USA", "0", "60", "['Women\\'s 100m']", "['Athletics']", "1985-04-04"},
			{"1003", "JONES Tom", "", "Male", "GBR", "0", "0", "[Men's 100m]", "['Athletics']", "2001-07-09"},
		}),
		Events: dataset.FromRows("events.csv", [][]string{
			{"event", "tag", "sport", "sport_code", "sport_url"},
			{"Men's Foil Team", "fencing", "Fencing", "FEN", ""},
			{"Women's 100m", "athletics", "Athletics", "ATH", ""},
			{"Men's 100m", "athletics", "Athletics", "ATH", ""},
		}),
		Medallists: dataset.FromRows("medallists.csv", [][]string{
			{"medal_date", "medal_type", "medal_code", "name", "gender", "country_code", "nationality_code", "team", "team_gender", "discipline", "event", "event_type", "url_event", "birth_date", "code_athlete", "code_team"},
			{"2024-08-04", "Gold Medal", "1.0", "PIERRE-PAUL Jean", "Male", "FRA", "FRA", "", "", "Fencing", "Men's Foil Team", "TEAM", "", "1998-03-12", "1001", "FENMTEAM-FRA01"},
			{"2024-08-03", "Silver Medal", "2.0", "SMITH Anna", "Female", "USA", "USA", "", "", "Athletics", "Women's 100m", "ATH", "", "1985-04-04", "1002", ""},
			{"2024-08-03", "Bronze Medal", "3.0", "SMITH Anna", "Female", "USA", "USA", "", "", "Athletics", "Women's 100m", "ATH", "", "1985-04-04", "1002", ""},
		}),
		NOCs: dataset.FromRows("nocs.csv", [][]string{
			{"code", "country", "country_long", "tag", "note", "country_url"},
			{"FRA", "France", "France", "france", "P", ""},
			{"gbr", "Great Britain", "United Kingdom", "great-britain", "P", ""},
		}),
		Teams: dataset.FromRows("teams.csv", [][]string{
			{"code", "current", "team", "team_gender", "country", "country_long", "country_code", "discipline", "disciplines_code", "events", "athletes", "coaches", "athletes_codes", "num_athletes", "coaches_codes", "num_coaches"},
			{"FENMTEAM-FRA01", "True", "France", "M", "France", "France", "FRA", "Fencing", "FEN", "Men's Foil Team", "['PIERRE-PAUL Jean', 'MARTIN Luc']", "", "['1001', '9999']", "2", "", ""},
			{"FENMTEAM-FRA02", "False", "France", "M", "France", "France", "FRA", "Fencing", "FEN", "Men's Foil Team", "[]", "", "", "0", "", ""},
		}),
	}
}

func eventNames() lookup.Table {
	return lookup.Table{
		"Men's Foil Team Fencing": "Foil, Team, Men",
		"Women's 100m Athletics":  "100 metres, Women",
		"Men's 100m Athletics":    "100 metres, Men",
	}
}

func tableOf(m map[string]string) lookup.Table {
	if m == nil {
		return lookup.Table{}
	}
	return lookup.Table(m)
}
