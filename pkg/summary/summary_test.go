package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium/pkg/dataset"
)

func result(edition, eid, noc, event, athleteID, medal string) *dataset.ResultRow {
	return &dataset.ResultRow{Edition: edition, EditionID: eid, CountryNOC: noc, Event: event, AthleteID: athleteID, Medal: medal}
}

func TestTallyTeamMedalCountedOnce(t *testing.T) {
	results := []*dataset.ResultRow{
		result("2024 Summer Olympics", "63", "FRA", "Foil, Team, Men", "1", "Gold"),
		result("2024 Summer Olympics", "63", "FRA", "Foil, Team, Men", "2", "Gold"),
		result("2024 Summer Olympics", "63", "FRA", "Foil, Team, Men", "3", "Gold"),
		result("2024 Summer Olympics", "63", "FRA", "Epee, Men", "1", "Bronze"),
	}

	rows := Tally(results, []*dataset.Country{{NOC: "FRA", Name: "France"}})
	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, "France", r.Country)
	assert.Equal(t, 3, r.Athletes)
	assert.Equal(t, 1, r.Gold)
	assert.Equal(t, 0, r.Silver)
	assert.Equal(t, 1, r.Bronze)
	assert.Equal(t, 2, r.Total())
}

func TestTallyOrderingAndFallbacks(t *testing.T) {
	results := []*dataset.ResultRow{
		result("2024 Summer Olympics", "63", "USA", "100 metres, Men", "5", ""),
		result("1896 Summer Olympics", "1", "GRE", "Marathon, Men", "9", "Gold"),
		result("2024 Summer Olympics", "63", "FRA", "100 metres, Men", "", "Silver"),
		result("2024 Summer Olympics", "63", "FRA", "100 metres, Men", "", "Silver"),
	}

	rows := Tally(results, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "GRE", rows[0].NOC)
	assert.Equal(t, "GRE", rows[0].Country, "country falls back to the NOC")
	assert.Equal(t, "FRA", rows[1].NOC)
	assert.Equal(t, 1, rows[1].Athletes, "empty athlete ids count as one athlete")
	assert.Equal(t, 1, rows[1].Silver)
	assert.Equal(t, "USA", rows[2].NOC)
	assert.Equal(t, 0, rows[2].Total())
}

func TestTable(t *testing.T) {
	table := Table([]Row{{Edition: "2024 Summer Olympics", EditionID: "63", Country: "France", NOC: "FRA", Athletes: 3, Gold: 1, Bronze: 1}})
	require.Len(t, table, 2)
	assert.Equal(t, Header, table[0])
	assert.Equal(t, []string{"2024 Summer Olympics", "63", "France", "FRA", "3", "1", "0", "1", "2"}, table[1])
}
