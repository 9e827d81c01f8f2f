package postprocess

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
)

func newLegacy() *dataset.Legacy {
	l := &dataset.Legacy{
		Athletes:  dataset.NewRegistry[*dataset.Athlete]("TEMP"),
		Countries: dataset.NewRegistry[*dataset.Country]("TEMP"),
		Editions:  dataset.NewRegistry[*dataset.Edition]("TEMP"),
	}
	return l
}

func TestCleanIdempotent(t *testing.T) {
	l := newLegacy()
	l.Athletes.Put("a", &dataset.Athlete{ID: 1, Height: "180 cm", Weight: "75.5kg", CountryNOC: "fra"})
	l.Athletes.Put("b", &dataset.Athlete{ID: 2, Height: "1.80", Weight: "n/a", CountryNOC: "USA"})
	l.Countries.Put("fra", &dataset.Country{NOC: "fra", Name: "France"})
	l.Results = []*dataset.ResultRow{{Pos: "=3"}, {Pos: " 12 "}, {Pos: "DNF"}, {Pos: ""}}

	Clean(l)

	a, _ := l.Athletes.Get("a")
	assert.Equal(t, "180", a.Height)
	assert.Equal(t, "75.5", a.Weight)
	assert.Equal(t, "FRA", a.CountryNOC)
	b, _ := l.Athletes.Get("b")
	assert.Equal(t, "1.80", b.Height)
	assert.Equal(t, "", b.Weight)
	c, _ := l.Countries.Get("fra")
	assert.Equal(t, "FRA", c.NOC)

	var pos []string
	for _, r := range l.Results {
		pos = append(pos, r.Pos)
	}
	assert.Equal(t, []string{"3", "12", "", ""}, pos)

	snapshot := func() []string {
		out := []string{}
		for _, a := range l.Athletes.Values() {
			out = append(out, a.Height, a.Weight, a.CountryNOC)
		}
		for _, r := range l.Results {
			out = append(out, r.Pos)
		}
		return out
	}
	before := snapshot()
	Clean(l)
	assert.Equal(t, before, snapshot())
}

func TestFormatEditions(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	editions := []*dataset.Edition{
		{Name: "2024 Summer Olympics", Year: "2024"},
		{Name: "1896 Summer Olympics", Year: "1896", StartDate: "6 April", EndDate: "15 April", CompetitionDate: "6 – 15 April"},
		{Name: "2020 Summer Olympics", Year: "2020", CompetitionDate: "24 July â€“ 8 August 2021"},
		{Name: "1916 Summer Olympics", Year: "1916"},
		{Name: "1900 Summer Olympics", Year: "1900", StartDate: "sometime"},
	}
	FormatEditions(ctx, editions)

	assert.Equal(t, "26-Jul-2024", editions[0].StartDate)
	assert.Equal(t, "26-Jul-2024 to 11-Aug-2024", editions[0].CompetitionDate)

	assert.Equal(t, "06-Apr-1896", editions[1].StartDate)
	assert.Equal(t, "15-Apr-1896", editions[1].EndDate)
	assert.Equal(t, "06-Apr-1896 to 15-Apr-1896", editions[1].CompetitionDate)

	assert.Equal(t, "24-Jul-2020", editions[2].StartDate)
	assert.Equal(t, "08-Aug-2021", editions[2].EndDate)
	assert.Equal(t, "24-Jul-2020 to 08-Aug-2021", editions[2].CompetitionDate)

	assert.Equal(t, "", editions[3].CompetitionDate, "no dates at all leaves the range empty")

	assert.Equal(t, "sometime", editions[4].StartDate)
	tl.AssertContains(t, "unparseable edition date")

	// Already canonical input is stable.
	FormatEditions(ctx, editions[1:2])
	assert.Equal(t, "06-Apr-1896 to 15-Apr-1896", editions[1].CompetitionDate)
}

func TestAddAges(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), logging.NewNopLogger())
	l := newLegacy()
	l.Athletes.Put("a", &dataset.Athlete{ID: 1, Born: "01-Jan-2000"})
	l.Athletes.Put("b", &dataset.Athlete{ID: 2, Born: "29-Feb-2000"})
	l.Athletes.Put("c", &dataset.Athlete{ID: 3, Born: "01-Jan-2020"})
	l.Athletes.Put("d", &dataset.Athlete{ID: 4, Born: ""})
	l.Editions.Put("63", &dataset.Edition{ID: "63", EndDate: "11-Aug-2024"})
	l.Editions.Put("70", &dataset.Edition{ID: "70", EndDate: "15-Mar-2023"})
	l.Results = []*dataset.ResultRow{
		{AthleteID: "1", EditionID: "63"},
		{AthleteID: "2", EditionID: "70"},
		{AthleteID: "3", EditionID: "63"},
		{AthleteID: "4", EditionID: "63"},
		{AthleteID: "", EditionID: "63"},
	}

	require.NoError(t, AddAges(ctx, l))

	var ages []string
	for _, r := range l.Results {
		ages = append(ages, r.Age)
	}
	assert.Equal(t, []string{"24", "23", "", "", ""}, ages)

	l.Results = append(l.Results, &dataset.ResultRow{AthleteID: "1", EditionID: "99"})
	err := AddAges(ctx, l)
	assert.True(t, errors.IsNotFound(err))
}
