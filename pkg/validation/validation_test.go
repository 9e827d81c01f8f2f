package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/dates"
	"github.com/agentstation/podium/pkg/logging"
)

func TestValidate(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithRunID(logging.WithLogger(context.Background(), tl.Logger), "run-1")

	athletes := dataset.NewRegistry[*dataset.NewAthlete]("TEMP")
	athletes.Put("jean dupont,fra", &dataset.NewAthlete{Code: "1"})
	athletes.Put("jean dupont,fra", &dataset.NewAthlete{Code: "2"})
	ng := &dataset.NewGames{
		Athletes: athletes,
		Events:   []*dataset.Event{{Name: "Men's Foil"}},
		Medallists: []*dataset.Medallist{
			{AthleteCode: "1", Event: "Men's Foil", Gender: "Male", NationalityCode: "fra", BirthDate: "1990-01-01"},
			{AthleteCode: "2", Event: "Men's Foil", Gender: "female", NationalityCode: "", BirthDate: "not a date"},
			{AthleteCode: "3", Event: "Women's Sabre", Gender: "X", NationalityCode: "ZZZ", BirthDate: "12-Mar-98"},
		},
	}
	countries := []*dataset.Country{{NOC: "FRA", Name: "France"}}
	normalizer := dates.NewNormalizer(dates.EditionYears{"3": 2024}, tl.Logger)

	report := Validate(ctx, ng, countries, normalizer)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, []string{"3"}, report.Issues[MissingAthletes], "collided athletes still count as present")
	assert.Equal(t, []string{"Women's Sabre"}, report.Issues[MissingEvents])
	assert.Equal(t, []string{"X"}, report.Issues[InvalidGender])
	assert.Equal(t, []string{"ZZZ"}, report.Issues[InvalidNOC], "empty nationality is not flagged")
	assert.Equal(t, []string{"not a date", "12-Mar-98"}, report.Issues[InvalidDOB])
	assert.Equal(t, 6, report.Total())
	assert.True(t, report.HasIssues())
	assert.Equal(t, 1, report.Count(InvalidNOC))

	tl.AssertContains(t, "validation issues found")
	tl.AssertContains(t, `"category":"invalid_noc"`)
}

func TestValidateClean(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), logging.NewNopLogger())
	ng := &dataset.NewGames{Athletes: dataset.NewRegistry[*dataset.NewAthlete]("TEMP")}

	report := Validate(ctx, ng, nil, dates.NewNormalizer(nil, logging.NewNopLogger()))
	assert.False(t, report.HasIssues())
	assert.Equal(t, 0, report.Count(MissingEvents))
}

func TestValidateEmptyNationalityStillChecksBirthDate(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), logging.NewNopLogger())
	athletes := dataset.NewRegistry[*dataset.NewAthlete]("TEMP")
	athletes.Put("ann lee,usa", &dataset.NewAthlete{Code: "9"})
	ng := &dataset.NewGames{
		Athletes: athletes,
		Events:   []*dataset.Event{{Name: "Shot Put"}},
		Medallists: []*dataset.Medallist{
			{AthleteCode: "9", Event: "Shot Put", Gender: "Female", NationalityCode: "", BirthDate: "sometime"},
		},
	}

	report := Validate(ctx, ng, nil, dates.NewNormalizer(nil, logging.NewNopLogger()))
	assert.Empty(t, report.Issues[InvalidNOC])
	assert.Equal(t, []string{"sometime"}, report.Issues[InvalidDOB])
	assert.Equal(t, 1, report.Total())
}
