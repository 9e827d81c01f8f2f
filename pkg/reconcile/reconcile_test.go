package reconcile

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
	"github.com/agentstation/podium/pkg/logging"
)

func testContext(t *testing.T) (context.Context, *logging.TestLogger) {
	t.Helper()
	tl := logging.NewTestLogger(t)
	return logging.WithLogger(context.Background(), tl.Logger), tl
}

func mustLoad(t *testing.T, r Reconciler) *Loaded {
	t.Helper()
	ctx, _ := testContext(t)
	loaded, err := r.Load(ctx, legacyTables(), newTables())
	require.NoError(t, err)
	return loaded
}

func TestMergeNOCs(t *testing.T) {
	ctx, tl := testContext(t)
	legacy := []*dataset.Country{{NOC: "usa", Name: "United States"}}
	incoming := []*dataset.NOC{{Code: "GBR", Country: "United Kingdom"}, {Code: "USA", Country: "USA"}}

	merged, added := MergeNOCs(ctx, legacy, incoming)

	want := []*dataset.Country{
		{NOC: "GBR", Name: "United Kingdom"},
		{NOC: "USA", Name: "United States"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merged countries mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, added, 1)
	assert.Equal(t, "GBR", added[0].NOC)
	tl.AssertContains(t, "added noc")
}

func TestMergeNOCsUniqueCodes(t *testing.T) {
	ctx, _ := testContext(t)
	incoming := []*dataset.NOC{{Code: "aaa", Country: "A"}, {Code: "AAA", Country: "A again"}}

	merged, added := MergeNOCs(ctx, nil, incoming)
	assert.Len(t, merged, 1)
	assert.Len(t, added, 1)
	assert.Equal(t, "AAA", merged[0].NOC)
}

func TestStateAllocators(t *testing.T) {
	s := NewState()
	s.SeedAthleteIDs([]*dataset.Athlete{{ID: 4}, {ID: 17}, {ID: 2}})
	assert.Equal(t, 18, s.NextAthleteID())
	assert.Equal(t, 19, s.NextAthleteID())

	require.NoError(t, s.SeedResultIDs([]*dataset.ResultRow{{ResultID: "7"}, {ResultID: "3"}}))
	assert.Equal(t, 8, s.NextResultID())

	err := s.SeedResultIDs([]*dataset.ResultRow{{ResultID: "x"}})
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestBuildEditionYears(t *testing.T) {
	editions := []*dataset.Edition{{ID: "1", Year: "1896"}, {ID: "61", Year: "2020"}}

	s := NewState()
	require.NoError(t, s.BuildEditionYears([]*dataset.ResultRow{
		{AthleteID: "5", EditionID: "1"},
		{AthleteID: "5", EditionID: "61"},
		{AthleteID: "6", EditionID: "61"},
	}, editions))
	y, ok := s.EditionYears().Year("5")
	assert.True(t, ok)
	assert.Equal(t, 1896, y, "first edition per athlete wins")

	err := NewState().BuildEditionYears([]*dataset.ResultRow{{AthleteID: "5", EditionID: "99"}}, editions)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoad(t *testing.T) {
	r, err := New(WithEventNames(eventNames()))
	require.NoError(t, err)
	loaded := mustLoad(t, r)

	athlete, ok := loaded.Legacy.Athletes.Get("jean pierre,fra")
	require.True(t, ok)
	assert.Equal(t, "12-Mar-1998", athlete.Born, "two-digit year resolved against the athlete's edition")

	zoe, ok := loaded.Legacy.Athletes.Get("zoe lemaitre,fra")
	require.True(t, ok)
	assert.Equal(t, "01-Jan-1990", zoe.Born)

	var nocs []string
	for _, c := range loaded.Legacy.Countries.Values() {
		nocs = append(nocs, c.NOC)
	}
	assert.Equal(t, []string{"FRA", "GBR", "USA"}, nocs)

	assert.Equal(t, []string{"jean pierre-paul,fra", "anna smith,usa", "tom jones,gbr"}, loaded.New.Athletes.Keys())
	jean, _ := loaded.New.Athletes.Get("jean pierre-paul,fra")
	assert.Equal(t, "12-Mar-1998", jean.BirthDate)
}

func TestLoadSchemaMismatch(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	ctx, _ := testContext(t)

	tables := newTables()
	tables.Teams = dataset.FromRows("teams.csv", [][]string{{"code", "events"}})
	_, err = r.Load(ctx, legacyTables(), tables)
	assert.True(t, errors.IsSchemaMismatch(err))
}

func TestMerge(t *testing.T) {
	r, err := New(WithEventNames(eventNames()))
	require.NoError(t, err)
	loaded := mustLoad(t, r)
	ctx, tl := testContext(t)

	result, err := r.Merge(ctx, loaded)
	require.NoError(t, err)

	stats := result.Metadata.Stats
	assert.Equal(t, 1, stats.AthletesMatched)
	assert.Equal(t, 2, stats.AthletesAdded)
	assert.Equal(t, 2, stats.TeamRows)
	assert.Equal(t, 3, stats.IndividualRows)
	assert.Equal(t, 1, stats.UnmatchedRosterAthletes)
	assert.True(t, result.HasWarnings())
	tl.AssertContains(t, "could not find athlete code")

	type row struct {
		NOC, Sport, Event, ResultID, Athlete, AthleteID, Pos, Medal string
		Team                                                        bool
	}
	var got []row
	for _, r := range result.Rows {
		assert.Equal(t, "2024 Summer Olympics", r.Edition)
		assert.Equal(t, "63", r.EditionID)
		got = append(got, row{r.CountryNOC, r.Sport, r.Event, r.ResultID, r.Athlete, r.AthleteID, r.Pos, r.Medal, r.IsTeamSport})
	}
	want := []row{
		{"FRA", "Fencing", "Foil, Team, Men", "502", "Jean Pierre-Paul", "13", "1", "Gold", true},
		{"FRA", "Fencing", "Foil, Team, Men", "502", "Luc Martin", "", "1", "Gold", true},
		{"FRA", "Fencing", "Foil, Team, Men", "502", "Jean Pierre-Paul", "13", "", "", false},
		{"USA", "Athletics", "100 metres, Women", "503", "Anna Smith", "12", "2", "Silver", false},
		{"GBR", "Athletics", "100 metres, Men", "504", "Tom Jones", "14", "", "", false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	anna, _ := loaded.Legacy.Athletes.Get("anna smith,usa")
	assert.Equal(t, "", anna.Height, "zero height is not copied")
	assert.Equal(t, "USA", anna.CountryNOC, "legacy codes are uppercased on load")
	assert.Equal(t, "60", anna.Weight, "missing weight is enriched")

	tom, ok := loaded.Legacy.Athletes.Get("tom jones,gbr")
	require.True(t, ok)
	assert.Equal(t, "United Kingdom", tom.Country)
	assert.Equal(t, "GBR", tom.CountryNOC)

	assert.Len(t, loaded.Legacy.Results, 7)
}

func TestMergeWithPermutationsAndDedup(t *testing.T) {
	r, err := New(
		WithEventNames(eventNames()),
		WithNamePermutations(true),
		WithRemoveDuplicateTeamEvents(true),
		WithExcludeNotFoundAthletes(true),
	)
	require.NoError(t, err)
	loaded := mustLoad(t, r)
	ctx, _ := testContext(t)

	result, err := r.Merge(ctx, loaded)
	require.NoError(t, err)

	stats := result.Metadata.Stats
	assert.Equal(t, 2, stats.AthletesMatched)
	assert.Equal(t, 1, stats.AthletesAdded)
	assert.Equal(t, 1, stats.TeamRows)
	assert.Equal(t, 2, stats.IndividualRows)

	jean, _ := loaded.Legacy.Athletes.Get("jean pierre,fra")
	assert.Equal(t, "182", jean.Height)
	assert.Equal(t, "80", jean.Weight)
	assert.Equal(t, "10", result.Rows[0].AthleteID)
	assert.Equal(t, "Jean Pierre", result.Rows[0].Athlete)
	assert.False(t, loaded.Legacy.Athletes.Has("jean pierre-paul,fra"))
}

func TestMergeMissingEdition(t *testing.T) {
	r, err := New(WithNewEditionID("99"))
	require.NoError(t, err)
	loaded := mustLoad(t, r)
	ctx, _ := testContext(t)

	_, err = r.Merge(ctx, loaded)
	assert.True(t, errors.IsNotFound(err))
}

func TestMergeUnknownCountry(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	ctx, _ := testContext(t)

	tables := newTables()
	tables.Athletes = dataset.FromRows("athletes.csv", [][]string{
		{"code", "name", "name_tv", "gender", "country_code", "height", "weight", "events", "disciplines", "birth_date"},
		{"2001", "NOBODY Ann", "Ann NOBODY", "Female", "XYZ", "", "", "[]", "[]", ""},
	})
	loaded, err := r.Load(ctx, legacyTables(), tables)
	require.NoError(t, err)

	_, err = r.Merge(ctx, loaded)
	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "XYZ", nf.ID)
}

func TestOptionsValidation(t *testing.T) {
	_, err := New(WithNewEditionID(" "))
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithEventNames(nil))
	assert.Error(t, err)

	_, err = New(WithFolder(nil))
	assert.Error(t, err)

	r, err := New(WithPolicy(Policy{ExcludeInactiveAthletes: true}))
	require.NoError(t, err)
	assert.True(t, r.(*reconciler).policy.ExcludeInactiveAthletes)
}
