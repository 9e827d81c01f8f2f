package reconcile

import (
	"strconv"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/dates"
	"github.com/agentstation/podium/pkg/errors"
)

// State is the mutable context shared by every merge stage of one run: the
// id allocators and the athlete to edition-year lookup. It is created once
// and passed to the stages that need it.
type State struct {
	nextAthleteID int
	nextResultID  int
	editionYears  dates.EditionYears
}

// NewState returns a State whose allocators start at 1.
func NewState() *State {
	return &State{
		nextAthleteID: 1,
		nextResultID:  1,
		editionYears:  dates.EditionYears{},
	}
}

// SeedAthleteIDs sets the athlete allocator to one past the largest id.
func (s *State) SeedAthleteIDs(athletes []*dataset.Athlete) {
	highest := 0
	for _, a := range athletes {
		if a.ID > highest {
			highest = a.ID
		}
	}
	s.nextAthleteID = highest + 1
}

// SeedResultIDs sets the result-group allocator to one past the largest
// result id. A non-numeric id is a parse error.
func (s *State) SeedResultIDs(results []*dataset.ResultRow) error {
	highest := 0
	for i, r := range results {
		id, err := strconv.Atoi(r.ResultID)
		if err != nil {
			return &errors.ParseError{
				Format:  "id",
				File:    "event results",
				Line:    i + 2,
				Message: "result_id " + strconv.Quote(r.ResultID) + " is not numeric",
				Err:     err,
			}
		}
		if id > highest {
			highest = id
		}
	}
	s.nextResultID = highest + 1
	return nil
}

// NextAthleteID allocates an athlete id.
func (s *State) NextAthleteID() int {
	id := s.nextAthleteID
	s.nextAthleteID++
	return id
}

// NextResultID allocates a result-group id.
func (s *State) NextResultID() int {
	id := s.nextResultID
	s.nextResultID++
	return id
}

// BuildEditionYears records, for every athlete id in results, the year of
// the first edition it appears in. A result pointing at an unknown edition
// is fatal.
func (s *State) BuildEditionYears(results []*dataset.ResultRow, editions []*dataset.Edition) error {
	years := make(map[string]int, len(editions))
	for _, e := range editions {
		y, err := strconv.Atoi(e.Year)
		if err != nil {
			return errors.NewParseError("id", "games", "year "+strconv.Quote(e.Year)+" of edition "+e.ID+" is not numeric", err)
		}
		years[e.ID] = y
	}
	for _, r := range results {
		if _, seen := s.editionYears[r.AthleteID]; seen {
			continue
		}
		y, ok := years[r.EditionID]
		if !ok {
			return errors.NewNotFoundError("edition", r.EditionID)
		}
		s.editionYears[r.AthleteID] = y
	}
	return nil
}

// EditionYears returns the athlete to edition-year lookup.
func (s *State) EditionYears() dates.EditionYears {
	return s.editionYears
}
