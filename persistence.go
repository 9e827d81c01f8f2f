package podium

import (
	"path/filepath"

	"github.com/agentstation/podium/internal/csvio"
	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/reconcile"
	"github.com/agentstation/podium/pkg/summary"
	"github.com/agentstation/podium/pkg/validation"
)

// Result is the outcome of a pipeline run
type Result struct {
	RunID  string
	Legacy *dataset.Legacy
	Merge  *reconcile.Result
	Report *validation.Report
	Tally  []summary.Row
}

// Files returns every output table keyed by file name.
func (r *Result) Files() map[string][][]string {
	l := r.Legacy
	return map[string][][]string{
		constants.OutputPrefix + constants.LegacyAthleteBioFile:   dataset.EncodeAthletes(l.AthleteHeader, l.Athletes.Values()),
		constants.OutputPrefix + constants.LegacyEventResultsFile: dataset.EncodeResults(l.Results),
		constants.OutputPrefix + constants.LegacyCountryFile:      dataset.EncodeCountries(l.Countries.Values()),
		constants.OutputPrefix + constants.LegacyGamesFile:        dataset.EncodeEditions(l.EditionHeader, l.Editions.Values()),
		constants.MedalTallyFile:                                  summary.Table(r.Tally),
	}
}

// Write persists every output table under dir.
func (r *Result) Write(dir string) error {
	for name, rows := range r.Files() {
		if err := csvio.WriteFile(filepath.Join(dir, name), rows); err != nil {
			return err
		}
	}
	return nil
}
