package output

import (
	"strconv"

	"github.com/agentstation/podium/pkg/reconcile"
	"github.com/agentstation/podium/pkg/summary"
	"github.com/agentstation/podium/pkg/validation"
)

// TallyData converts tally rows to table data in file column order.
func TallyData(rows []summary.Row) Data {
	d := Data{
		Headers:         []string{"Edition", "ID", "Country", "NOC", "Athletes", "Gold", "Silver", "Bronze", "Total"},
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	}
	for _, r := range rows {
		d.Rows = append(d.Rows, r.Record())
	}
	return d
}

// ReportData lists every validation category with its finding count.
func ReportData(r *validation.Report) Data {
	d := Data{
		Headers:         []string{"Category", "Issues"},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
	for _, category := range validation.Categories {
		d.Rows = append(d.Rows, []string{category, strconv.Itoa(r.Count(category))})
	}
	return d
}

// StatsData renders merge statistics as a key-value table.
func StatsData(s reconcile.ResultStatistics) Data {
	return Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Athletes matched", strconv.Itoa(s.AthletesMatched)},
			{"Athletes added", strconv.Itoa(s.AthletesAdded)},
			{"NOCs added", strconv.Itoa(s.NOCsAdded)},
			{"Key collisions", strconv.Itoa(s.Collisions)},
			{"Team rows", strconv.Itoa(s.TeamRows)},
			{"Individual rows", strconv.Itoa(s.IndividualRows)},
			{"Unmatched roster athletes", strconv.Itoa(s.UnmatchedRosterAthletes)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// Tally picks the tabular or structured form of rows for format.
func Tally(rows []summary.Row, format Format) any {
	if tabular(format) {
		return TallyData(rows)
	}
	return rows
}

// Report picks the tabular or structured form of r for format.
func Report(r *validation.Report, format Format) any {
	if tabular(format) {
		return ReportData(r)
	}
	return r
}

func tabular(format Format) bool {
	return format == FormatTable || format == FormatCSV || format == ""
}
