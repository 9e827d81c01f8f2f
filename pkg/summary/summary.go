// Package summary aggregates result rows into the per-edition, per-country
// medal tally.
package summary

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/podium/pkg/dataset"
)

// Header is the fixed column order of the tally table.
var Header = []string{
	"edition",
	"edition_id",
	"Country",
	"NOC",
	"number_of_athletes",
	"gold_medal_count",
	"silver_medal_count",
	"bronze_medal_count",
	"total_medals",
}

// Row is one (edition, NOC) line of the tally.
type Row struct {
	Edition   string `json:"edition" yaml:"edition"`
	EditionID string `json:"edition_id" yaml:"edition_id"`
	Country   string `json:"country" yaml:"country"`
	NOC       string `json:"noc" yaml:"noc"`
	Athletes  int    `json:"number_of_athletes" yaml:"number_of_athletes"`
	Gold      int    `json:"gold_medal_count" yaml:"gold_medal_count"`
	Silver    int    `json:"silver_medal_count" yaml:"silver_medal_count"`
	Bronze    int    `json:"bronze_medal_count" yaml:"bronze_medal_count"`
}

// Total returns the number of medals of all tiers.
func (r Row) Total() int {
	return r.Gold + r.Silver + r.Bronze
}

// Record renders the row in Header order.
func (r Row) Record() []string {
	return []string{
		r.Edition, r.EditionID, r.Country, r.NOC,
		strconv.Itoa(r.Athletes),
		strconv.Itoa(r.Gold), strconv.Itoa(r.Silver), strconv.Itoa(r.Bronze),
		strconv.Itoa(r.Total()),
	}
}

type tier int

const (
	none tier = iota
	gold
	silver
	bronze
)

func tierOf(medal string) tier {
	switch {
	case strings.Contains(medal, "Gold"):
		return gold
	case strings.Contains(medal, "Silver"):
		return silver
	case strings.Contains(medal, "Bronze"):
		return bronze
	default:
		return none
	}
}

type groupKey struct {
	edition, editionID, noc string
}

type medalKey struct {
	editionID, noc, event string
	tier                  tier
}

type group struct {
	row Row
	ids map[string]bool
}

// Tally groups results by (edition, edition id, NOC). Athletes are counted
// by distinct athlete id. A medal is counted once per (edition id, NOC,
// event, tier), so every member of a medalling team adds it only once.
// Rows are sorted by edition, then NOC. Country names come from countries,
// falling back to the NOC.
func Tally(results []*dataset.ResultRow, countries []*dataset.Country) []Row {
	names := make(map[string]string, len(countries))
	for _, c := range countries {
		names[c.NOC] = c.Name
	}

	groups := make(map[groupKey]*group)
	var order []groupKey
	counted := make(map[medalKey]bool)

	for _, r := range results {
		key := groupKey{r.Edition, r.EditionID, r.CountryNOC}
		g, ok := groups[key]
		if !ok {
			g = &group{ids: make(map[string]bool)}
			groups[key] = g
			order = append(order, key)
		}
		g.ids[r.AthleteID] = true

		t := tierOf(r.Medal)
		if t == none {
			continue
		}
		mk := medalKey{r.EditionID, r.CountryNOC, r.Event, t}
		if counted[mk] {
			continue
		}
		counted[mk] = true
		switch t {
		case gold:
			g.row.Gold++
		case silver:
			g.row.Silver++
		case bronze:
			g.row.Bronze++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].edition != order[j].edition {
			return order[i].edition < order[j].edition
		}
		return order[i].noc < order[j].noc
	})

	out := make([]Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		row := g.row
		row.Edition = key.edition
		row.EditionID = key.editionID
		row.NOC = key.noc
		row.Country = key.noc
		if name, ok := names[key.noc]; ok {
			row.Country = name
		}
		row.Athletes = len(g.ids)
		out = append(out, row)
	}
	return out
}

// Table renders rows with the header first.
func Table(rows []Row) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, append([]string{}, Header...))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}
