package reconcile

import (
	"context"
	"sort"
	"strings"

	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/logging"
)

// MergeNOCs unions the legacy country registry with the new-games NOC table.
// Codes are uppercased, codes already known (case-insensitively) are kept as
// they are, and the result is stably sorted by country name. The entries
// that were added are returned separately.
func MergeNOCs(ctx context.Context, legacy []*dataset.Country, incoming []*dataset.NOC) (merged, added []*dataset.Country) {
	logger := logging.FromContext(ctx)

	known := make(map[string]bool, len(legacy)+len(incoming))
	merged = make([]*dataset.Country, 0, len(legacy)+len(incoming))
	for _, c := range legacy {
		known[strings.ToLower(c.NOC)] = true
		merged = append(merged, &dataset.Country{NOC: strings.ToUpper(c.NOC), Name: c.Name})
	}

	for _, n := range incoming {
		code := strings.ToLower(n.Code)
		if known[code] {
			continue
		}
		known[code] = true
		c := &dataset.Country{NOC: strings.ToUpper(n.Code), Name: n.DisplayName()}
		merged = append(merged, c)
		added = append(added, c)
		logger.Info().Str("noc", c.NOC).Str("country", c.Name).Msg("added noc")
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	return merged, added
}

// CountryRegistry keys countries by lowercased NOC.
func CountryRegistry(countries []*dataset.Country, marker string) *dataset.Registry[*dataset.Country] {
	r := dataset.NewRegistry[*dataset.Country](marker)
	for _, c := range countries {
		r.Put(strings.ToLower(c.NOC), c)
	}
	return r
}
