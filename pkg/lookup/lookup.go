// Package lookup provides the event-name translation table that maps a
// composite "<event> <discipline>" string to its canonical display name.
package lookup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/podium/internal/csvio"
	"github.com/agentstation/podium/pkg/errors"
)

// EventNames resolves composite event keys to display names.
type EventNames interface {
	// Lookup returns the display name for key and whether it is known.
	Lookup(key string) (string, bool)
}

// Table is an in-memory EventNames.
type Table map[string]string

// Lookup implements EventNames.
func (t Table) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}

// Key builds the composite lookup key.
func Key(event, discipline string) string {
	return event + " " + discipline
}

// LoadFile reads a translation table from a YAML mapping or a two-column CSV
// (key, name) chosen by file extension.
func LoadFile(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, errors.NewValidationError("event_map", path, "unsupported file type, expected .yaml, .yml or .csv")
	}
}

func loadYAML(path string) (Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

func loadCSV(path string) (Table, error) {
	tbl, err := csvio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(tbl.Header) < 2 {
		return nil, errors.NewSchemaError(tbl.Name, []string{"key", "name"})
	}
	t := make(Table, tbl.Len())
	for _, row := range tbl.Rows {
		if len(row) < 2 {
			continue
		}
		t[row[0]] = row[1]
	}
	return t, nil
}
