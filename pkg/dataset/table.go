// Package dataset defines the typed records of the legacy and new-games
// datasets, the raw Table they are decoded from, and the insertion-ordered
// Registry used to key entities by identity.
package dataset

import (
	"strings"

	"github.com/agentstation/podium/pkg/errors"
)

// Table is a header row plus data rows as read from a tabular file.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table and indexes its header. Header names are trimmed.
func NewTable(name string, header []string, rows [][]string) *Table {
	t := &Table{Name: name, Rows: rows}
	t.Header = make([]string, len(header))
	t.index = make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		t.Header[i] = h
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	return t
}

// FromRows splits a header-first row set into a Table.
func FromRows(name string, rows [][]string) *Table {
	if len(rows) == 0 {
		return NewTable(name, nil, nil)
	}
	return NewTable(name, rows[0], rows[1:])
}

// Index returns the position of col in the header, or -1.
func (t *Table) Index(col string) int {
	if i, ok := t.index[col]; ok {
		return i
	}
	return -1
}

// Has reports whether the header contains col.
func (t *Table) Has(col string) bool {
	return t.Index(col) >= 0
}

// Require fails with a SchemaError listing every absent column.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return errors.NewSchemaError(t.Name, missing)
	}
	return nil
}

// Get returns the trimmed value of col in row, or "" when either is absent.
func (t *Table) Get(row []string, col string) string {
	i := t.Index(col)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Extras returns the values of every column not listed in known.
func (t *Table) Extras(row []string, known []string) map[string]string {
	skip := make(map[string]bool, len(known))
	for _, k := range known {
		skip[k] = true
	}
	var extra map[string]string
	for _, h := range t.Header {
		if skip[h] {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[h] = t.Get(row, h)
	}
	return extra
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AllRows returns the header followed by the data rows.
func (t *Table) AllRows() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	return append(out, t.Rows...)
}

// Records returns each data row as a column to trimmed value map.
func (t *Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for _, h := range t.Header {
			rec[h] = t.Get(row, h)
		}
		out = append(out, rec)
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(s)
}
