package names

import (
	_ "embed"
	"os"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/podium/pkg/errors"
)

//go:embed charmap.yaml
var defaultCharMap []byte

// Folder replaces accented characters with ASCII equivalents.
type Folder struct {
	table map[rune]string

	// StripMarks removes combining marks left after table substitution.
	StripMarks bool
}

// NewFolder builds a Folder from a character table. Keys must be single
// characters.
func NewFolder(table map[string]string) (*Folder, error) {
	f := &Folder{table: make(map[rune]string, len(table))}
	for k, v := range table {
		r := []rune(k)
		if len(r) != 1 {
			return nil, errors.NewValidationError("char_map", k, "key must be a single character")
		}
		f.table[r[0]] = v
	}
	return f, nil
}

// DefaultFolder returns a Folder over the built-in table with mark stripping
// enabled.
func DefaultFolder() *Folder {
	f, err := parseCharMap("charmap.yaml", defaultCharMap)
	if err != nil {
		panic(err)
	}
	f.StripMarks = true
	return f
}

// LoadCharMap reads a YAML character table from path.
func LoadCharMap(path string) (*Folder, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parseCharMap(path, data)
}

func parseCharMap(name string, data []byte) (*Folder, error) {
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.WrapParse("yaml", name, err)
	}
	return NewFolder(table)
}

// Fold applies the substitution table, then strips combining marks when
// StripMarks is set.
func (f *Folder) Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := f.table[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if !f.StripMarks {
		return out
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, out)
	if err != nil {
		return out
	}
	return stripped
}

// Len returns the number of table entries.
func (f *Folder) Len() int {
	return len(f.table)
}
