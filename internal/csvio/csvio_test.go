package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium/pkg/errors"
)

func TestReadStripsBOM(t *testing.T) {
	in := "\ufeffnoc,country\nUSA,United States\nFRA,\"France, Republic\"\n"

	tbl, err := Read(strings.NewReader(in), "olympics_country.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"noc", "country"}, tbl.Header)
	assert.True(t, tbl.Has("noc"))
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "France, Republic", tbl.Get(tbl.Rows[1], "country"))
}

func TestReadWithoutBOM(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n1\n"), "x.csv")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}}, tbl.Rows)
}

func TestReadParseError(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n\"1,2\n"), "bad.csv")
	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.csv", perr.File)
}

func TestWriteRoundTrip(t *testing.T) {
	rows := [][]string{{"edition", "NOC"}, {"2024 Summer Olympics", "FRA"}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\xef\xbb\xbf")))
	assert.Contains(t, buf.String(), "\r\n")

	path := filepath.Join(t.TempDir(), "out", "new_medal_tally.csv")
	require.NoError(t, WriteFile(path, rows))
	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new_medal_tally.csv", tbl.Name)
	assert.Equal(t, rows, tbl.AllRows())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, os.IsNotExist(ioErr.Err))
}
