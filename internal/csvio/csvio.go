// Package csvio reads and writes the tabular files of both datasets. Input
// may carry a UTF-8 byte-order mark; output always does.
package csvio

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/dataset"
	"github.com/agentstation/podium/pkg/errors"
)

// Read decodes r into a Table named name. The first row is the header.
func Read(r io.Reader, name string) (*dataset.Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, &errors.ParseError{
				Format:  "csv",
				File:    name,
				Line:    perr.Line,
				Column:  perr.Column,
				Message: perr.Err.Error(),
				Err:     err,
			}
		}
		return nil, errors.WrapIO("read", name, err)
	}
	return dataset.FromRows(name, rows), nil
}

// ReadFile opens and decodes the file at path. The table is named after the
// file's base name.
func ReadFile(path string) (*dataset.Table, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from configuration
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, filepath.Base(path))
}

// Write encodes rows to w with a leading byte-order mark.
func Write(w io.Writer, rows [][]string) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)
	cw.UseCRLF = true
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return tw.Close()
}

// WriteFile writes rows to path, creating parent directories.
func WriteFile(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions) //nolint:gosec // paths come from configuration
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := Write(f, rows); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
