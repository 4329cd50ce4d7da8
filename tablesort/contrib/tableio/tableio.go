// Copyright 2025 go-tablesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tableio reads and writes two-column tables: CSV for files and
// pipes, a boxed grid for terminals.
package tableio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/ajroetker/go-tablesort/tablesort"
)

// ErrMalformedRow is returned for records that are not two numbers.
var ErrMalformedRow = errors.New("malformed row, expected two numeric fields")

// Header holds the column titles written by WriteCSV and Render.
var Header = []string{"X", "Y"}

// ReadCSV reads a table of X,Y records. Blank lines and lines starting with
// '#' are skipped, fields are trimmed, and a first record that is not numeric
// is taken as a header.
func ReadCSV(r io.Reader) (tablesort.Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var t tablesort.Table
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading table")
		}
		line, _ := cr.FieldPos(0)

		if len(rec) != tablesort.NumColumns {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: %d fields", line, len(rec))
		}
		row, err := parseRow(rec)
		if err != nil {
			if first && isHeader(rec) {
				continue
			}
			return nil, errors.Wrapf(err, "line %d", line)
		}
		t = append(t, row)
	}
}

func parseRow(rec []string) (tablesort.Row, error) {
	x, err := parseValue(rec[0])
	if err != nil {
		return tablesort.Row{}, err
	}
	y, err := parseValue(rec[1])
	if err != nil {
		return tablesort.Row{}, err
	}
	return tablesort.Row{X: x, Y: y}, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "value %q", s)
	}
	return v, nil
}

// isHeader reports whether no field of rec looks like a number.
func isHeader(rec []string) bool {
	return lo.NoneBy(rec, func(f string) bool {
		_, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		return err == nil
	})
}

// WriteCSV writes t as CSV with an X,Y header.
func WriteCSV(w io.Writer, t tablesort.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, row := range t {
		if err := cw.Write(formatRow(row)); err != nil {
			return errors.Wrap(err, "writing row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing table")
}

// Render draws t as a bordered grid with X and Y headers.
func Render(w io.Writer, t tablesort.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(Header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetRowLine(true)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.AppendBulk(lo.Map(t, func(row tablesort.Row, _ int) []string {
		return formatRow(row)
	}))
	tw.Render()
}

func formatRow(row tablesort.Row) []string {
	return []string{formatValue(row.X), formatValue(row.Y)}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
