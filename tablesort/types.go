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

package tablesort

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Row is one (X, Y) pair of a table.
type Row struct {
	X float64
	Y float64
}

// Field returns the value of the row in column col.
// Columns other than ColumnX and ColumnY return NaN.
func (r Row) Field(col Column) float64 {
	switch col {
	case ColumnX:
		return r.X
	case ColumnY:
		return r.Y
	}
	return math.NaN()
}

// Table is an ordered sequence of rows. Sorting reorders rows in place and
// never adds or removes any.
type Table []Row

// Len returns the number of rows.
func (t Table) Len() int { return len(t) }

// Clone returns a copy of t that shares no storage with it.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	c := make(Table, len(t))
	copy(c, t)
	return c
}

// Column selects the field rows are compared on. Columns are numbered from 1.
type Column uint

const (
	// ColumnX compares rows by their first field.
	ColumnX Column = 1
	// ColumnY compares rows by their second field.
	ColumnY Column = 2

	// NumColumns is the number of fields in a Row.
	NumColumns = 2
)

// Valid reports whether c names a field of Row.
func (c Column) Valid() bool {
	return c >= 1 && c <= NumColumns
}

func (c Column) String() string {
	switch c {
	case ColumnX:
		return "X"
	case ColumnY:
		return "Y"
	}
	return "Column(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// ParseColumn parses a column as entered by a user: "1", "2", "x" or "y".
func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "x":
		return ColumnX, nil
	case "2", "y":
		return ColumnY, nil
	}
	return 0, errors.WithDetailf(ErrInvalidColumn, "column %q", s)
}

// Direction is the sort order. The zero value is Ascending.
type Direction uint8

const (
	// Ascending places smaller values first.
	Ascending Direction = iota
	// Descending places larger values first.
	Descending
)

// Valid reports whether d is Ascending or Descending.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "Direction(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// ParseDirection parses a sort order: "1", "asc" or "ascending" for
// Ascending, "2", "desc" or "descending" for Descending. An empty string
// selects Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "asc", "ascending":
		return Ascending, nil
	case "2", "desc", "descending":
		return Descending, nil
	}
	return 0, errors.WithDetailf(ErrInvalidDirection, "order %q", s)
}
