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

// Package memcheck decides whether a table of a given size fits in memory
// before an interactive session starts collecting rows.
package memcheck

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

const (
	// MaxRows is the largest row count accepted for a table.
	MaxRows = 1 << 30

	// RowBytes is the size of one row: two float64 fields.
	RowBytes = 16

	// reservePercent of free memory is kept out of reach of the table.
	reservePercent = 5

	// headroomPercent is taken off the recommended row count.
	headroomPercent = 10
)

var (
	ErrTooManyRows        = errors.Newf("number of rows should be a positive integer no greater than %d", MaxRows)
	ErrInsufficientMemory = errors.New("not enough free memory for the table")
	ErrProbeUnsupported   = errors.New("memory probing is not supported on this platform")
)

// Stats is a snapshot of physical memory in bytes.
type Stats struct {
	Total uint64
	Free  uint64
}

// Probe reads the current physical memory figures.
// Returns ErrProbeUnsupported when the platform cannot report them or when
// TABLESORT_NO_MEMCHECK is set.
func Probe() (Stats, error) {
	if os.Getenv("TABLESORT_NO_MEMCHECK") != "" {
		return Stats{}, ErrProbeUnsupported
	}
	return probe()
}

// Check reports whether rows rows fit in s.Free, keeping 5% of it in reserve.
// The error for a table that does not fit names a recommended row count.
func Check(rows uint64, s Stats) error {
	if rows == 0 || rows > MaxRows {
		return errors.WithDetailf(ErrTooManyRows, "rows=%d", rows)
	}

	required := rows * RowBytes
	limit := s.Free - s.Free*reservePercent/100
	if required <= limit {
		return nil
	}

	recommended := s.Free / RowBytes
	recommended -= recommended * headroomPercent / 100
	return errors.Wrapf(ErrInsufficientMemory,
		"%d rows need %s, total memory %s, free memory %s, recommended max rows %d",
		rows,
		humanize.IBytes(required),
		humanize.IBytes(s.Total),
		humanize.IBytes(s.Free),
		recommended)
}

// CheckAvailable probes memory and checks rows against it. Platforms that
// cannot be probed accept any row count up to MaxRows.
func CheckAvailable(rows uint64) error {
	s, err := Probe()
	if errors.Is(err, ErrProbeUnsupported) {
		if rows == 0 || rows > MaxRows {
			return errors.WithDetailf(ErrTooManyRows, "rows=%d", rows)
		}
		return nil
	}
	if err != nil {
		return err
	}
	return Check(rows, s)
}
