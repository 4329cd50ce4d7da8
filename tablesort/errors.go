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

import "github.com/cockroachdb/errors"

// Validation errors. Sort and ArraySort return them, with details attached,
// before any row is moved; match them with errors.Is.
var (
	ErrIndexOutOfRange  = errors.New("indexes are out of bounds, indexes should be within the range of the table")
	ErrInvalidRange     = errors.New("invalid left and right index, left index should be less than or equal to right index")
	ErrInvalidColumn    = errors.Newf("invalid sort column, sort column should be between 1 and %d", NumColumns)
	ErrInvalidDirection = errors.New("invalid sort order, order should be ascending or descending")
)

// ErrUnexpectedFailure marks runtime faults recovered by ArraySort. The marked
// error keeps the message of the underlying fault.
var ErrUnexpectedFailure = errors.New("unexpected failure while sorting")

// validate checks the arguments of Sort in the order the errors are
// documented: indexes, range, column, direction.
func validate(t Table, left, right int, dir Direction, col Column) error {
	last := len(t) - 1
	if left < 0 || right < 0 || left > last || right > last {
		return errors.WithDetailf(ErrIndexOutOfRange,
			"left=%d right=%d rows=%d", left, right, len(t))
	}
	if left > right {
		return errors.WithDetailf(ErrInvalidRange, "left=%d right=%d", left, right)
	}
	return validateKey(dir, col)
}

// validateKey checks the sort key: column, then direction.
func validateKey(dir Direction, col Column) error {
	if !col.Valid() {
		return errors.WithDetailf(ErrInvalidColumn, "column=%d", uint(col))
	}
	if !dir.Valid() {
		return errors.WithDetailf(ErrInvalidDirection, "direction=%d", uint8(dir))
	}
	return nil
}

// recoverFailure converts a recovered panic value into an error marked with
// ErrUnexpectedFailure.
func recoverFailure(r any) error {
	var err error
	switch v := r.(type) {
	case error:
		err = errors.WithStack(v)
	default:
		err = errors.Newf("%v", v)
	}
	return errors.Mark(err, ErrUnexpectedFailure)
}
