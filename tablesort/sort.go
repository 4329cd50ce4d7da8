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

// Sort sorts the rows of t in [left, right] (inclusive) in place by column
// col in direction dir. Rows outside the range are not touched and rows with
// equal keys keep their relative order.
//
// Arguments are checked before any row moves:
//   - left and right must be valid row indexes (ErrIndexOutOfRange)
//   - left must not exceed right (ErrInvalidRange)
//   - col must be ColumnX or ColumnY (ErrInvalidColumn)
//   - dir must be Ascending or Descending (ErrInvalidDirection)
func Sort(t Table, left, right int, dir Direction, col Column) error {
	if err := validate(t, left, right, dir, col); err != nil {
		return err
	}
	sortRange(t, left, right, dir, col)
	return nil
}

// SortAll sorts every row of t. Empty and single-row tables are already
// sorted.
func SortAll(t Table, dir Direction, col Column) error {
	if len(t) == 0 {
		return validateKey(dir, col)
	}
	return Sort(t, 0, len(t)-1, dir, col)
}

// ArraySort is the entry point for front ends. It sorts [left, right] like
// Sort and returns t, along with an error whose message can be shown to the
// user on failure. Validation errors leave t unmodified. Runtime faults are
// recovered and marked with ErrUnexpectedFailure; the range then holds the
// same rows, possibly partly reordered.
func ArraySort(t Table, left, right int, dir Direction, col Column) (Table, error) {
	err := guard(func() error {
		return Sort(t, left, right, dir, col)
	})
	return t, err
}

// IsSorted reports whether [left, right] of t is ordered by col in
// direction dir. Invalid arguments report false.
func IsSorted(t Table, left, right int, dir Direction, col Column) bool {
	if validate(t, left, right, dir, col) != nil {
		return false
	}
	for i := left + 1; i <= right; i++ {
		if Compare(t[i-1], t[i], col, dir) > 0 {
			return false
		}
	}
	return true
}

// sortRange is the recursive partition step. The range must be valid.
func sortRange(t Table, left, right int, dir Direction, col Column) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	sortRange(t, left, mid, dir, col)
	sortRange(t, mid+1, right, dir, col)
	merge(t, left, mid+1, right, dir, col)
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverFailure(r)
		}
	}()
	return fn()
}
