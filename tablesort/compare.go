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

import "math"

// Compare orders row a against row b on column col under direction dir.
// It returns -1 if a sorts before b, +1 if a sorts after b, and 0 if their
// keys are equal. Merging takes the left row whenever Compare <= 0.
//
// Columns other than ColumnX and ColumnY compare every row as equal.
func Compare(a, b Row, col Column, dir Direction) int {
	if !col.Valid() {
		return 0
	}
	c := compareValues(a.Field(col), b.Field(col))
	if dir == Descending {
		return -c
	}
	return c
}

// compareValues is the ascending order of two values: NaN is greater than
// every number and equal to itself, -0 equals +0.
func compareValues(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
