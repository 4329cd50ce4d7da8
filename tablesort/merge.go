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

// merge combines the sorted runs t[left:mid] and t[mid:right+1] into one
// sorted run occupying [left, right].
//
// The merged rows are gathered in a scratch table sized to the range and
// copied back once complete. Ties take the row from the left run.
func merge(t Table, left, mid, right int, dir Direction, col Column) {
	// Runs already in order need no scratch.
	if Compare(t[mid-1], t[mid], col, dir) <= 0 {
		return
	}

	buf := make(Table, 0, right-left+1)
	i, j := left, mid
	for i < mid && j <= right {
		if Compare(t[i], t[j], col, dir) <= 0 {
			buf = append(buf, t[i])
			i++
		} else {
			buf = append(buf, t[j])
			j++
		}
	}

	// At most one run has rows left.
	buf = append(buf, t[i:mid]...)
	buf = append(buf, t[j:right+1]...)

	copy(t[left:right+1], buf)
}
