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

package tableio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tablesort/tablesort"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want tablesort.Table
	}{
		{"plain", "3,1\n1,2\n2,3\n", tablesort.Table{{X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}}},
		{"header", "X,Y\n3,1\n", tablesort.Table{{X: 3, Y: 1}}},
		{"spaces and comments", "# points\n 1.5 , -2\n\n-0.25,1e3\n", tablesort.Table{{X: 1.5, Y: -2}, {X: -0.25, Y: 1000}}},
		{"no trailing newline", "4,5", tablesort.Table{{X: 4, Y: 5}}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.in))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCSV(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		message string
	}{
		{"three fields", "1,2,3\n", "line 1: 3 fields"},
		{"one field", "1,2\n7\n", "line 2: 1 fields"},
		{"bad number", "1,2\n3,four\n", `line 2: value "four"`},
		{"header after data", "1,2\nX,Y\n", `line 2: value "X"`},
		{"half header", "1,abc\n", `line 1: value "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRow), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	in := tablesort.Table{{X: 3, Y: 1}, {X: -1.5, Y: 2e-9}, {X: 0, Y: 100}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))
	assert.Equal(t, "X,Y\n3,1\n-1.5,2e-09\n0,100\n", buf.String())

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, tablesort.Table{{X: 1, Y: 2}, {X: 10.5, Y: -3}})
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Border, header, border, then a row and a separator per row.
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[1], "X")
	assert.Contains(t, lines[1], "Y")
	assert.Contains(t, lines[3], "1")
	assert.Contains(t, lines[3], "2")
	assert.Contains(t, lines[5], "10.5")
	assert.Contains(t, lines[5], "-3")
	assert.True(t, strings.HasPrefix(lines[0], "+"))
}
