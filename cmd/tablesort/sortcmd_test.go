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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tablesort/tablesort"
)

// runCmd executes the root command with args, feeding stdin.
func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSortStdinCSV(t *testing.T) {
	out, _, err := runCmd(t, "3,1\n1,2\n2,3\n", "-q", "sort", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n1,2\n2,3\n3,1\n", out)
}

func TestSortByYDescending(t *testing.T) {
	out, _, err := runCmd(t, "X,Y\n3,1\n1,2\n2,3\n", "-q", "sort", "-c", "y", "-o", "desc", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n2,3\n1,2\n3,1\n", out)
}

func TestSortNumericFlagSpellings(t *testing.T) {
	out, _, err := runCmd(t, "3,1\n1,2\n2,3\n", "-q", "sort", "--column", "1", "--order", "2", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n3,1\n2,3\n1,2\n", out)
}

func TestSortSubRange(t *testing.T) {
	out, _, err := runCmd(t, "9,0\n5,0\n3,0\n1,0\n0,0\n", "-q", "sort", "--left", "1", "--right", "3", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n9,0\n1,0\n3,0\n5,0\n0,0\n", out)
}

func TestSortRangeErrors(t *testing.T) {
	_, _, err := runCmd(t, "1,1\n2,2\n3,3\n", "-q", "sort", "--left", "2", "--right", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tablesort.ErrInvalidRange))

	_, _, err = runCmd(t, "1,1\n2,2\n3,3\n", "-q", "sort", "--right", "5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tablesort.ErrIndexOutOfRange))
}

func TestSortEmptyInput(t *testing.T) {
	out, _, err := runCmd(t, "", "-q", "sort", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n", out)
}

func TestSortBadFlags(t *testing.T) {
	_, _, err := runCmd(t, "1,1\n", "-q", "sort", "-c", "z")
	assert.Error(t, err)

	_, _, err = runCmd(t, "1,1\n", "-q", "sort", "-o", "sideways")
	assert.Error(t, err)

	_, _, err = runCmd(t, "1,1\n", "-q", "sort", "-f", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)

	_, _, err = runCmd(t, "1,1\n", "-q", "sort", "-", "-")
	assert.ErrorContains(t, err, "standard input may be named only once")
}

func TestSortFiles(t *testing.T) {
	a := writeFile(t, "a.csv", "3,1\n1,2\n2,3\n")
	b := writeFile(t, "b.csv", "X,Y\n5,5\n4,4\n")

	out, _, err := runCmd(t, "", "-q", "sort", "-f", "csv", "-w", "2", a, b)
	require.NoError(t, err)
	want := "==> " + a + " <==\nX,Y\n1,2\n2,3\n3,1\n\n==> " + b + " <==\nX,Y\n4,4\n5,5\n"
	assert.Equal(t, want, out)
}

func TestSortFileErrors(t *testing.T) {
	bad := writeFile(t, "bad.csv", "1,2\nx,3\n")
	_, _, err := runCmd(t, "", "-q", "sort", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = runCmd(t, "", "-q", "sort", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestSortReportsEveryBadFile(t *testing.T) {
	good := writeFile(t, "good.csv", "2,1\n1,2\n")
	badX := writeFile(t, "bad_x.csv", "1,2\nx,3\n")
	badY := writeFile(t, "bad_y.csv", "1,2\n3,4\n5,y\n")

	_, _, err := runCmd(t, "", "-q", "sort", badX, good, badY)
	require.Error(t, err)
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], badX)
	assert.Contains(t, lines[0], "line 2")
	assert.Contains(t, lines[1], badY)
	assert.Contains(t, lines[1], "line 3")
}

func TestSortTableOutput(t *testing.T) {
	out, _, err := runCmd(t, "2,1\n1,2\n", "-q", "sort")
	require.NoError(t, err)
	first := strings.Index(out, "| 1 | 2 |")
	second := strings.Index(out, "| 2 | 1 |")
	require.NotEqual(t, -1, first, out)
	require.NotEqual(t, -1, second, out)
	assert.Less(t, first, second)
}

func TestSortLogs(t *testing.T) {
	_, logs, err := runCmd(t, "2,1\n1,2\n", "sort", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, logs, "ns=tablesort at=sort state=success tables=1 rows=2 column=X order=ascending")

	_, logs, err = runCmd(t, "2,1\n", "sort", "--right", "4")
	require.Error(t, err)
	assert.Contains(t, logs, `at=sort error="-: indexes are out of bounds`)

	_, logs, err = runCmd(t, "2,1\n1,2\n", "--quiet", "sort")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSortConfigFile(t *testing.T) {
	cfg := writeFile(t, "tablesort.yaml", "column: y\norder: desc\nformat: csv\n")

	out, _, err := runCmd(t, "3,1\n1,2\n2,3\n", "-q", "--config", cfg, "sort")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n2,3\n1,2\n3,1\n", out)

	// Flags override the file.
	out, _, err = runCmd(t, "3,1\n1,2\n2,3\n", "-q", "--config", cfg, "sort", "-c", "x")
	require.NoError(t, err)
	assert.Equal(t, "X,Y\n3,1\n2,3\n1,2\n", out)

	_, _, err = runCmd(t, "", "-q", "--config", filepath.Join(t.TempDir(), "none.yaml"), "sort")
	assert.ErrorContains(t, err, "reading config")
}
