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
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tablesort/tablesort"
	"github.com/ajroetker/go-tablesort/tablesort/contrib/tableio"
	"github.com/ajroetker/go-tablesort/tablesort/contrib/workerpool"
)

// stdinPath names standard input among the file arguments.
const stdinPath = "-"

// sortJob is one input table and its sorted result.
type sortJob struct {
	path  string
	table tablesort.Table
}

func (a *app) newSortCmd() *cobra.Command {
	var left, right int

	cmd := &cobra.Command{
		Use:   "sort [file...]",
		Short: "Sort CSV tables of X,Y rows",
		Long: "Sort reads each file (standard input when none is given or for \"-\"),\n" +
			"sorts rows left..right by the chosen column and writes the result.\n" +
			"Several files are sorted concurrently and printed in argument order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSort(args, left, right)
		},
	}

	f := cmd.Flags()
	f.VarP(columnValue{&a.cfg.Column}, "column", "c", "Column to sort by: x, y, 1 or 2")
	f.VarP(directionValue{&a.cfg.Order}, "order", "o", "Sort order: asc, desc, 1 or 2")
	f.StringVarP(&a.cfg.Format, "format", "f", a.cfg.Format, "Output format: table or csv")
	f.IntVarP(&a.cfg.Workers, "workers", "w", a.cfg.Workers, "Tables sorted at once, 0 uses GOMAXPROCS")
	f.IntVar(&left, "left", 0, "First row of the range to sort")
	f.IntVar(&right, "right", -1, "Last row of the range to sort, -1 for the last row")
	return cmd
}

func (a *app) runSort(paths []string, left, right int) error {
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}
	if lo.Count(paths, stdinPath) > 1 {
		return errors.New("standard input may be named only once")
	}

	jobs := lo.Map(paths, func(p string, _ int) *sortJob {
		return &sortJob{path: p}
	})

	log := a.log.At("sort").Start()
	pool := workerpool.New(a.cfg.Workers)
	defer pool.Close()

	err := pool.EachErr(len(jobs), func(i int) error {
		return a.runJob(jobs[i], left, right)
	})
	if err != nil {
		return log.Error(err)
	}

	for i, job := range jobs {
		if len(jobs) > 1 {
			if i > 0 {
				fmt.Fprintln(a.out)
			}
			fmt.Fprintf(a.out, "==> %s <==\n", job.path)
		}
		if err := a.write(job.table); err != nil {
			return log.Error(err)
		}
	}

	log.Successf("tables=%d rows=%d column=%s order=%s", len(jobs),
		lo.SumBy(jobs, func(j *sortJob) int { return len(j.table) }),
		a.cfg.Column, a.cfg.Order)
	return nil
}

// runJob reads job.path and sorts rows left..right of it.
// right < 0 selects the last row.
func (a *app) runJob(job *sortJob, left, right int) error {
	t, err := a.read(job.path)
	if err != nil {
		return errors.Wrapf(err, "%s", job.path)
	}
	job.table = t

	if right < 0 {
		if len(t) == 0 && left == 0 {
			return nil
		}
		right = len(t) - 1
	}
	if _, err := tablesort.ArraySort(t, left, right, a.cfg.Order, a.cfg.Column); err != nil {
		return errors.Wrapf(err, "%s", job.path)
	}
	return nil
}

func (a *app) read(path string) (tablesort.Table, error) {
	if path == stdinPath {
		return tableio.ReadCSV(a.in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tableio.ReadCSV(f)
}

func (a *app) write(t tablesort.Table) error {
	return writeTable(a.out, t, a.cfg.Format)
}

func writeTable(w io.Writer, t tablesort.Table, format string) error {
	if format == FormatCSV {
		return tableio.WriteCSV(w, t)
	}
	tableio.Render(w, t)
	return nil
}
