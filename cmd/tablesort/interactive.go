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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tablesort/tablesort"
	"github.com/ajroetker/go-tablesort/tablesort/contrib/memcheck"
	"github.com/ajroetker/go-tablesort/tablesort/contrib/tableio"
)

// errInputClosed is returned when input ends in the middle of a prompt.
var errInputClosed = errors.New("input closed")

var rule = strings.Repeat("-", 39)

func (a *app) newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter a table row by row, then sort, edit and re-sort it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := newShell(a.in, a.out, a.log.At("interactive"))
			return sh.run(a.cfg)
		},
	}
}

// shell is the prompt-driven front end around tablesort.ArraySort.
type shell struct {
	scan *bufio.Scanner
	out  io.Writer
	log  *logger.Logger

	// checkMemory vets a row count before rows are collected.
	checkMemory func(rows uint64) error
}

func newShell(in io.Reader, out io.Writer, log *logger.Logger) *shell {
	return &shell{
		scan:        bufio.NewScanner(in),
		out:         out,
		log:         log,
		checkMemory: memcheck.CheckAvailable,
	}
}

// run collects a table, then loops sorting and rendering it until the user
// exits. cfg supplies the column and order offered as defaults.
func (s *shell) run(cfg Config) error {
	fmt.Fprintf(s.out, "%s\n2D TABLE SORTER\n%s\n", rule, rule)

	n, err := s.readRowCount()
	if err != nil {
		return err
	}
	t := make(tablesort.Table, n)
	for i := range t {
		if t[i], err = s.readRow(i + 1); err != nil {
			return err
		}
	}
	s.log.Logf("rows=%d", n)

	edit, err := s.confirm("Do you want to edit any row [Y/N]: ")
	if err != nil {
		return err
	}
	if edit {
		if err := s.editRows(t); err != nil {
			return err
		}
	}

	col, dir := cfg.Column, cfg.Order
	if col, err = s.readColumn(col); err != nil {
		return err
	}
	if dir, err = s.readOrder(dir); err != nil {
		return err
	}

	for {
		log := s.log.Start()
		if _, err := tablesort.ArraySort(t, 0, len(t)-1, dir, col); err != nil {
			s.fail("Sorting failed: %v", err)
			return log.Error(err)
		}
		log.Successf("column=%s order=%s", col, dir)

		fmt.Fprintln(s.out, "\nSorted table:")
		tableio.Render(s.out, t)

	menu:
		for {
			choice, err := s.readChoice(
				"\nWhat next?\n"+rule+"\n1.Re-sort the table\n2.Edit a row\n3.Exit\nChoose an option: ", 3)
			if err != nil {
				return err
			}
			switch choice {
			case 1:
				break menu
			case 2:
				if err := s.editRows(t); err != nil {
					return err
				}
			case 3:
				return nil
			}
		}

		if col, err = s.readColumn(col); err != nil {
			return err
		}
		if dir, err = s.readOrder(dir); err != nil {
			return err
		}
	}
}

// readRowCount asks for the number of rows until it gets a count that is in
// bounds and fits in memory.
func (s *shell) readRowCount() (int, error) {
	for {
		line, err := s.prompt("Enter the total number of rows: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil || n == 0 || n > memcheck.MaxRows {
			s.fail("\nInvalid input, the number of rows should be a positive integer\nno greater than %d.", memcheck.MaxRows)
			continue
		}
		if err := s.checkMemory(n); err != nil {
			s.fail("\n%v", err)
			continue
		}
		return int(n), nil
	}
}

// readRow asks for the X and Y values of row number (1-based).
func (s *shell) readRow(number int) (tablesort.Row, error) {
	fmt.Fprintf(s.out, "\nEnter X and Y values of row %d:\n%s\n", number, rule)
	x, err := s.readValue("X")
	if err != nil {
		return tablesort.Row{}, err
	}
	y, err := s.readValue("Y")
	if err != nil {
		return tablesort.Row{}, err
	}
	fmt.Fprintln(s.out, rule)
	return tablesort.Row{X: x, Y: y}, nil
}

func (s *shell) readValue(name string) (float64, error) {
	for {
		line, err := s.prompt("Enter the " + name + " value: ")
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			s.fail("\nInvalid %s value, enter an integer or a decimal value.", name)
			continue
		}
		return v, nil
	}
}

// editRows replaces rows chosen by number until the user declines to edit
// another.
func (s *shell) editRows(t tablesort.Table) error {
	for {
		fmt.Fprintln(s.out)
		number, err := s.readChoice("Enter the number of the row to edit: ", len(t))
		if err != nil {
			return err
		}
		if t[number-1], err = s.readRow(number); err != nil {
			return err
		}
		s.log.At("edit").Logf("row=%d", number)

		again, err := s.confirm("\nDo you want to edit another row [Y/N]: ")
		if err != nil || !again {
			return err
		}
	}
}

func (s *shell) readColumn(current tablesort.Column) (tablesort.Column, error) {
	for {
		line, err := s.prompt(fmt.Sprintf(
			"\nSort by column [X / Y] (%s):\n%s\n1.X\n2.Y\nChoose an option: ", current, rule))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return current, nil
		}
		col, err := tablesort.ParseColumn(line)
		if err != nil {
			s.fail("\nInvalid choice, choose 1 or 2.")
			continue
		}
		fmt.Fprintln(s.out, rule)
		return col, nil
	}
}

func (s *shell) readOrder(current tablesort.Direction) (tablesort.Direction, error) {
	for {
		line, err := s.prompt(fmt.Sprintf(
			"\nSort order (%s):\n%s\n1.Ascending order\n2.Descending order\nChoose an option: ", current, rule))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return current, nil
		}
		dir, err := tablesort.ParseDirection(line)
		if err != nil {
			s.fail("\nInvalid choice, choose 1 or 2.")
			continue
		}
		fmt.Fprintln(s.out, rule)
		return dir, nil
	}
}

// readChoice asks until it gets an integer in [1, limit].
func (s *shell) readChoice(msg string, limit int) (int, error) {
	for {
		line, err := s.prompt(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > limit {
			s.fail("\nInvalid input, choose a number from 1 to %d.", limit)
			continue
		}
		return n, nil
	}
}

// confirm asks a yes/no question until it gets Y or N.
func (s *shell) confirm(msg string) (bool, error) {
	for {
		line, err := s.prompt(msg)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(line) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		s.fail("\nInvalid input, enter Y or N.")
	}
}

// prompt writes msg and returns the next input line, trimmed.
func (s *shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	if !s.scan.Scan() {
		if err := s.scan.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.scan.Text()), nil
}

func (s *shell) fail(format string, args ...any) {
	errColor.Fprintf(s.out, format+"\n", args...)
	fmt.Fprintln(s.out, rule)
}
