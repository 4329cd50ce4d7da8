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

// Command tablesort sorts two-column numeric tables by X or Y.
//
// Usage:
//
//	tablesort sort points.csv                      # ascending by X, boxed table
//	tablesort sort -c y -o desc -f csv < in.csv    # descending by Y, CSV out
//	tablesort sort --left 2 --right 9 a.csv b.csv  # sort rows 2..9 of each file
//	tablesort interactive                          # prompt for rows, then sort
//
// Settings may also come from a YAML file passed with --config:
//
//	column: y
//	order: desc
//	format: csv
//	workers: 4
//
// Flags given on the command line override the file.
package main

import (
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errColor = color.New(color.FgRed)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg        Config
	configPath string
	quiet      bool

	log *logger.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "tablesort",
		Short:         "Sort two-column numeric tables by X or Y",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with default settings")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "Discard log output")

	root.AddCommand(a.newSortCmd(), a.newInteractiveCmd())
	return root
}

// setup merges the config file under the command line flags and opens the
// log.
func (a *app) setup(cmd *cobra.Command) error {
	logOut := a.errOut
	if a.quiet {
		logOut = io.Discard
	}
	a.log = logger.NewWriter("ns=tablesort", logOut)

	if a.configPath != "" {
		file, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg.Merge(file, cmd.Flags())
		a.log.At("config").Logf("path=%q column=%s order=%s", a.configPath, a.cfg.Column, a.cfg.Order)
	}
	return a.cfg.Validate()
}
