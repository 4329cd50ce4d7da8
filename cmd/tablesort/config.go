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
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-tablesort/tablesort"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Config holds the settings shared by the command line and the config file.
type Config struct {
	Column  tablesort.Column
	Order   tablesort.Direction
	Format  string
	Workers int
}

// DefaultConfig sorts ascending by X and renders a boxed table.
func DefaultConfig() Config {
	return Config{
		Column: tablesort.ColumnX,
		Order:  tablesort.Ascending,
		Format: FormatTable,
	}
}

// fileConfig is the YAML form of Config. Empty fields keep their defaults.
type fileConfig struct {
	Column  string `yaml:"column"`
	Order   string `yaml:"order"`
	Format  string `yaml:"format"`
	Workers *int   `yaml:"workers"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parsing config")
	}

	cfg := DefaultConfig()
	if fc.Column != "" {
		col, err := tablesort.ParseColumn(fc.Column)
		if err != nil {
			return Config{}, errors.Wrap(err, "config column")
		}
		cfg.Column = col
	}
	order, err := tablesort.ParseDirection(fc.Order)
	if err != nil {
		return Config{}, errors.Wrap(err, "config order")
	}
	cfg.Order = order
	if fc.Format != "" {
		cfg.Format = strings.ToLower(fc.Format)
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	return cfg, cfg.Validate()
}

// Merge copies the settings of file into c, except those whose flag was set
// on the command line.
func (c *Config) Merge(file Config, flags *pflag.FlagSet) {
	if !flags.Changed("column") {
		c.Column = file.Column
	}
	if !flags.Changed("order") {
		c.Order = file.Order
	}
	if !flags.Changed("format") {
		c.Format = file.Format
	}
	if !flags.Changed("workers") {
		c.Workers = file.Workers
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if !c.Column.Valid() {
		return errors.WithDetailf(tablesort.ErrInvalidColumn, "column=%d", uint(c.Column))
	}
	if !c.Order.Valid() {
		return errors.WithDetailf(tablesort.ErrInvalidDirection, "order=%d", uint8(c.Order))
	}
	if c.Format != FormatTable && c.Format != FormatCSV {
		return errors.Newf("unknown format %q, want %q or %q", c.Format, FormatTable, FormatCSV)
	}
	if c.Workers < 0 {
		return errors.Newf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// columnValue is a pflag.Value accepting the spellings of ParseColumn.
type columnValue struct{ c *tablesort.Column }

var _ pflag.Value = columnValue{}

func (v columnValue) String() string {
	if v.c == nil {
		return ""
	}
	return strings.ToLower(v.c.String())
}

func (v columnValue) Set(s string) error {
	col, err := tablesort.ParseColumn(s)
	if err != nil {
		return err
	}
	*v.c = col
	return nil
}

func (columnValue) Type() string { return "column" }

// directionValue is a pflag.Value accepting the spellings of ParseDirection.
type directionValue struct{ d *tablesort.Direction }

var _ pflag.Value = directionValue{}

func (v directionValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v directionValue) Set(s string) error {
	d, err := tablesort.ParseDirection(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (directionValue) Type() string { return "order" }
