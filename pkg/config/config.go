// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/BebeSparkelSparkel/cppcheck/pkg/common/moerr"
	"github.com/BebeSparkelSparkel/cppcheck/pkg/logutil"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultExitCode  = 1
)

// Config of the literal checker
type Config struct {
	// Jobs is the number of files checked in parallel. default: number of cpus
	Jobs int `toml:"jobs"`

	// ReportProgress logs the progress of every file.
	ReportProgress bool `toml:"report-progress"`

	// ErrorsOnly suppresses the "i/n files checked" status lines.
	ErrorsOnly bool `toml:"errors-only"`

	// Verbose appends the evaluated value to every diagnostic.
	Verbose bool `toml:"verbose"`

	// ExitCode is the status returned when a diagnostic is reported. default: 1
	ExitCode int `toml:"exit-code"`

	Log logutil.LogConfig `toml:"log"`
}

// NewConfig returns a config with the defaults filled in.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// ParseConfigFromFile decodes the toml file into a Config, validated and
// with defaults applied.
func ParseConfigFromFile(file string) (*Config, error) {
	if file == "" {
		return nil, moerr.NewBadConfig(context.Background(), "toml config file not set")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, moerr.ConvertGoError(context.Background(), err)
	}
	cfg := &Config{}
	if _, err = toml.Decode(string(data), cfg); err != nil {
		return nil, moerr.NewBadConfig(context.Background(), "decode %s: %v", file, err)
	}
	cfg.SetDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills zero values.
func (c *Config) SetDefaults() {
	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.ExitCode == 0 {
		c.ExitCode = defaultExitCode
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
}

func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return moerr.NewBadConfig(context.Background(), "jobs must be positive, got %d", c.Jobs)
	}
	if c.ExitCode < 0 || c.ExitCode > 255 {
		return moerr.NewBadConfig(context.Background(), "exit-code out of range: %d", c.ExitCode)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return moerr.NewBadConfig(context.Background(), "unsupported log format: %s", c.Log.Format)
	}
	return nil
}
