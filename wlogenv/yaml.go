// Copyright 2025 Palantir Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wlogenv

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/filter"
)

// FileConfig is the on-disk shape of a directive file, an alternative to
// WLOG_DIRECTIVES for deployments that prefer a checked-in config over an
// environment variable:
//
//	root: info
//	targets:
//	  module::sub: debug
//	  module::sub::verbose: trace
type FileConfig struct {
	Root    string            `yaml:"root"`
	Targets map[string]string `yaml:"targets"`
}

// ParseFileConfig parses a FileConfig from YAML-encoded data and applies it
// to a new filter.Builder. Unparseable level names are skipped, matching
// ApplyDirectives's tolerance for bad input.
func ParseFileConfig(data []byte) (*filter.Builder, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	builder := filter.NewBuilder()
	if cfg.Root != "" {
		if level, ok := core.ParseLevelFilter(cfg.Root); ok {
			builder.Level(level)
		}
	}
	for target, levelStr := range cfg.Targets {
		if level, ok := core.ParseLevelFilter(levelStr); ok {
			builder.TargetLevel(target, level)
		}
	}
	return builder, nil
}

// LoadFile reads and parses a directive file at path.
func LoadFile(path string) (*filter.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFileConfig(data)
}

// TryInitFromFile installs a process-wide logger identical to TryInit, but
// sourcing its filter configuration from a directive file instead of
// WLOG_DIRECTIVES.
func TryInitFromFile(path string) error {
	builder, err := LoadFile(path)
	if err != nil {
		return err
	}
	f := builder.Build()

	return installFilter(f)
}
