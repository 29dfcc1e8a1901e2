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

// Package wlogenv configures the process-wide logger from a directive
// string in the style of env_logger's RUST_LOG: a comma-separated list of
// either a bare level (sets the root default) or target=level pairs (sets
// a per-target override). Directives this package can't parse are
// silently skipped, matching the reference grammar's tolerance for
// unrecognized input rather than failing the whole process at startup.
package wlogenv

import (
	"strings"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/filter"
)

// EnvVar is the environment variable TryInit/Init read directives from.
const EnvVar = "WLOG_DIRECTIVES"

// ApplyDirectives parses spec and applies every directive it recognizes to
// builder, returning builder for chaining.
//
// Grammar, one directive per comma-separated segment:
//
//	level            sets the root default filter
//	target=level     sets an override for that "::"-separated target
//	target           (level missing or unparseable) sets that target to Trace
func ApplyDirectives(spec string, builder *filter.Builder) *filter.Builder {
	for _, directive := range strings.Split(spec, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}
		target, levelStr, hasLevel := strings.Cut(directive, "=")
		if hasLevel {
			if level, ok := core.ParseLevelFilter(levelStr); ok {
				builder.TargetLevel(target, level)
			}
			continue
		}
		if level, ok := core.ParseLevelFilter(target); ok {
			builder.Level(level)
		} else {
			builder.TargetLevel(target, core.TraceFilter)
		}
	}
	return builder
}

// BuildFilter parses spec into a new Filter, starting from the builder
// default (root Error, no overrides).
func BuildFilter(spec string) *filter.Filter {
	return ApplyDirectives(spec, filter.NewBuilder()).Build()
}
