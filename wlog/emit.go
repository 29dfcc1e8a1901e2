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

package wlog

import (
	"runtime"

	"github.com/palantir/witchcraft-go-logging/core"
)

// CheckedEntry is the result of a passed Check: everything needed to emit a
// record except the parameters, which the caller constructs only after
// confirming the gate passed.
type CheckedEntry struct {
	level   core.Level
	target  string
	message string
	file    string
	line    int
	err     core.StructuredError
}

// Check evaluates the max-level gate and the installed sink's per-target
// Enabled query for level/target, returning nil if either rejects. This is
// the Go rendition of the spec's "must not evaluate parameter expressions
// before the gate" invariant, following the same two-phase idiom
// go.uber.org/zap uses for the same problem: construct parameters only
// after Check returns non-nil.
//
//	if ce := wlog.Check(core.Info, "module::sub", "request completed"); ce != nil {
//		ce.Write(wlog.Safe("duration", d))
//	}
func Check(level core.Level, target, message string) *CheckedEntry {
	return check(level, target, message, 2)
}

func check(level core.Level, target, message string, skip int) *CheckedEntry {
	if !core.Enabled(level, MaxLevel()) {
		return nil
	}
	metadata := core.Metadata{Level: level, Target: target}
	if !Logger().Enabled(metadata) {
		return nil
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "", 0
	}
	return &CheckedEntry{level: level, target: target, message: message, file: file, line: line}
}

// WithError attaches a structured error to the entry. It returns the
// receiver for chaining.
func (ce *CheckedEntry) WithError(err core.StructuredError) *CheckedEntry {
	ce.err = err
	return ce
}

// Write partitions params by their Safe tag and delivers the resulting
// Record to the installed sink.
func (ce *CheckedEntry) Write(params ...core.Param) {
	if ce == nil {
		return
	}
	var safe, unsafeParams []core.Param
	for _, p := range params {
		if p.Safe {
			safe = append(safe, p)
		} else {
			unsafeParams = append(unsafeParams, p)
		}
	}
	record := &core.Record{
		Metadata:     core.Metadata{Level: ce.level, Target: ce.target},
		File:         ce.file,
		Line:         ce.line,
		Message:      ce.message,
		SafeParams:   safe,
		UnsafeParams: unsafeParams,
		Error:        ce.err,
	}
	Logger().Log(record)
}

// Enabled reports whether a record at level for target would be admitted,
// combining the max-level gate with the installed sink's per-target query.
// Callers can use this to guard expensive computations that don't fit
// naturally into the Check/Write two-phase form.
func Enabled(level core.Level, target string) bool {
	return core.Enabled(level, MaxLevel()) && Logger().Enabled(core.Metadata{Level: level, Target: target})
}
