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

// Package wlogerr defines the typed error values the core contract in
// SPEC_FULL.md §7 requires: installation, parsing, and registry errors that
// a caller can distinguish with errors.Is/errors.As.
package wlogerr

import (
	"errors"
	"fmt"
)

// ErrAlreadyInstalled is returned by the installer when a sink has already
// been set for this process.
var ErrAlreadyInstalled = errors.New("wlog: logger already installed")

// ErrParseLevel is returned when a level name does not match any known
// Level or LevelFilter.
var ErrParseLevel = errors.New("wlog: could not parse level")

// KindMismatchError is panicked by the metrics registry when an id is
// requested as a different kind than it was first registered with.
type KindMismatchError struct {
	ID       string
	Expected string
	Actual   string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("metric %q already registered as a %s, requested as a %s", e.ID, e.Actual, e.Expected)
}

// SerializationError is panicked when an MDC insertion or a record param is
// given a value that cannot be serialized. The library fails loudly because
// the caller chose the type and a silent drop would corrupt observability
// data without any signal.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("wlog: value for key %q could not be serialized: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
