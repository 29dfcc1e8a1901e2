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

package filter

import "github.com/palantir/witchcraft-go-logging/core"

// Sink wraps a delegate core.Sink with a Filter, performing its own
// filtering on Log since Enabled is not guaranteed to be called first. This
// mirrors the reference env-logger's Logger, which pairs a Filter with a
// single downstream sink.
type Sink struct {
	Filter   *Filter
	Delegate core.Sink
}

func (s *Sink) Enabled(metadata core.Metadata) bool {
	return s.Filter.Enabled(metadata)
}

func (s *Sink) Log(record *core.Record) {
	if !s.Filter.Enabled(record.Metadata) {
		return
	}
	s.Delegate.Log(record)
}

func (s *Sink) Flush() {
	s.Delegate.Flush()
}
