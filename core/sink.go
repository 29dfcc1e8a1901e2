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

package core

// Sink is the process-wide installed receiver of records.
type Sink interface {
	// Enabled reports whether the sink wants records of the given metadata.
	// It is a fast-path query used by the Enabled(L) helper and is not
	// guaranteed to be called before Log.
	Enabled(metadata Metadata) bool

	// Log delivers a record. Implementations must perform their own
	// filtering since Enabled may not have been consulted. Log must not
	// panic; errors are absorbed internally (reported via selflog, if at
	// all).
	Log(record *Record)

	// Flush makes a best-effort attempt to deliver any buffered records.
	Flush()
}

// NopSink discards every record. It is the sink returned by the accessor
// before installation.
type NopSink struct{}

func (NopSink) Enabled(Metadata) bool { return false }
func (NopSink) Log(*Record)           {}
func (NopSink) Flush()                {}
