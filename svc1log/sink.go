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

package svc1log

import (
	"io"
	"sync"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/mdc"
	"github.com/palantir/witchcraft-go-logging/selflog"
)

// Sink renders every Record as a service.1 JSON line, newline-delimited,
// to an underlying io.Writer. Writes are serialized with a mutex so
// concurrent callers never interleave partial lines.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Enabled(core.Metadata) bool { return true }

func (s *Sink) Log(record *core.Record) {
	snapshot := mdc.TakeSnapshot()
	line, err := Render(*record, snapshot)
	if err != nil {
		selflog.Printf("svc1log: failed to render record: %v", err)
		return
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(line); err != nil {
		selflog.Printf("svc1log: failed to write record: %v", err)
	}
}

func (s *Sink) Flush() {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			selflog.Printf("svc1log: failed to flush: %v", err)
		}
	}
}
