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

package sinks

import (
	"fmt"
	"os"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/svc1log"
)

// FileSink renders service.1 JSON lines to a plain file, opened in append
// mode so restarts don't clobber prior output.
type FileSink struct {
	*svc1log.Sink
	file *os.File
}

// NewFileSink opens path (creating it if necessary) and returns a sink that
// writes to it.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}
	return &FileSink{Sink: svc1log.NewSink(f), file: f}, nil
}

// Close flushes and closes the underlying file.
func (fs *FileSink) Close() error {
	fs.Flush()
	return fs.file.Close()
}

var _ core.Sink = (*FileSink)(nil)
