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

// Package sinks collects core.Sink implementations for common destinations:
// the console, a plain file, an in-memory buffer for tests, and an async
// wrapper that moves another sink's I/O off the calling goroutine.
package sinks

import (
	"os"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/svc1log"
)

// NewConsoleSink returns a sink that renders service.1 JSON lines to stdout.
func NewConsoleSink() core.Sink {
	return svc1log.NewSink(os.Stdout)
}

// NewStderrSink returns a sink that renders service.1 JSON lines to stderr,
// the destination wlogenv.TryInit installs by default.
func NewStderrSink() core.Sink {
	return svc1log.NewSink(os.Stderr)
}
