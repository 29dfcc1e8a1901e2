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

// Package otel bridges an active OpenTelemetry span into the MDC's
// sentinel trace-id field, so a service log line rendered while a span is
// current carries the same trace id a downstream collector uses to
// correlate it with spans and metrics.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/palantir/witchcraft-go-logging/mdc"
)

// ApplyTraceContext reads the active span from ctx and, if it carries a
// valid trace id, installs it as the calling goroutine's MDC trace id. It
// is a no-op if ctx carries no span or the span context is invalid (e.g.
// the never-sampled no-op span returned by trace.SpanFromContext when
// tracing isn't configured).
func ApplyTraceContext(ctx context.Context) {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return
	}
	mdc.InsertTraceID(spanCtx.TraceID().String())
}

// Scope applies ctx's trace id to the calling goroutine's MDC and returns a
// guard that restores the prior MDC state on Close, mirroring mdc.Scope.
// Typical use wraps a single request:
//
//	defer otel.Scope(ctx).Close()
func Scope(ctx context.Context) *mdc.Guard {
	guard := mdc.Scope()
	ApplyTraceContext(ctx)
	return guard
}
