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

package otel_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	bridgeotel "github.com/palantir/witchcraft-go-logging/bridge/otel"
	"github.com/palantir/witchcraft-go-logging/mdc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanContext(t *testing.T) trace.SpanContext {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
}

func TestApplyTraceContextNoSpan(t *testing.T) {
	defer mdc.Scope().Close()
	mdc.Clear()

	bridgeotel.ApplyTraceContext(context.Background())

	_, ok := mdc.TakeSnapshot().Safe.Get(mdc.TraceIDKey)
	assert.False(t, ok)
}

func TestApplyTraceContextInsertsTraceID(t *testing.T) {
	defer mdc.Scope().Close()
	mdc.Clear()

	ctx := trace.ContextWithSpanContext(context.Background(), spanContext(t))
	bridgeotel.ApplyTraceContext(ctx)

	p, ok := mdc.TakeSnapshot().Safe.Get(mdc.TraceIDKey)
	require.True(t, ok)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", p.Value)
}

func TestScopeRestoresPriorMDC(t *testing.T) {
	mdc.Clear()
	mdc.InsertSafe("outer", "value")

	ctx := trace.ContextWithSpanContext(context.Background(), spanContext(t))
	func() {
		defer bridgeotel.Scope(ctx).Close()
		_, ok := mdc.TakeSnapshot().Safe.Get(mdc.TraceIDKey)
		assert.True(t, ok)
	}()

	_, ok := mdc.TakeSnapshot().Safe.Get(mdc.TraceIDKey)
	assert.False(t, ok)
	p, ok := mdc.TakeSnapshot().Safe.Get("outer")
	require.True(t, ok)
	assert.Equal(t, "value", p.Value)
}
