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

package logrus_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgelogrus "github.com/palantir/witchcraft-go-logging/bridge/logrus"
	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/wlog"
)

type recordingSink struct {
	records []*core.Record
}

func (s *recordingSink) Enabled(core.Metadata) bool { return true }
func (s *recordingSink) Log(r *core.Record)         { s.records = append(s.records, r) }
func (s *recordingSink) Flush()                     {}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.TraceLevel)
	return l
}

func TestHookForwardsEntry(t *testing.T) {
	wlog.Reset()
	defer wlog.Reset()

	sink := &recordingSink{}
	require.NoError(t, wlog.SetLogger(sink))
	wlog.SetMaxLevel(core.InfoFilter)

	logger := newLogger()
	logger.AddHook(&bridgelogrus.Hook{Target: "vendored-lib"})

	logger.WithField("requestId", "r-1").Info("handled request")

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	// entry.Message is runtime text from an uncontrolled dependency, not a
	// static site message known to this library, so it is carried as an
	// unsafe param rather than as Message itself.
	assert.Equal(t, "", rec.Message)
	assert.Equal(t, core.Info, rec.Metadata.Level)
	assert.Equal(t, "vendored-lib", rec.Metadata.Target)
	require.Len(t, rec.UnsafeParams, 2)
	byKey := paramsByKey(rec.UnsafeParams)
	assert.Equal(t, "handled request", byKey["message"])
	assert.Equal(t, "r-1", byKey["requestId"])
}

func TestHookUsesMessageDirectlyWhenKnown(t *testing.T) {
	wlog.Reset()
	defer wlog.Reset()

	sink := &recordingSink{}
	require.NoError(t, wlog.SetLogger(sink))
	wlog.SetMaxLevel(core.InfoFilter)

	logger := newLogger()
	logger.AddHook(&bridgelogrus.Hook{
		Target:        "vendored-lib",
		KnownMessages: map[string]bool{"request completed": true},
	})

	logger.Info("request completed")

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, "request completed", rec.Message)
	for _, p := range rec.UnsafeParams {
		assert.NotEqual(t, "message", p.Key)
	}
}

func paramsByKey(params []core.Param) map[string]any {
	m := make(map[string]any, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}

func TestHookDefaultsTargetToLogrus(t *testing.T) {
	wlog.Reset()
	defer wlog.Reset()

	sink := &recordingSink{}
	require.NoError(t, wlog.SetLogger(sink))
	wlog.SetMaxLevel(core.InfoFilter)

	logger := newLogger()
	logger.AddHook(&bridgelogrus.Hook{})
	logger.Info("hello")

	require.Len(t, sink.records, 1)
	assert.Equal(t, "logrus", sink.records[0].Metadata.Target)
}

func TestHookRespectsMaxLevelGate(t *testing.T) {
	wlog.Reset()
	defer wlog.Reset()

	sink := &recordingSink{}
	require.NoError(t, wlog.SetLogger(sink))
	wlog.SetMaxLevel(core.WarnFilter)

	logger := newLogger()
	logger.AddHook(&bridgelogrus.Hook{})
	logger.Info("should be dropped")
	logger.Warn("should pass")

	require.Len(t, sink.records, 1)
	assert.Equal(t, "should pass", paramsByKey(sink.records[0].UnsafeParams)["message"])
}

func TestSyncLevelMapsFilterToLogrusLevel(t *testing.T) {
	logger := newLogger()

	bridgelogrus.SyncLevel(core.WarnFilter, logger)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	bridgelogrus.SyncLevel(core.TraceFilter, logger)
	assert.Equal(t, logrus.TraceLevel, logger.GetLevel())

	bridgelogrus.SyncLevel(core.FatalFilter, logger)
	assert.Equal(t, logrus.FatalLevel, logger.GetLevel())
}

func TestSyncLevelOffMapsToPanicLevel(t *testing.T) {
	logger := newLogger()

	bridgelogrus.SyncLevel(core.Off, logger)

	// logrus has no OFF level; PanicLevel is the closest, most
	// restrictive approximation it can represent.
	assert.Equal(t, logrus.PanicLevel, logger.GetLevel())
}
