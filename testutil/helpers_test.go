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

package testutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/mdc"
	"github.com/palantir/witchcraft-go-logging/testutil"
	"github.com/palantir/witchcraft-go-logging/wlog"
)

func TestEventuallySucceedsOnceTrue(t *testing.T) {
	ready := false
	go func() {
		time.Sleep(20 * time.Millisecond)
		ready = true
	}()
	testutil.Eventually(t, func() bool { return ready }, time.Second, "never became ready")
}

func TestWithLoggerInstallsAndResets(t *testing.T) {
	sink := &testutil.RecordingSink{}
	testutil.WithLogger(t, sink, core.InfoFilter, func() {
		if ce := wlog.Check(core.Info, "mod", "hello"); ce != nil {
			ce.Write()
		}
	})

	require.Len(t, sink.Records, 1)
	assert.Equal(t, "hello", sink.Records[0].Message)
	assert.False(t, wlog.Logger().Enabled(core.Metadata{Level: core.Info}))
}

func TestWithMDCScopeIsolatesState(t *testing.T) {
	mdc.InsertSafe("outer", "value")

	testutil.WithMDCScope(t, func() {
		mdc.InsertSafe("inner", "value")
		snapshot := mdc.TakeSnapshot()
		_, ok := snapshot.Safe.Get("inner")
		assert.True(t, ok)
	})

	snapshot := mdc.TakeSnapshot()
	_, ok := snapshot.Safe.Get("inner")
	assert.False(t, ok, "inner key must not leak past the scope")
}
