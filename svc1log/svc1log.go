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

// Package svc1log renders a core.Record, together with its MDC snapshot,
// into a "service.1" structured log line: a single JSON object carrying a
// safe message, free-form safe/unsafe params, and (when the record carries
// one) a rendered error with stacktrace and cause chain.
package svc1log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/mdc"
)

// NowFunc is overridden in tests so rendered output is deterministic.
var NowFunc = func() time.Time { return time.Now().UTC() }

// Render marshals record, enriched with snapshot's MDC values, as a single
// "service.1" JSON line (no trailing newline).
func Render(record core.Record, snapshot mdc.Snapshot) ([]byte, error) {
	enc := zapcore.NewMapObjectEncoder()

	enc.AddString("type", "service.1")
	enc.AddString("level", record.Metadata.Level.String())
	enc.AddTime("time", NowFunc())
	enc.AddString("message", record.Message)
	enc.AddBool("safe", true)
	enc.AddString("origin", record.Metadata.Target)
	enc.AddString("thread", strconv.FormatUint(mdc.GoroutineID(), 10))

	params := make(map[string]any)
	unsafeParams := make(map[string]any)

	snapshot.Safe.Range(func(key string, p core.Param) bool {
		switch key {
		case mdc.UIDKey:
			enc.AddString("uid", fmt.Sprint(p.Value))
		case mdc.SIDKey:
			enc.AddString("sid", fmt.Sprint(p.Value))
		case mdc.TokenIDKey:
			enc.AddString("tokenId", fmt.Sprint(p.Value))
		case mdc.OrgIDKey:
			enc.AddString("orgId", fmt.Sprint(p.Value))
		case mdc.TraceIDKey:
			enc.AddString("traceId", fmt.Sprint(p.Value))
		default:
			params[key] = p.Value
		}
		return true
	})
	snapshot.Unsafe.Range(func(key string, p core.Param) bool {
		unsafeParams[key] = p.Value
		return true
	})

	if record.File != "" {
		params["file"] = record.File
	}
	if record.Line != 0 {
		params["line"] = record.Line
	}

	if record.Error != nil {
		renderError(record.Error, params, unsafeParams)
	}

	// Record params are merged last so they take precedence over MDC and
	// error params sharing the same key.
	for _, p := range record.SafeParams {
		params[p.Key] = p.Value
	}
	for _, p := range record.UnsafeParams {
		unsafeParams[p.Key] = p.Value
	}

	if len(params) > 0 {
		enc.Fields["params"] = params
	}
	if len(unsafeParams) > 0 {
		enc.Fields["unsafeParams"] = unsafeParams
	}

	return json.Marshal(enc.Fields)
}

func renderError(err core.StructuredError, params, unsafeParams map[string]any) {
	if se, ok := err.(core.ServiceError); ok {
		params["errorInstanceId"] = se.InstanceID()
		params["errorCode"] = se.Code()
		params["errorName"] = se.Name()
	}

	if frames := err.StackTrace(); len(frames) > 0 {
		var sb strings.Builder
		for _, f := range frames {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		params["stacktrace"] = sb.String()
	}

	var causes []string
	var cause error = err
	for cause != nil {
		causes = append(causes, cause.Error())
		unwrapper, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = unwrapper.Unwrap()
	}
	if err.CauseSafe() {
		params["errorCause"] = causes
	} else {
		unsafeParams["errorCause"] = causes
	}

	for _, p := range err.SafeParams() {
		params[p.Key] = p.Value
	}
	for _, p := range err.UnsafeParams() {
		unsafeParams[p.Key] = p.Value
	}
}
