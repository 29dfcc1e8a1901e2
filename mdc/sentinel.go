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

package mdc

import "strings"

// Sentinel MDC keys are reserved for well-known service-log fields. Each is
// prefixed by a NUL byte so that no key constructible through the public
// Insert functions can collide with one: InsertSafe/InsertUnsafe silently
// refuse any key with this prefix.
const (
	UIDKey     = "\x00witchcraft-uid"
	SIDKey     = "\x00witchcraft-sid"
	TokenIDKey = "\x00witchcraft-token-id"
	OrgIDKey   = "\x00witchcraft-org-id"
	TraceIDKey = "\x00witchcraft-trace-id"
)

func isSentinel(key string) bool {
	return strings.HasPrefix(key, "\x00")
}

// insertSentinelSafe is the package-internal escape hatch used by the
// exported per-field setters below; ordinary callers only ever reach
// InsertSafe/InsertUnsafe, which reject these keys.
func insertSentinelSafe(key string, value any) {
	setSafe(key, value)
}

// InsertUserID sets the sentinel user-id field rendered as svc1log's "uid".
func InsertUserID(uid string) { insertSentinelSafe(UIDKey, uid) }

// InsertSessionID sets the sentinel session-id field rendered as svc1log's
// "sid".
func InsertSessionID(sid string) { insertSentinelSafe(SIDKey, sid) }

// InsertTokenID sets the sentinel token-id field rendered as svc1log's
// "tokenId".
func InsertTokenID(tokenID string) { insertSentinelSafe(TokenIDKey, tokenID) }

// InsertOrgID sets the sentinel organization-id field rendered as svc1log's
// "orgId".
func InsertOrgID(orgID string) { insertSentinelSafe(OrgIDKey, orgID) }

// InsertTraceID sets the sentinel trace-id field rendered as svc1log's
// "traceId". bridge/otel uses this to propagate the active span's trace id.
func InsertTraceID(traceID string) { insertSentinelSafe(TraceIDKey, traceID) }
