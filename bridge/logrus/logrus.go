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

// Package logrus bridges github.com/sirupsen/logrus into this library's
// facade, for applications where most of the dependency tree logs through
// logrus but the application itself wants every record - its own and its
// dependencies' - flowing through a single installed Sink.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/wlog"
)

// Hook forwards logrus entries to the process-wide wlog sink. Install it
// with (*logrus.Logger).AddHook; logrus's own output (formatter, level
// filter) keeps working independently unless the caller also silences it.
//
// logrus has no notion of a hierarchical target, so every entry is
// attributed to Target, or "logrus" if Target is empty.
type Hook struct {
	Target string

	// KnownMessages is the set of logrus message strings that are
	// actually static site messages known to this library (for example,
	// message constants an application logs through both logrus and
	// wlog call sites). A record's own Message field must always be a
	// static string with no call-site interpolation (see core.Record),
	// but logrus messages are ordinary Sprintf-style strings with no
	// such guarantee; an entry whose Message is not present in
	// KnownMessages is therefore treated as runtime-formatted and
	// carried as an unsafe "message" param instead of as Message
	// itself. Leave nil (the default) to treat every forwarded entry
	// this way.
	KnownMessages map[string]bool
}

// Levels reports that the hook wants to see every logrus level; wlog's own
// max-level gate in Fire is what actually filters.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire translates entry into a Check/Write call against the installed
// sink. entry.Data is unclassified caller input and is always forwarded as
// unsafe params; entry.Message is only used as the record's own Message
// when it matches a registered KnownMessages entry, since logrus messages
// are otherwise free-form interpolated strings that would otherwise
// smuggle non-static text into a field sinks treat as always safe.
func (h *Hook) Fire(entry *logrus.Entry) error {
	level, ok := convertLevel(entry.Level)
	if !ok {
		return nil
	}
	target := h.Target
	if target == "" {
		target = "logrus"
	}

	message := ""
	var messageParam []core.Param
	if h.KnownMessages[entry.Message] {
		message = entry.Message
	} else {
		messageParam = append(messageParam, wlog.Unsafe("message", entry.Message))
	}

	ce := wlog.Check(level, target, message)
	if ce == nil {
		return nil
	}

	params := make([]core.Param, 0, len(entry.Data)+len(messageParam)+2)
	params = append(params, messageParam...)
	for k, v := range entry.Data {
		params = append(params, wlog.Unsafe(k, v))
	}
	if entry.Caller != nil {
		params = append(params,
			wlog.Unsafe("file", entry.Caller.File),
			wlog.Unsafe("line", entry.Caller.Line),
		)
	}
	ce.Write(params...)
	return nil
}

func convertLevel(level logrus.Level) (core.Level, bool) {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return core.Fatal, true
	case logrus.ErrorLevel:
		return core.Error, true
	case logrus.WarnLevel:
		return core.Warn, true
	case logrus.InfoLevel:
		return core.Info, true
	case logrus.DebugLevel:
		return core.Debug, true
	case logrus.TraceLevel:
		return core.Trace, true
	default:
		return 0, false
	}
}

// SyncLevel sets l's own level from f, so a logger whose output is not
// routed exclusively through Hook still respects the same max-level gate
// the rest of the library was configured with (see wlogenv.TryInit).
//
// logrus has no OFF level: PanicLevel, its most restrictive level, still
// lets logrus's own Panic calls through, and logrus.Level is an unsigned
// type with nothing representable below it. core.Off therefore maps to
// logrus.PanicLevel, the closest approximation logrus has; an
// application that needs a logger wired this way to go fully silent
// additionally needs to discard l's output (l.SetOutput(io.Discard)) or
// avoid installing Hook in the first place, since it is this library's
// own max-level gate, not logrus's, that actually stops records reaching
// Hook.Fire.
func SyncLevel(f core.LevelFilter, l *logrus.Logger) {
	l.SetLevel(convertLevelFilter(f))
}

func convertLevelFilter(f core.LevelFilter) logrus.Level {
	switch f {
	case core.TraceFilter:
		return logrus.TraceLevel
	case core.DebugFilter:
		return logrus.DebugLevel
	case core.InfoFilter:
		return logrus.InfoLevel
	case core.WarnFilter:
		return logrus.WarnLevel
	case core.ErrorFilter:
		return logrus.ErrorLevel
	case core.FatalFilter:
		return logrus.FatalLevel
	case core.Off:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
