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
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/palantir/witchcraft-go-logging/core"
	"github.com/palantir/witchcraft-go-logging/selflog"
)

// OverflowStrategy controls what AsyncSink does when its buffer is full.
type OverflowStrategy int

const (
	// OverflowBlock blocks the calling goroutine until buffer space frees up.
	OverflowBlock OverflowStrategy = iota
	// OverflowDrop discards the new record.
	OverflowDrop
	// OverflowDropOldest discards the oldest buffered record to make room.
	OverflowDropOldest
)

// AsyncOptions configures an AsyncSink.
type AsyncOptions struct {
	// BufferSize is the channel capacity. Defaults to 1000 if <= 0.
	BufferSize int
	// OverflowStrategy is applied when the buffer is full.
	OverflowStrategy OverflowStrategy
	// OnError is invoked from the background goroutine when the wrapped
	// sink panics. Defaults to a no-op.
	OnError func(error)
	// ShutdownTimeout bounds how long Close waits for the background
	// goroutine to drain. Defaults to 30s if <= 0.
	ShutdownTimeout time.Duration
}

// AsyncSink wraps another core.Sink so Log never blocks on the delegate's
// I/O: records are queued on a channel and written from a single background
// goroutine.
type AsyncSink struct {
	delegate core.Sink
	opts     AsyncOptions
	records  chan core.Record
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	dropped   atomic.Uint64
	processed atomic.Uint64
	errors    atomic.Uint64
}

// NewAsyncSink wraps delegate with asynchronous buffering.
func NewAsyncSink(delegate core.Sink, opts AsyncOptions) *AsyncSink {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 1000
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 30 * time.Second
	}
	if opts.OnError == nil {
		opts.OnError = func(error) {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &AsyncSink{
		delegate: delegate,
		opts:     opts,
		records:  make(chan core.Record, opts.BufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.wg.Add(1)
	go s.worker()
	return s
}

func (s *AsyncSink) Enabled(metadata core.Metadata) bool {
	return s.delegate.Enabled(metadata)
}

// Log queues record for asynchronous delivery, applying OverflowStrategy if
// the buffer is currently full.
func (s *AsyncSink) Log(record *core.Record) {
	select {
	case s.records <- *record:
		return
	default:
	}

	switch s.opts.OverflowStrategy {
	case OverflowBlock:
		select {
		case s.records <- *record:
		case <-s.ctx.Done():
			s.dropped.Add(1)
		}
	case OverflowDropOldest:
		select {
		case <-s.records:
		default:
		}
		select {
		case s.records <- *record:
		default:
			s.dropped.Add(1)
		}
	default: // OverflowDrop
		dropped := s.dropped.Add(1)
		if selflog.IsEnabled() && (dropped == 1 || dropped%1000 == 0) {
			selflog.Printf("async sink buffer full, dropped %d records total", dropped)
		}
	}
}

// Flush is a no-op; callers that need to guarantee delivery should use
// Close instead, since Flush on the delegate would race the background
// goroutine's own writes.
func (s *AsyncSink) Flush() {}

// Close stops accepting new records, drains whatever is buffered to the
// delegate, and returns once the background goroutine exits or
// ShutdownTimeout elapses.
func (s *AsyncSink) Close() error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.opts.ShutdownTimeout):
		return fmt.Errorf("timed out waiting for async sink to drain")
	}

	s.delegate.Flush()
	return nil
}

func (s *AsyncSink) worker() {
	defer s.wg.Done()
	for {
		select {
		case record := <-s.records:
			s.emit(record)
		case <-s.ctx.Done():
			for {
				select {
				case record := <-s.records:
					s.emit(record)
				default:
					return
				}
			}
		}
	}
}

func (s *AsyncSink) emit(record core.Record) {
	defer func() {
		if r := recover(); r != nil {
			s.errors.Add(1)
			if selflog.IsEnabled() {
				selflog.Printf("async sink delegate panic: %v", r)
			}
			s.opts.OnError(fmt.Errorf("panic in delegate sink: %v", r))
		}
	}()
	s.delegate.Log(&record)
	s.processed.Add(1)
}

// Metrics reports counters about the sink's operation, primarily useful in
// tests asserting overflow behavior.
type Metrics struct {
	Processed uint64
	Dropped   uint64
	Errors    uint64
	BufferLen int
	BufferCap int
}

// Metrics returns a point-in-time snapshot of the sink's operational
// counters.
func (s *AsyncSink) Metrics() Metrics {
	return Metrics{
		Processed: s.processed.Load(),
		Dropped:   s.dropped.Load(),
		Errors:    s.errors.Load(),
		BufferLen: len(s.records),
		BufferCap: cap(s.records),
	}
}

var _ core.Sink = (*AsyncSink)(nil)
