// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/tsuru/sort-dispatch-bench/internal/aggregator"
	"github.com/tsuru/sort-dispatch-bench/internal/phase"
	"github.com/tsuru/sort-dispatch-bench/internal/trace"
)

// Benchmark is a named scope collecting timed phases.
type Benchmark struct {
	mu      sync.Mutex
	name    string
	records []phase.Record
	notify  chan<- phase.Record
	now     func() time.Time
}

type Option func(*Benchmark)

// WithNotify sends every stopped phase to ch. Sends block, so the receiver
// must keep reading for as long as phases run.
func WithNotify(ch chan<- phase.Record) Option {
	return func(b *Benchmark) { b.notify = ch }
}

func withClock(now func() time.Time) Option {
	return func(b *Benchmark) { b.now = now }
}

func New(name string, opts ...Option) *Benchmark {
	b := &Benchmark{
		name: name,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Benchmark) Name() string {
	return b.name
}

// Phase is a running timed segment. It is not safe for concurrent use.
type Phase struct {
	benchmark *Benchmark
	key       phase.Key
	ctx       context.Context
	span      oteltrace.Span
	start     time.Time
	stopped   bool
	record    phase.Record
}

func (b *Benchmark) StartPhase(ctx context.Context, key phase.Key) *Phase {
	ctx, span := trace.Trace.Start(ctx, key.String(), oteltrace.WithAttributes(
		attribute.String("benchmark", b.name),
		attribute.String("variant", key.Variant),
		attribute.Int("size", key.Size),
	))
	return &Phase{
		benchmark: b,
		key:       key,
		ctx:       ctx,
		span:      span,
		start:     b.now(),
	}
}

// Context carries the phase span.
func (p *Phase) Context() context.Context {
	return p.ctx
}

// StopPhase closes the phase and records its duration. Further calls return
// the same record.
func (p *Phase) StopPhase() phase.Record {
	if p.stopped {
		return p.record
	}
	elapsed := p.benchmark.now().Sub(p.start)
	p.stopped = true
	p.record = phase.Record{
		Benchmark: p.benchmark.name,
		Name:      p.key.String(),
		Variant:   p.key.Variant,
		Size:      p.key.Size,
		Start:     p.start,
		Duration:  elapsed,
	}
	p.span.End()
	phaseDurationHistogramVec.WithLabelValues(p.benchmark.name, p.key.Variant, strconv.Itoa(p.key.Size)).Observe(elapsed.Seconds())
	p.benchmark.add(p.record)
	return p.record
}

func (b *Benchmark) add(record phase.Record) {
	b.mu.Lock()
	b.records = append(b.records, record)
	b.mu.Unlock()
	if b.notify != nil {
		b.notify <- record
	}
}

func (b *Benchmark) Records() []phase.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	records := make([]phase.Record, len(b.records))
	copy(records, b.records)
	return records
}

func (b *Benchmark) Stats() []phase.Stats {
	return aggregator.Aggregate(b.Records())
}
