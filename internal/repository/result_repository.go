// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repository

import (
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/tsuru/sort-dispatch-bench/internal/aggregator"
	"github.com/tsuru/sort-dispatch-bench/internal/logger"
	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

// ResultRepository keeps running statistics of the phases finished so far.
type ResultRepository struct {
	sync.Mutex
	logger     *slog.Logger
	stats      map[string]*phase.Stats
	order      []string
	recordChan chan phase.Record
	done       chan struct{}
}

// NewResultRepository starts a reader storing every record sent on the
// returned channel. Logs are written to logOutput.
func NewResultRepository(logOutput io.Writer) (*ResultRepository, chan phase.Record) {
	recordChan := make(chan phase.Record)
	repositoryLogger := logger.NewLogger(map[string]string{"emitter": "sort-dispatch-bench-repository"}, logOutput)
	resultRepository := &ResultRepository{
		logger:     repositoryLogger,
		stats:      make(map[string]*phase.Stats),
		recordChan: recordChan,
		done:       make(chan struct{}),
	}
	go resultRepository.startReader()

	return resultRepository, recordChan
}

func (r *ResultRepository) startReader() {
	defer close(r.done)
	for record := range r.recordChan {
		r.insert(record)
	}
}

// Done is closed once the record channel is closed and drained.
func (r *ResultRepository) Done() <-chan struct{} {
	return r.done
}

func (r *ResultRepository) insert(record phase.Record) {
	r.Lock()
	defer r.Unlock()

	stats, exists := r.stats[record.Name]
	if !exists {
		stats = &phase.Stats{}
		r.stats[record.Name] = stats
		r.order = append(r.order, record.Name)
	}
	aggregator.Merge(stats, record)
	r.logger.Debug("Phase stored", "phase", record.Name, "count", stats.Count)
}

func (r *ResultRepository) GetPhase(name string) ([]byte, bool) {
	r.Lock()
	stats, exists := r.stats[name]
	if !exists {
		r.Unlock()
		return nil, false
	}
	snapshot := *stats
	r.Unlock()

	dataBytes, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Error("Error marshaling JSON", "error", err)
		return nil, false
	}
	return dataBytes, true
}

func (r *ResultRepository) ListPhases() []string {
	r.Lock()
	defer r.Unlock()
	names := make([]string, 0, len(r.stats))
	for name := range r.stats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Snapshot copies the stats in the order phases first arrived.
func (r *ResultRepository) Snapshot() []phase.Stats {
	r.Lock()
	defer r.Unlock()
	snapshot := make([]phase.Stats, 0, len(r.order))
	for _, name := range r.order {
		snapshot = append(snapshot, *r.stats[name])
	}
	return snapshot
}
