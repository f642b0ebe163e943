// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregator

import (
	"time"

	"github.com/samber/lo"

	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

// Merge folds one timed run into the statistics of its phase.
func Merge(stats *phase.Stats, record phase.Record) {
	if stats.Count == 0 {
		stats.Name = record.Name
		stats.Variant = record.Variant
		stats.Size = record.Size
		stats.Min = record.Duration
		stats.Max = record.Duration
	}
	stats.Count++
	stats.Total += record.Duration
	stats.Min = min(stats.Min, record.Duration)
	stats.Max = max(stats.Max, record.Duration)
	stats.Mean = stats.Total / time.Duration(stats.Count)
}

// Aggregate returns one Stats per phase name, in the order the names first
// appear in records.
func Aggregate(records []phase.Record) []phase.Stats {
	names := lo.Uniq(lo.Map(records, func(r phase.Record, _ int) string { return r.Name }))
	groups := lo.GroupBy(records, func(r phase.Record) string { return r.Name })

	result := make([]phase.Stats, 0, len(names))
	for _, name := range names {
		stats := phase.Stats{}
		for _, record := range groups[name] {
			Merge(&stats, record)
		}
		result = append(result, stats)
	}
	return result
}
