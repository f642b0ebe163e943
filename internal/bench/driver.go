// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/tsuru/sort-dispatch-bench/internal/phase"
	"github.com/tsuru/sort-dispatch-bench/internal/sorting"
)

var ErrUnordered = errors.New("sorted output is out of order")

type Input struct {
	Path    string
	Numbers []int
}

type Driver struct {
	Benchmark *Benchmark
	Variants  []sorting.Variant
	Logger    *slog.Logger
	// Repeat is the number of timed runs per variant and input. Values below
	// one mean a single run.
	Repeat int
	Verify bool
	// Phases slower than WarnPhaseTime are logged at warn level. Zero
	// disables the warning.
	WarnPhaseTime time.Duration
}

// Run times every variant over every input. Each run sorts a fresh copy so
// inputs are never modified. When Verify is set, outputs that are not ordered
// by the variant's rule are reported in the returned error; timing still
// covers every phase. Once ctx is done no further phase starts and ctx.Err()
// is part of the returned error.
func (d *Driver) Run(ctx context.Context, inputs []Input) error {
	repeat := max(d.Repeat, 1)
	var errs []error
	for _, variant := range d.Variants {
		for _, input := range inputs {
			for run := 0; run < repeat; run++ {
				if err := ctx.Err(); err != nil {
					d.logger().WarnContext(ctx, "Benchmark interrupted", "error", err)
					return utilerrors.NewAggregate(append(errs, err))
				}
				if err := d.runPhase(ctx, variant, input); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}

func (d *Driver) runPhase(ctx context.Context, variant sorting.Variant, input Input) error {
	numbers := make([]int, len(input.Numbers))
	copy(numbers, input.Numbers)
	key := phase.Key{Variant: variant.Name, Size: len(numbers)}

	p := d.Benchmark.StartPhase(ctx, key)
	variant.Sort(numbers)
	record := p.StopPhase()

	log := d.logger()
	log.DebugContext(p.Context(), "Phase finished", "phase", record.Name, "duration", record.Duration)
	if d.WarnPhaseTime > 0 && record.Duration > d.WarnPhaseTime {
		log.WarnContext(p.Context(), "Phase took too long", "phase", record.Name, "duration", record.Duration, "path", input.Path)
	}

	if !d.Verify {
		phaseVerificationCounterVec.WithLabelValues(d.Benchmark.Name(), variant.Name, verifySkipped).Inc()
		return nil
	}
	if !sorting.IsOrdered(numbers, variant.Rule) {
		phaseVerificationCounterVec.WithLabelValues(d.Benchmark.Name(), variant.Name, verifyUnordered).Inc()
		log.ErrorContext(p.Context(), "Sorted output is out of order", "phase", record.Name)
		return fmt.Errorf("phase %q: %w", record.Name, ErrUnordered)
	}
	phaseVerificationCounterVec.WithLabelValues(d.Benchmark.Name(), variant.Name, verifyOrdered).Inc()
	return nil
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
