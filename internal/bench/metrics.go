// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	verifyOrdered   = "ordered"
	verifyUnordered = "unordered"
	verifySkipped   = "skipped"
)

var phaseDurationHistogramVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "sort_dispatch_bench",
	Name:      "phase_duration_seconds",
	Help:      "Histogram of benchmark phase durations in seconds",
	Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
}, []string{"benchmark", "variant", "size"})

var phaseVerificationCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sort_dispatch_bench",
	Name:      "phase_verifications_total",
	Help:      "Number of sorted outputs checked after a phase, by result",
}, []string{"benchmark", "variant", "result"})

func init() {
	metrics.Registry.MustRegister(phaseDurationHistogramVec, phaseVerificationCounterVec)
}
