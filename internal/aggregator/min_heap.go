// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregator

import (
	"container/heap"
	"slices"

	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

type MinHeapStats []phase.Stats

func (h MinHeapStats) Len() int            { return len(h) }
func (h MinHeapStats) Less(i, j int) bool  { return h[i].Mean < h[j].Mean }
func (h MinHeapStats) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *MinHeapStats) Push(x interface{}) { *h = append(*h, x.(phase.Stats)) }

func (h *MinHeapStats) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopKSlowest returns the k phases with the largest mean duration, slowest
// first.
func TopKSlowest(stats []phase.Stats, k int) []phase.Stats {
	if k <= 0 {
		return []phase.Stats{}
	}
	h := &MinHeapStats{}
	heap.Init(h)
	for _, s := range stats {
		if h.Len() < k {
			heap.Push(h, s)
		} else if s.Mean > (*h)[0].Mean {
			heap.Pop(h)
			heap.Push(h, s)
		}
	}
	result := make([]phase.Stats, h.Len())
	copy(result, *h)
	slices.SortStableFunc(result, func(a, b phase.Stats) int {
		if a.Mean > b.Mean {
			return -1
		}
		if a.Mean < b.Mean {
			return 1
		}
		return 0
	})
	return result
}
