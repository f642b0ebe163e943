// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

// Results of a comparison rule. The sorts swap a pair whenever the rule
// reports Less for the element currently in front.
const (
	Less    = -1
	Greater = 1
)

// CompareFunc is a comparison rule over two integers.
type CompareFunc func(a, b int) int

// Descending orders from the largest value to the smallest.
func Descending(a, b int) int {
	if a > b {
		return Greater
	}
	return Less
}

// Ascending orders from the smallest value to the largest.
func Ascending(a, b int) int {
	if a > b {
		return Less
	}
	return Greater
}

// Comparator exposes a rule as a method so it can be supplied as a type
// argument.
type Comparator interface {
	Compare(a, b int) int
}

type DescendingOrder struct{}

func (DescendingOrder) Compare(a, b int) int { return Descending(a, b) }

type AscendingOrder struct{}

func (AscendingOrder) Compare(a, b int) int { return Ascending(a, b) }

// IsOrdered reports whether no neighbouring pair has to be swapped under cmp.
// Pairs the rule cannot tell apart, such as equal values, never count.
func IsOrdered(numbers []int, cmp CompareFunc) bool {
	for i := 1; i < len(numbers); i++ {
		a, b := numbers[i-1], numbers[i]
		if cmp(a, b) == Less && cmp(b, a) == Greater {
			return false
		}
	}
	return true
}
