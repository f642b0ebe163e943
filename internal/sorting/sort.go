// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorting holds one quadratic in-place sort written five times, each
// receiving its comparison rule through a different mechanism. The bodies
// must stay identical so benchmarks only measure the dispatch.
package sorting

// ManuallyInlined sorts in descending order with the comparison written
// into the loop.
func ManuallyInlined(numbers []int) {
	n := len(numbers)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			result := Less
			if numbers[i] > numbers[k] {
				result = Greater
			}
			if result == Less {
				numbers[i], numbers[k] = numbers[k], numbers[i]
			}
		}
	}
}

// PassedAsFunctionValue calls cmp indirectly for every pair.
func PassedAsFunctionValue(numbers []int, cmp CompareFunc) {
	n := len(numbers)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if cmp(numbers[i], numbers[k]) == Less {
				numbers[i], numbers[k] = numbers[k], numbers[i]
			}
		}
	}
}

// TypeParametrized takes its rule as a type argument. C is a distinct
// zero-size type per rule, so each instantiation gets its own body.
func TypeParametrized[C Comparator](numbers []int) {
	var cmp C
	n := len(numbers)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if cmp.Compare(numbers[i], numbers[k]) == Less {
				numbers[i], numbers[k] = numbers[k], numbers[i]
			}
		}
	}
}

// NewClosureSorter returns a sort function capturing cmp.
func NewClosureSorter(cmp CompareFunc) func([]int) {
	return func(numbers []int) {
		n := len(numbers)
		for i := 0; i < n; i++ {
			for k := i + 1; k < n; k++ {
				if cmp(numbers[i], numbers[k]) == Less {
					numbers[i], numbers[k] = numbers[k], numbers[i]
				}
			}
		}
	}
}

// ClosureFactory is built once, from a function literal, when the package
// is initialized.
var ClosureFactory = NewClosureSorter(func(a, b int) int {
	if a > b {
		return Greater
	}
	return Less
})

// GenericCallable accepts any callable with the rule's signature: a function
// literal, a named function or a CompareFunc.
func GenericCallable[F ~func(int, int) int](numbers []int, cmp F) {
	n := len(numbers)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if cmp(numbers[i], numbers[k]) == Less {
				numbers[i], numbers[k] = numbers[k], numbers[i]
			}
		}
	}
}
