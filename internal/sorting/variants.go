// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"fmt"
	"strings"
)

// Variant binds a dispatch mechanism to the rule it sorts by.
type Variant struct {
	Name string
	Rule CompareFunc
	Sort func(numbers []int)
}

func Variants() []Variant {
	return []Variant{
		{
			Name: "1. ManuallyInlined",
			Rule: Descending,
			Sort: ManuallyInlined,
		},
		{
			Name: "2. PassedAsFunctionValue",
			Rule: Ascending,
			Sort: func(numbers []int) { PassedAsFunctionValue(numbers, Ascending) },
		},
		{
			Name: "3. TypeParametrized",
			Rule: Descending,
			Sort: TypeParametrized[DescendingOrder],
		},
		{
			Name: "4. ClosureFactory",
			Rule: Descending,
			Sort: ClosureFactory,
		},
		{
			Name: "5. GenericCallable. Closure",
			Rule: Descending,
			Sort: func(numbers []int) {
				GenericCallable(numbers, func(a, b int) int {
					if a > b {
						return Greater
					}
					return Less
				})
			},
		},
		{
			Name: "5. GenericCallable. Function reference",
			Rule: Descending,
			Sort: func(numbers []int) { GenericCallable(numbers, Descending) },
		},
	}
}

// Lookup returns the variants whose names start with one of the given
// prefixes, in benchmark order. No prefixes selects every variant.
func Lookup(prefixes ...string) ([]Variant, error) {
	all := Variants()
	if len(prefixes) == 0 {
		return all, nil
	}
	selected := make([]bool, len(all))
	for _, prefix := range prefixes {
		prefix = strings.TrimSpace(prefix)
		found := false
		for i, variant := range all {
			if strings.HasPrefix(variant.Name, prefix) {
				selected[i] = true
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown sort variant %q", prefix)
		}
	}
	variants := []Variant{}
	for i, variant := range all {
		if selected[i] {
			variants = append(variants, variant)
		}
	}
	return variants, nil
}
