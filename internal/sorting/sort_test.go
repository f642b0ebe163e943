package sorting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sorter struct {
	name string
	rule CompareFunc
	sort func([]int)
}

// sorters covers both rules for every mechanism that takes one.
func sorters() []sorter {
	all := []sorter{}
	for _, variant := range Variants() {
		all = append(all, sorter{variant.Name, variant.Rule, variant.Sort})
	}
	return append(all,
		sorter{"PassedAsFunctionValue descending", Descending, func(n []int) { PassedAsFunctionValue(n, Descending) }},
		sorter{"TypeParametrized ascending", Ascending, TypeParametrized[AscendingOrder]},
		sorter{"ClosureSorter ascending", Ascending, NewClosureSorter(Ascending)},
		sorter{"GenericCallable CompareFunc ascending", Ascending, func(n []int) { GenericCallable(n, CompareFunc(Ascending)) }},
	)
}

func randomNumbers(n, limit int) []int {
	numbers := make([]int, n)
	for i := range numbers {
		numbers[i] = rand.Intn(limit + 1)
	}
	return numbers
}

func expected(numbers []int, rule CompareFunc) []int {
	want := slices.Clone(numbers)
	slices.Sort(want)
	if rule(1, 0) == Greater {
		slices.Reverse(want)
	}
	return want
}

func TestSorters(t *testing.T) {
	for _, s := range sorters() {
		t.Run(s.name, func(t *testing.T) {
			t.Run("should order a random permutation", func(t *testing.T) {
				assert := assert.New(t)
				for _, n := range []int{2, 3, 10, 257} {
					input := randomNumbers(n, n/2)
					numbers := slices.Clone(input)
					s.sort(numbers)
					assert.ElementsMatch(input, numbers)
					assert.True(IsOrdered(numbers, s.rule), "not ordered: %v", numbers)
					assert.Equal(expected(input, s.rule), numbers)
				}
			})

			t.Run("should be idempotent", func(t *testing.T) {
				numbers := randomNumbers(100, 1000)
				s.sort(numbers)
				again := slices.Clone(numbers)
				s.sort(again)
				assert.Equal(t, numbers, again)
			})

			t.Run("should keep empty and single element input", func(t *testing.T) {
				assert := assert.New(t)
				empty := []int{}
				s.sort(empty)
				assert.Empty(empty)
				var nilSlice []int
				s.sort(nilSlice)
				assert.Nil(nilSlice)
				single := []int{42}
				s.sort(single)
				assert.Equal([]int{42}, single)
			})

			t.Run("should handle all equal values", func(t *testing.T) {
				numbers := []int{7, 7, 7, 7}
				s.sort(numbers)
				assert.Equal(t, []int{7, 7, 7, 7}, numbers)
			})
		})
	}
}

func TestAscendingSmokeCheck(t *testing.T) {
	numbers := []int{5, 4, 3, 2, 1}
	PassedAsFunctionValue(numbers, Ascending)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)
}

func TestDescending(t *testing.T) {
	numbers := []int{1, 5, 2, 4, 3}
	ManuallyInlined(numbers)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, numbers)
}

func TestIsOrdered(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsOrdered(nil, Ascending))
	assert.True(IsOrdered([]int{1}, Descending))
	assert.True(IsOrdered([]int{1, 1, 2, 3}, Ascending))
	assert.False(IsOrdered([]int{1, 3, 2}, Ascending))
	assert.True(IsOrdered([]int{3, 3, 2, 1}, Descending))
	assert.False(IsOrdered([]int{3, 1, 2}, Descending))
}

func TestLookup(t *testing.T) {
	t.Run("should return every variant without prefixes", func(t *testing.T) {
		variants, err := Lookup()
		assert.NoError(t, err)
		assert.Len(t, variants, 6)
	})

	t.Run("should select by prefix in benchmark order", func(t *testing.T) {
		assert := assert.New(t)
		variants, err := Lookup("5. GenericCallable", "1")
		assert.NoError(err)
		names := []string{}
		for _, v := range variants {
			names = append(names, v.Name)
		}
		assert.Equal([]string{
			"1. ManuallyInlined",
			"5. GenericCallable. Closure",
			"5. GenericCallable. Function reference",
		}, names)
	})

	t.Run("should reject unknown variants", func(t *testing.T) {
		_, err := Lookup("6")
		assert.Error(t, err)
	})
}
