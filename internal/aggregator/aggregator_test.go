package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

func record(variant string, size int, d time.Duration) phase.Record {
	key := phase.Key{Variant: variant, Size: size}
	return phase.Record{Benchmark: "SortAlgorithm", Name: key.String(), Variant: variant, Size: size, Duration: d}
}

func TestMerge(t *testing.T) {
	t.Run("Should initialize from the first record", func(t *testing.T) {
		assert := assert.New(t)
		stats := phase.Stats{}
		Merge(&stats, record("1. ManuallyInlined", 10, 3*time.Millisecond))
		assert.Equal(phase.Stats{
			Name:    "1. ManuallyInlined. 10",
			Variant: "1. ManuallyInlined",
			Size:    10,
			Count:   1,
			Total:   3 * time.Millisecond,
			Min:     3 * time.Millisecond,
			Max:     3 * time.Millisecond,
			Mean:    3 * time.Millisecond,
		}, stats)
	})

	t.Run("Should track min max and mean", func(t *testing.T) {
		assert := assert.New(t)
		stats := phase.Stats{}
		for _, d := range []time.Duration{4, 1, 7} {
			Merge(&stats, record("2. PassedAsFunctionValue", 10, d*time.Millisecond))
		}
		assert.Equal(3, stats.Count)
		assert.Equal(12*time.Millisecond, stats.Total)
		assert.Equal(1*time.Millisecond, stats.Min)
		assert.Equal(7*time.Millisecond, stats.Max)
		assert.Equal(4*time.Millisecond, stats.Mean)
	})
}

func TestAggregate(t *testing.T) {
	t.Run("Should group by phase name in first-seen order", func(t *testing.T) {
		assert := assert.New(t)
		records := []phase.Record{
			record("3. TypeParametrized", 100, 2*time.Second),
			record("1. ManuallyInlined", 100, 1*time.Second),
			record("3. TypeParametrized", 100, 4*time.Second),
			record("3. TypeParametrized", 10, 1*time.Second),
		}
		stats := Aggregate(records)
		assert.Len(stats, 3)
		assert.Equal("3. TypeParametrized. 100", stats[0].Name)
		assert.Equal(2, stats[0].Count)
		assert.Equal(3*time.Second, stats[0].Mean)
		assert.Equal("1. ManuallyInlined. 100", stats[1].Name)
		assert.Equal("3. TypeParametrized. 10", stats[2].Name)
	})

	t.Run("Should return empty stats without records", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
	})
}

func TestTopKSlowest(t *testing.T) {
	stats := []phase.Stats{
		{Name: "a", Mean: 10},
		{Name: "b", Mean: 40},
		{Name: "c", Mean: 5},
		{Name: "d", Mean: 20},
	}

	t.Run("Should return slowest first", func(t *testing.T) {
		assert := assert.New(t)
		top := TopKSlowest(stats, 2)
		assert.Len(top, 2)
		assert.Equal("b", top[0].Name)
		assert.Equal("d", top[1].Name)
	})

	t.Run("Should return everything when k exceeds length", func(t *testing.T) {
		assert := assert.New(t)
		top := TopKSlowest(stats, 10)
		assert.Len(top, 4)
		assert.Equal([]string{"b", "d", "a", "c"}, []string{top[0].Name, top[1].Name, top[2].Name, top[3].Name})
	})

	t.Run("Should return nothing for non positive k", func(t *testing.T) {
		assert.Empty(t, TopKSlowest(stats, 0))
	})
}
