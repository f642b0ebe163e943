package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestBenchmarkPhases(t *testing.T) {
	t.Run("should record phase duration", func(t *testing.T) {
		assert := assert.New(t)
		clock := &fakeClock{now: time.Unix(1700000000, 0), step: 5 * time.Millisecond}
		b := New("SortAlgorithm", withClock(clock.Now))

		p := b.StartPhase(context.Background(), phase.Key{Variant: "1. ManuallyInlined", Size: 1000})
		record := p.StopPhase()

		assert.Equal("SortAlgorithm", record.Benchmark)
		assert.Equal("1. ManuallyInlined. 1000", record.Name)
		assert.Equal("1. ManuallyInlined", record.Variant)
		assert.Equal(1000, record.Size)
		assert.Equal(5*time.Millisecond, record.Duration)
		assert.Equal([]phase.Record{record}, b.Records())
	})

	t.Run("should ignore a second stop", func(t *testing.T) {
		assert := assert.New(t)
		clock := &fakeClock{now: time.Unix(0, 0), step: time.Second}
		b := New("SortAlgorithm", withClock(clock.Now))

		p := b.StartPhase(context.Background(), phase.Key{Variant: "4. ClosureFactory", Size: 10})
		first := p.StopPhase()
		second := p.StopPhase()
		assert.Equal(first, second)
		assert.Len(b.Records(), 1)
	})

	t.Run("should notify stopped phases", func(t *testing.T) {
		assert := assert.New(t)
		ch := make(chan phase.Record, 1)
		b := New("SortAlgorithm", WithNotify(ch))

		record := b.StartPhase(context.Background(), phase.Key{Variant: "3. TypeParametrized", Size: 1}).StopPhase()
		assert.Equal(record, <-ch)
	})

	t.Run("should aggregate stats per phase name", func(t *testing.T) {
		assert := assert.New(t)
		clock := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
		b := New("SortAlgorithm", withClock(clock.Now))
		for i := 0; i < 3; i++ {
			b.StartPhase(context.Background(), phase.Key{Variant: "1. ManuallyInlined", Size: 10}).StopPhase()
		}
		b.StartPhase(context.Background(), phase.Key{Variant: "1. ManuallyInlined", Size: 20}).StopPhase()

		stats := b.Stats()
		assert.Len(stats, 2)
		assert.Equal(3, stats[0].Count)
		assert.Equal(time.Millisecond, stats[0].Mean)
		assert.Equal("1. ManuallyInlined. 20", stats[1].Name)
	})

	t.Run("should return a copy of records", func(t *testing.T) {
		b := New("SortAlgorithm")
		b.StartPhase(context.Background(), phase.Key{Variant: "x", Size: 1}).StopPhase()
		records := b.Records()
		records[0].Name = "changed"
		assert.Equal(t, "x. 1", b.Records()[0].Name)
	})
}
