package interval

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixed(t *testing.T) *Generator {
	t.Helper()
	return NewWithSource(rand.NewPCG(42, 1024))
}

func TestInterval_WithinBounds(t *testing.T) {
	g := newFixed(t)

	for i := 0; i < 10000; i++ {
		v, err := g.Interval(3, 19)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.LessOrEqual(t, v, 19.0)
	}
}

func TestInterval_WideBounds(t *testing.T) {
	g := newFixed(t)

	for i := 0; i < 1000; i++ {
		v, err := g.Interval(240, 2400)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 240.0)
		assert.LessOrEqual(t, v, 2400.0)
	}
}

func TestInterval_CentersInRange(t *testing.T) {
	g := newFixed(t)

	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v, err := g.Interval(0, 10)
		require.NoError(t, err)
		sum += v
	}

	// Mean of the two-stage draw sits near the middle of the range.
	assert.InDelta(t, 5.0, sum/n, 1.0)
}

func TestInterval_InvalidBounds(t *testing.T) {
	g := newFixed(t)

	_, err := g.Interval(5, 5)
	assert.Error(t, err)

	_, err = g.Interval(10, 3)
	assert.Error(t, err)
}

func TestStraw(t *testing.T) {
	g := newFixed(t)

	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		ok, err := g.Straw(0.3)
		require.NoError(t, err)
		if ok {
			hits++
		}
	}
	assert.InDelta(t, 0.3, float64(hits)/n, 0.02)

	always, err := g.Straw(1.0)
	require.NoError(t, err)
	assert.True(t, always)

	never, err := g.Straw(0.0)
	require.NoError(t, err)
	assert.False(t, never)
}

func TestStraw_InvalidProbability(t *testing.T) {
	g := newFixed(t)

	_, err := g.Straw(-0.1)
	assert.Error(t, err)

	_, err = g.Straw(1.1)
	assert.Error(t, err)
}

func TestSleep_CancelledContext(t *testing.T) {
	g := newFixed(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := g.Sleep(ctx, 30, 60)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleep_InvalidBounds(t *testing.T) {
	g := newFixed(t)

	err := g.Sleep(context.Background(), 9, 2)
	assert.Error(t, err)
}
