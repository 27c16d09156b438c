package rollstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedMonotonicQueue_IncreasingSequenceKeepsMinDropsMax(t *testing.T) {
	minq := newSharedMonotonicQueue(minBetter, []uint64{2, 16})
	maxq := newSharedMonotonicQueue(maxBetter, []uint64{2, 16})

	for i, v := range []float64{1, 2, 3, 4, 5} {
		minq.push(uint64(i), v)
		maxq.push(uint64(i), v)
	}
	minq.evict(5, 16)
	maxq.evict(5, 16)

	assert.Len(t, minq.entries, 5, "min-queue keeps every candidate in an increasing sequence")
	assert.Len(t, maxq.entries, 1, "max-queue collapses to the single largest value")

	min, ok := minq.bestOrRefresh(0, 5)
	require.True(t, ok)
	assert.Equal(t, 4.0, min)

	max, ok := maxq.bestOrRefresh(0, 5)
	require.True(t, ok)
	assert.Equal(t, 5.0, max)
}

func TestSharedMonotonicQueue_TopLevelIsAlwaysFront(t *testing.T) {
	minq := newSharedMonotonicQueue(minBetter, []uint64{2, 4})
	for i, v := range []float64{3, 1, 2} {
		minq.push(uint64(i), v)
	}
	minq.evict(3, 4)

	got, ok := minq.bestOrRefresh(1, 3) // top level: last index, always the front
	require.True(t, ok)
	assert.Equal(t, 1.0, got)
}

func TestSharedMonotonicQueue_FrontAgingEvictsOutOfWindowEntries(t *testing.T) {
	q := newSharedMonotonicQueue(maxBetter, []uint64{2, 4})
	// strictly decreasing values never pop from the back, so every
	// push grows entries; only front-aging in evict shrinks it.
	for i, v := range []float64{5, 4, 3, 2, 1} {
		q.push(uint64(i), v)
		q.evict(uint64(i+1), 4)
	}

	for _, e := range q.entries {
		assert.GreaterOrEqual(t, e.index, uint64(1), "entries older than the top-level window must be aged out")
	}
}

func TestSharedMonotonicQueue_EmptyQueueHasNoBest(t *testing.T) {
	q := newSharedMonotonicQueue(minBetter, []uint64{2})
	_, ok := q.bestOrRefresh(0, 0)
	assert.False(t, ok)
}

func TestSharedMonotonicQueue_EqualValuesEvictOlder(t *testing.T) {
	q := newSharedMonotonicQueue(minBetter, []uint64{4})
	q.push(0, 5)
	q.push(1, 5)
	q.evict(2, 4)

	require.Len(t, q.entries, 1, "equal incoming values must evict the older duplicate")
	assert.Equal(t, uint64(1), q.entries[0].index)
}
