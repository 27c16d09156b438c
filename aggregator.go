package rollstat

import (
	"fmt"
	"math"
)

// Aggregator is a per-symbol rolling statistics engine over a fixed
// geometric ladder of L windows, each R times larger than the last. It is
// not safe for concurrent use: callers must serialize AddBatch and
// GetStats calls on a given instance themselves (see internal/registry).
type Aggregator struct {
	radix     int
	numLevels int
	capacity  int // C = radix^numLevels, also the ring capacity

	buffer []float64
	tip    int // position of the most recently inserted value; capacity before any insert
	length int // occupied buffer slots, 0 <= length <= capacity
	index  uint64

	levels []levelStats
	minq   *sharedMonotonicQueue
	maxq   *sharedMonotonicQueue

	logger Logger
}

// New constructs an Aggregator with numLevels nested windows of sizes
// radix^1..radix^numLevels. It panics if numLevels < 1, radix < 2, or the
// resulting capacity (radix^numLevels) does not fit in an int: those are
// programmer errors in the ladder configuration, not runtime conditions.
func New(numLevels, radix int, opts ...Option) *Aggregator {
	if numLevels < 1 {
		panic(fmt.Sprintf("rollstat: numLevels must be >= 1, got %d", numLevels))
	}
	if radix < 2 {
		panic(fmt.Sprintf("rollstat: radix must be >= 2, got %d", radix))
	}

	windowSizes := make([]uint64, numLevels)
	size := 1
	for k := 0; k < numLevels; k++ {
		next, ok := mulOverflows(size, radix)
		if !ok {
			panic(fmt.Sprintf("rollstat: radix^numLevels (radix=%d, numLevels=%d) overflows int", radix, numLevels))
		}
		size = next
		windowSizes[k] = uint64(size)
	}
	capacity := size

	levels := make([]levelStats, numLevels)
	for k := range levels {
		levels[k] = levelStats{size: int(windowSizes[k])}
	}

	a := &Aggregator{
		radix:     radix,
		numLevels: numLevels,
		capacity:  capacity,
		buffer:    make([]float64, capacity),
		tip:       capacity,
		levels:    levels,
		minq:      newSharedMonotonicQueue(minBetter, windowSizes),
		maxq:      newSharedMonotonicQueue(maxBetter, windowSizes),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// mulOverflows returns a*b and whether it fits in an int without overflow.
func mulOverflows(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// AddBatch ingests values in order. Non-finite values, and values that
// would push the top-level sum-of-squares to a non-finite value, are
// dropped: they are logged, do not advance the logical index, and do not
// perturb any accumulator, the ring buffer, or either deque.
func (a *Aggregator) AddBatch(values []float64) {
	for _, v := range values {
		a.tryPush(v)
	}
	a.minq.evict(a.index, uint64(a.capacity))
	a.maxq.evict(a.index, uint64(a.capacity))
}

func (a *Aggregator) tryPush(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		a.warnDroppedValue(v, "non-finite input")
		return
	}

	vSq := v * v
	top := &a.levels[a.numLevels-1]
	projected := top.sumSq.sum() + vSq
	if math.IsNaN(projected) || math.IsInf(projected, 0) {
		a.warnDroppedValue(v, "sum-of-squares overflow")
		return
	}

	for i := range a.levels {
		level := &a.levels[i]
		for level.count >= level.size {
			oldestPos := (a.tip + a.capacity - level.size + 1) % a.capacity
			level.evictOldest(a.buffer[oldestPos])
		}
	}

	a.tip = (a.tip + 1) % a.capacity
	if a.length < a.capacity {
		a.length++
	}
	a.buffer[a.tip] = v

	for i := range a.levels {
		a.levels[i].accept(v, vSq)
	}

	a.minq.push(a.index, v)
	a.maxq.push(a.index, v)
	a.index++
}

// GetStats returns the five statistics for level k (1-indexed, 1..numLevels)
// over the most recent min(index, radix^k) accepted values. It returns
// false if k is out of range, or if no value has ever been accepted for
// that level.
func (a *Aggregator) GetStats(k int) (Stats, bool) {
	if k < 1 || k > a.numLevels {
		return Stats{}, false
	}

	level := &a.levels[k-1]
	if level.count == 0 {
		return Stats{}, false
	}

	min, ok := a.minq.bestOrRefresh(k-1, a.index)
	if !ok {
		return Stats{}, false
	}
	max, ok := a.maxq.bestOrRefresh(k-1, a.index)
	if !ok {
		return Stats{}, false
	}

	n := float64(level.count)
	sum := level.sum.sum()
	sumSq := level.sumSq.sum()
	avg := sum / n
	variance := sumSq/n - avg*avg

	return Stats{
		Min:  min,
		Max:  max,
		Last: a.buffer[a.tip],
		Avg:  avg,
		Var:  variance,
	}, true
}

// NumLevels returns L, the number of nested windows.
func (a *Aggregator) NumLevels() int { return a.numLevels }

// Radix returns R, the ladder's geometric factor.
func (a *Aggregator) Radix() int { return a.radix }

// Capacity returns C = radix^numLevels, the top-level window size.
func (a *Aggregator) Capacity() int { return a.capacity }
