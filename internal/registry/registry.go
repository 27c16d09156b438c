// Package registry provides the per-symbol concurrency envelope the
// rollstat core requires but does not implement itself: one Aggregator per
// symbol, created lazily on first observation, with operations on a given
// symbol serialized while distinct symbols proceed fully in parallel.
//
// The shape is lifted directly from github.com/joeycumines/go-catrate's
// Limiter: a sync.Map keyed by category (here, symbol) holding a per-entry
// mutex, so the hot path (an already-registered symbol) never takes a
// registry-wide lock.
package registry

import (
	"sync"

	"github.com/joeycumines/go-rollstat"
)

// Registry owns one Aggregator per symbol.
type Registry struct {
	numLevels int
	radix     int
	opts      []rollstat.Option

	symbols sync.Map // string -> *entry
}

type entry struct {
	mu  sync.Mutex
	agg *rollstat.Aggregator
}

// New constructs a Registry whose Aggregators all share the given ladder
// configuration and options.
func New(numLevels, radix int, opts ...rollstat.Option) *Registry {
	return &Registry{numLevels: numLevels, radix: radix, opts: opts}
}

// AddBatch ingests values for symbol, creating its Aggregator on first use.
func (r *Registry) AddBatch(symbol string, values []float64) {
	e := r.load(symbol)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.agg.AddBatch(values)
}

// GetStats returns the stats for symbol at level k. The second return
// value is false if the symbol is unknown or the level has no data.
func (r *Registry) GetStats(symbol string, k int) (rollstat.Stats, bool) {
	v, ok := r.symbols.Load(symbol)
	if !ok {
		return rollstat.Stats{}, false
	}
	e := v.(*entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.agg.GetStats(k)
}

func (r *Registry) load(symbol string) *entry {
	if v, ok := r.symbols.Load(symbol); ok {
		return v.(*entry)
	}
	e := &entry{agg: rollstat.New(r.numLevels, r.radix, r.opts...)}
	actual, _ := r.symbols.LoadOrStore(symbol, e)
	return actual.(*entry)
}
