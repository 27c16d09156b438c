// Package rollstat implements an in-memory, per-symbol rolling statistics
// engine. For a fixed geometric ladder of window sizes R^1..R^L it answers,
// in O(1) amortized time per ingested value, the minimum, maximum, last
// value, arithmetic mean and population variance over the most recent
// values in each window.
//
// A single Aggregator is not safe for concurrent use; callers that need to
// track many symbols should give each its own Aggregator and serialize
// access per symbol (see internal/registry for one way to do that).
package rollstat
