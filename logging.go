package rollstat

import (
	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// Logger is the type callers configure via WithLogger. It is an alias of
// the logiface fluent-builder logger, parameterized over the slog-backed
// event implementation; a nil Logger (the zero value, and the default)
// is a safe no-op, matching logiface's own nil-receiver-safe design.
type Logger = *logiface.Logger[*islog.Event]

// Option configures an Aggregator at construction time.
type Option func(*Aggregator)

// WithLogger attaches a logger used to report dropped values (see
// AddBatch for when that happens). The default is a silent
// no-op logger, so library consumers who do not care about drops never
// pay for or see any logging output.
func WithLogger(l Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

func (a *Aggregator) warnDroppedValue(v float64, reason string) {
	a.logger.Warning().
		Float64("value", v).
		Str("reason", reason).
		Log("dropped sample")
}
