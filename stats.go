package rollstat

// Stats is a point-in-time snapshot of the five statistics tracked for one
// window: minimum, maximum, last inserted value, arithmetic mean and
// population variance. Var (and, in pathological inputs, Avg) may be
// non-finite (NaN or +/-Inf); callers that serialize Stats must represent
// that faithfully rather than treating it as an error.
type Stats struct {
	Min  float64
	Max  float64
	Last float64
	Avg  float64
	Var  float64
}
