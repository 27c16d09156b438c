package rollstat

import "math"

// summator is a Neumaier-compensated running sum: the represented value is
// always s+c, with c holding the accumulated rounding error. Plain Kahan
// summation fails once an incoming addend is larger in magnitude than the
// running sum, which happens often across 10^8 additions of mixed-magnitude
// values; Neumaier's variant pivots so the smaller-magnitude operand always
// ends up in the compensation term, regardless of which side is larger.
type summator struct {
	s, c float64
}

// add updates the summator so the represented value becomes the previous
// value plus x.
func (n *summator) add(x float64) {
	s, c := neumaierSum(n.s, x)
	n.s = s
	n.c += c
}

// sum returns the current best estimate of the accumulated total.
func (n summator) sum() float64 {
	return n.s + n.c
}

func neumaierSum(a, b float64) (s, c float64) {
	if math.Abs(a) >= math.Abs(b) {
		return kahanSum(a, b)
	}
	return kahanSum(b, a)
}

func kahanSum(a, b float64) (s, c float64) {
	s = a + b
	c = (a - s) + b
	return s, c
}
