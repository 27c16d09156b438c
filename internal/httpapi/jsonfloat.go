package httpapi

import (
	"math"
	"strconv"
)

// jsonFloat marshals as a JSON number, or null for NaN/+-Inf. JSON has no
// non-finite literal; encoding/json's own float marshaling refuses to
// encode NaN/Inf at all, which would otherwise turn a perfectly valid
// (if momentarily overflowed) variance into a 500 instead of a result.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}
