package rollstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregator_NilLoggerIsSilentNoOp(t *testing.T) {
	a := New(2, 2) // no WithLogger option: logger field stays nil

	assert.NotPanics(t, func() {
		a.AddBatch([]float64{math.NaN(), math.Inf(1), 1, 2})
	})

	got, ok := a.GetStats(1)
	assert.True(t, ok)
	assert.Equal(t, 2.0, got.Last)
}
