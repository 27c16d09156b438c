package rollstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummator_AddAssign(t *testing.T) {
	var s summator
	s.add(1e200)
	s.add(0.1)
	s.add(0.2)
	s.add(0.3)
	s.add(-1e200)

	assert.InDelta(t, 0.6, s.sum(), 1e-15)
}

func TestSummator_ZeroValue(t *testing.T) {
	var s summator
	assert.Equal(t, 0.0, s.sum())
}
