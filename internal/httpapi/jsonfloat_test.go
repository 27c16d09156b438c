package httpapi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONFloat_MarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   jsonFloat
		want string
	}{
		{"finite", jsonFloat(1.5), "1.5"},
		{"zero", jsonFloat(0), "0"},
		{"nan", jsonFloat(math.NaN()), "null"},
		{"pos_inf", jsonFloat(math.Inf(1)), "null"},
		{"neg_inf", jsonFloat(math.Inf(-1)), "null"},
	}
	for _, c := range cases {
		got, err := c.in.MarshalJSON()
		assert.NoError(t, err, c.name)
		assert.Equal(t, c.want, string(got), c.name)
	}
}
