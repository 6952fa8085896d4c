package semicircle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	cases := []float64{0, 45.5, -122.4194, 89.9999, -90}
	for _, deg := range cases {
		raw := FromDegrees(deg)
		got := ToDegrees(raw)
		assert.InDelta(t, deg, got, 1e-4, "round trip via %d", raw)
	}
}

func TestZero(t *testing.T) {
	assert.Equal(t, float64(0), ToDegrees(0))
}
