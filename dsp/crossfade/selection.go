package crossfade

import (
	"math"

	"github.com/cwbudde/algo-fade/dsp/core"
)

// Selection is the pair of adjacent inputs a control value addresses and the
// position between them.
type Selection struct {
	IndexA int
	IndexB int
	Alpha  float64
}

// Select derives the active pair for control across n inputs.
//
// The control is clamped to [0, n-1]; IndexA = floor(c),
// IndexB = min(IndexA+1, n-1) and Alpha = c - IndexA. At the upper bound
// both indices point at the last input and Alpha is 0.
func Select(control float64, n int) Selection {
	if n < 1 {
		return Selection{}
	}

	maxIndex := float64(n - 1)
	c := core.Clamp(control, 0, maxIndex)
	if math.IsNaN(c) {
		c = 0
	}

	a := int(math.Floor(c))
	b := a + 1
	if b > n-1 {
		b = n - 1
	}

	return Selection{
		IndexA: a,
		IndexB: b,
		Alpha:  c - float64(a),
	}
}
