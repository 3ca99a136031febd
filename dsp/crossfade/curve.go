package crossfade

import (
	"math"

	"github.com/cwbudde/algo-fade/dsp/core"
)

// EqualPower returns the equal-power gains for crossfade position alpha.
//
// gainA = cos(alpha*pi/2) and gainB = cos((1-alpha)*pi/2), each clamped to
// [0, 1]. alpha = 0 yields (1, 0), alpha = 1 yields (0, 1), and
// gainA^2 + gainB^2 stays at 1 in between. Callers clamp alpha.
func EqualPower(alpha float64) (gainA, gainB float64) {
	gainA = core.Clamp01(math.Cos(alpha * math.Pi / 2))
	gainB = core.Clamp01(math.Cos((1 - alpha) * math.Pi / 2))
	return gainA, gainB
}
