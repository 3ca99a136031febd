package click

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// MaxStep returns the largest absolute sample-to-sample difference in x and
// the index of the later sample. Inputs shorter than two samples report
// (0, 0).
func MaxStep(x []float64) (pos int, step float64) {
	for i := 1; i < len(x); i++ {
		if d := math.Abs(x[i] - x[i-1]); d > step {
			pos, step = i, d
		}
	}

	return pos, step
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return mathSqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// Peak returns the largest absolute sample in x.
func Peak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.MaxAbs(x)
}

// CrestFactorDB returns the peak-to-RMS ratio of x in dB. Silence yields 0.
func CrestFactorDB(x []float64) float64 {
	rms := RMS(x)
	if rms == 0 {
		return 0
	}

	return 20 * math.Log10(Peak(x)/rms)
}
