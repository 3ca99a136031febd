package core

import "math"

const defaultEpsilon = 1e-12

// ControlTolerance is the absolute tolerance used when deciding whether a
// control value changed between blocks.
const ControlTolerance = 1e-8

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp01 limits value to [0, 1]. NaN maps to 0.
func Clamp01(value float64) float64 {
	if !(value > 0) {
		return 0
	}

	if value > 1 {
		return 1
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// ControlChanged reports whether a control value moved by more than
// ControlTolerance.
func ControlChanged(prev, next float64) bool {
	return math.Abs(next-prev) > ControlTolerance
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RangePct returns where value sits inside [min, max] as a fraction.
// A degenerate range yields 1 when value >= max and 0 otherwise.
func RangePct(min, max, value float64) float64 {
	divisor := max - min
	if divisor == 0 {
		if value >= max {
			return 1
		}

		return 0
	}

	return (value - min) / divisor
}

// MapRangeClamped maps value from the domain [inStart, inEnd] onto
// [outStart, outEnd]. Values outside the domain saturate at the range ends.
// Either pair may be descending.
func MapRangeClamped(inStart, inEnd, outStart, outEnd, value float64) float64 {
	t := Clamp01(RangePct(inStart, inEnd, value))
	return Lerp(outStart, outEnd, t)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
