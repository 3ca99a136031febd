package click

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrTooLong is returned when a signal does not fit the analyzer's FFT size.
var ErrTooLong = errors.New("signal longer than analysis size")

// Analyzer computes spectral splatter with a cached FFT plan.
//
// Signals up to Size() samples are Hann-windowed over their own length and
// zero-padded. An Analyzer is not safe for concurrent use.
type Analyzer struct {
	sampleRate float64
	size       int
	plan       *algofft.Plan[complex128]

	in, out []complex128
	re, im  []float64
	power   []float64
	win     []float64
}

// NewAnalyzer creates an Analyzer for signals of up to size samples. size is
// rounded up to a power of two.
func NewAnalyzer(sampleRate float64, size int) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("click analyzer sample rate must be > 0 and finite: %f", sampleRate)
	}
	if size < 2 {
		return nil, fmt.Errorf("click analyzer size must be >= 2: %d", size)
	}

	n := nextPowerOf2(size)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("click analyzer: %w", err)
	}

	bins := n/2 + 1

	return &Analyzer{
		sampleRate: sampleRate,
		size:       n,
		plan:       plan,
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		power:      make([]float64, bins),
	}, nil
}

// Size returns the FFT length.
func (a *Analyzer) Size() int { return a.size }

// HighBandRatio returns the fraction of spectral energy of x that lies above
// cutoffHz, in [0, 1]. Silence yields 0.
func (a *Analyzer) HighBandRatio(x []float64, cutoffHz float64) (float64, error) {
	if len(x) > a.size {
		return 0, fmt.Errorf("click: %w: %d > %d", ErrTooLong, len(x), a.size)
	}
	if len(x) == 0 {
		return 0, nil
	}

	a.spectrum(x)

	binHz := a.sampleRate / float64(a.size)
	var total, high float64
	for k, p := range a.power {
		total += p
		if float64(k)*binHz > cutoffHz {
			high += p
		}
	}

	if total == 0 {
		return 0, nil
	}

	return high / total, nil
}

// spectrum fills a.power with |X[k]|^2 for k in [0, size/2].
func (a *Analyzer) spectrum(x []float64) {
	win := a.window(len(x))

	clear(a.in)
	for i, v := range x {
		a.in[i] = complex(v*win[i], 0)
	}

	// The plan only fails on length mismatches, which NewAnalyzer rules out.
	_ = a.plan.Forward(a.out, a.in)

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Power(a.power, a.re, a.im)
}

// window returns a symmetric Hann window of length n, cached across calls.
func (a *Analyzer) window(n int) []float64 {
	if len(a.win) == n {
		return a.win
	}

	a.win = make([]float64, n)
	if n == 1 {
		a.win[0] = 1
		return a.win
	}
	for i := range a.win {
		a.win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return a.win
}

// HighBandRatio is a one-shot Analyzer.HighBandRatio sized to x.
func HighBandRatio(x []float64, sampleRate, cutoffHz float64) (float64, error) {
	a, err := NewAnalyzer(sampleRate, max(len(x), 2))
	if err != nil {
		return 0, err
	}

	return a.HighBandRatio(x, cutoffHz)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
