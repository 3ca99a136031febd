package click

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fade/dsp/ramp"
	"github.com/cwbudde/algo-fade/internal/testutil"
)

const (
	testRate   = 48000.0
	testCutoff = 4000.0
)

// gated multiplies a 1 kHz sine by a gain that switches on at the centre of
// the signal, either instantly or over rampLen samples.
func gated(t *testing.T, n, rampLen int) []float64 {
	t.Helper()

	x := testutil.DeterministicSine(1000, testRate, 1, n)
	for i := range n / 2 {
		x[i] = 0
	}
	if rampLen == 0 {
		return x
	}

	r, err := ramp.New(rampLen)
	if err != nil {
		t.Fatal(err)
	}
	r.Fade(x[n/2:n/2+rampLen], 0, 1)

	return x
}

func TestHighBandRatioPureToneIsLow(t *testing.T) {
	x := testutil.DeterministicSine(1000, testRate, 1, 1024)

	ratio, err := HighBandRatio(x, testRate, testCutoff)
	if err != nil {
		t.Fatalf("HighBandRatio() error = %v", err)
	}
	if ratio > 1e-4 {
		t.Fatalf("pure tone ratio = %v, want < 1e-4", ratio)
	}
}

func TestHighBandRatioNoiseIsHigh(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 4096)

	ratio, err := HighBandRatio(x, testRate, testCutoff)
	if err != nil {
		t.Fatalf("HighBandRatio() error = %v", err)
	}
	if ratio < 0.7 || ratio > 0.95 {
		t.Fatalf("white noise ratio = %v, want about 0.83", ratio)
	}
}

func TestRampedGateSplattersLessThanHardGate(t *testing.T) {
	a, err := NewAnalyzer(testRate, 2048)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	hard := gated(t, 2048, 0)
	soft := gated(t, 2048, 256)

	hardRatio, err := a.HighBandRatio(hard, testCutoff)
	if err != nil {
		t.Fatal(err)
	}
	softRatio, err := a.HighBandRatio(soft, testCutoff)
	if err != nil {
		t.Fatal(err)
	}

	if softRatio >= hardRatio {
		t.Fatalf("ramped ratio %v should be below hard ratio %v", softRatio, hardRatio)
	}

	_, hardStep := MaxStep(hard)
	_, softStep := MaxStep(soft)
	if softStep >= hardStep {
		t.Fatalf("ramped max step %v should be below hard max step %v", softStep, hardStep)
	}
}

func TestAnalyzerValidation(t *testing.T) {
	if _, err := NewAnalyzer(0, 1024); err == nil {
		t.Fatal("zero sample rate: expected error")
	}
	if _, err := NewAnalyzer(testRate, 1); err == nil {
		t.Fatal("size 1: expected error")
	}

	a, err := NewAnalyzer(testRate, 1000)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	if a.Size() != 1024 {
		t.Fatalf("Size() = %d, want 1024", a.Size())
	}

	if _, err := a.HighBandRatio(make([]float64, 1025), testCutoff); !errors.Is(err, ErrTooLong) {
		t.Fatalf("HighBandRatio() error = %v, want %v", err, ErrTooLong)
	}

	ratio, err := a.HighBandRatio(make([]float64, 512), testCutoff)
	if err != nil || ratio != 0 {
		t.Fatalf("silence: ratio %v err %v, want 0 nil", ratio, err)
	}
}

func TestAnalyzerReusesWindowAcrossLengths(t *testing.T) {
	a, err := NewAnalyzer(testRate, 1024)
	if err != nil {
		t.Fatal(err)
	}

	x := testutil.DeterministicNoise(9, 1, 1024)
	first, _ := a.HighBandRatio(x, testCutoff)
	if _, err := a.HighBandRatio(x[:300], testCutoff); err != nil {
		t.Fatal(err)
	}
	again, _ := a.HighBandRatio(x, testCutoff)

	if first != again {
		t.Fatalf("ratio changed after analysing a shorter signal: %v != %v", first, again)
	}
}
