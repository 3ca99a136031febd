package crossfade

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/internal/testutil"
)

func newTestPair(t *testing.T, control *float64, a, b *buffer.Block) *Pair {
	t.Helper()
	p, err := NewPair(testSettings(), PairInputs{Control: control, A: a, B: b})
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}
	return p
}

func TestNewPairValidation(t *testing.T) {
	control := 0.0
	ok := buffer.New(testFrames)

	tests := []struct {
		name string
		in   PairInputs
		want error
	}{
		{"nil control", PairInputs{A: ok, B: ok}, core.ErrNilInput},
		{"nil A", PairInputs{Control: &control, B: ok}, core.ErrNilInput},
		{"nil B", PairInputs{Control: &control, A: ok}, core.ErrNilInput},
		{"short B", PairInputs{Control: &control, A: ok, B: buffer.New(3)}, core.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPair(testSettings(), tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("NewPair() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewPair(core.BlockSettings{FramesPerBlock: testFrames}, PairInputs{Control: &control, A: ok, B: ok}); !errors.Is(err, core.ErrInvalidSettings) {
		t.Fatalf("NewPair() with zero block rate error = %v, want %v", err, core.ErrInvalidSettings)
	}
}

func TestPairFirstBlockRampsFromSilence(t *testing.T) {
	control := 0.0
	a := buffer.FromSlice(testutil.Ones(testFrames))
	b := buffer.FromSlice(testutil.DC(0.5, testFrames))
	p := newTestPair(t, &control, a, b)

	p.Execute()

	out := p.Output().Samples()
	for i, v := range out {
		want := float64(i) / testFrames
		testutil.RequireNearlyEqual(t, "out", v, want, 1e-12)
	}

	gA, gB := p.Gains()
	if gA != 1 || gB > 1e-15 {
		t.Fatalf("Gains() = (%v, %v), want (1, 0)", gA, gB)
	}
}

func TestPairHeldControlKeepsMixing(t *testing.T) {
	control := 0.5
	a := buffer.FromSlice(testutil.DeterministicSine(1000, 48000, 1, testFrames))
	b := buffer.FromSlice(testutil.DeterministicNoise(11, 1, testFrames))
	p := newTestPair(t, &control, a, b)

	gA, gB := EqualPower(0.5)
	want := make([]float64, testFrames)
	for i := range want {
		want[i] = gA*a.Samples()[i] + gB*b.Samples()[i]
	}

	p.Execute()
	for block := 1; block < 4; block++ {
		p.Execute()
		testutil.RequireSliceNearlyEqual(t, p.Output().Samples(), want, 1e-12)
	}
}

func TestPairControlChangeRampsBetweenGains(t *testing.T) {
	control := 0.0
	a := buffer.FromSlice(testutil.Ones(testFrames))
	b := buffer.FromSlice(testutil.DC(-1, testFrames))
	p := newTestPair(t, &control, a, b)

	p.Execute()
	p.Execute()
	fromA, fromB := p.Gains()

	control = 1
	p.Execute()
	toA, toB := p.Gains()

	out := p.Output().Samples()
	for i, v := range out {
		u := float64(i) / testFrames
		want := (fromA + (toA-fromA)*u) - (fromB + (toB-fromB)*u)
		testutil.RequireNearlyEqual(t, "out", v, want, 1e-12)
	}
	testutil.RequireNearlyEqual(t, "first sample", out[0], fromA-fromB, 1e-12)
}

func TestPairControlIsClamped(t *testing.T) {
	control := 4.0
	p := newTestPair(t, &control, buffer.FromSlice(testutil.Ones(testFrames)), buffer.FromSlice(testutil.Ones(testFrames)))

	p.Execute()
	gA, gB := p.Gains()
	if gA > 1e-15 || gB != 1 {
		t.Fatalf("Gains() at control 4 = (%v, %v), want (0, 1)", gA, gB)
	}

	control = -3
	p.Execute()
	gA, gB = p.Gains()
	if gA != 1 || gB > 1e-15 {
		t.Fatalf("Gains() at control -3 = (%v, %v), want (1, 0)", gA, gB)
	}
}

func TestPairResetMatchesFreshInstance(t *testing.T) {
	control := 0.2
	a := buffer.FromSlice(testutil.DeterministicSine(300, 48000, 1, testFrames))
	b := buffer.FromSlice(testutil.DeterministicSine(700, 48000, 1, testFrames))

	used := newTestPair(t, &control, a, b)
	for range 4 {
		used.Execute()
	}
	used.Reset()
	if peak := used.Output().Peak(); peak != 0 {
		t.Fatalf("output peak after Reset = %v, want 0", peak)
	}
	used.Execute()

	fresh := newTestPair(t, &control, a, b)
	fresh.Execute()

	testutil.RequireSliceNearlyEqual(t, used.Output().Samples(), fresh.Output().Samples(), 0)
}

func TestPairExecuteDoesNotAllocate(t *testing.T) {
	control := 0.0
	p := newTestPair(t, &control, buffer.New(testFrames), buffer.New(testFrames))

	allocs := testing.AllocsPerRun(100, func() {
		control = 1 - control
		p.Execute()
	})
	if allocs != 0 {
		t.Fatalf("Execute allocated %v times per run", allocs)
	}
}
