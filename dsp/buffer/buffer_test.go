package buffer

import (
	"testing"

	"github.com/cwbudde/algo-fade/internal/testutil"
)

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		frames int
		want   int
	}{{8, 8}, {0, 0}, {-3, 0}} {
		b := New(tt.frames)
		if b.Len() != tt.want {
			t.Fatalf("New(%d).Len() = %d, want %d", tt.frames, b.Len(), tt.want)
		}
		testutil.RequireSliceNearlyEqual(t, b.Samples(), make([]float64, tt.want), 0)
	}
}

func TestFromSliceAliasesHostMemory(t *testing.T) {
	host := []float64{1, 2, 3}
	b := FromSlice(host)

	host[1] = -7
	if b.Samples()[1] != -7 {
		t.Fatal("host writes must be visible through the block")
	}

	b.Zero()
	testutil.RequireSliceNearlyEqual(t, host, []float64{0, 0, 0}, 0)
}

func TestFillAndCopyFrom(t *testing.T) {
	b := New(3)
	b.Fill(0.5)
	testutil.RequireSliceNearlyEqual(t, b.Samples(), testutil.DC(0.5, 3), 0)

	if n := b.CopyFrom([]float64{1, 2, 3, 4}); n != 3 {
		t.Fatalf("CopyFrom(long) = %d, want 3", n)
	}
	testutil.RequireSliceNearlyEqual(t, b.Samples(), []float64{1, 2, 3}, 0)

	if n := b.CopyFrom([]float64{9}); n != 1 {
		t.Fatalf("CopyFrom(short) = %d, want 1", n)
	}
	testutil.RequireSliceNearlyEqual(t, b.Samples(), []float64{9, 2, 3}, 0)
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"silence", []float64{0, 0}, 0},
		{"negative peak", []float64{0.1, -0.75, 0.5, 0.2}, 0.75},
		{"positive peak", []float64{0.1, -0.25, 0.9}, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSlice(tt.in).Peak(); got != tt.want {
				t.Fatalf("Peak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneSnapshotsOutput(t *testing.T) {
	out := FromSlice([]float64{1, 2, 3})
	snap := out.Clone()

	out.Fill(0)
	testutil.RequireSliceNearlyEqual(t, snap.Samples(), []float64{1, 2, 3}, 0)
}
