package ramp

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Ramper applies linear gain ramps across one block. It owns its scratch
// memory, so MixIn and Fade never allocate.
//
// A Ramper is not safe for concurrent use.
type Ramper struct {
	unit []float64 // i / n
	gain []float64
}

// New creates a Ramper for blocks of the given frame count.
func New(frames int) (*Ramper, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("ramp frames must be > 0: %d", frames)
	}

	r := &Ramper{
		unit: make([]float64, frames),
		gain: make([]float64, frames),
	}
	inv := 1 / float64(frames)
	for i := range r.unit {
		r.unit[i] = float64(i) * inv
	}

	return r, nil
}

// Frames returns the block length the Ramper was built for.
func (r *Ramper) Frames() int {
	return len(r.unit)
}

// Gains fills and returns the per-frame gain trajectory from -> to.
// The returned slice is owned by the Ramper and is overwritten by the next
// call to Gains, MixIn or Fade.
func (r *Ramper) Gains(from, to float64) []float64 {
	delta := to - from
	if delta == 0 {
		for i := range r.gain {
			r.gain[i] = from
		}
		return r.gain
	}

	for i, u := range r.unit {
		r.gain[i] = from + delta*u
	}

	return r.gain
}

// GainAt returns the gain applied at frame i for a from -> to ramp.
func (r *Ramper) GainAt(from, to float64, i int) float64 {
	return from + (to-from)*float64(i)/float64(len(r.unit))
}

// MixIn adds src scaled by the from -> to ramp into dst. The mix always
// runs, even for an all-zero ramp; callers that want to skip silent inputs
// decide that themselves.
// Both slices must have length Frames(); the kernels panic otherwise.
func (r *Ramper) MixIn(dst, src []float64, from, to float64) {
	if from == to {
		vecmath.ScaleBlock(r.gain, src, from)
		vecmath.AddBlockInPlace(dst, r.gain)
		return
	}

	vecmath.MulAddBlock(dst, src, r.Gains(from, to), dst)
}

// Fade scales buf in place by the from -> to ramp.
// buf must have length Frames(); the kernels panic otherwise.
func (r *Ramper) Fade(buf []float64, from, to float64) {
	if from == to {
		if from == 1 {
			return
		}
		vecmath.ScaleBlockInPlace(buf, from)
		return
	}

	vecmath.MulBlockInPlace(buf, r.Gains(from, to))
}
