package fader

import (
	"fmt"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/ramp"
)

// Inputs binds the read references a Fader consumes every block.
type Inputs struct {
	Audio   *buffer.Block
	Control *float64

	// Fade-in range: control at or below FadeInStart is silent, at or above
	// FadeInEnd is full level.
	FadeInStart *float64
	FadeInEnd   *float64

	// Fade-out range: control at or below FadeOutStart is full level, at or
	// above FadeOutEnd is silent.
	FadeOutStart *float64
	FadeOutEnd   *float64
}

// Fader scales its audio input by amplitude = fadeIn(control) * fadeOut(control).
//
// Range bounds are read every block but only take effect when the control
// value changes. Their ordering is not validated; a degenerate range
// (start == end) acts as a step at that point.
//
// A Fader is not safe for concurrent use.
type Fader struct {
	in     Inputs
	out    *buffer.Block
	ramper *ramp.Ramper

	initialized bool
	prevControl float64
	amplitude   float64
	prevAmp     float64
}

// New creates a Fader. Every input reference must be bound.
func New(settings core.BlockSettings, in Inputs) (*Fader, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("fader: %w", err)
	}

	for _, s := range []struct {
		name string
		v    *float64
	}{
		{"control", in.Control},
		{"fade-in start", in.FadeInStart},
		{"fade-in end", in.FadeInEnd},
		{"fade-out start", in.FadeOutStart},
		{"fade-out end", in.FadeOutEnd},
	} {
		if s.v == nil {
			return nil, fmt.Errorf("fader %s: %w", s.name, core.ErrNilInput)
		}
	}

	frames := settings.FramesPerBlock
	if in.Audio == nil {
		return nil, fmt.Errorf("fader audio: %w", core.ErrNilInput)
	}
	if in.Audio.Len() != frames {
		return nil, fmt.Errorf("fader audio: %w: %d frames, want %d",
			core.ErrLengthMismatch, in.Audio.Len(), frames)
	}

	r, err := ramp.New(frames)
	if err != nil {
		return nil, fmt.Errorf("fader: %w", err)
	}

	f := &Fader{
		in:     in,
		out:    buffer.New(frames),
		ramper: r,
	}
	f.Reset()

	return f, nil
}

// Reset silences the output; the next block ramps in from amplitude 0.
func (f *Fader) Reset() {
	f.initialized = false
	f.prevControl = 0
	f.amplitude = 0
	f.prevAmp = 0
	f.out.Zero()
}

// Execute renders one block into Output.
func (f *Fader) Execute() {
	f.out.CopyFrom(f.in.Audio.Samples())

	control := *f.in.Control
	if !f.initialized || control != f.prevControl {
		f.initialized = true
		f.prevControl = control
		f.amplitude = MappedAmplitude(control,
			*f.in.FadeInStart, *f.in.FadeInEnd,
			*f.in.FadeOutStart, *f.in.FadeOutEnd)
	}

	f.ramper.Fade(f.out.Samples(), f.prevAmp, f.amplitude)
	f.prevAmp = f.amplitude
}

// Output returns the block Execute writes to.
func (f *Fader) Output() *buffer.Block { return f.out }

// Amplitude returns the target amplitude reached at the end of the last block.
func (f *Fader) Amplitude() float64 { return f.prevAmp }

// MappedAmplitude evaluates the dual-range gain for control.
func MappedAmplitude(control, inStart, inEnd, outStart, outEnd float64) float64 {
	fadeIn := core.MapRangeClamped(inStart, inEnd, 0, 1, control)
	fadeOut := core.MapRangeClamped(outStart, outEnd, 1, 0, control)
	return fadeIn * fadeOut
}
