package crossfade

import (
	"fmt"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/ramp"
)

// unsetPairControl lies outside [0, 1] so the first block computes gains.
const unsetPairControl = 1.1

// PairInputs binds the read references a Pair consumes every block.
type PairInputs struct {
	// Control is the crossfade position: 0 is all A, 1 is all B.
	Control *float64
	A       *buffer.Block
	B       *buffer.Block
}

// Pair is a two-input equal-power crossfader.
//
// Gains are recomputed only when the control value changes, but both inputs
// are ramped and mixed into the output on every block, so a held control
// keeps both inputs at their target gains.
//
// A Pair is not safe for concurrent use.
type Pair struct {
	control *float64
	a, b    *buffer.Block
	out     *buffer.Block
	ramper  *ramp.Ramper

	prevControl  float64
	gainA, gainB float64
	prevA, prevB float64
}

// NewPair creates a two-input crossfader.
func NewPair(settings core.BlockSettings, in PairInputs) (*Pair, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("crossfade pair: %w", err)
	}
	if in.Control == nil {
		return nil, fmt.Errorf("crossfade pair control: %w", core.ErrNilInput)
	}

	frames := settings.FramesPerBlock
	for _, input := range []struct {
		name string
		b    *buffer.Block
	}{{"A", in.A}, {"B", in.B}} {
		name, b := input.name, input.b
		if b == nil {
			return nil, fmt.Errorf("crossfade pair input %s: %w", name, core.ErrNilInput)
		}
		if b.Len() != frames {
			return nil, fmt.Errorf("crossfade pair input %s: %w: %d frames, want %d",
				name, core.ErrLengthMismatch, b.Len(), frames)
		}
	}

	r, err := ramp.New(frames)
	if err != nil {
		return nil, fmt.Errorf("crossfade pair: %w", err)
	}

	p := &Pair{
		control: in.Control,
		a:       in.A,
		b:       in.B,
		out:     buffer.New(frames),
		ramper:  r,
	}
	p.Reset()

	return p, nil
}

// Reset silences the output; the next block ramps both inputs in from zero.
func (p *Pair) Reset() {
	p.prevControl = unsetPairControl
	p.gainA, p.gainB = 0, 0
	p.prevA, p.prevB = 0, 0
	p.out.Zero()
}

// Execute renders one block into Output.
func (p *Pair) Execute() {
	control := core.Clamp01(*p.control)
	if control != p.prevControl {
		p.prevControl = control
		p.gainA, p.gainB = EqualPower(control)
	}

	p.out.Zero()
	dst := p.out.Samples()
	p.ramper.MixIn(dst, p.a.Samples(), p.prevA, p.gainA)
	p.ramper.MixIn(dst, p.b.Samples(), p.prevB, p.gainB)

	p.prevA, p.prevB = p.gainA, p.gainB
}

// Output returns the block Execute writes to.
func (p *Pair) Output() *buffer.Block { return p.out }

// Gains returns the target gains reached at the end of the last block.
func (p *Pair) Gains() (gainA, gainB float64) { return p.prevA, p.prevB }
