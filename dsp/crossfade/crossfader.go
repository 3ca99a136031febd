package crossfade

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/ramp"
)

// ErrTooFewInputs is returned when a Crossfader is built with fewer than two
// inputs.
var ErrTooFewInputs = errors.New("crossfade needs at least two inputs")

// unsetControl lies outside every valid control range, so the first block
// always computes a selection.
const unsetControl = -1.0

// Inputs binds the read references a Crossfader consumes every block.
type Inputs struct {
	// Control selects the crossfade position in [0, len(Audio)-1].
	Control *float64

	// Audio holds one block per input. The slice is copied at construction;
	// the blocks themselves are read in place.
	Audio []*buffer.Block
}

// Crossfader blends N audio inputs with equal-power gains driven by a
// continuous control value.
//
// Only two adjacent inputs are audible at once. Per block the crossfader
// zeroes its output, then mixes every input whose previous or current gain is
// non-zero with a per-sample ramp between the two.
//
// A Crossfader is not safe for concurrent use.
type Crossfader struct {
	control *float64
	inputs  []*buffer.Block
	out     *buffer.Block
	ramper  *ramp.Ramper

	prevGains   []float64
	gains       []float64
	needsMixing []bool

	prevControl float64
	sel         Selection
}

// New creates a Crossfader over len(in.Audio) inputs.
func New(settings core.BlockSettings, in Inputs) (*Crossfader, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("crossfade: %w", err)
	}
	if len(in.Audio) < 2 {
		return nil, fmt.Errorf("crossfade: %w: got %d", ErrTooFewInputs, len(in.Audio))
	}
	if in.Control == nil {
		return nil, fmt.Errorf("crossfade control: %w", core.ErrNilInput)
	}

	frames := settings.FramesPerBlock
	for i, b := range in.Audio {
		if b == nil {
			return nil, fmt.Errorf("crossfade input %d: %w", i, core.ErrNilInput)
		}
		if b.Len() != frames {
			return nil, fmt.Errorf("crossfade input %d: %w: %d frames, want %d",
				i, core.ErrLengthMismatch, b.Len(), frames)
		}
	}

	r, err := ramp.New(frames)
	if err != nil {
		return nil, fmt.Errorf("crossfade: %w", err)
	}

	n := len(in.Audio)
	c := &Crossfader{
		control:     in.Control,
		inputs:      append([]*buffer.Block(nil), in.Audio...),
		out:         buffer.New(frames),
		ramper:      r,
		prevGains:   make([]float64, n),
		gains:       make([]float64, n),
		needsMixing: make([]bool, n),
	}
	c.Reset()

	return c, nil
}

// Reset silences the output and forgets all gain history. The next block
// ramps the selected inputs in from zero.
func (c *Crossfader) Reset() {
	clear(c.prevGains)
	clear(c.gains)
	clear(c.needsMixing)
	c.prevControl = unsetControl
	c.sel = Selection{}
	c.out.Zero()
}

// Execute renders one block into Output.
func (c *Crossfader) Execute() {
	n := len(c.inputs)
	control := core.Clamp(*c.control, 0, float64(n-1))
	if math.IsNaN(control) {
		control = 0
	}

	if core.ControlChanged(c.prevControl, control) {
		c.prevControl = control
		c.sel = Select(control, n)
		c.updateGains()
	}

	for i := range c.gains {
		c.needsMixing[i] = c.gains[i] != 0 || c.prevGains[i] != 0
	}

	c.out.Zero()
	dst := c.out.Samples()
	for i, in := range c.inputs {
		if !c.needsMixing[i] {
			continue
		}
		c.ramper.MixIn(dst, in.Samples(), c.prevGains[i], c.gains[i])
	}

	copy(c.prevGains, c.gains)
}

func (c *Crossfader) updateGains() {
	gainA, gainB := EqualPower(c.sel.Alpha)
	for i := range c.gains {
		switch i {
		case c.sel.IndexA:
			c.gains[i] = gainA
		case c.sel.IndexB:
			c.gains[i] = gainB
		default:
			c.gains[i] = 0
		}
	}
}

// Output returns the block Execute writes to.
func (c *Crossfader) Output() *buffer.Block { return c.out }

// NumInputs returns the number of inputs fixed at construction.
func (c *Crossfader) NumInputs() int { return len(c.inputs) }

// Selection returns the pair selected by the most recent control change.
func (c *Crossfader) Selection() Selection { return c.sel }

// Gain returns the target gain input i reached at the end of the last block.
func (c *Crossfader) Gain(i int) float64 { return c.prevGains[i] }

// Mixed reports whether input i contributed to the last block.
func (c *Crossfader) Mixed(i int) bool { return c.needsMixing[i] }
