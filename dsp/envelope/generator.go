package envelope

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/trigger"
)

// Direction selects which way a Generator ramps.
type Direction int

const (
	// FadeIn rests at 0 and ramps to 1.
	FadeIn Direction = iota
	// FadeOut rests at 1 and ramps to 0.
	FadeOut
)

func (d Direction) String() string {
	switch d {
	case FadeIn:
		return "fade-in"
	case FadeOut:
		return "fade-out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Rest returns the value a generator of this direction holds while idle.
func (d Direction) Rest() float64 {
	if d == FadeOut {
		return 1
	}

	return 0
}

// level maps ramp progress to the envelope value.
func (d Direction) level(progress float64) float64 {
	if d == FadeOut {
		return core.Clamp01(1 - progress)
	}

	return core.Clamp01(progress)
}

// Inputs binds the read references a Generator consumes every block.
type Inputs struct {
	// Start arms (or re-arms) the ramp on its first event in a block.
	Start *trigger.Trigger

	// Reset aborts the ramp and snaps the envelope to rest.
	Reset *trigger.Trigger

	// Duration is read once per ramp, when the start edge arrives. Negative
	// durations count as zero.
	Duration *time.Duration
}

// Generator is a trigger-driven linear envelope.
//
// The block counter starts at 1. Every ramping block outputs
// counter/blockCount (mirrored for FadeOut), where blockCount is
// BlockRate*duration, and fires Finished once counter reaches blockCount.
// With a zero duration the ramp completes in the block it starts.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	dir       Direction
	order     StepOrder
	blockRate float64
	frames    int
	in        Inputs

	started  *trigger.Trigger
	finished *trigger.Trigger

	value      float64
	ramping    bool
	counter    float64
	blockCount float64
}

// New creates a Generator resting at dir.Rest().
func New(settings core.BlockSettings, dir Direction, in Inputs, opts ...Option) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	if dir != FadeIn && dir != FadeOut {
		return nil, fmt.Errorf("envelope direction is invalid: %d", dir)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	frames := settings.FramesPerBlock
	for _, input := range []struct {
		name string
		t    *trigger.Trigger
	}{{"start", in.Start}, {"reset", in.Reset}} {
		if input.t == nil {
			return nil, fmt.Errorf("envelope %s trigger: %w", input.name, core.ErrNilInput)
		}
		if input.t.FramesPerBlock() != frames {
			return nil, fmt.Errorf("envelope %s trigger: %w: %d frames, want %d",
				input.name, core.ErrLengthMismatch, input.t.FramesPerBlock(), frames)
		}
	}
	if in.Duration == nil {
		return nil, fmt.Errorf("envelope duration: %w", core.ErrNilInput)
	}

	started, err := trigger.NewWithCapacity(frames, cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}
	finished, err := trigger.NewWithCapacity(frames, cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	g := &Generator{
		dir:       dir,
		order:     cfg.order,
		blockRate: settings.BlockRate,
		frames:    frames,
		in:        in,
		started:   started,
		finished:  finished,
	}
	g.Reset()

	return g, nil
}

// Reset returns the generator to rest and clears its output triggers.
func (g *Generator) Reset() {
	g.started.Reset()
	g.finished.Reset()
	g.toRest()
	g.blockCount = 0
}

// Execute advances the envelope by one block.
func (g *Generator) Execute() {
	g.started.AdvanceBlock()
	g.finished.AdvanceBlock()

	if g.in.Reset.IsTriggered() {
		g.toRest()
		if g.order == ArmThenStep {
			return
		}
	}

	edge, hasEdge := g.in.Start.Scan()

	if g.order == StepThenArm {
		end := g.frames
		if hasEdge {
			end = edge
		}
		if end > 0 {
			g.step(end - 1)
		}
		if hasEdge {
			g.arm(edge)
		}
		return
	}

	if hasEdge {
		g.arm(edge)
	}
	g.step(g.frames - 1)
}

func (g *Generator) toRest() {
	g.ramping = false
	g.value = g.dir.Rest()
	g.counter = 1
}

func (g *Generator) arm(frame int) {
	g.started.TriggerFrame(frame)
	g.ramping = true
	g.counter = 1

	seconds := max(g.in.Duration.Seconds(), 0)
	g.blockCount = g.blockRate * seconds
}

func (g *Generator) step(finishFrame int) {
	if !g.ramping {
		return
	}

	g.value = g.dir.level(g.counter / g.blockCount)
	g.counter++

	if g.counter-1 >= g.blockCount {
		g.counter = 1
		g.ramping = false
		g.finished.TriggerFrame(finishFrame)
	}
}

// Direction returns the ramp direction fixed at construction.
func (g *Generator) Direction() Direction { return g.dir }

// Value returns the current envelope value.
func (g *Generator) Value() float64 { return g.value }

// Output returns a read reference to the envelope value for binding to a
// downstream processor's control input.
func (g *Generator) Output() *float64 { return &g.value }

// Started returns the trigger stream that fires at each accepted start edge.
func (g *Generator) Started() *trigger.Trigger { return g.started }

// Finished returns the trigger stream that fires when a ramp completes.
func (g *Generator) Finished() *trigger.Trigger { return g.finished }

// Ramping reports whether a ramp is in progress.
func (g *Generator) Ramping() bool { return g.ramping }

// BlockCount returns the length in blocks of the current or most recent ramp.
func (g *Generator) BlockCount() float64 { return g.blockCount }
