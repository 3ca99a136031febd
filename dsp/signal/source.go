package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
)

// Source renders one block per call to Next.
type Source interface {
	// Next renders the next block and returns the source's output block.
	// The block is reused by the following call.
	Next() *buffer.Block
	Reset()
}

// Option configures a source at construction.
type Option func(*config) error

type config struct {
	amplitude float64
	phase     float64
	seed      int64
}

func defaultConfig() config {
	return config{amplitude: 1, seed: 1}
}

// WithAmplitude sets the peak amplitude (>= 0).
func WithAmplitude(amplitude float64) Option {
	return func(cfg *config) error {
		if amplitude < 0 || !core.IsFinite(amplitude) {
			return fmt.Errorf("signal amplitude must be >= 0 and finite: %f", amplitude)
		}
		cfg.amplitude = amplitude
		return nil
	}
}

// WithPhase sets the initial oscillator phase in radians.
func WithPhase(phase float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(phase) {
			return fmt.Errorf("signal phase must be finite: %f", phase)
		}
		cfg.phase = phase
		return nil
	}
}

// WithSeed sets the deterministic random seed for noise.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

func applyOptions(name string, settings core.BlockSettings, opts []Option) (config, error) {
	if err := settings.Validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", name, err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// Oscillator is a phase-continuous sine source.
type Oscillator struct {
	cfg   config
	step  float64
	phase float64
	out   *buffer.Block
}

// NewOscillator creates a sine source at freqHz. The sample rate is taken
// from settings.
func NewOscillator(settings core.BlockSettings, freqHz float64, opts ...Option) (*Oscillator, error) {
	cfg, err := applyOptions("oscillator", settings, opts)
	if err != nil {
		return nil, err
	}

	sampleRate := settings.SampleRate()
	if freqHz < 0 || freqHz >= sampleRate/2 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("oscillator frequency must be in [0, %g): %f", sampleRate/2, freqHz)
	}

	o := &Oscillator{
		cfg:  cfg,
		step: 2 * math.Pi * freqHz / sampleRate,
		out:  buffer.New(settings.FramesPerBlock),
	}
	o.Reset()

	return o, nil
}

// Next renders the next block.
func (o *Oscillator) Next() *buffer.Block {
	samples := o.out.Samples()
	for i := range samples {
		samples[i] = o.cfg.amplitude * math.Sin(o.phase)
		o.phase += o.step
	}
	o.phase = math.Mod(o.phase, 2*math.Pi)

	return o.out
}

// Reset rewinds to the initial phase.
func (o *Oscillator) Reset() {
	o.phase = o.cfg.phase
	o.out.Zero()
}

// Noise is a deterministic white-noise source in [-amplitude, amplitude].
type Noise struct {
	cfg config
	rng *rand.Rand
	out *buffer.Block
}

// NewNoise creates a white-noise source.
func NewNoise(settings core.BlockSettings, opts ...Option) (*Noise, error) {
	cfg, err := applyOptions("noise", settings, opts)
	if err != nil {
		return nil, err
	}

	n := &Noise{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.seed)),
		out: buffer.New(settings.FramesPerBlock),
	}

	return n, nil
}

// Next renders the next block.
func (n *Noise) Next() *buffer.Block {
	samples := n.out.Samples()
	for i := range samples {
		samples[i] = (n.rng.Float64()*2 - 1) * n.cfg.amplitude
	}

	return n.out
}

// Reset reseeds the generator so the sequence starts over.
func (n *Noise) Reset() {
	n.rng.Seed(n.cfg.seed)
	n.out.Zero()
}

// Constant is a DC source at the configured amplitude.
type Constant struct {
	value float64
	out   *buffer.Block
}

// NewConstant creates a DC source holding value.
func NewConstant(settings core.BlockSettings, value float64) (*Constant, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("constant: %w", err)
	}
	if !core.IsFinite(value) {
		return nil, fmt.Errorf("constant value must be finite: %f", value)
	}

	c := &Constant{value: value, out: buffer.New(settings.FramesPerBlock)}
	c.out.Fill(value)

	return c, nil
}

// Next returns the DC block.
func (c *Constant) Next() *buffer.Block {
	c.out.Fill(c.value)
	return c.out
}

// Reset restores the block contents.
func (c *Constant) Reset() {
	c.out.Fill(c.value)
}
