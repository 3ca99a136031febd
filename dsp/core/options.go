package core

import (
	"fmt"
	"math"
)

const (
	defaultSampleRate     = 48000
	defaultFramesPerBlock = 256
)

// BlockSettings describes the fixed block geometry a processor is built for.
//
// FramesPerBlock is constant for the lifetime of a processor. BlockRate is the
// number of blocks executed per second, normally SampleRate / FramesPerBlock.
type BlockSettings struct {
	FramesPerBlock int
	BlockRate      float64
}

// BlockOption mutates a BlockSettings under construction.
type BlockOption func(*blockConfig)

type blockConfig struct {
	sampleRate float64
	frames     int
	blockRate  float64
}

// DefaultBlockSettings returns 256-frame blocks at 48 kHz.
func DefaultBlockSettings() BlockSettings {
	return BlockSettings{
		FramesPerBlock: defaultFramesPerBlock,
		BlockRate:      float64(defaultSampleRate) / defaultFramesPerBlock,
	}
}

// WithSampleRate sets the sample rate the block rate is derived from.
func WithSampleRate(sampleRate float64) BlockOption {
	return func(cfg *blockConfig) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

// WithFramesPerBlock sets the block length in frames.
func WithFramesPerBlock(frames int) BlockOption {
	return func(cfg *blockConfig) {
		if frames > 0 {
			cfg.frames = frames
		}
	}
}

// WithBlockRate overrides the derived block rate. Hosts that report an
// "actual" block rate which is not exactly SampleRate/FramesPerBlock use this.
func WithBlockRate(blockRate float64) BlockOption {
	return func(cfg *blockConfig) {
		if blockRate > 0 {
			cfg.blockRate = blockRate
		}
	}
}

// NewBlockSettings applies zero or more options to the defaults.
func NewBlockSettings(opts ...BlockOption) BlockSettings {
	cfg := blockConfig{
		sampleRate: defaultSampleRate,
		frames:     defaultFramesPerBlock,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rate := cfg.blockRate
	if rate <= 0 {
		rate = cfg.sampleRate / float64(cfg.frames)
	}

	return BlockSettings{FramesPerBlock: cfg.frames, BlockRate: rate}
}

// SampleRate returns the sample rate implied by the block geometry.
func (s BlockSettings) SampleRate() float64 {
	return s.BlockRate * float64(s.FramesPerBlock)
}

// BlockDuration returns the length of one block in seconds.
func (s BlockSettings) BlockDuration() float64 {
	if s.BlockRate <= 0 {
		return 0
	}

	return 1 / s.BlockRate
}

// Validate reports whether the settings can drive a processor.
func (s BlockSettings) Validate() error {
	if s.FramesPerBlock <= 0 {
		return fmt.Errorf("%w: frames per block must be > 0: %d", ErrInvalidSettings, s.FramesPerBlock)
	}

	if s.BlockRate <= 0 || math.IsNaN(s.BlockRate) || math.IsInf(s.BlockRate, 0) {
		return fmt.Errorf("%w: block rate must be > 0 and finite: %f", ErrInvalidSettings, s.BlockRate)
	}

	return nil
}
