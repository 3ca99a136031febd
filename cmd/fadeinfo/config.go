package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-fade/dsp/core"
)

type config struct {
	settings core.BlockSettings
	duration time.Duration
	inputs   int
	blocks   int
	freq     float64
	cutoff   float64
	fadeIn   [2]float64
	fadeOut  [2]float64
	analyze  bool
}

func (c config) validate() error {
	if err := c.settings.Validate(); err != nil {
		return err
	}
	if c.inputs < 2 {
		return fmt.Errorf("inputs must be >= 2: %d", c.inputs)
	}
	if c.blocks < 0 {
		return fmt.Errorf("blocks must be >= 0: %d", c.blocks)
	}
	if nyquist := c.settings.SampleRate() / 2; c.freq <= 0 || c.freq*float64(c.inputs) >= nyquist {
		return fmt.Errorf("freq must be in (0, %g) for %d inputs: %g", nyquist/float64(c.inputs), c.inputs, c.freq)
	}

	if c.cutoff <= 0 {
		return fmt.Errorf("cutoff must be > 0: %g", c.cutoff)
	}

	return nil
}

// blockCount is the number of blocks each scenario renders: the explicit
// -blocks value, or enough to cover the fade plus a little settling time.
func (c config) blockCount() int {
	if c.blocks > 0 {
		return c.blocks
	}

	n := int(math.Ceil(c.settings.BlockRate*max(c.duration.Seconds(), 0))) + 3

	return max(n, 4)
}

// sweep returns the control value for block b of n, moving linearly from lo
// to hi.
func sweep(lo, hi float64, b, n int) float64 {
	if n <= 1 {
		return hi
	}

	return core.Lerp(lo, hi, float64(b)/float64(n-1))
}

func parseRange(s string) ([2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("want start,end: %q", s)
	}

	var r [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("invalid number %q: %w", p, err)
		}
		r[i] = v
	}

	return r, nil
}
