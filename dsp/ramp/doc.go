// Package ramp provides the per-block linear gain ramp used by every fader
// and crossfader in this module.
//
// A [Ramper] is sized once for a block length. For a transition from gain
// g0 to g1 it applies
//
//	gain(i) = g0 + (g1 - g0) * i / n,  i = 0 .. n-1
//
// so the target is reached exactly at the block boundary: the first frame of
// the following block starts at g1. Chaining ramps block after block with
// "previous target" bookkeeping therefore produces a continuous, click-free
// gain curve.
package ramp
