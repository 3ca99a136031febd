// Package envelope implements trigger-driven linear fade envelopes.
//
// A [Generator] holds a single control value at rest (0 for [FadeIn], 1 for
// [FadeOut]) until a start trigger arrives, then walks it to the opposite end
// over the bound duration and fires a finished trigger in the block the ramp
// completes. A reset trigger aborts the ramp and snaps back to rest.
//
// The envelope advances once per block, so its resolution is one step of
// 1/(BlockRate*duration) per block rather than a per-sample ramp. Feed the
// value into a per-sample ramp (for example the control of a fader.Fader)
// when audio-rate smoothness matters.
package envelope
