// Package fader implements a parameter-mapped dual-range fader.
//
// A single control value drives two overlapping ranges: a fade-in range that
// maps [FadeInStart, FadeInEnd] onto gain 0..1 and a fade-out range that maps
// [FadeOutStart, FadeOutEnd] onto gain 1..0. The applied amplitude is their
// product, ramped per sample from the previous block's amplitude, so a
// control sweep through 0 -> 1 can bring a layer in, hold it and take it out
// again.
package fader
