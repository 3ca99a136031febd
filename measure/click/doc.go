// Package click measures how audibly a rendered transition clicks.
//
// A gain that jumps between samples produces a large sample-to-sample step
// and spreads energy across the whole spectrum. [MaxStep] reports the former,
// [Analyzer.HighBandRatio] the latter: the share of Hann-windowed spectral
// energy above a cutoff. Ramped fades and crossfades score markedly lower on
// both than hard switches.
package click
