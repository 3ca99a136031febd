package buffer

import vecmath "github.com/cwbudde/algo-vecmath"

// Block is one audio block: a fixed-length run of float64 frames.
//
// The length is set at construction and never changes, so processors can
// hold a *Block for their whole lifetime and hosts can rewrite its samples
// between Execute calls.
type Block struct {
	samples []float64
}

// New returns a zero-filled Block of the given frame count.
func New(frames int) *Block {
	if frames < 0 {
		frames = 0
	}
	return &Block{samples: make([]float64, frames)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Block and vice versa.
func FromSlice(s []float64) *Block {
	return &Block{samples: s}
}

// Samples returns the underlying slice.
func (b *Block) Samples() []float64 {
	return b.samples
}

// Len returns the frame count.
func (b *Block) Len() int {
	return len(b.samples)
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	clear(b.samples)
}

// Fill sets every sample to v.
func (b *Block) Fill(v float64) {
	for i := range b.samples {
		b.samples[i] = v
	}
}

// CopyFrom copies src into b and returns the number of copied frames.
// Frames beyond the shorter of the two are left untouched.
func (b *Block) CopyFrom(src []float64) int {
	return copy(b.samples, src)
}

// Peak returns the largest absolute sample value.
func (b *Block) Peak() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	return vecmath.MaxAbs(b.samples)
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Block{samples: s}
}
