package buffer

import "sync"

// Pool recycles Blocks of one frame count. Hosts that build and tear down
// many processors (or render scenarios in parallel) use it to keep block
// allocation off the render path.
type Pool struct {
	frames int
	pool   sync.Pool
}

// NewPool returns a Pool handing out blocks of the given frame count.
func NewPool(frames int) *Pool {
	if frames < 0 {
		frames = 0
	}
	p := &Pool{frames: frames}
	p.pool.New = func() any {
		return New(p.frames)
	}
	return p
}

// Frames returns the block length this pool serves.
func (p *Pool) Frames() int {
	return p.frames
}

// Get returns a zeroed Block. Callers must return it via Put when done.
func (p *Pool) Get() *Block {
	b := p.pool.Get().(*Block)
	b.Zero()
	return b
}

// Put returns a Block to the pool. Blocks of a different length are dropped.
// The caller must not use the block after calling Put.
func (p *Pool) Put(b *Block) {
	if b == nil || b.Len() != p.frames {
		return
	}
	p.pool.Put(b)
}
