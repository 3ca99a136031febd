package trigger

import "fmt"

// DefaultCapacity is the number of events a block can hold unless
// overridden with NewWithCapacity.
const DefaultCapacity = 8

// Trigger is a block-scoped event stream for blocks of a fixed frame count.
//
// Frames are kept in ascending order. Once the per-block capacity is
// exhausted, later events in the same block are dropped.
type Trigger struct {
	frames int
	fired  []int
}

// New creates a Trigger for blocks of the given frame count.
func New(frames int) (*Trigger, error) {
	return NewWithCapacity(frames, DefaultCapacity)
}

// NewWithCapacity creates a Trigger that can hold up to capacity events per
// block.
func NewWithCapacity(frames, capacity int) (*Trigger, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("trigger frames must be > 0: %d", frames)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("trigger capacity must be > 0: %d", capacity)
	}

	return &Trigger{
		frames: frames,
		fired:  make([]int, 0, capacity),
	}, nil
}

// FramesPerBlock returns the block length the stream addresses.
func (t *Trigger) FramesPerBlock() int {
	return t.frames
}

// AdvanceBlock discards the events of the previous block.
func (t *Trigger) AdvanceBlock() {
	t.fired = t.fired[:0]
}

// Reset clears all pending events.
func (t *Trigger) Reset() {
	t.AdvanceBlock()
}

// TriggerFrame records an event at frame. Frames outside [0, frames) are
// clamped into the block.
func (t *Trigger) TriggerFrame(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame >= t.frames {
		frame = t.frames - 1
	}

	n := len(t.fired)
	if n == cap(t.fired) {
		if frame >= t.fired[n-1] {
			return
		}
		n--
		t.fired = t.fired[:n]
	}

	i := n
	for i > 0 && t.fired[i-1] > frame {
		i--
	}
	t.fired = append(t.fired, 0)
	copy(t.fired[i+1:], t.fired[i:n])
	t.fired[i] = frame
}

// Scan returns the first event of the current block.
func (t *Trigger) Scan() (frame int, ok bool) {
	if len(t.fired) == 0 {
		return 0, false
	}
	return t.fired[0], true
}

// IsTriggered reports whether any event fired in the current block.
func (t *Trigger) IsTriggered() bool {
	return len(t.fired) > 0
}

// Frames returns the event frames of the current block in ascending order.
// The slice is owned by the Trigger and valid until the next AdvanceBlock.
func (t *Trigger) Frames() []int {
	return t.fired
}

// Count returns the number of events recorded in the current block.
func (t *Trigger) Count() int {
	return len(t.fired)
}
