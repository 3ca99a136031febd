package core

import "errors"

var (
	// ErrInvalidSettings is returned when block settings cannot drive a processor.
	ErrInvalidSettings = errors.New("invalid block settings")

	// ErrNilInput is returned when a required input reference is not bound.
	ErrNilInput = errors.New("nil input reference")

	// ErrLengthMismatch is returned when a bound block does not match the
	// processor's frame count.
	ErrLengthMismatch = errors.New("block length mismatch")
)

// Processor is the per-block contract shared by every generator and fader.
//
// Execute reads the bound inputs, advances internal state by exactly one
// block and writes the outputs in place. Reset returns the processor to the
// state it had right after construction.
type Processor interface {
	Execute()
	Reset()
}
