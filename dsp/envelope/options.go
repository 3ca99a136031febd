package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-fade/dsp/trigger"
)

// StepOrder selects how a start edge and the ramp step share a block.
type StepOrder int

const (
	// ArmThenStep handles the start edge first and then steps the ramp, so
	// the edge's block already carries the first ramp value.
	ArmThenStep StepOrder = iota

	// StepThenArm steps a running ramp only over the frames before the start
	// edge and arms afterwards. The first ramp value appears one block after
	// the edge, and an edge at frame 0 suppresses that block's step. A reset
	// edge does not cancel a start edge in the same block.
	StepThenArm
)

func (o StepOrder) String() string {
	switch o {
	case ArmThenStep:
		return "arm-then-step"
	case StepThenArm:
		return "step-then-arm"
	default:
		return fmt.Sprintf("StepOrder(%d)", int(o))
	}
}

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	order    StepOrder
	capacity int
}

func defaultConfig() config {
	return config{
		order:    ArmThenStep,
		capacity: trigger.DefaultCapacity,
	}
}

// WithStepOrder selects the start-edge ordering within a block.
func WithStepOrder(order StepOrder) Option {
	return func(cfg *config) error {
		if order != ArmThenStep && order != StepThenArm {
			return fmt.Errorf("envelope step order is invalid: %d", order)
		}

		cfg.order = order

		return nil
	}
}

// WithTriggerCapacity sets how many events the started and finished outputs
// can hold per block.
func WithTriggerCapacity(capacity int) Option {
	return func(cfg *config) error {
		if capacity <= 0 {
			return fmt.Errorf("envelope trigger capacity must be > 0: %d", capacity)
		}

		cfg.capacity = capacity

		return nil
	}
}
