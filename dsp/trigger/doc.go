// Package trigger models a block-scoped discrete event stream.
//
// A [Trigger] carries the frame offsets, within the current block, at which
// an event fired. Producers call [Trigger.AdvanceBlock] once at the start of
// every block and [Trigger.TriggerFrame] for each event; consumers call
// [Trigger.Scan] to find the first actionable edge of the block.
//
// Event storage is allocated once, so neither side allocates while rendering.
package trigger
