// Package crossfade implements equal-power crossfading between audio blocks.
//
// [EqualPower] maps a position in [0, 1] to a pair of cosine-taper gains whose
// squares sum to one, which keeps perceived loudness constant through the
// transition.
//
// Two processors build on it:
//
//   - [Crossfader] blends N >= 2 inputs. A continuous control in [0, N-1]
//     selects the adjacent pair (floor(c), floor(c)+1) and the position
//     between them; every other input is silent.
//   - [Pair] is the two-input case with a control in [0, 1].
//
// Both ramp each input's gain per sample from the previous block's target to
// the new one (see package ramp), so moving the control never clicks.
// Inputs whose gain was and stays zero are skipped.
package crossfade
