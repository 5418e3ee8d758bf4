// Package cycle implements the preset-cycling state machine.
//
// The engine is a pure function over prior persisted state; all file and
// automation effects live in the callers. Malformed or missing state never
// produces an error, it degrades to the start of the sequence.
package cycle

import (
	"time"

	"github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

// ResetThreshold is the pause after which a new invocation restarts the
// sequence instead of advancing it.
const ResetThreshold = 5 * time.Second

// NextIndex decides which 1-based position in the active ratio sequence to
// apply now (effective) and which position to persist for the next run.
//
// The sequence restarts when there is no usable prior state, when the pause
// since the last run exceeds ResetThreshold, or when the requested alignment
// differs from the persisted one. Otherwise the persisted index is clamped
// into the current sequence by modulo, which guards against the sequence
// length having changed between runs (switching alignment class changes how
// many presets exist). The persisted index always advances by one step,
// wrapping to 1 past the end.
func NextIndex(prior *state.CycleState, requested types.Alignment, now time.Time, seqLen int) (effective, next int) {
	if seqLen < 1 {
		return 1, 1
	}

	effective = 1
	if prior != nil && prior.Index >= 1 {
		elapsed := EpochSeconds(now) - prior.Timestamp
		if elapsed <= ResetThreshold.Seconds() && prior.Alignment == requested {
			effective = ((prior.Index - 1) % seqLen) + 1
		}
	}

	next = (effective % seqLen) + 1
	return effective, next
}

// EpochSeconds converts a time to fractional seconds since epoch, the
// unit the state file records.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
