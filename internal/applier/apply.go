// Package applier pushes computed geometry to the automation layer and
// persists cycling state afterward.
package applier

import (
	"context"
	"fmt"

	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/logging"
	"github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

// Apply moves and resizes the target window to next. A position set is
// only issued when the origin actually changes, and a size set only when
// the dimensions change; some window managers animate or flicker on no-op
// sets and both calls are round trips to the bridge.
func Apply(ctx context.Context, auto desktop.Automator, proc types.Process, current, next types.Rect) error {
	if !next.SameOrigin(current) {
		if err := auto.SetWindowPosition(ctx, proc, next.Origin()); err != nil {
			return fmt.Errorf("failed to set position for %s: %w", proc.Name, err)
		}
	}

	if !next.SameSize(current) {
		if err := auto.SetWindowSize(ctx, proc, next.Width, next.Height); err != nil {
			return fmt.Errorf("failed to set size for %s: %w", proc.Name, err)
		}
	}

	return nil
}

// Persist saves cycling state as the last step of an invocation. The
// window change has already happened, so failure here is logged and
// swallowed; the worst outcome is that the next run restarts its cycle.
func Persist(store *state.Store, st state.CycleState) {
	if err := store.Save(st); err != nil {
		logging.Warn().Err(err).Str("path", store.Path()).Msg("state persist failed after apply")
	}
}
