// Package resolver determines which window an invocation operates on.
package resolver

import (
	"context"
	"fmt"

	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/logging"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

// Target is the resolved window the rest of the invocation works against
type Target struct {
	Process  types.Process
	Geometry types.Rect
	CacheHit bool
}

// Resolve finds the frontmost process and its window geometry, reusing the
// cached identity from the last run when it still checks out.
//
// The cache is a latency optimization only: a named lookup plus frontmost
// check is cheaper than the authoritative frontmost query, and a confirmed
// match lets a valid cached geometry skip the live read entirely. Any
// doubt about the cache (process gone, no longer frontmost, lookup error,
// unusable geometry) falls through to the authoritative path, so a stale
// cache can cost an extra read but never a wrong result.
func Resolve(ctx context.Context, auto desktop.Automator, cachedName string, cachedGeom *types.Rect) (Target, error) {
	if cachedName != "" {
		if target, ok := fromCache(ctx, auto, cachedName, cachedGeom); ok {
			return target, nil
		}
		logging.Debug().Str("cached", cachedName).Msg("process cache miss, querying frontmost")
	}

	proc, err := auto.FrontmostProcess(ctx)
	if err != nil {
		return Target{}, fmt.Errorf("no frontmost process: %w", err)
	}

	geom, err := auto.WindowGeometry(ctx, proc)
	if err != nil {
		return Target{}, fmt.Errorf("failed to read window geometry for %s: %w", proc.Name, err)
	}

	return Target{Process: proc, Geometry: geom}, nil
}

// fromCache tries to satisfy resolution from the cached process name
func fromCache(ctx context.Context, auto desktop.Automator, name string, cachedGeom *types.Rect) (Target, bool) {
	proc, err := auto.LookupProcess(ctx, name)
	if err != nil || !proc.Frontmost {
		return Target{}, false
	}

	if cachedGeom != nil && cachedGeom.PositiveSize() {
		return Target{Process: proc, Geometry: *cachedGeom, CacheHit: true}, true
	}

	geom, err := auto.WindowGeometry(ctx, proc)
	if err != nil {
		return Target{}, false
	}
	return Target{Process: proc, Geometry: geom, CacheHit: true}, true
}
