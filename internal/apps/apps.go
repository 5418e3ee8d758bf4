// Package apps implements application activation and fixed-list app
// cycling.
package apps

import (
	"context"
	"fmt"

	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/logging"
)

// DefaultCycleList is the built-in app rotation, overridable in config
var DefaultCycleList = []string{
	"Google Chrome",
	"Cursor",
	"iTerm2",
	"Slack",
}

// Next returns the app that follows frontmost in the list, wrapping at
// the end. When frontmost is not in the list (or the list walk lands
// nowhere), the rotation starts at the first entry.
func Next(list []string, frontmost string) string {
	if len(list) == 0 {
		return ""
	}

	for i, name := range list {
		if name == frontmost {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

// Switch activates the named application unless it is already frontmost.
// It returns true when an activation was issued.
func Switch(ctx context.Context, auto desktop.Automator, name string) (bool, error) {
	front, err := auto.FrontmostProcess(ctx)
	if err == nil && front.Name == name {
		logging.Debug().Str("app", name).Msg("already frontmost, skipping activation")
		return false, nil
	}

	if err := auto.ActivateApp(ctx, name); err != nil {
		return false, fmt.Errorf("failed to activate %s: %w", name, err)
	}
	return true, nil
}

// Cycle advances the rotation from the current frontmost app and
// activates the result
func Cycle(ctx context.Context, auto desktop.Automator, list []string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("app cycle list is empty")
	}

	frontmost := ""
	if front, err := auto.FrontmostProcess(ctx); err == nil {
		frontmost = front.Name
	}

	next := Next(list, frontmost)
	if err := auto.ActivateApp(ctx, next); err != nil {
		return "", fmt.Errorf("failed to activate %s: %w", next, err)
	}
	return next, nil
}
