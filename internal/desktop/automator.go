// Package desktop defines the surface the core consumes from the OS
// accessibility/automation layer. Everything that talks to a live desktop
// session sits behind these interfaces so the cycling and geometry logic
// stays testable without one.
package desktop

import (
	"context"

	"github.com/ryanthedev/cycle-cli/internal/types"
)

// Automator enumerates processes and reads/writes window geometry.
//
// All calls are synchronous and bounded by the transport's own timeout.
// Position and size are set through separate calls so a caller can skip
// whichever half is unchanged; some window managers animate on no-op sets.
type Automator interface {
	// ListProcesses returns the running application processes
	ListProcesses(ctx context.Context) ([]types.Process, error)

	// FrontmostProcess returns the currently focused application. This is
	// the expensive authoritative query the resolver's cache exists to
	// avoid.
	FrontmostProcess(ctx context.Context) (types.Process, error)

	// LookupProcess finds a process by name without enumerating everything.
	// The returned Process reports whether it is currently frontmost.
	LookupProcess(ctx context.Context, name string) (types.Process, error)

	// WindowGeometry reads the bounds of the process's front window
	WindowGeometry(ctx context.Context, proc types.Process) (types.Rect, error)

	// SetWindowPosition moves the process's front window
	SetWindowPosition(ctx context.Context, proc types.Process, pos types.Point) error

	// SetWindowSize resizes the process's front window
	SetWindowSize(ctx context.Context, proc types.Process, width, height float64) error

	// ActivateApp brings the named application to the front, launching it
	// if needed
	ActivateApp(ctx context.Context, name string) error
}

// Notifier shows a user-visible notification. Handled errors are surfaced
// here rather than through exit codes.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
