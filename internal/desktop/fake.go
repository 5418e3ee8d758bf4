package desktop

import (
	"context"
	"fmt"

	"github.com/ryanthedev/cycle-cli/internal/types"
)

// Fake is an in-memory Automator for tests. Call counters let tests
// assert how many expensive queries a code path issued.
type Fake struct {
	Processes  []types.Process
	Front      types.Process
	Geometries map[string]types.Rect // process name -> current bounds

	// Injected failures
	FrontErr    error
	LookupErr   error
	GeometryErr error
	SetPosErr   error
	SetSizeErr  error
	ActivateErr error

	// Recorded effects
	PositionSets []types.Point
	SizeSets     []types.Point // X=width, Y=height
	Activated    []string
	Notices      []string

	// Query counters
	FrontmostCalls int
	LookupCalls    int
	GeometryReads  int
}

var (
	_ Automator = (*Fake)(nil)
	_ Notifier  = (*Fake)(nil)
)

func (f *Fake) ListProcesses(ctx context.Context) ([]types.Process, error) {
	return f.Processes, nil
}

func (f *Fake) FrontmostProcess(ctx context.Context) (types.Process, error) {
	f.FrontmostCalls++
	if f.FrontErr != nil {
		return types.Process{}, f.FrontErr
	}
	if f.Front.Name == "" {
		return types.Process{}, fmt.Errorf("no frontmost process")
	}
	return f.Front, nil
}

func (f *Fake) LookupProcess(ctx context.Context, name string) (types.Process, error) {
	f.LookupCalls++
	if f.LookupErr != nil {
		return types.Process{}, f.LookupErr
	}
	for _, p := range f.Processes {
		if p.Name == name {
			p.Frontmost = p.Name == f.Front.Name
			return p, nil
		}
	}
	return types.Process{}, fmt.Errorf("process not found: %s", name)
}

func (f *Fake) WindowGeometry(ctx context.Context, proc types.Process) (types.Rect, error) {
	f.GeometryReads++
	if f.GeometryErr != nil {
		return types.Rect{}, f.GeometryErr
	}
	g, ok := f.Geometries[proc.Name]
	if !ok {
		return types.Rect{}, fmt.Errorf("no window for process: %s", proc.Name)
	}
	return g, nil
}

func (f *Fake) SetWindowPosition(ctx context.Context, proc types.Process, pos types.Point) error {
	if f.SetPosErr != nil {
		return f.SetPosErr
	}
	f.PositionSets = append(f.PositionSets, pos)
	if g, ok := f.Geometries[proc.Name]; ok {
		g.X, g.Y = pos.X, pos.Y
		f.Geometries[proc.Name] = g
	}
	return nil
}

func (f *Fake) SetWindowSize(ctx context.Context, proc types.Process, width, height float64) error {
	if f.SetSizeErr != nil {
		return f.SetSizeErr
	}
	f.SizeSets = append(f.SizeSets, types.Point{X: width, Y: height})
	if g, ok := f.Geometries[proc.Name]; ok {
		g.Width, g.Height = width, height
		f.Geometries[proc.Name] = g
	}
	return nil
}

func (f *Fake) ActivateApp(ctx context.Context, name string) error {
	if f.ActivateErr != nil {
		return f.ActivateErr
	}
	f.Activated = append(f.Activated, name)
	return nil
}

func (f *Fake) Notify(ctx context.Context, message string) error {
	f.Notices = append(f.Notices, message)
	return nil
}
