package applier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

var safari = types.Process{Name: "Safari", PID: 100}

func newFake() *desktop.Fake {
	return &desktop.Fake{
		Geometries: map[string]types.Rect{
			"Safari": {X: 100, Y: 50, Width: 800, Height: 600},
		},
	}
}

func TestApplyBothChange(t *testing.T) {
	fake := newFake()
	current := types.Rect{X: 100, Y: 50, Width: 800, Height: 600}
	next := types.Rect{X: 0, Y: 0, Width: 1280, Height: 1440}

	if err := Apply(context.Background(), fake, safari, current, next); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(fake.PositionSets) != 1 || len(fake.SizeSets) != 1 {
		t.Errorf("expected 1 position set and 1 size set, got %d/%d",
			len(fake.PositionSets), len(fake.SizeSets))
	}
	if fake.PositionSets[0] != (types.Point{X: 0, Y: 0}) {
		t.Errorf("position set = %+v", fake.PositionSets[0])
	}
	if fake.SizeSets[0] != (types.Point{X: 1280, Y: 1440}) {
		t.Errorf("size set = %+v", fake.SizeSets[0])
	}
}

func TestApplySkipsUnchangedPosition(t *testing.T) {
	fake := newFake()
	current := types.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	next := types.Rect{X: 0, Y: 0, Width: 1280, Height: 1440}

	if err := Apply(context.Background(), fake, safari, current, next); err != nil {
		t.Fatal(err)
	}
	if len(fake.PositionSets) != 0 {
		t.Error("position unchanged, no position set should be issued")
	}
	if len(fake.SizeSets) != 1 {
		t.Error("size changed, expected one size set")
	}
}

func TestApplySkipsUnchangedSize(t *testing.T) {
	fake := newFake()
	current := types.Rect{X: 100, Y: 0, Width: 800, Height: 600}
	next := types.Rect{X: 0, Y: 0, Width: 800, Height: 600}

	if err := Apply(context.Background(), fake, safari, current, next); err != nil {
		t.Fatal(err)
	}
	if len(fake.SizeSets) != 0 {
		t.Error("size unchanged, no size set should be issued")
	}
	if len(fake.PositionSets) != 1 {
		t.Error("position changed, expected one position set")
	}
}

func TestApplyNoOp(t *testing.T) {
	fake := newFake()
	r := types.Rect{X: 0, Y: 0, Width: 800, Height: 600}

	if err := Apply(context.Background(), fake, safari, r, r); err != nil {
		t.Fatal(err)
	}
	if len(fake.PositionSets) != 0 || len(fake.SizeSets) != 0 {
		t.Error("identical geometry must not issue any set calls")
	}
}

func TestApplyPositionError(t *testing.T) {
	fake := newFake()
	fake.SetPosErr = errors.New("window closed")

	err := Apply(context.Background(), fake, safari,
		types.Rect{X: 1, Y: 1, Width: 10, Height: 10},
		types.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	if err == nil {
		t.Error("expected apply failure to surface")
	}
}

func TestPersistBestEffort(t *testing.T) {
	// Unwritable path: parent exists as a file, so MkdirAll fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	store := state.NewStoreAt(filepath.Join(blocker, "cycle.state"))

	// Must not panic or propagate
	Persist(store, state.CycleState{Index: 1, Timestamp: 1, Alignment: types.AlignLeft})
}

func TestPersistWrites(t *testing.T) {
	store := state.NewStoreAt(filepath.Join(t.TempDir(), "cycle.state"))

	Persist(store, state.CycleState{Index: 2, Timestamp: 5, Alignment: types.AlignRight})

	loaded := store.Load()
	if loaded == nil || loaded.Index != 2 {
		t.Errorf("loaded = %+v, want index 2", loaded)
	}
}
