package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryanthedev/cycle-cli/internal/types"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "cycle.state"))
}

func TestStoreLoadMissingFile(t *testing.T) {
	s := tempStore(t)

	if st := s.Load(); st != nil {
		t.Errorf("Load() on missing file = %+v, want nil", st)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	s := tempStore(t)

	saved := CycleState{
		Index:             3,
		Timestamp:         1717243200.5,
		Alignment:         types.AlignCenter,
		CachedProcessName: "Safari",
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded := s.Load()
	if loaded == nil {
		t.Fatal("Load() returned nil after save")
	}
	if loaded.Index != 3 || loaded.Alignment != types.AlignCenter || loaded.CachedProcessName != "Safari" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestStoreSaveTruncatesPrevious(t *testing.T) {
	s := tempStore(t)

	long := CycleState{
		Index: 1, Timestamp: 1, Alignment: types.AlignLeft,
		CachedProcessName: "Safari",
		CachedGeometry:    &types.Rect{X: 1, Y: 2, Width: 3, Height: 4},
	}
	if err := s.Save(long); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(CycleState{Index: 2, Timestamp: 2, Alignment: types.AlignLeft}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2,2,l\n" {
		t.Errorf("file content = %q, old record leaked through", data)
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	s := tempStore(t)

	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("not,a,valid,record,at,all\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if st := s.Load(); st != nil {
		t.Errorf("Load() on corrupt file = %+v, want nil", st)
	}
}

func TestStoreReset(t *testing.T) {
	s := tempStore(t)

	if err := s.Save(CycleState{Index: 2, Timestamp: 1, Alignment: types.AlignLeft}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if st := s.Load(); st != nil {
		t.Error("state should be gone after reset")
	}

	// Resetting an already-absent file is not an error
	if err := s.Reset(); err != nil {
		t.Errorf("second Reset() error: %v", err)
	}
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(filepath.Join(dir, "nested", "deeper", "cycle.state"))

	if err := s.Save(CycleState{Index: 1, Timestamp: 1, Alignment: types.AlignLeft}); err != nil {
		t.Fatalf("Save() should create parent dirs: %v", err)
	}
}
