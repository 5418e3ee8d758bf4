package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ryanthedev/cycle-cli/internal/logging"
)

const (
	// DefaultStateDir is the directory under $HOME for state files
	DefaultStateDir = ".local/state/cyclecli"

	// CycleStateFile holds cycling state for the preset-resize command
	CycleStateFile = "cycle.state"
	// NudgeStateFile is reserved for the delta-resize command
	NudgeStateFile = "nudge.state"
)

// Store reads and writes one cycle-state file. Each stateful command owns
// its own file so their histories never interfere.
type Store struct {
	path string
}

// NewStore returns a store for the named file under the default state dir
func NewStore(name string) *Store {
	home, _ := os.UserHomeDir()
	return &Store{path: filepath.Join(home, DefaultStateDir, name)}
}

// NewStoreAt returns a store bound to an explicit path (used by tests)
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store is bound to
func (s *Store) Path() string {
	return s.path
}

// Load reads the prior state. A missing file, an unreadable file, or a
// malformed record all return nil; concurrent invocations may race on
// this file and the accepted worst case is a skipped or repeated cycle
// step, never a failed run.
func (s *Store) Load() *CycleState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn().Err(err).Str("path", s.path).Msg("state file unreadable, starting fresh")
		}
		return nil
	}

	st := ParseRecord(string(data))
	if st == nil {
		logging.Warn().Str("path", s.path).Msg("state file malformed, starting fresh")
	}
	return st
}

// Save persists the state, truncating any previous record. The write goes
// through a temp file and rename so a reader never observes a partial
// line. Callers treat failure as best-effort: the window change has
// already been applied by the time state is saved.
func (s *Store) Save(st CycleState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(st.Encode()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename state file: %w", err)
	}

	return nil
}

// Reset removes the state file, so the next run starts at the first preset
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
