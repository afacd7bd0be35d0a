package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/countdown/internal/model"
)

// JSON-backed storage for the restorable timer state. Single file,
// human-readable, portable. No locking; one timer runs per working directory.

// DefaultFileName is used when no path is configured.
const DefaultFileName = ".countdown.json"

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// New returns a store for path. An empty path means DefaultFileName in the
// working directory.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

// Path returns the file the store uses.
func (s *Store) Path() string { return s.path }

// Load returns the saved snapshot. A missing file yields a blank snapshot.
func (s *Store) Load() (model.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Snapshot{Phase: model.PhaseIdle}, nil
		}
		return model.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return snap, nil
}

// Save writes snap. A blank snapshot removes the file instead.
func (s *Store) Save(snap model.Snapshot) error {
	if snap.Blank() {
		return s.Clear()
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Clear removes the saved snapshot, if any.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
