package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Makepad-fr/countdown/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "state", "countdown.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestLoadMissingFile(t *testing.T) {
	s := newStore(t)
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !snap.Blank() || snap.Phase != model.PhaseIdle {
		t.Fatalf("expected blank idle snapshot, got %+v", snap)
	}
}

func TestSaveThenLoad(t *testing.T) {
	s := newStore(t)
	saved := model.Snapshot{
		MinutesInput:     "4",
		SecondsInput:     "5",
		Phase:            model.PhasePaused,
		RemainingSeconds: 245,
		ResetEnabled:     true,
		SavedAt:          time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.SavedAt.Equal(saved.SavedAt) {
		t.Fatalf("saved at %s, want %s", got.SavedAt, saved.SavedAt)
	}
	got.SavedAt = saved.SavedAt
	if got != saved {
		t.Fatalf("loaded %+v, want %+v", got, saved)
	}
}

func TestSaveBlankRemovesFile(t *testing.T) {
	s := newStore(t)
	if err := s.Save(model.Snapshot{MinutesInput: "1", Phase: model.PhaseIdle}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(model.Snapshot{Phase: model.PhaseIdle}); err != nil {
		t.Fatalf("save blank: %v", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("expected file to be removed, stat err = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clearing a missing file should succeed: %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected an error for a corrupt file")
	}
}
