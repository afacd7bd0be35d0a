package model

import "time"

// Phase names stored in a snapshot.
const (
	PhaseIdle   = "idle"
	PhasePaused = "paused"
)

// Snapshot is the restorable timer state: what the user typed and whether a
// countdown was left paused. Kept minimal on purpose; it's easy to evolve.
type Snapshot struct {
	MinutesInput     string    `json:"minutes_input"`
	SecondsInput     string    `json:"seconds_input"`
	Phase            string    `json:"phase"`
	RemainingSeconds int       `json:"remaining_seconds,omitempty"`
	ResetEnabled     bool      `json:"reset_enabled"`
	SavedAt          time.Time `json:"saved_at"`
}

// Blank reports whether the snapshot carries nothing worth restoring.
func (s Snapshot) Blank() bool {
	return s.MinutesInput == "" && s.SecondsInput == "" && s.Phase != PhasePaused
}
