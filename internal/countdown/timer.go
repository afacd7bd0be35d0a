// Package countdown implements the countdown timer: input validation, the
// phase state machine driven by a tick source, and the display projection.
package countdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/countdown/internal/clock"
	"github.com/Makepad-fr/countdown/internal/logger"
	"github.com/Makepad-fr/countdown/internal/model"
)

// Phase is the discrete mode of the timer.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Finished
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// State is a copy of the machine's state at one point in time.
type State struct {
	Phase        Phase
	Remaining    time.Duration // whole seconds; meaningful while Running or Paused
	Minutes      Field
	Seconds      Field
	ResetEnabled bool
	Notice       string // pending modal text, empty when none
}

// Option configures a Machine.
type Option func(*Machine)

// WithInterval sets the tick interval. Each tick still counts as one second
// of countdown, so this is only useful to speed up demos and tests.
// Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Machine) {
		if d <= 0 {
			return
		}
		m.interval = d
	}
}

// WithOnChange registers an observer called after every state change.
func WithOnChange(fn func(State)) Option {
	return func(m *Machine) {
		m.onChange = fn
	}
}

// WithOnFinish registers an observer called when a countdown completes.
func WithOnFinish(fn func()) Option {
	return func(m *Machine) {
		m.onFinish = fn
	}
}

// Machine is the timer state machine. It owns at most one active tick
// subscription, which exists only while Running.
type Machine struct {
	src      clock.TickSource
	log      *logger.Logger
	interval time.Duration
	onChange func(State)
	onFinish func()

	mu     sync.Mutex
	state  State
	handle clock.Handle
	gen    uint64 // bumped whenever the subscription changes
	primed bool   // first tick of the current subscription has been absorbed
	runID  string
}

// New creates an idle machine driven by src.
func New(src clock.TickSource, log *logger.Logger, opts ...Option) *Machine {
	m := &Machine{
		src:      src,
		log:      log,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetMinutes applies a text-change event to the minutes field.
func (m *Machine) SetMinutes(raw string) error {
	return m.setField(raw, func(s *State) *Field { return &s.Minutes }, "minutes")
}

// SetSeconds applies a text-change event to the seconds field.
func (m *Machine) SetSeconds(raw string) error {
	return m.setField(raw, func(s *State) *Field { return &s.Seconds }, "seconds")
}

func (m *Machine) setField(raw string, pick func(*State) *Field, name string) error {
	m.mu.Lock()
	if m.state.Phase != Idle {
		m.mu.Unlock()
		return ErrInputLocked
	}
	err := pick(&m.state).set(raw)
	if err != nil {
		m.state.Notice = NoticeInvalid
		m.log.Debug("countdown: rejected %s input %q: %v", name, raw, err)
		err = fmt.Errorf("%s: %w", name, err)
	}
	st := m.state
	m.mu.Unlock()

	m.emit(st)
	return err
}

// Toggle starts the countdown when Idle or Paused and pauses it when Running.
func (m *Machine) Toggle() error {
	if m.State().Phase == Running {
		return m.Pause()
	}
	return m.Start()
}

// Start begins a countdown from the inputs when Idle, or resumes from the
// preserved remaining time when Paused. Starting with both inputs empty is
// rejected and leaves the machine Idle.
func (m *Machine) Start() error {
	m.mu.Lock()
	switch m.state.Phase {
	case Running:
		m.mu.Unlock()
		return nil
	case Idle:
		if m.state.Minutes.Empty() && m.state.Seconds.Empty() {
			m.state.Notice = NoticeInvalid
			st := m.state
			m.mu.Unlock()
			m.emit(st)
			return fmt.Errorf("start: %w: both fields are empty", ErrInvalidInput)
		}
		total := m.state.Minutes.Value*60 + m.state.Seconds.Value
		m.state.Remaining = time.Duration(total) * time.Second
		m.runID = uuid.NewString()
		m.log.Info("countdown %s started (total=%s)", m.runID, m.state.Remaining)
	case Paused:
		m.log.Info("countdown %s resumed (remaining=%s)", m.runID, m.state.Remaining)
	}

	m.state.Phase = Running
	m.state.ResetEnabled = true
	m.subscribeLocked()
	st := m.state
	m.mu.Unlock()

	m.emit(st)
	return nil
}

// Pause freezes a running countdown, preserving the remaining time. The
// inputs are rewritten to show what is left.
func (m *Machine) Pause() error {
	m.mu.Lock()
	if m.state.Phase != Running {
		m.mu.Unlock()
		return ErrNotRunning
	}
	m.cancelLocked()
	m.state.Phase = Paused
	m.state.Minutes, m.state.Seconds = remainingFields(m.state.Remaining)
	m.log.Info("countdown %s paused (remaining=%s)", m.runID, m.state.Remaining)
	st := m.state
	m.mu.Unlock()

	m.emit(st)
	return nil
}

// Reset cancels any countdown and clears every field. It is only allowed
// once a countdown has been started.
func (m *Machine) Reset() error {
	m.mu.Lock()
	if !m.state.ResetEnabled {
		m.mu.Unlock()
		return ErrResetDisabled
	}
	m.resetLocked()
	m.log.Info("countdown %s reset", m.runID)
	st := m.state
	m.mu.Unlock()

	m.emit(st)
	return nil
}

// Dismiss clears the pending notice.
func (m *Machine) Dismiss() {
	m.mu.Lock()
	if m.state.Notice == "" {
		m.mu.Unlock()
		return
	}
	m.state.Notice = ""
	st := m.state
	m.mu.Unlock()

	m.emit(st)
}

// Close releases the active tick subscription, if any.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
}

// Snapshot returns the restorable part of the state. A running countdown
// is recorded as paused.
func (m *Machine) Snapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := model.Snapshot{
		MinutesInput: m.state.Minutes.Text,
		SecondsInput: m.state.Seconds.Text,
		Phase:        model.PhaseIdle,
		ResetEnabled: m.state.ResetEnabled,
		SavedAt:      time.Now().UTC(),
	}
	if m.state.Phase == Running || m.state.Phase == Paused {
		snap.Phase = model.PhasePaused
		snap.RemainingSeconds = int(m.state.Remaining / time.Second)
		mins, secs := remainingFields(m.state.Remaining)
		snap.MinutesInput, snap.SecondsInput = mins.Text, secs.Text
	}
	return snap
}

// Restore replaces the state with a snapshot. Invalid input text is
// dropped rather than rejected; restoring never raises a notice.
//
// A paused snapshot whose remaining time does not fit in 59:59 is dropped
// and the inputs are restored as Idle.
func (m *Machine) Restore(snap model.Snapshot) {
	m.mu.Lock()
	m.cancelLocked()

	var st State
	_ = st.Minutes.set(snap.MinutesInput)
	_ = st.Seconds.set(snap.SecondsInput)
	st.ResetEnabled = snap.ResetEnabled
	if snap.RemainingSeconds > maxRemaining {
		m.log.Warn("countdown: dropping saved remaining time %ds (max %ds)", snap.RemainingSeconds, maxRemaining)
	}
	if snap.Phase == model.PhasePaused && snap.RemainingSeconds > 0 && snap.RemainingSeconds <= maxRemaining {
		st.Phase = Paused
		st.Remaining = time.Duration(snap.RemainingSeconds) * time.Second
		st.Minutes, st.Seconds = remainingFields(st.Remaining)
		st.ResetEnabled = true
		m.runID = uuid.NewString()
	}
	m.state = st
	m.log.Debug("countdown: restored %s state (remaining=%s)", st.Phase, st.Remaining)
	m.mu.Unlock()

	m.emit(st)
}

// subscribeLocked starts a tick subscription for the remaining time.
func (m *Machine) subscribeLocked() {
	m.cancelLocked()
	gen := m.gen
	m.primed = false
	m.handle = m.src.Start(m.state.Remaining, m.interval,
		func(time.Duration) { m.tick(gen) },
		func() { m.finish(gen) },
	)
}

// cancelLocked releases the subscription and invalidates its callbacks.
func (m *Machine) cancelLocked() {
	m.gen++
	if m.handle != nil {
		m.handle.Cancel()
		m.handle = nil
	}
}

func (m *Machine) resetLocked() {
	m.cancelLocked()
	notice := m.state.Notice
	m.state = State{Notice: notice}
}

// tick handles one callback from the subscription identified by gen.
func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state.Phase != Running {
		m.mu.Unlock()
		return
	}
	if !m.primed {
		m.primed = true
		m.mu.Unlock()
		return
	}
	m.state.Remaining -= time.Second
	if m.state.Remaining > 0 {
		st := m.state
		m.mu.Unlock()
		m.emit(st)
		return
	}
	m.mu.Unlock()
	m.finish(gen)
}

// finish moves a running countdown through Finished back to Idle.
func (m *Machine) finish(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state.Phase != Running {
		m.mu.Unlock()
		return
	}
	m.cancelLocked()
	m.state.Remaining = 0
	m.state.Phase = Finished
	m.state.Notice = NoticeTimeUp
	finished := m.state
	m.resetLocked()
	idle := m.state
	m.log.Info("countdown %s finished", m.runID)
	m.mu.Unlock()

	m.emit(finished)
	if m.onFinish != nil {
		m.onFinish()
	}
	m.emit(idle)
}

func (m *Machine) emit(st State) {
	if m.onChange != nil {
		m.onChange(st)
	}
}

// remainingFields splits d into input fields; zero minutes stay blank.
func remainingFields(d time.Duration) (mins, secs Field) {
	total := int(d / time.Second)
	if total/60 > 0 {
		mins = fieldOf(total / 60)
	}
	secs = fieldOf(total % 60)
	return mins, secs
}
