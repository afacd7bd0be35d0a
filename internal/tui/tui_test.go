package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/countdown/internal/clock"
	"github.com/Makepad-fr/countdown/internal/countdown"
	"github.com/Makepad-fr/countdown/internal/logger"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func setupScreen(t *testing.T) (Model, *countdown.Machine, *clock.Manual) {
	t.Helper()
	src := clock.NewManual()
	machine := countdown.New(src, logger.New(logger.LevelOff, nil))
	t.Cleanup(machine.Close)
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return New(machine, Options{Blink: true, Now: func() time.Time { return now }}), machine, src
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypeStartAndComplete(t *testing.T) {
	m, machine, src := setupScreen(t)

	m, _ = send(t, m, keyPress("5"), keyPress("enter"))
	st := machine.State()
	if st.Phase != countdown.Running || st.Remaining != 300*time.Second {
		t.Fatalf("expected 5 minute countdown, got %s with %s", st.Phase, st.Remaining)
	}
	if view := m.View(); !strings.Contains(view, countdown.LabelPause) {
		t.Fatal("running screen should offer PAUSE")
	}

	for i := 0; i < 300; i++ {
		src.Advance(time.Second)
	}
	m, _ = send(t, m, frameMsg(time.Now()))

	if st := machine.State(); st.Phase != countdown.Idle || st.Notice != countdown.NoticeTimeUp {
		t.Fatalf("expected finished countdown, got %s %q", st.Phase, st.Notice)
	}
	if view := m.View(); !strings.Contains(view, countdown.NoticeTimeUp) {
		t.Fatal("completion notice not shown")
	}

	m, _ = send(t, m, keyPress("enter"))
	if machine.State().Notice != "" {
		t.Fatal("confirm did not dismiss the notice")
	}
	if strings.Contains(m.View(), countdown.NoticeTimeUp) {
		t.Fatal("notice still drawn after confirm")
	}
}

func TestInvalidInputShowsModalNotice(t *testing.T) {
	m, machine, _ := setupScreen(t)

	m, _ = send(t, m, keyPress("tab"), keyPress("7"), keyPress("5"))
	st := machine.State()
	if st.Notice != countdown.NoticeInvalid || !st.Seconds.Empty() {
		t.Fatalf("expected rejected seconds, got %+v", st)
	}
	if m.inputs[focusSeconds].Value() != "" {
		t.Fatalf("seconds input kept %q", m.inputs[focusSeconds].Value())
	}

	// Keys other than confirm are swallowed by the notice.
	m, _ = send(t, m, keyPress("3"))
	if machine.State().Seconds.Text != "" {
		t.Fatal("typing reached the input behind the notice")
	}

	m, _ = send(t, m, keyPress("esc"), keyPress("3"))
	if got := machine.State().Seconds.Text; got != "3" {
		t.Fatalf("expected seconds 3 after confirm, got %q", got)
	}
}

func TestLettersInInputAreRejectedNotCommands(t *testing.T) {
	m, machine, _ := setupScreen(t)

	m, cmd := send(t, m, keyPress("q"))
	if isQuit(cmd) {
		t.Fatal("typing q into an input quit the program")
	}
	if machine.State().Notice != countdown.NoticeInvalid {
		t.Fatal("expected a notice for non-numeric input")
	}
	_ = m
}

func TestStartWithEmptyInputs(t *testing.T) {
	m, machine, _ := setupScreen(t)

	m, _ = send(t, m, keyPress("enter"))
	st := machine.State()
	if st.Phase != countdown.Idle || st.Notice != countdown.NoticeInvalid {
		t.Fatalf("expected rejected start, got %s %q", st.Phase, st.Notice)
	}
	if !strings.Contains(m.View(), countdown.NoticeInvalid) {
		t.Fatal("rejection notice not shown")
	}
}

func TestPauseResetAndQuit(t *testing.T) {
	m, machine, src := setupScreen(t)

	m, _ = send(t, m, keyPress("tab"), keyPress("3"), keyPress("0"), keyPress("enter"))
	if m.focus != focusToggle {
		t.Fatalf("focus should move to the toggle once running, got %d", m.focus)
	}
	src.Advance(5 * time.Second)

	m, _ = send(t, m, keyPress(" "))
	st := machine.State()
	if st.Phase != countdown.Paused || st.Remaining != 25*time.Second {
		t.Fatalf("expected paused at 25s, got %s with %s", st.Phase, st.Remaining)
	}
	if m.inputs[focusSeconds].Value() != "25" {
		t.Fatalf("inputs should show the remaining time, got %q", m.inputs[focusSeconds].Value())
	}

	m, _ = send(t, m, keyPress("r"))
	st = machine.State()
	if st.Phase != countdown.Idle || st.ResetEnabled || !st.Seconds.Empty() {
		t.Fatalf("unexpected state after reset: %+v", st)
	}

	_, cmd := send(t, m, keyPress("q"))
	if !isQuit(cmd) {
		t.Fatal("q on a button should quit")
	}
}

func TestResetDisabledBeforeFirstStart(t *testing.T) {
	m, machine, _ := setupScreen(t)

	m, _ = send(t, m, keyPress("4"), keyPress("tab"), keyPress("tab"), keyPress("tab"))
	if m.focus != focusReset {
		t.Fatalf("expected reset focus, got %d", m.focus)
	}
	m, _ = send(t, m, keyPress("enter"))
	if got := machine.State().Minutes.Text; got != "4" {
		t.Fatalf("disabled reset cleared the inputs: %q", got)
	}
	_ = m
}

func TestTabSkipsLockedInputs(t *testing.T) {
	m, _, _ := setupScreen(t)
	m, _ = send(t, m, keyPress("1"), keyPress("enter"))

	for i := 0; i < 4; i++ {
		m, _ = send(t, m, keyPress("tab"))
		if m.focus == focusMinutes || m.focus == focusSeconds {
			t.Fatalf("focus reached a locked input: %d", m.focus)
		}
	}
}
