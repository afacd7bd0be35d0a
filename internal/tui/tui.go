// Package tui is the interactive timer screen built on Bubble Tea.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/countdown/internal/countdown"
	"github.com/Makepad-fr/countdown/internal/ui"
)

// frameInterval is how often the screen re-reads the timer and advances
// the separator animation.
const frameInterval = 100 * time.Millisecond

// Focusable controls, in tab order.
const (
	focusMinutes = iota
	focusSeconds
	focusToggle
	focusReset
	focusCount
)

type frameMsg time.Time

// Options tune the screen.
type Options struct {
	Blink bool              // animate the separator while running
	Now   func() time.Time // clock for the animation; time.Now when nil
}

// Model is the Bubble Tea model for the timer screen.
type Model struct {
	machine *countdown.Machine
	opt     Options
	keys    keyMap
	help    help.Model
	inputs  [2]textinput.Model
	focus   int

	width, height int
	lastPhase     countdown.Phase
	blinkStart    time.Time
	runTotal      time.Duration // length of the current countdown, for the progress bar
}

// New builds the screen for machine.
func New(machine *countdown.Machine, opt Options) Model {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	m := Model{
		machine: machine,
		opt:     opt,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	m.width, m.height = ui.Size()

	for i, placeholder := range []string{"mm", "ss"} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.Width = 3
		m.inputs[i] = ti
	}
	m.help.Styles.ShortKey = ui.Current().Muted
	m.help.Styles.ShortDesc = ui.Current().Muted

	st := machine.State()
	m.lastPhase = st.Phase
	if st.Phase == countdown.Paused {
		m.runTotal = st.Remaining
	}
	m.sync(st)
	if st.Phase == countdown.Idle {
		m.setFocus(focusMinutes)
	} else {
		m.setFocus(focusToggle)
	}
	return m
}

// Run starts the program and blocks until the user quits.
func Run(machine *countdown.Machine, opt Options) error {
	p := tea.NewProgram(New(machine, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frame())
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.sync(m.machine.State())
		return m, frame()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusMinutes || m.focus == focusSeconds {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The notice is modal: only confirmation gets through.
	if m.machine.State().Notice != "" {
		if key.Matches(msg, m.keys.Confirm) {
			m.machine.Dismiss()
			m.sync(m.machine.State())
		}
		return m, nil
	}

	editing := m.focus == focusMinutes || m.focus == focusSeconds
	if editing && (msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete) && msg.String() != " " {
		return m.edit(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)

	case m.focus == focusReset && msg.String() == "enter",
		key.Matches(msg, m.keys.Reset):
		_ = m.machine.Reset()

	case key.Matches(msg, m.keys.Toggle):
		_ = m.machine.Toggle()

	default:
		if editing {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
	}

	m.sync(m.machine.State())
	return m, nil
}

// edit forwards a key to the focused input and runs the result through the
// validator. The input is then rewritten with whatever the timer kept.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	i := m.focus
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	raw := m.inputs[i].Value()
	if i == focusMinutes {
		_ = m.machine.SetMinutes(raw)
	} else {
		_ = m.machine.SetSeconds(raw)
	}
	m.sync(m.machine.State())
	return m, cmd
}

// sync copies timer state into the widgets and tracks phase changes.
func (m *Model) sync(st countdown.State) {
	for i, text := range []string{st.Minutes.Text, st.Seconds.Text} {
		if m.inputs[i].Value() != text {
			m.inputs[i].SetValue(text)
			m.inputs[i].CursorEnd()
		}
	}

	if st.Phase == countdown.Running && m.lastPhase != countdown.Running {
		m.blinkStart = m.opt.Now()
		if m.lastPhase == countdown.Idle {
			m.runTotal = st.Remaining
		}
	}
	if st.Phase == countdown.Idle {
		m.runTotal = 0
	}
	if st.Phase != countdown.Idle && (m.focus == focusMinutes || m.focus == focusSeconds) {
		m.setFocus(focusToggle)
	}
	m.lastPhase = st.Phase
}

func (m *Model) cycleFocus(dir int) {
	inputsEnabled := m.machine.State().Phase == countdown.Idle
	next := m.focus
	for range focusCount {
		next = (next + dir + focusCount) % focusCount
		if !inputsEnabled && (next == focusMinutes || next == focusSeconds) {
			continue
		}
		break
	}
	m.setFocus(next)
}

func (m *Model) setFocus(f int) {
	m.focus = f
	for i := range m.inputs {
		if i == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) View() string {
	st := m.machine.State()
	var blink time.Duration
	if m.opt.Blink {
		blink = m.opt.Now().Sub(m.blinkStart)
	}
	vm := countdown.Project(st, blink)
	t := ui.Current()

	var sections []string
	sections = append(sections, t.Title.Render("Countdown")+"  "+t.Muted.Render(st.Phase.String()))
	sections = append(sections, "", ui.BigClock(vm.Minutes, vm.Separator, vm.Seconds, vm.SeparatorAlpha), "")

	if m.runTotal > 0 {
		elapsed := int((m.runTotal - st.Remaining) / time.Second)
		sections = append(sections, t.Muted.Render(ui.ProgressBar(elapsed, int(m.runTotal/time.Second), 24)), "")
	}

	sections = append(sections, m.inputsView(vm), "", m.buttonsView(vm))

	if vm.Notice != "" {
		sections = append(sections, "", m.noticeView(vm.Notice))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return ui.PanelString(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m Model) inputsView(vm countdown.ViewModel) string {
	t := ui.Current()
	field := func(i int, unit string) string {
		box := t.Button.Padding(0, 1)
		if m.focus == i {
			box = t.ButtonFocus.Padding(0, 1)
		}
		if !vm.InputsEnabled {
			box = t.ButtonOff.Padding(0, 1)
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, box.Render(m.inputs[i].View()), " ", t.Muted.Render(unit))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, field(focusMinutes, "min"), "   ", field(focusSeconds, "sec"))
}

func (m Model) buttonsView(vm countdown.ViewModel) string {
	t := ui.Current()
	toggle := t.Button
	if m.focus == focusToggle {
		toggle = t.ButtonFocus
	}
	reset := t.Button
	if m.focus == focusReset {
		reset = t.ButtonFocus
	}
	if !vm.ResetEnabled {
		reset = t.ButtonOff
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, toggle.Render(vm.Toggle), "  ", reset.Render("RESET"))
}

func (m Model) noticeView(text string) string {
	t := ui.Current()
	style := t.Success
	if text == countdown.NoticeInvalid {
		style = t.Error
	}
	body := style.Render(text) + "\n\n" + t.ButtonFocus.Render("Confirm")
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(strings.TrimSpace(body))
}
