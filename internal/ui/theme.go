package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of lipgloss styles for text, digits and buttons, plus the
// panel border and progress bar glyphs. SetTheme picks the active one.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Digit, Separator                      lipgloss.Style
	Button, ButtonFocus, ButtonOff        lipgloss.Style

	Border           lipgloss.Border
	BorderColor      lipgloss.TerminalColor
	BarFull, BarNone string
	SymOK, SymFail   string
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

var current = classic()

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	gray := lipgloss.Color("8")
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Digit:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Button:      lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(gray),
		ButtonFocus: lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Bold(true),
		ButtonOff:   lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(gray).Faint(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: gray,
		BarFull:     "█", BarNone: "░",
		SymOK: "✔", SymFail: "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	t.Digit = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	t.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("201"))
	t.ButtonFocus = t.ButtonFocus.BorderForeground(lipgloss.Color("201"))
	t.Border = lipgloss.DoubleBorder()
	t.BorderColor = lipgloss.Color("201")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:        "mono",
		Title:       plain,
		Muted:       plain,
		Accent:      plain,
		Success:     plain,
		Error:       plain,
		Digit:       plain,
		Separator:   plain,
		Button:      plain.Padding(0, 2).Border(lipgloss.NormalBorder()),
		ButtonFocus: plain.Padding(0, 2).Border(lipgloss.ThickBorder()),
		ButtonOff:   plain.Padding(0, 2).Border(lipgloss.HiddenBorder()),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		BarFull:     "#", BarNone: "-",
		SymOK: "x", SymFail: "!",
	}
}
