package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// ProgressBar renders a progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if done < 0 {
		done = 0
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	t := current
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarNone, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames inner with the current theme's border.
func PanelString(inner string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Println(PanelString(strings.Join(lines, "\n")))
}

// Size returns the terminal size, or 80x24 when stdout is not a terminal.
func Size() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 && th > 0 {
		w, h = tw, th
	}
	return w, h
}
