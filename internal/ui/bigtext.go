package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphHeight is the number of rows in every big glyph.
const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// BigDigits renders a digit group in the block font.
func BigDigits(s string) string {
	return current.Digit.Render(bigRows(s))
}

// BigSeparator renders the separator at the given opacity. The terminal has
// no real alpha: above one half it is drawn normally, above zero it is
// faint, and fully transparent renders blank.
func BigSeparator(sep string, alpha float64) string {
	rows := bigRows(sep)
	switch {
	case alpha >= 0.5:
		return current.Separator.Render(rows)
	case alpha > 0.05:
		return current.Separator.Faint(true).Render(rows)
	default:
		return strings.Repeat(" ", lipgloss.Width(rows)) + strings.Repeat("\n", glyphHeight-1)
	}
}

// BigClock joins minutes, separator and seconds side by side.
func BigClock(minutes, sep, seconds string, alpha float64) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		BigDigits(minutes), " ", BigSeparator(sep, alpha), " ", BigDigits(seconds))
}

func bigRows(s string) string {
	var rows [glyphHeight][]string
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	out := make([]string, glyphHeight)
	for i := range rows {
		out[i] = strings.Join(rows[i], " ")
	}
	return strings.Join(out, "\n")
}
