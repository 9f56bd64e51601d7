package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// PlaceOverlay draws panel lines over base starting at cell (x, y). Cells of
// base to the left and right of the panel are kept, styles included. Rows
// falling outside base are dropped.
func PlaceOverlay(base string, panel []string, x, y int) string {
	if len(panel) == 0 {
		return base
	}
	if x < 0 {
		x = 0
	}

	lines := strings.Split(base, "\n")
	for i, pl := range panel {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}

		line := lines[row]
		w := ansi.StringWidth(line)
		if w < x {
			line += strings.Repeat(" ", x-w)
			w = x
		}

		pw := ansi.StringWidth(pl)
		left := ansi.Truncate(line, x, "")
		right := ""
		if w > x+pw {
			right = ansi.TruncateLeft(line, x+pw, "")
		}
		lines[row] = left + sgrReset + pl + sgrReset + right
	}
	return strings.Join(lines, "\n")
}

// RenderPopup centres a boxed popup over the main content and greys out
// everything underneath it
func RenderPopup(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styled := popupStyle.Render(popupContent)
	lines := strings.Split(styled, "\n")

	maxH := height - 2
	if maxH > 0 && len(lines) > maxH {
		lines = lines[:maxH]
	}
	modalW := 0
	for _, l := range lines {
		if lw := ansi.StringWidth(l); lw > modalW {
			modalW = lw
		}
	}

	x := (width - modalW) / 2
	y := (height - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	return PlaceOverlay(desaturate(mainContent), lines, x, y)
}

// desaturate strips styles and recolors text dim gray
func desaturate(s string) string {
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = gray.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
