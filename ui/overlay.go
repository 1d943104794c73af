package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered view with
// overlay lines anchored at (anchorX, anchorY) in cell coordinates.
// Truncation is ANSI-aware, so escape sequences in the underlying view
// survive on both sides of the overlay.
func spliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for i, overlayLine := range overlayLines {
		row := anchorY + i
		if row < 0 || row >= len(viewLines) {
			continue
		}

		line := viewLines[row]
		lineWidth := ansi.StringWidth(line)

		var out strings.Builder
		if anchorX > 0 {
			out.WriteString(ansi.Truncate(line, anchorX, ""))
		}
		out.WriteString("\x1b[0m")
		out.WriteString(overlayLine)
		out.WriteString("\x1b[0m")

		if after := anchorX + overlayWidth; after < lineWidth {
			out.WriteString(ansi.TruncateLeft(line, after, ""))
		}

		viewLines[row] = out.String()
	}

	return strings.Join(viewLines, "\n")
}

// padOverlayLine pads styled content to the overlay's full width with
// background-colored spaces: one leading space, content, then trailing
// fill.
func padOverlayLine(styled string, innerWidth int, background lipgloss.Style) string {
	fill := innerWidth - ansi.StringWidth(styled)
	if fill < 0 {
		fill = 0
	}
	return background.Render(" ") + styled + background.Render(strings.Repeat(" ", fill+1))
}
