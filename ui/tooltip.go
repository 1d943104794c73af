package ui

import (
	"github.com/charmbracelet/x/ansi"

	"unitmap/engine"
	"unitmap/model"
	"unitmap/util"
)

// tooltipMaxWidth is the widest the tooltip box grows, in cells,
// including one cell of padding on each side.
const tooltipMaxWidth = 36

// renderTooltip builds the styled tooltip box for a unit: name, fuzzy
// match percent, and code size. Every line has the same visible width;
// the solid background separates it from the canvas without a border.
func renderTooltip(u *model.Unit) []string {
	name := u.Name
	if name == "" {
		name = "(unnamed)"
	}

	width := ansi.StringWidth(name)
	percent := util.FormatPercent(u.FuzzyMatchPercent) + " fuzzy match"
	size := util.FormatSize(u.TotalCode)
	if w := ansi.StringWidth(percent); w > width {
		width = w
	}
	if w := ansi.StringWidth(size); w > width {
		width = w
	}
	inner := min(width, tooltipMaxWidth-2)

	if ansi.StringWidth(name) > inner {
		name = ansi.Truncate(name, inner-1, "…")
	}

	return []string{
		padOverlayLine(tooltipTitle.Render(name), inner, tooltipPad),
		padOverlayLine(tooltipText.Render(percent), inner, tooltipPad),
		padOverlayLine(tooltipDim.Render(size), inner, tooltipPad),
	}
}

// tooltipArrow returns the styled directional indicator glyph pointing
// from the tooltip box toward the unit it describes, or "" when the
// placement has no meaningful direction. The compositor splices it as
// its own one-cell overlay between the box and the unit.
func tooltipArrow(place engine.Placement) string {
	switch place {
	case engine.PlaceAbove:
		return arrowStyle.Render("▼")
	case engine.PlaceBelow:
		return arrowStyle.Render("▲")
	}
	return ""
}
