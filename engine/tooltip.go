package engine

// Modality records which input family produced the current hover.
// Keyboard selection has no pointer position, so the tooltip anchors
// to the content box edges instead of the unit, the way touch input
// does on a pointer-driven canvas.
type Modality int

const (
	ModalityPointer Modality = iota
	ModalityKeyboard
)

// Placement is where a tooltip box lands relative to its unit.
type Placement int

const (
	PlaceAbove Placement = iota
	PlaceBelow
	PlaceInside
)

// TooltipMargin is the gap, in device pixels, between a tooltip box
// and the unit edge it anchors to.
const TooltipMargin = 2.0

// PlaceTooltip positions a tooltip of tipW x tipH over the unit
// rectangle (ux, uy, uw, uh) inside a content box of boxW x boxH. All
// values are device pixels.
//
// Pointer modality: centered over the unit, above its top edge;
// flipped below when above would cross the top; placed inside near the
// unit's top when below would cross the bottom. Horizontally clamped
// to the box on both sides.
//
// Keyboard modality: centered on the full box width and snapped to the
// box's top or bottom margin by which half of the box the unit's
// vertical center falls into.
func PlaceTooltip(ux, uy, uw, uh, boxW, boxH, tipW, tipH float64, mod Modality) (x, y float64, place Placement) {
	if mod == ModalityKeyboard {
		x = clamp(boxW/2-tipW/2, 0, boxW-tipW)
		if uy+uh/2 < boxH/2 {
			y = boxH - tipH - TooltipMargin
			place = PlaceBelow
		} else {
			y = TooltipMargin
			place = PlaceAbove
		}
		return x, y, place
	}

	x = clamp(ux+uw/2-tipW/2, 0, boxW-tipW)

	y = uy - tipH - TooltipMargin
	place = PlaceAbove
	if y < 0 {
		y = uy + uh + TooltipMargin
		place = PlaceBelow
	}
	if place == PlaceBelow && y+tipH > boxH {
		y = uy + TooltipMargin
		place = PlaceInside
	}
	return x, y, place
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
