package engine

import "unitmap/model"

// HitTolerance is how far outside a unit's rectangle, in device
// pixels, a pointer still selects it. Dense layouts produce sub-pixel
// rectangles that would otherwise be unreachable.
const HitTolerance = 3.0

// Index hit-tests pointer coordinates against the denormalized unit
// rectangles of one content box.
type Index struct {
	units  []model.Unit
	width  float64
	height float64
}

// NewIndex builds an index over units for a content box of the given
// device-pixel dimensions. The unit slice is shared, not copied, so
// filter flag changes are visible without rebuilding.
func NewIndex(units []model.Unit, width, height float64) *Index {
	return &Index{units: units, width: width, height: height}
}

// Resize updates the content box dimensions.
func (ix *Index) Resize(width, height float64) {
	ix.width = width
	ix.height = height
}

// HitTest maps a pointer coordinate to at most one non-filtered unit.
// Exact containment wins first, in supplied unit order; failing that,
// the first unit whose rectangle lies within HitTolerance of
// containing the point. When several tolerance-expanded rectangles
// contain the point, the earliest in supplied order is returned.
func (ix *Index) HitTest(x, y float64) *model.Unit {
	for i := range ix.units {
		u := &ix.units[i]
		if u.Filtered {
			continue
		}
		ux, uy, uw, uh := ix.DeviceRect(u)
		if x >= ux && x <= ux+uw && y >= uy && y <= uy+uh {
			return u
		}
	}
	for i := range ix.units {
		u := &ix.units[i]
		if u.Filtered {
			continue
		}
		ux, uy, uw, uh := ix.DeviceRect(u)
		if x >= ux-HitTolerance && x <= ux+uw+HitTolerance &&
			y >= uy-HitTolerance && y <= uy+uh+HitTolerance {
			return u
		}
	}
	return nil
}

// DeviceRect returns a unit's rectangle denormalized to the index's
// content box.
func (ix *Index) DeviceRect(u *model.Unit) (x, y, w, h float64) {
	return u.X * ix.width, u.Y * ix.height, u.W * ix.width, u.H * ix.height
}
