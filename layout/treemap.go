// Package layout packs report units into normalized treemap
// rectangles. It is the upstream collaborator of the viewer: the
// interactive engine only consumes rectangles, it never computes them.
package layout

import "unitmap/model"

type rect struct {
	x, y, w, h float64
}

// Layout assigns a normalized rectangle to every unit using recursive
// size-weighted binary partition. aspect is the content box's
// width/height ratio; the partition runs in aspect-corrected space so
// splits favor squarish tiles, then the result is scaled back to the
// unit square. Unit order is preserved.
func Layout(units []model.Unit, aspect float64) {
	if len(units) == 0 {
		return
	}
	if aspect <= 0 {
		aspect = 1
	}
	var r rect
	if aspect > 1 {
		r = rect{0, 0, 1, 1 / aspect}
	} else {
		r = rect{0, 0, aspect, 1}
	}
	binary(units, r, func(u *model.Unit, placed rect) {
		if aspect > 1 {
			placed.y *= aspect
			placed.h *= aspect
		} else {
			placed.x /= aspect
			placed.w /= aspect
		}
		u.X, u.Y, u.W, u.H = placed.x, placed.y, placed.w, placed.h
	})
}

// weight returns the packing weight of a unit. Empty units get a
// minimal weight so they still receive a sliver rather than a
// degenerate zero-area rectangle.
func weight(u *model.Unit) float64 {
	if u.TotalCode == 0 {
		return 1
	}
	return float64(u.TotalCode)
}

// binary recursively splits the unit slice into two halves of roughly
// equal total weight and divides the rectangle along its longer side
// proportionally.
func binary(units []model.Unit, r rect, place func(*model.Unit, rect)) {
	if len(units) == 0 {
		return
	}
	if len(units) == 1 {
		place(&units[0], r)
		return
	}

	var total float64
	for i := range units {
		total += weight(&units[i])
	}

	// Find the split point closest to half the total weight. At least
	// one unit stays on each side.
	var acc float64
	split := 1
	for i := 0; i < len(units)-1; i++ {
		next := acc + weight(&units[i])
		if next >= total/2 {
			// Choose whichever side of the boundary lands closer.
			if next-total/2 < total/2-acc || i == 0 {
				split = i + 1
			} else {
				split = i
			}
			break
		}
		acc = next
		split = i + 1
	}

	var left float64
	for i := 0; i < split; i++ {
		left += weight(&units[i])
	}
	frac := left / total

	var a, b rect
	if r.w >= r.h {
		a = rect{r.x, r.y, r.w * frac, r.h}
		b = rect{r.x + r.w*frac, r.y, r.w * (1 - frac), r.h}
	} else {
		a = rect{r.x, r.y, r.w, r.h * frac}
		b = rect{r.x, r.y + r.h*frac, r.w, r.h * (1 - frac)}
	}
	binary(units[:split], a, place)
	binary(units[split:], b, place)
}
