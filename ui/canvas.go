package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unitmap/model"
	"unitmap/render"
)

const (
	// borderDim darkens a unit's fill color for its one-pixel border.
	borderDim = 0.45
	// filteredDim pushes filtered units toward the background so they
	// read as excluded without losing the overall shape.
	filteredDim = 0.72
)

// surface is an offscreen grid of device pixels. Each terminal cell
// holds two vertically stacked pixels rendered with the upper
// half-block glyph, so the device resolution is columns x 2*rows.
type surface struct {
	w, h int
	pix  []string // hex color per pixel; "" means canvas background
}

// newSurface allocates a pixel grid, or returns nil when the content
// box has no drawable area.
func newSurface(w, h int) *surface {
	if w <= 0 || h <= 0 {
		return nil
	}
	return &surface{w: w, h: h, pix: make([]string, w*h)}
}

func (s *surface) set(x, y int, color string) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = color
}

func (s *surface) at(x, y int) string {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return ""
	}
	return s.pix[y*s.w+x]
}

// ring is the hover highlight drawn on the overlay layer: the hovered
// unit's device rectangle, outlined one pixel outside its bounds.
type ring struct {
	x0, y0, x1, y1 int
}

func (r *ring) contains(x, y int) bool {
	onX := x == r.x0 || x == r.x1
	onY := y == r.y0 || y == r.y1
	inX := x >= r.x0 && x <= r.x1
	inY := y >= r.y0 && y <= r.y1
	return (onX && inY) || (onY && inX)
}

// overlayState is everything the cheap per-frame pass draws on top of
// the cached base layer.
type overlayState struct {
	ring    *ring
	tooltip []string
	tipX    int // cell column of the tooltip's top-left corner
	tipY    int // cell row of the tooltip's top-left corner
	arrow   string
	arrowX  int
	arrowY  int
}

// pipeline owns the two-layer rendering: an expensive cached base
// layer (unit fills and borders on an offscreen surface) and a cheap
// overlay (hover ring and tooltip) composited on every produced frame.
// Frames are produced inside the host program's frame-synchronized
// render loop, so input bursts collapse to one repaint per displayed
// frame.
type pipeline struct {
	pw, ph int // device-pixel dimensions of the content box

	surf         *surface
	baseDirty    bool
	overlayDirty bool

	frame string // last composited frame

	// rebuilds counts base-layer rebuilds since creation.
	rebuilds int
}

func newPipeline() *pipeline {
	return &pipeline{baseDirty: true, overlayDirty: true}
}

// markBase flags the expensive layer for rebuild on the next frame.
func (p *pipeline) markBase() { p.baseDirty = true }

// markOverlay flags the cheap layer for recompositing on the next
// frame.
func (p *pipeline) markOverlay() { p.overlayDirty = true }

// setSize updates the content box size in terminal cells. A change in
// backing resolution invalidates the cached surface.
func (p *pipeline) setSize(cols, rows int) {
	pw, ph := cols, rows*2
	if pw == p.pw && ph == p.ph {
		return
	}
	p.pw, p.ph = pw, ph
	p.surf = nil
	p.baseDirty = true
	p.overlayDirty = true
}

// rebuildBase repaints every unit onto a fresh offscreen surface: one
// fill and one border stroke per unit, filtered units dimmed. If no
// surface can be allocated the rebuild is abandoned and retried on the
// next dirty frame.
func (p *pipeline) rebuildBase(units []model.Unit) {
	s := newSurface(p.pw, p.ph)
	if s == nil {
		return
	}
	for i := range units {
		u := &units[i]
		fill := render.UnitColor(u.FuzzyMatchPercent)
		border := render.DimColor(fill, borderDim)
		if u.Filtered {
			fill = render.DimColor(fill, filteredDim)
			border = render.DimColor(border, filteredDim)
		}

		x0 := int(math.Round(u.X * float64(p.pw)))
		y0 := int(math.Round(u.Y * float64(p.ph)))
		x1 := int(math.Round((u.X + u.W) * float64(p.pw)))
		y1 := int(math.Round((u.Y + u.H) * float64(p.ph)))
		if x1 <= x0 || y1 <= y0 {
			// Sub-pixel unit: invisible here, still reachable by the
			// hit-test tolerance.
			continue
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c := fill
				if x == x0 || x == x1-1 || y == y0 || y == y1-1 {
					c = border
				}
				s.set(x, y, c)
			}
		}
	}
	p.surf = s
	p.baseDirty = false
	p.rebuilds++
}

// Frame returns the composited content box. When neither layer is
// dirty and the resolution is unchanged, the previous frame is
// returned untouched; otherwise the cached base is blitted at 1:1
// device scale and the overlay drawn on top.
func (p *pipeline) Frame(units []model.Unit, ov overlayState) string {
	if p.baseDirty || p.surf == nil || p.surf.w != p.pw || p.surf.h != p.ph {
		p.rebuildBase(units)
	} else if !p.overlayDirty {
		return p.frame
	}
	if p.surf == nil {
		// No drawable surface this frame; keep whatever we had.
		return p.frame
	}

	composited := strings.Join(p.blit(ov.ring), "\n")
	if len(ov.tooltip) > 0 {
		composited = spliceOverlay(composited, ov.tooltip, ov.tipX, ov.tipY)
	}
	if ov.arrow != "" {
		composited = spliceOverlay(composited, []string{ov.arrow}, ov.arrowX, ov.arrowY)
	}

	p.frame = composited
	p.overlayDirty = false
	return p.frame
}

// blit converts the cached surface into styled half-block rows,
// overriding pixels on the hover ring with the highlight color. Equal
// adjacent color pairs are batched into runs to keep the escape
// sequence volume down.
func (p *pipeline) blit(r *ring) []string {
	rows := make([]string, 0, p.surf.h/2)
	for cy := 0; cy < p.surf.h; cy += 2 {
		var b strings.Builder
		runStart := 0
		var runTop, runBottom string
		flush := func(end int) {
			if end <= runStart {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			b.WriteString(style.Render(strings.Repeat("▀", end-runStart)))
		}
		for x := 0; x < p.surf.w; x++ {
			top := p.pixelColor(r, x, cy)
			bottom := p.pixelColor(r, x, cy+1)
			if x == 0 {
				runTop, runBottom = top, bottom
				continue
			}
			if top != runTop || bottom != runBottom {
				flush(x)
				runStart = x
				runTop, runBottom = top, bottom
			}
		}
		flush(p.surf.w)
		rows = append(rows, b.String())
	}
	return rows
}

func (p *pipeline) pixelColor(r *ring, x, y int) string {
	if r != nil && r.contains(x, y) {
		return hoverRingColor
	}
	c := p.surf.at(x, y)
	if c == "" {
		return canvasBackground
	}
	return c
}
