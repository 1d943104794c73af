package ui

import (
	"strings"
	"testing"

	"unitmap/model"
	"unitmap/render"
)

func testUnits() []model.Unit {
	return []model.Unit{
		{Name: "left", FuzzyMatchPercent: 80, TotalCode: 5000, X: 0, Y: 0, W: 0.5, H: 1},
		{Name: "right", FuzzyMatchPercent: 20, TotalCode: 2000, X: 0.5, Y: 0, W: 0.5, H: 1},
	}
}

func TestFrameReusesBaseCache(t *testing.T) {
	p := newPipeline()
	p.setSize(40, 10)
	units := testUnits()

	first := p.Frame(units, overlayState{})
	if p.rebuilds != 1 {
		t.Fatalf("rebuilds after first frame = %d, want 1", p.rebuilds)
	}
	if first == "" {
		t.Fatal("first frame is empty")
	}

	// No state change: the redraw is a no-op returning the cached
	// composite, with no second base rebuild.
	second := p.Frame(units, overlayState{})
	if p.rebuilds != 1 {
		t.Errorf("rebuilds after clean frame = %d, want 1", p.rebuilds)
	}
	if second != first {
		t.Error("clean frame differs from cached frame")
	}

	// Overlay changes recomposite without rebuilding the base.
	p.markOverlay()
	p.Frame(units, overlayState{ring: &ring{x0: 0, y0: 0, x1: 19, y1: 19}})
	if p.rebuilds != 1 {
		t.Errorf("rebuilds after overlay change = %d, want 1", p.rebuilds)
	}

	// A dirty base rebuilds once.
	p.markBase()
	p.Frame(units, overlayState{})
	if p.rebuilds != 2 {
		t.Errorf("rebuilds after base dirty = %d, want 2", p.rebuilds)
	}

	// A resolution change invalidates the surface.
	p.setSize(50, 12)
	p.Frame(units, overlayState{})
	if p.rebuilds != 3 {
		t.Errorf("rebuilds after resize = %d, want 3", p.rebuilds)
	}
}

func TestFrameRowCount(t *testing.T) {
	p := newPipeline()
	p.setSize(30, 8)
	frame := p.Frame(testUnits(), overlayState{})
	if got := len(strings.Split(frame, "\n")); got != 8 {
		t.Errorf("frame has %d rows, want 8", got)
	}
}

func TestFrameZeroSizeRetriesLater(t *testing.T) {
	p := newPipeline()
	p.setSize(0, 0)
	if got := p.Frame(testUnits(), overlayState{}); got != "" {
		t.Errorf("zero-size frame = %q, want empty", got)
	}
	if p.rebuilds != 0 {
		t.Errorf("rebuilds = %d, want 0 (rebuild abandoned)", p.rebuilds)
	}

	// The abandoned rebuild is retried once a surface is obtainable.
	p.setSize(20, 5)
	if got := p.Frame(testUnits(), overlayState{}); got == "" {
		t.Error("frame still empty after resize")
	}
	if p.rebuilds != 1 {
		t.Errorf("rebuilds = %d, want 1", p.rebuilds)
	}
}

func TestRebuildBasePixels(t *testing.T) {
	p := newPipeline()
	p.setSize(40, 10)
	units := testUnits()
	p.rebuildBase(units)

	// Interior pixel of the left unit carries its fill color.
	wantFill := render.UnitColor(80)
	if got := p.surf.at(10, 10); got != wantFill {
		t.Errorf("left interior pixel = %q, want %q", got, wantFill)
	}
	// Edge pixel carries the darkened border.
	wantBorder := render.DimColor(wantFill, borderDim)
	if got := p.surf.at(0, 10); got != wantBorder {
		t.Errorf("left border pixel = %q, want %q", got, wantBorder)
	}

	// A filtered unit is dimmed.
	units[1].Filtered = true
	p.rebuildBase(units)
	wantDimmed := render.DimColor(render.UnitColor(20), filteredDim)
	if got := p.surf.at(30, 10); got != wantDimmed {
		t.Errorf("filtered interior pixel = %q, want %q", got, wantDimmed)
	}
}

func TestRebuildBaseSkipsSubPixelUnits(t *testing.T) {
	p := newPipeline()
	p.setSize(40, 10)
	units := []model.Unit{
		{Name: "sliver", FuzzyMatchPercent: 50, X: 0.5, Y: 0.5, W: 0.0001, H: 0.0001},
	}
	p.rebuildBase(units)
	if got := p.surf.at(20, 10); got != "" {
		t.Errorf("sub-pixel unit painted %q, want background", got)
	}
}
