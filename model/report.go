package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Unit is one visualized item: typically a function or data object in
// the decompiled target. Position and size are normalized fractions of
// the content box, assigned by the upstream layout step; the viewer
// never moves them.
type Unit struct {
	Name              string  `json:"name"`
	TotalCode         uint64  `json:"total_code"`
	FuzzyMatchPercent float64 `json:"fuzzy_match_percent"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	W                 float64 `json:"w"`
	H                 float64 `json:"h"`

	// Filtered marks units excluded by the active filter expression.
	// Owned by the filter engine; never persisted.
	Filtered bool `json:"-"`
}

// HasRect reports whether the unit carries a usable normalized rectangle.
// A report produced without a layout pass has all-zero geometry.
func (u *Unit) HasRect() bool {
	return u.W > 0 && u.H > 0
}

// Report is an ordered set of units plus aggregate measures for the
// whole target. Unit order is meaningful: it is the draw and hit-test
// order.
type Report struct {
	Name              string  `json:"name,omitempty"`
	Version           string  `json:"version,omitempty"`
	Units             []Unit  `json:"units"`
	TotalCode         uint64  `json:"total_code,omitempty"`
	FuzzyMatchPercent float64 `json:"fuzzy_match_percent,omitempty"`
}

// Load reads a report from a JSON file. Comments and trailing commas
// are tolerated so hand-annotated report files load unchanged.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates report JSON.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(jsonc.ToJSON(data), &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.fillAggregates()
	return &r, nil
}

func (r *Report) validate() error {
	if len(r.Units) == 0 {
		return fmt.Errorf("report has no units")
	}
	for i := range r.Units {
		u := &r.Units[i]
		if u.FuzzyMatchPercent < 0 || u.FuzzyMatchPercent > 100 {
			return fmt.Errorf("unit %q: fuzzy_match_percent %v out of range", u.Name, u.FuzzyMatchPercent)
		}
		if u.X < 0 || u.Y < 0 || u.W < 0 || u.H < 0 || u.X+u.W > 1.0001 || u.Y+u.H > 1.0001 {
			return fmt.Errorf("unit %q: rectangle (%v,%v,%v,%v) outside unit square", u.Name, u.X, u.Y, u.W, u.H)
		}
	}
	return nil
}

// fillAggregates recomputes the report-level measures from the units
// when the report carries none. The fuzzy percent is weighted by code
// size, matching how the upstream measures are produced.
func (r *Report) fillAggregates() {
	if r.TotalCode != 0 {
		return
	}
	var total uint64
	var weighted float64
	for i := range r.Units {
		total += r.Units[i].TotalCode
		weighted += r.Units[i].FuzzyMatchPercent * float64(r.Units[i].TotalCode)
	}
	r.TotalCode = total
	if total > 0 {
		r.FuzzyMatchPercent = weighted / float64(total)
	}
}

// NeedsLayout reports whether any unit is missing its rectangle.
func (r *Report) NeedsLayout() bool {
	for i := range r.Units {
		if !r.Units[i].HasRect() {
			return true
		}
	}
	return false
}

// FindUnit returns the unit with the given name, or nil.
func (r *Report) FindUnit(name string) *Unit {
	for i := range r.Units {
		if r.Units[i].Name == name {
			return &r.Units[i]
		}
	}
	return nil
}
