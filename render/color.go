// Package render holds the drawing primitives shared by the terminal
// canvas and the static SVG fallback: the unit color ramp and the SVG
// writer.
package render

import "github.com/lucasb-eyer/go-colorful"

var (
	matchColor     = colorful.Hsl(120, 1.0, 0.39)
	nonmatchColor  = colorful.Hsl(221, 0.0, 0.21)
	nearmatchColor = colorful.Hsl(221, 0.5, 0.35)
)

// UnitColor maps a fuzzy match percentage to a fill color hex string.
// A perfect match is green; everything else blends from neutral gray
// toward blue as the match quality rises, so "almost done" never looks
// like "done".
func UnitColor(fuzzyMatchPercent float64) string {
	if fuzzyMatchPercent >= 100 {
		return matchColor.Hex()
	}
	return nonmatchColor.BlendRgb(nearmatchColor, fuzzyMatchPercent/100).Hex()
}

// DimColor darkens a hex color toward black; used for filtered units
// and unit borders.
func DimColor(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendRgb(colorful.Color{}, amount).Hex()
}
