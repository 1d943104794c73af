package render

import (
	"fmt"
	"strings"

	"unitmap/model"
)

// SVG produces the non-interactive fallback image for a laid-out
// report: one rect per unit with percent-based geometry, so the same
// markup scales to any output size.
func SVG(units []model.Unit, w, h int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %d %d">`, w, h)
	b.WriteByte('\n')
	b.WriteString("<style>.unit { stroke: #000; stroke-width: 1; }</style>\n")
	for i := range units {
		u := &units[i]
		fmt.Fprintf(&b,
			`<rect class="unit" x="%s%%" y="%s%%" width="%s%%" height="%s%%" fill="%s"><title>%s</title></rect>`,
			trimFloat(u.X*100), trimFloat(u.Y*100), trimFloat(u.W*100), trimFloat(u.H*100),
			UnitColor(u.FuzzyMatchPercent), escapeXML(u.Name))
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// trimFloat formats a percentage without trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
