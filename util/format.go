package util

import (
	"fmt"
	"strings"
)

// SizeUnits lists the SI byte-size suffixes in ascending order of
// magnitude. Index k corresponds to a factor of 1000^k.
var SizeUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize formats a byte count as a human-readable string using SI
// (kilo = 1000) units, two decimal places.
func FormatSize(value uint64) string {
	v := float64(value)
	unit := 0
	for v >= 1000.0 && unit < len(SizeUnits)-1 {
		v /= 1000.0
		unit++
	}
	return fmt.Sprintf("%.2f %s", v, SizeUnits[unit])
}

// SizeUnitRank returns the index of a size suffix (case-insensitive),
// or -1 if the token is not a size unit.
func SizeUnitRank(token string) int {
	for i, u := range SizeUnits {
		if strings.EqualFold(token, u) {
			return i
		}
	}
	return -1
}

// FormatPercent formats a percentage with two decimal places. Values
// strictly between 0 and 100 are clamped into [0.01, 99.99] so that a
// nearly-complete value never displays as "100.00%" and a nearly-empty
// value never displays as "0.00%". Exact 0 and exact 100 pass through.
func FormatPercent(value float64) string {
	if value > 0 && value < 100 {
		// Anything that would round to 100.00 exceeds 99.99, and
		// anything that would round to 0.00 falls below 0.01, so a
		// plain clamp before formatting is sufficient.
		if value > 99.99 {
			value = 99.99
		} else if value < 0.01 {
			value = 0.01
		}
	}
	return fmt.Sprintf("%.2f%%", value)
}
