// Package engine holds the pure interaction logic of the treemap
// viewer: filter evaluation, hit-testing, and tooltip placement. It
// has no rendering or terminal dependencies and is fully testable on
// plain unit data.
package engine

import (
	"strconv"
	"strings"

	"unitmap/model"
	"unitmap/util"
)

// CompareOp is a comparison operator in a filter term.
type CompareOp int

const (
	OpGreater CompareOp = iota
	OpLess
	OpGreaterEq
	OpLessEq
	OpEqual
	OpNotEqual
)

// CompareField selects which unit attribute a comparison term reads.
type CompareField int

const (
	FieldFuzzyPercent CompareField = iota
	FieldTotalCode
)

// Term is one parsed filter term: either a case-insensitive substring
// match on the unit name, or a numeric comparison against one field.
type Term struct {
	// Contains is the lowercased needle for a name term. Empty when
	// the term is a comparison.
	Contains string

	Compare   bool
	Field     CompareField
	Op        CompareOp
	Threshold float64
}

// opTokens is ordered longest-first so ">=" is not consumed as ">".
var opTokens = []struct {
	text string
	op   CompareOp
}{
	{">=", OpGreaterEq},
	{"<=", OpLessEq},
	{"==", OpEqual},
	{"!=", OpNotEqual},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEqual},
}

// ParseFilter splits free text on whitespace and parses each piece
// into a term. Empty input yields no terms (match-all). A piece that
// does not fit the comparison grammar becomes a name term; parsing
// never fails.
func ParseFilter(text string) []Term {
	fields := strings.Fields(text)
	terms := make([]Term, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, parseTerm(f))
	}
	return terms
}

func parseTerm(text string) Term {
	for _, tok := range opTokens {
		rest, ok := strings.CutPrefix(text, tok.text)
		if !ok {
			continue
		}
		if t, ok := parseComparison(tok.op, rest); ok {
			return t
		}
		break
	}
	return Term{Contains: strings.ToLower(text)}
}

// parseComparison parses "<number><suffix>" where suffix is "%"
// (fuzzy match percent) or a size unit (total code bytes, threshold
// scaled by the unit's magnitude).
func parseComparison(op CompareOp, text string) (Term, bool) {
	numEnd := 0
	for numEnd < len(text) {
		c := text[numEnd]
		if (c >= '0' && c <= '9') || c == '.' || (numEnd == 0 && c == '-') {
			numEnd++
			continue
		}
		break
	}
	if numEnd == 0 {
		return Term{}, false
	}
	value, err := strconv.ParseFloat(text[:numEnd], 64)
	if err != nil {
		return Term{}, false
	}
	suffix := text[numEnd:]
	if suffix == "%" {
		return Term{Compare: true, Field: FieldFuzzyPercent, Op: op, Threshold: value}, true
	}
	if rank := util.SizeUnitRank(suffix); rank >= 0 {
		for i := 0; i < rank; i++ {
			value *= 1000
		}
		return Term{Compare: true, Field: FieldTotalCode, Op: op, Threshold: value}, true
	}
	return Term{}, false
}

// Matches reports whether a unit satisfies the term.
func (t *Term) Matches(u *model.Unit) bool {
	if !t.Compare {
		return strings.Contains(strings.ToLower(u.Name), t.Contains)
	}
	var actual float64
	switch t.Field {
	case FieldFuzzyPercent:
		actual = u.FuzzyMatchPercent
	case FieldTotalCode:
		actual = float64(u.TotalCode)
	}
	switch t.Op {
	case OpGreater:
		return actual > t.Threshold
	case OpLess:
		return actual < t.Threshold
	case OpGreaterEq:
		return actual >= t.Threshold
	case OpLessEq:
		return actual <= t.Threshold
	case OpEqual:
		return actual == t.Threshold
	case OpNotEqual:
		return actual != t.Threshold
	}
	return false
}

// MatchesAll reports whether a unit satisfies every term.
func MatchesAll(terms []Term, u *model.Unit) bool {
	for i := range terms {
		if !terms[i].Matches(u) {
			return false
		}
	}
	return true
}

// Evaluate applies a filter to every unit, setting Filtered on those
// that fail any term. Geometry is never touched. Returns true when any
// flag changed, so the caller knows the base layer must be repainted.
func Evaluate(terms []Term, units []model.Unit) bool {
	changed := false
	for i := range units {
		filtered := !MatchesAll(terms, &units[i])
		if units[i].Filtered != filtered {
			units[i].Filtered = filtered
			changed = true
		}
	}
	return changed
}
