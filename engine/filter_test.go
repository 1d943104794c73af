package engine

import (
	"testing"

	"unitmap/model"
)

func unit(name string, percent float64, size uint64) model.Unit {
	return model.Unit{Name: name, FuzzyMatchPercent: percent, TotalCode: size}
}

func TestParseFilterClassification(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		compare bool
	}{
		{"percent comparison", ">50%", true},
		{"size comparison", "<10kB", true},
		{"size comparison mixed case", ">=1mb", true},
		{"equality", "==100%", true},
		{"bare word", "foo", false},
		{"op without number", ">foo", false},
		{"number without suffix", ">50", false},
		{"unknown suffix", ">50x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := ParseFilter(tt.text)
			if len(terms) != 1 {
				t.Fatalf("got %d terms, want 1", len(terms))
			}
			if terms[0].Compare != tt.compare {
				t.Errorf("Compare = %v, want %v", terms[0].Compare, tt.compare)
			}
		})
	}
}

func TestFilterMatching(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		unit  model.Unit
		match bool
	}{
		{"percent above threshold", ">50%", unit("a", 75, 0), true},
		{"percent below threshold", ">50%", unit("a", 40, 0), false},
		{"size below threshold", "<10kB", unit("a", 0, 5000), true},
		{"size above threshold", "<10kB", unit("a", 0, 20000), false},
		{"size in megabytes", ">=2MB", unit("a", 0, 2_000_000), true},
		{"name substring case-insensitive", "foo", unit("FooBar", 0, 0), true},
		{"name substring miss", "foo", unit("baz", 0, 0), false},
		{"and semantics both pass", ">50% foo", unit("FooBar", 75, 0), true},
		{"and semantics one fails", ">50% foo", unit("baz", 75, 0), false},
		{"and semantics other fails", ">50% foo", unit("FooBar", 40, 0), false},
		{"empty filter matches all", "", unit("anything", 0, 0), true},
		{"not equal", "!=100%", unit("a", 99.9, 0), true},
		{"equal with single sign", "=100%", unit("a", 100, 0), true},
		{"less equal boundary", "<=50%", unit("a", 50, 0), true},
		{"bytes suffix unscaled", ">100B", unit("a", 0, 150), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := ParseFilter(tt.text)
			if got := MatchesAll(terms, &tt.unit); got != tt.match {
				t.Errorf("MatchesAll(%q, %s) = %v, want %v", tt.text, tt.unit.Name, got, tt.match)
			}
		})
	}
}

func TestEvaluateSetsFlagsAndReportsChange(t *testing.T) {
	units := []model.Unit{
		unit("FooBar", 75, 1000),
		unit("baz", 40, 1000),
	}
	terms := ParseFilter(">50%")

	if !Evaluate(terms, units) {
		t.Error("first Evaluate reported no change")
	}
	if units[0].Filtered {
		t.Error("FooBar filtered, want visible")
	}
	if !units[1].Filtered {
		t.Error("baz visible, want filtered")
	}

	// Same filter again: flags already settled.
	if Evaluate(terms, units) {
		t.Error("second Evaluate reported change")
	}

	// Clearing the filter restores everything.
	if !Evaluate(nil, units) {
		t.Error("clearing filter reported no change")
	}
	if units[0].Filtered || units[1].Filtered {
		t.Error("units still filtered after clearing")
	}
}

func TestMalformedTermsFallBackToName(t *testing.T) {
	// ">>50%" fails the grammar twice over; it must behave as a
	// substring match, not an error.
	terms := ParseFilter(">>50%")
	u := unit("weird>>50%name", 0, 0)
	if !MatchesAll(terms, &u) {
		t.Error("malformed term did not substring-match the name")
	}
}
