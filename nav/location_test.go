package nav

import "testing"

func TestParseRoundTrip(t *testing.T) {
	loc := Parse("?filter=%3E50%25&unit=main")
	if got := loc.Get("filter"); got != ">50%" {
		t.Errorf("Get(filter) = %q, want %q", got, ">50%")
	}
	if got := loc.Get("unit"); got != "main" {
		t.Errorf("Get(unit) = %q, want %q", got, "main")
	}
	if got := Parse(loc.String()).Get("filter"); got != ">50%" {
		t.Errorf("round trip filter = %q, want %q", got, ">50%")
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	loc := Parse("a=1&filter=old&b=2")
	loc.Set("filter", "new")
	if got := loc.String(); got != "a=1&filter=new&b=2" {
		t.Errorf("String() = %q, want position preserved", got)
	}
	// Repeated sets never duplicate.
	loc.Set("filter", "newer")
	loc.Set("filter", "newest")
	if got := Parse(loc.String()); got.Get("filter") != "newest" {
		t.Errorf("filter = %q, want newest", got.Get("filter"))
	}
}

func TestSetEmptyRemoves(t *testing.T) {
	loc := Parse("filter=x&unit=main")
	loc.Set("filter", "")
	if got := loc.String(); got != "unit=main" {
		t.Errorf("String() = %q, want %q", got, "unit=main")
	}
}

func TestSetAppendsWhenAbsent(t *testing.T) {
	var loc Location
	loc.Set("filter", ">50%")
	if got := loc.String(); got != "filter=%3E50%25" {
		t.Errorf("String() = %q", got)
	}
}

func TestNavigateClearsFilter(t *testing.T) {
	loc := Parse("filter=foo&theme=dark")
	next := loc.Navigate("MainLoop")
	if got := next.Get("filter"); got != "" {
		t.Errorf("navigated filter = %q, want empty", got)
	}
	if got := next.Get("unit"); got != "MainLoop" {
		t.Errorf("navigated unit = %q", got)
	}
	if got := next.Get("theme"); got != "dark" {
		t.Errorf("navigated theme = %q, want carried over", got)
	}
	// Original untouched.
	if got := loc.Get("filter"); got != "foo" {
		t.Errorf("source location mutated: filter = %q", got)
	}
}
