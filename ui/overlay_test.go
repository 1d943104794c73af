package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	view := "aaaaa\nbbbbb\nccccc"
	got := spliceOverlay(view, []string{"XX"}, 1, 1)
	lines := strings.Split(got, "\n")
	if ansi.Strip(lines[0]) != "aaaaa" {
		t.Errorf("line 0 = %q, want untouched", ansi.Strip(lines[0]))
	}
	if ansi.Strip(lines[1]) != "bXXbb" {
		t.Errorf("line 1 = %q, want %q", ansi.Strip(lines[1]), "bXXbb")
	}
	if ansi.Strip(lines[2]) != "ccccc" {
		t.Errorf("line 2 = %q, want untouched", ansi.Strip(lines[2]))
	}
}

func TestSpliceOverlayOutOfRange(t *testing.T) {
	view := "aaaaa"
	// Rows outside the view are skipped, not appended.
	got := spliceOverlay(view, []string{"XX", "YY"}, 0, -1)
	lines := strings.Split(got, "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if ansi.Strip(lines[0]) != "YYaaa" {
		t.Errorf("line 0 = %q, want %q", ansi.Strip(lines[0]), "YYaaa")
	}
}

func TestSpliceOverlayAtLineEnd(t *testing.T) {
	got := spliceOverlay("abcde", []string{"ZZ"}, 3, 0)
	if ansi.Strip(got) != "abcZZ" {
		t.Errorf("got %q, want %q", ansi.Strip(got), "abcZZ")
	}
}

func TestPadOverlayLine(t *testing.T) {
	bg := lipgloss.NewStyle()
	got := padOverlayLine("hi", 6, bg)
	if w := ansi.StringWidth(got); w != 8 {
		t.Errorf("padded width = %d, want 8 (inner + 2 cells padding)", w)
	}
	// Oversized content is not truncated here; padding just bottoms
	// out at the single trailing space.
	got = padOverlayLine("toolongcontent", 4, bg)
	if !strings.Contains(got, "toolongcontent") {
		t.Error("content lost while padding")
	}
}
