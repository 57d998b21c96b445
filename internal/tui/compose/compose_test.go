package compose

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasDimensions(t *testing.T) {
	c := Canvas(10, 3)
	rows := strings.Split(c, "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 10 {
			t.Errorf("row %d: expected width 10, got %d", i, len(row))
		}
	}
}

func TestOverlayPlacesBlock(t *testing.T) {
	base := Canvas(8, 3)
	got := Overlay(base, "AB\nCD", 2, 1)

	want := strings.Join([]string{
		"        ",
		"  AB    ",
		"  CD    ",
	}, "\n")
	if got != want {
		t.Errorf("overlay mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestOverlayClipsAtEdges(t *testing.T) {
	base := Canvas(6, 2)

	got := Overlay(base, "XXXX", 4, 0)
	rows := strings.Split(got, "\n")
	if rows[0] != "    XX" {
		t.Errorf("expected right clipping, got %q", rows[0])
	}

	got = Overlay(base, "YY\nZZ", 0, 1)
	rows = strings.Split(got, "\n")
	if rows[1] != "ZZ    " {
		t.Errorf("expected bottom row only, got %q", rows[1])
	}

	// Fully off-canvas placements leave the base alone.
	if Overlay(base, "Q", 9, 0) != base {
		t.Error("expected off-canvas overlay to be a no-op")
	}
	if Overlay(base, "Q", 0, 5) != base {
		t.Error("expected off-canvas overlay to be a no-op")
	}
}

func TestOverlayNegativeOrigin(t *testing.T) {
	base := Canvas(5, 2)
	got := Overlay(base, "ABCD\nEFGH", -2, -1)
	rows := strings.Split(got, "\n")
	if rows[0] != "GH   " {
		t.Errorf("expected top-left clipping, got %q", rows[0])
	}
}

func TestOverlayKeepsRowWidthWithStyles(t *testing.T) {
	base := Canvas(12, 1)
	styled := "\x1b[7mHI\x1b[0m"

	got := Overlay(base, styled, 3, 0)
	if w := ansi.StringWidth(got); w != 12 {
		t.Errorf("expected visible width 12, got %d", w)
	}
	if !strings.Contains(got, "HI") {
		t.Errorf("expected styled text to survive splicing, got %q", got)
	}
}
