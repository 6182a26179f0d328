package cli

import (
	"strings"
	"testing"
)

func TestRenderPercentBarUncappedNumber(t *testing.T) {
	out := RenderPercentBar("Exercise", 222.2, 24)
	if !strings.Contains(out, "222.2%") {
		t.Fatalf("bar output %q does not show the uncapped percentage", out)
	}
}

func TestRenderPercentBarNegative(t *testing.T) {
	// Negative percentages (mood over-reporting) must render, with an
	// empty fill, not panic on a negative repeat count.
	out := RenderPercentBar("Unreported", -40, 10)
	if !strings.Contains(out, "-40.0%") {
		t.Fatalf("bar output %q does not show the negative percentage", out)
	}
}

func TestRenderWarning(t *testing.T) {
	out := RenderWarning("config unreadable")
	if !strings.Contains(out, "config unreadable") {
		t.Fatalf("warning output %q lost the message", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Entries",
		Headers: []string{"ID", "Value"},
		Rows: [][]string{
			{"1", "256 ml"},
			{"---"},
			{"2", "300 kcal"},
		},
	})
	for _, want := range []string{"Entries", "ID", "256 ml", "300 kcal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q", want)
		}
	}
}
