package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFundingBar_Width(t *testing.T) {
	tests := []struct {
		name     string
		progress int64
		preview  int64
		cost     int64
	}{
		{"empty", 0, 0, 1000},
		{"half", 500, 500, 1000},
		{"pending delta", 500, 800, 1000},
		{"full", 1000, 1000, 1000},
		{"zero cost", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := FundingBar(tt.progress, tt.preview, tt.cost, 20)
			if got := lipgloss.Width(bar); got != 20 {
				t.Errorf("bar width = %d, want 20", got)
			}
		})
	}
}

func TestFundingBar_PreviewNeverBelowCommitted(t *testing.T) {
	// A stale preview below committed progress must not shrink the bar.
	bar := FundingBar(800, 200, 1000, 10)
	if got := lipgloss.Width(bar); got != 10 {
		t.Errorf("bar width = %d, want 10", got)
	}
}
