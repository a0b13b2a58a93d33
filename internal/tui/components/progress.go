// Package components holds small reusable render pieces for the board.
package components

import (
	"strings"

	"github.com/theirongolddev/wishsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// FundingBar renders a wish's funding bar. Committed progress is drawn
// solid; the pending preview delta (if any) is drawn in the accent color so
// a tentative distribution is visually distinct from applied money.
// Gold marks a fully funded wish, matching the legacy app's color rules.
func FundingBar(progress, preview, cost int64, width int) string {
	t := theme.Active

	if cost <= 0 || width <= 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", max(width, 0)))
	}

	if preview < progress {
		preview = progress
	}

	committed := int(float64(progress) / float64(cost) * float64(width))
	previewed := int(float64(preview) / float64(cost) * float64(width))
	if committed > width {
		committed = width
	}
	if previewed > width {
		previewed = width
	}
	if previewed < committed {
		previewed = committed
	}

	solidColor := t.Green
	if preview >= cost {
		solidColor = t.Gold
	}

	solidStyle := lipgloss.NewStyle().Foreground(solidColor)
	previewStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return solidStyle.Render(strings.Repeat("█", committed)) +
		previewStyle.Render(strings.Repeat("█", previewed-committed)) +
		emptyStyle.Render(strings.Repeat("░", width-previewed))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
