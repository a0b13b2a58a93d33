package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/model"
	"github.com/theirongolddev/wishsplit/internal/tui/components"
	"github.com/theirongolddev/wishsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	t := theme.Active

	if a.width < minTerminalWidth {
		msg := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("Terminal too narrow (need %d columns)", minTerminalWidth))
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
	}

	if a.showHelp {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.renderHelp())
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(a.renderBoard())
	b.WriteString("\n")

	if a.pending {
		b.WriteString(a.renderPendingBanner())
		b.WriteString("\n")
	}
	if a.inputKind != inputNone {
		b.WriteString(a.renderInputLine())
		b.WriteString("\n")
	}

	body := b.String()

	// Pin the status bar to the bottom row.
	pad := a.height - lipgloss.Height(body) - 1
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += components.RenderStatusBar(a.width, a.status)

	return body
}

func (a App) renderHeader() string {
	t := theme.Active

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(" ✦ wishsplit")

	remaining := a.wl.TotalRemaining()
	right := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("remaining to fund %s ", a.money(remaining)))

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

// renderBoard lays the category cards out side by side, windowed around the
// selected category when they do not all fit.
func (a App) renderBoard() string {
	t := theme.Active

	if len(a.wl.Categories) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("  No categories yet. Press A to add one.")
	}

	perRow := a.width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	start := 0
	if a.catIdx >= perRow {
		start = a.catIdx - perRow + 1
	}
	end := start + perRow
	if end > len(a.wl.Categories) {
		end = len(a.wl.Categories)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, a.renderCategoryCard(a.wl.Categories[i], i == a.catIdx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a App) renderCategoryCard(c *model.Category, selected bool) string {
	t := theme.Active

	borderColor := t.Border
	if selected {
		borderColor = t.BorderAccent
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth)

	name := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(c.Name)
	weight := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" " + cli.FormatWeight(c.Percent))

	summary := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(cli.FormatProgress(c.TotalPreviewProgress(), c.TotalCost()))
	if a.pending && c.Allocated > 0 {
		summary += lipgloss.NewStyle().Foreground(t.Accent).
			Render(fmt.Sprintf("  +%s", cli.FormatNumber(c.Allocated)))
	}

	lines := []string{name + weight, summary, ""}

	wishes := c.SortedWishes()
	if len(wishes) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render("(empty)"))
	}
	for i, w := range wishes {
		lines = append(lines, a.renderWish(w, selected && i == a.wishIdx)...)
	}

	return card.Render(strings.Join(lines, "\n"))
}

// renderWish produces the two display lines for one wish: name with amounts,
// then its funding bar.
func (a App) renderWish(w *model.Wish, selected bool) []string {
	t := theme.Active

	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if selected {
		cursor = lipgloss.NewStyle().Foreground(t.AccentBright).Render("▸ ")
		nameStyle = nameStyle.Bold(true)
	}
	if w.Completed() {
		nameStyle = nameStyle.Foreground(t.Gold)
	}

	amounts := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(cli.FormatProgress(w.Progress, w.Cost))
	if a.pending && w.PreviewProgress > w.Progress {
		amounts += lipgloss.NewStyle().Foreground(t.Accent).
			Render(fmt.Sprintf(" +%s", cli.FormatNumber(w.PreviewProgress-w.Progress)))
	}

	bar := "  " + components.FundingBar(w.Progress, w.PreviewProgress, w.Cost, barWidth)

	return []string{cursor + nameStyle.Render(w.Name) + " " + amounts, bar}
}

func (a App) renderPendingBanner() string {
	t := theme.Active

	parts := make([]string, 0, len(a.lastResult.Allocations))
	for _, alloc := range a.lastResult.Allocations {
		if alloc.Allocated <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", alloc.Name, a.money(alloc.Allocated)))
	}

	line := lipgloss.NewStyle().Foreground(t.Accent).
		Render(" Preview: " + strings.Join(parts, " · "))
	if a.lastResult.Unallocated > 0 {
		line += lipgloss.NewStyle().Foreground(t.Orange).
			Render(fmt.Sprintf("  unallocated %s", a.money(a.lastResult.Unallocated)))
	}
	line += lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("   [enter] apply  [esc] discard")
	return line
}

func (a App) renderInputLine() string {
	t := theme.Active

	prompt := lipgloss.NewStyle().Foreground(t.AccentBright).
		Render(" " + a.input.Placeholder + ": ")
	return prompt + a.input.View()
}

func (a App) renderHelp() string {
	t := theme.Active

	rows := [][2]string{
		{"h/l", "switch category"},
		{"j/k", "move between wishes"},
		{"b", "distribute a budget"},
		{"enter", "apply pending preview"},
		{"esc", "discard pending preview"},
		{"+/-", "fund or withdraw on a wish"},
		{"a / A", "add wish / add category"},
		{"x / X", "remove wish / remove category"},
		{"c", "change wish cost"},
		{"p", "change category weight"},
		{"q", "quit"},
	}

	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Width(7)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(keyStyle.Render(r[0]))
		b.WriteString(descStyle.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.BorderBright).
		Padding(1, 2).
		Render(b.String())
}
