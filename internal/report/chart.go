package report

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

const chartWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	tierStyles = map[Tier]*pterm.Style{
		TierTop10:    pterm.NewStyle(pterm.FgGreen),
		TierTop20:    pterm.NewStyle(pterm.FgMagenta),
		TierPlayable: pterm.NewStyle(pterm.FgRed),
		TierOther:    pterm.NewStyle(pterm.FgGray),
	}
)

// RenderChart draws one horizontal bar chart per archetype group, colouring
// each bar by its tier.
func RenderChart(w io.Writer, groups []Group, thresholds Thresholds) error {
	title := fmt.Sprintf("Hold'em hand results: win fraction > %.1f%%", thresholds.Threshold*100)
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", titleStyle.Render(title), legend(thresholds)); err != nil {
		return err
	}

	for _, group := range groups {
		if _, err := fmt.Fprintln(w, groupStyle.Render(string(group.Archetype))); err != nil {
			return err
		}
		if len(group.Rows) == 0 {
			if _, err := fmt.Fprintf(w, "%s\n\n", mutedStyle.Render("  no hands above threshold")); err != nil {
				return err
			}
			continue
		}

		bars := make(pterm.Bars, len(group.Rows))
		for i, row := range group.Rows {
			pct := row.Fraction * 100
			bars[i] = pterm.Bar{
				Label: fmt.Sprintf("%-5s %5.1f%%", row.Label(), pct),
				Value: int(math.Round(pct * 10)),
				Style: tierStyles[thresholds.Tier(row.Fraction)],
			}
		}

		chart, err := pterm.DefaultBarChart.
			WithBars(bars).
			WithHorizontal().
			WithWidth(chartWidth).
			Srender()
		if err != nil {
			return fmt.Errorf("failed to render %s chart: %w", group.Archetype, err)
		}
		if _, err := fmt.Fprintln(w, chart); err != nil {
			return err
		}
	}
	return nil
}

func legend(t Thresholds) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		tierStyles[TierTop10].Sprintf(">= %.1f%% (%s)", t.Top10*100, TierTop10),
		tierStyles[TierTop20].Sprintf(">= %.1f%% (%s)", t.Top20*100, TierTop20),
		tierStyles[TierPlayable].Sprintf(">= %.1f%% (%s)", t.Threshold*100, TierPlayable),
		tierStyles[TierOther].Sprint("below"))
}
