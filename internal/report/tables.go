package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/internal/simulator"
	"github.com/lox/showdown/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func percent(n, total int) string {
	if total == 0 {
		return "."
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}

// RenderCategoryTally prints how often each category won a five-card deal
func RenderCategoryTally(w io.Writer, summary *simulator.FiveCardSummary) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("wins"),
		headerStyle.Render("share"))

	total := summary.Categories.Total()
	for _, c := range poker.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%s\n",
			categoryStyle.Render(c.String()),
			summary.Categories[c],
			percentStyle.Render(percent(summary.Categories[c], total)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d deals in %v (seed %d)\n", summary.Runs, summary.Elapsed.Truncate(time.Millisecond), summary.Seed)
	return err
}

// RenderOdds prints each hand's win and tie share, and optionally the
// distribution of final categories per hand
func RenderOdds(w io.Writer, summary *simulator.OddsSummary, showCategories bool) error {
	if len(summary.Board) > 0 {
		fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("board"), poker.FormatCards(summary.Board))
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"))
	for _, p := range summary.Players {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			handStyle.Render(poker.FormatCards(p.Hole)),
			winStyle.Render(percent(p.Tally.Wins, p.Tally.Trials)),
			tieStyle.Render(percent(p.Tally.Ties, p.Tally.Trials)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if showCategories && len(summary.Players) > 0 {
		fmt.Fprintln(w)
		if err := renderFinalCategories(w, summary.Players); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d iterations in %v (seed %d)\n", summary.Iterations, summary.Elapsed.Truncate(time.Millisecond), summary.Seed)
	return err
}

func renderFinalCategories(w io.Writer, players []simulator.PlayerOdds) error {
	tw := newTabWriter(w)
	fmt.Fprint(tw, categoryStyle.Render("hand"))
	for _, p := range players {
		fmt.Fprintf(tw, "\t%s", handStyle.Render(poker.FormatCards(p.Hole)))
	}
	fmt.Fprintln(tw)

	// strongest first
	for _, c := range slices.Backward(poker.Categories[:]) {
		seen := false
		for _, p := range players {
			if p.Final[c] > 0 {
				seen = true
				break
			}
		}
		if !seen {
			continue
		}

		fmt.Fprint(tw, categoryStyle.Render(c.String()))
		for _, p := range players {
			cell := "."
			if p.Final[c] > 0 {
				cell = percent(p.Final[c], p.Final.Total())
			}
			fmt.Fprintf(tw, "\t%s", percentStyle.Render(cell))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Entry is one hand at showdown with the label it was entered as
type Entry struct {
	Label string
	Hand  poker.Hand
}

// RenderShowdown prints each hand's category and kickers and marks the winners
func RenderShowdown(w io.Writer, entries []Entry, winners []int) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("best"),
		headerStyle.Render("category"),
		headerStyle.Render("kickers"))

	for i, e := range entries {
		kickers := make([]string, 0, poker.HandSize)
		for _, r := range e.Hand.Kickers() {
			kickers = append(kickers, r.String())
		}
		marker := ""
		if slices.Contains(winners, i) {
			marker = winStyle.Render(" winner")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n",
			handStyle.Render(e.Label),
			e.Hand.Pretty(),
			categoryStyle.Render(e.Hand.Category().String()),
			strings.Join(kickers, " "),
			marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(winners) > 1 {
		_, err := fmt.Fprintf(w, "\n%s\n", tieStyle.Render(fmt.Sprintf("split pot between %d hands", len(winners))))
		return err
	}
	return nil
}
