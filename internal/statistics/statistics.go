package statistics

import (
	"fmt"
	"math"

	"github.com/lox/showdown/poker"
)

// CategoryCounts counts outcomes per hand category, indexed by poker.Category
type CategoryCounts [poker.NumCategories]int

// Total returns the sum over all categories
func (c CategoryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Fraction returns the share of category cat, or 0 when nothing was counted
func (c CategoryCounts) Fraction(cat poker.Category) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[cat]) / float64(total)
}

// Tally tracks showdown outcomes of one hand across simulated trials
type Tally struct {
	Trials int
	Wins   int // Sole winner
	Ties   int // One of several co-winners

	// Winning category for every trial counted in Wins or Ties
	Categories CategoryCounts
}

// Add records one trial
func (t *Tally) Add(won, split bool, category poker.Category) {
	t.Trials++
	if !won {
		return
	}
	if split {
		t.Ties++
	} else {
		t.Wins++
	}
	t.Categories[category]++
}

// Merge folds another tally into t
func (t *Tally) Merge(other Tally) {
	t.Trials += other.Trials
	t.Wins += other.Wins
	t.Ties += other.Ties
	for i, n := range other.Categories {
		t.Categories[i] += n
	}
}

// WinFraction is the share of trials the hand won or split
func (t Tally) WinFraction() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Wins+t.Ties) / float64(t.Trials)
}

// WinRate is the share of trials won outright
func (t Tally) WinRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Trials)
}

// TieRate is the share of trials that ended in a split
func (t Tally) TieRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.Ties) / float64(t.Trials)
}

// StdError returns the binomial standard error of WinFraction
func (t Tally) StdError() float64 {
	if t.Trials == 0 {
		return 0
	}
	p := t.WinFraction()
	return math.Sqrt(p * (1 - p) / float64(t.Trials))
}

// ConfidenceInterval95 returns the 95% normal-approximation interval for
// WinFraction, clamped to [0, 1]
func (t Tally) ConfidenceInterval95() (float64, float64) {
	p := t.WinFraction()
	margin := 1.96 * t.StdError()
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Validate checks the counts are consistent with each other
func (t Tally) Validate() error {
	if t.Trials < 0 || t.Wins < 0 || t.Ties < 0 {
		return fmt.Errorf("negative counts: trials=%d wins=%d ties=%d", t.Trials, t.Wins, t.Ties)
	}
	if t.Wins+t.Ties > t.Trials {
		return fmt.Errorf("wins (%d) plus ties (%d) exceed trials (%d)", t.Wins, t.Ties, t.Trials)
	}
	if got := t.Categories.Total(); got != t.Wins+t.Ties {
		return fmt.Errorf("category total (%d) does not match wins plus ties (%d)", got, t.Wins+t.Ties)
	}
	return nil
}
