package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/simulator"
)

const progressWidth = 40

// progressBar draws a single updating line as starting hands finish
type progressBar struct {
	out   io.Writer
	bar   progress.Model
	clock quartz.Clock
	start time.Time
}

func newProgressBar(out io.Writer, clock quartz.Clock, noColor bool) *progressBar {
	opts := []progress.Option{progress.WithDefaultGradient(), progress.WithWidth(progressWidth)}
	if noColor {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}
	return &progressBar{
		out:   out,
		bar:   progress.New(opts...),
		clock: clock,
	}
}

func (p *progressBar) OnStart(total int) {
	p.start = p.clock.Now()
	fmt.Fprintf(p.out, "\r%s %3d/%d", p.bar.ViewAs(0), 0, total)
}

func (p *progressBar) OnHandComplete(result simulator.HandResult, completed, total int) {
	fmt.Fprintf(p.out, "\r%s %3d/%d %-5s %v",
		p.bar.ViewAs(float64(completed)/float64(total)),
		completed, total,
		result.Hand.Label(),
		p.clock.Since(p.start).Truncate(time.Second))
	if completed == total {
		fmt.Fprintln(p.out)
	}
}
