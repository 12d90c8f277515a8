package main

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
)

var (
	// Style definitions
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

	equityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func displayResults(w io.Writer, g *game.Game, result *equity.Result, reach []evaluator.Possibilities) {
	board := g.Board()
	if board.Count() > 0 {
		fmt.Fprintf(w, "%s\n", headerStyle.Render(board.Street().String()))
		fmt.Fprintf(w, "%s\n\n", deck.FormatCards(board.Cards()))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	for _, h := range result.Hands {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			handStyle.Render(h.Hand.String()),
			winStyle.Render(percent(h.WinRate(result.Runouts))),
			tieStyle.Render(percent(h.TieRate(result.Runouts))),
			equityStyle.Render(percent(h.Equity(result.Runouts))))
	}
	tw.Flush()

	if reach != nil {
		fmt.Fprintln(w)
		displayPossibilities(w, result, reach)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d runouts in %v\n", result.Runouts, result.Elapsed.Truncate(time.Millisecond))
}

// displayPossibilities shows how often each hand finished in each category.
// Categories a hand can contain but never finished with are marked "-".
func displayPossibilities(w io.Writer, result *equity.Result, reach []evaluator.Possibilities) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s", categoryStyle.Render("hand"))
	for _, h := range result.Hands {
		fmt.Fprintf(tw, "\t%s", handStyle.Render(h.Hand.String()))
	}
	fmt.Fprintf(tw, "\n")

	for _, rank := range evaluator.HandRanks {
		if !anyReaches(reach, rank) {
			continue
		}

		fmt.Fprintf(tw, "%s", categoryStyle.Render(rank.String()))
		for i, h := range result.Hands {
			switch {
			case h.Categories[rank] > 0:
				fmt.Fprintf(tw, "\t%s", percentStyle.Render(percent(h.CategoryRate(rank, result.Runouts))))
			case reach[i].Has(rank):
				fmt.Fprintf(tw, "\t%s", mutedStyle.Render("-"))
			default:
				fmt.Fprintf(tw, "\t%s", mutedStyle.Render("."))
			}
		}
		fmt.Fprintf(tw, "\n")
	}

	tw.Flush()
}

func anyReaches(reach []evaluator.Possibilities, rank evaluator.HandRank) bool {
	for _, p := range reach {
		if p.Has(rank) {
			return true
		}
	}
	return false
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// progressBar draws the calculator's progress on a single terminal line
type progressBar struct {
	mu    sync.Mutex
	w     io.Writer
	model progress.Model
	drawn bool
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{
		w:     w,
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Update redraws the bar; safe to call from the calculator's ticker
func (b *progressBar) Update(p equity.Progress) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fmt.Fprintf(b.w, "\r%s %d/%d", b.model.ViewAs(p.Fraction()), p.Done, p.Total)
	b.drawn = true
}

// Done ends the progress line
func (b *progressBar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.drawn {
		fmt.Fprintln(b.w)
	}
}
