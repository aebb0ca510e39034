// Package report renders evaluation, outs and settlement results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/settlement"
	"github.com/lox/showdown/internal/simulate"
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

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// SetColor toggles ANSI styling for every renderer in this package.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.ColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Hand prints an evaluated hand.
func Hand(w io.Writer, hole, board []deck.Card, hand evaluator.Hand) error {
	t := newTable(w)
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("hole"), formatCards(hole))
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("board"), formatCards(board))
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(hand.String()))
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("best"), formatCards(hand.Cards))
	return t.Flush()
}

// Outs prints an outs report, strongest category first.
func Outs(w io.Writer, r *equity.Report) error {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("current"), handStyle.Render(r.Hand.String()))
	fmt.Fprintf(w, "%d unseen, %d to come\n\n", r.Unseen, r.Draws)

	t := newTable(w)
	fmt.Fprintf(t, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("outs"),
		headerStyle.Render("hit"),
		headerStyle.Render("cards"))
	for _, o := range r.Outs {
		if o.Count == 0 {
			fmt.Fprintf(t, "%s\t%s\t%s\t%s\n",
				mutedStyle.Render(o.Category.String()),
				mutedStyle.Render("0"),
				mutedStyle.Render("."),
				"")
			continue
		}
		fmt.Fprintf(t, "%s\t%d\t%s\t%s\n",
			categoryStyle.Render(o.Category.String()),
			o.Count,
			percentStyle.Render(formatPercent(o.Probability)),
			formatCards(o.Cards))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d cards improve the hand\n", r.Total())
	return nil
}

// Settlement prints the layers of a settled pot and each participant's result.
func Settlement(w io.Writer, participants []settlement.Participant, community []deck.Card, result *settlement.Result) error {
	fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("board"), formatCards(community))

	t := newTable(w)
	fmt.Fprintf(t, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("layer"),
		headerStyle.Render("amount"),
		headerStyle.Render("eligible"),
		headerStyle.Render("winners"))
	for i, payout := range result.Payouts {
		fmt.Fprintf(t, "%s\t%d\t%s\t%s\n",
			categoryStyle.Render(fmt.Sprintf("%d @ %d", i+1, payout.Layer.Threshold)),
			payout.Layer.Amount,
			formatIDs(payout.Layer.Eligible),
			winStyle.Render(formatShares(payout.Winners, payout.Amounts)))
	}
	if err := t.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	t = newTable(w)
	fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("status"),
		headerStyle.Render("hole"),
		headerStyle.Render("hand"),
		headerStyle.Render("committed"),
		headerStyle.Render("won"),
		headerStyle.Render("net"))
	net := result.Net(participants)
	for _, p := range participants {
		hand := mutedStyle.Render("-")
		if h, ok := result.Hands[p.ID]; ok {
			hand = handStyle.Render(h.String())
		}
		won := fmt.Sprintf("%d", result.WinningsFor(p.ID))
		if result.WinningsFor(p.ID) > 0 {
			won = winStyle.Render(won)
		}
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Status, formatCards(p.Hole), hand, p.Committed, won, formatNet(net[p.ID]))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	if result.Uncontested {
		fmt.Fprintf(w, "\nuncontested, %d chips\n", result.Total)
	} else {
		fmt.Fprintf(w, "\n%d chips in %d layers\n", result.Total, len(result.Layers))
	}
	return nil
}

func formatNet(n int) string {
	switch {
	case n > 0:
		return winStyle.Render(fmt.Sprintf("+%d", n))
	case n < 0:
		return mutedStyle.Render(fmt.Sprintf("%d", n))
	}
	return "0"
}

func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

func formatShares(ids, amounts []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d:%d", id, amounts[i])
	}
	return strings.Join(parts, " ")
}

// Simulation prints aggregate settlement statistics.
func Simulation(w io.Writer, stats *simulate.Stats) error {
	t := newTable(w)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("hands"), stats.Hands)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("chips"), stats.Chips)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("layers"), stats.Layers)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("split layers"), stats.SplitLayers)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("uncontested"), stats.Uncontested)
	if err := t.Flush(); err != nil {
		return err
	}

	contested := 0
	for _, n := range stats.WinsByCategory {
		contested += n
	}
	if contested > 0 {
		fmt.Fprintln(w)
		t = newTable(w)
		fmt.Fprintf(t, "%s\t%s\t%s\n",
			categoryStyle.Render("winning hand"),
			headerStyle.Render("layers"),
			headerStyle.Render("share"))
		for _, c := range evaluator.Categories {
			n := stats.WinsByCategory[c]
			if n == 0 {
				continue
			}
			fmt.Fprintf(t, "%s\t%d\t%s\n",
				categoryStyle.Render(c.String()),
				n,
				percentStyle.Render(formatPercent(float64(n)/float64(contested))))
		}
		if err := t.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%d hands settled in %v, all pots conserved\n", stats.Hands, stats.Elapsed.Truncate(time.Millisecond))
	return nil
}

// Percentile prints a river percentile.
func Percentile(w io.Writer, p equity.Percentile) error {
	t := newTable(w)
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(p.Hand.String()))
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("opponents"), p.Opponents)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("stronger"), p.Stronger)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("ties"), p.Ties)
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("percentile"), percentStyle.Render(formatPercent(p.Value)))
	return t.Flush()
}

// Preflop prints a starting hand ranking.
func Preflop(w io.Writer, key string, percentile float64) error {
	t := newTable(w)
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(key))
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("percentile"), percentStyle.Render(formatPercent(percentile)))
	return t.Flush()
}

// Odds prints pot odds as a percentage.
func Odds(w io.Writer, toCall, pot int, odds float64) error {
	t := newTable(w)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("to call"), toCall)
	fmt.Fprintf(t, "%s\t%d\n", headerStyle.Render("pot"), pot)
	fmt.Fprintf(t, "%s\t%s\n", headerStyle.Render("pot odds"), percentStyle.Render(fmt.Sprintf("%.1f%%", odds)))
	return t.Flush()
}
