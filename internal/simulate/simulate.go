// Package simulate deals random finished hands and settles them in bulk,
// checking that every hand pays out exactly what was committed.
package simulate

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/settlement"
)

// Config holds configuration for a simulation run
type Config struct {
	Hands    int
	Players  int
	Seed     int64
	Workers  int
	MaxStack int
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Stats aggregates a run. Equal seeds produce equal stats regardless of
// worker count; only Elapsed varies.
type Stats struct {
	Hands          int
	Chips          int // Total chips settled
	Layers         int
	SplitLayers    int // Layers shared by two or more winners
	Uncontested    int
	WinsByCategory [evaluator.NumCategories]int // Contested layers by winning category
	Elapsed        time.Duration
}

type handResult struct {
	chips       int
	layers      int
	splits      int
	uncontested bool
	categories  []evaluator.Category
}

// Simulator runs batches of settlements
type Simulator struct {
	config Config
	engine *settlement.Engine
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		engine: settlement.New(config.Logger),
	}
}

func (c Config) validate() error {
	switch {
	case c.Hands <= 0:
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	case c.Players < 2 || c.Players > 10:
		return fmt.Errorf("players must be between 2 and 10, got %d", c.Players)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.MaxStack <= 0:
		return fmt.Errorf("max stack must be positive, got %d", c.MaxStack)
	}
	return nil
}

// Run settles Hands independent hands across Workers goroutines. Each hand
// draws from its own source derived from Seed and its index, so results do
// not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	if err := s.config.validate(); err != nil {
		return nil, err
	}

	start := s.config.Clock.Now()
	results := make([]handResult, s.config.Hands)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Hands; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.playHand(randutil.ForHand(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("hand %d (seed %d): %w", i+1, s.config.Seed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &Stats{Hands: s.config.Hands}
	for _, r := range results {
		stats.Chips += r.chips
		stats.Layers += r.layers
		stats.SplitLayers += r.splits
		if r.uncontested {
			stats.Uncontested++
		}
		for _, c := range r.categories {
			stats.WinsByCategory[c]++
		}
	}
	stats.Elapsed = s.config.Clock.Since(start)

	s.config.Logger.Info("simulation complete",
		"hands", stats.Hands,
		"chips", stats.Chips,
		"layers", stats.Layers,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// playHand deals, settles and audits a single hand.
func (s *Simulator) playHand(rng *rand.Rand) (handResult, error) {
	community, participants := Deal(rng, s.config.Players, s.config.MaxStack)

	result, err := s.engine.Settle(participants, community)
	if err != nil {
		return handResult{}, err
	}
	if err := audit(result, participants); err != nil {
		return handResult{}, err
	}

	hr := handResult{
		chips:       result.Total,
		layers:      len(result.Layers),
		uncontested: result.Uncontested,
	}
	for _, payout := range result.Payouts {
		if len(payout.Winners) > 1 {
			hr.splits++
		}
		if !result.Uncontested {
			hr.categories = append(hr.categories, result.Hands[payout.Winners[0]].Category)
		}
	}
	return hr, nil
}

// audit recomputes conservation independently of the engine.
func audit(result *settlement.Result, participants []settlement.Participant) error {
	committed, paid := 0, 0
	for _, p := range participants {
		committed += p.Committed
		won := result.WinningsFor(p.ID)
		if p.Status == settlement.Folded && won != 0 {
			return fmt.Errorf("folded participant %d won %d", p.ID, won)
		}
		paid += won
	}
	if committed != paid || committed != result.Total {
		return fmt.Errorf("pot not conserved: committed %d, paid %d, reported %d", committed, paid, result.Total)
	}
	return nil
}

// Deal produces a finished hand: a full board plus each player's cards and chips. Folded
// players never out-commit the largest contender and at least one player
// always contends.
func Deal(rng *rand.Rand, players, maxStack int) ([]deck.Card, []settlement.Participant) {
	d := deck.NewDeck(rng)
	community := d.DealN(5)

	top := 1 + rng.IntN(maxStack)
	participants := make([]settlement.Participant, players)
	maxContender := 0
	for id := range participants {
		p := settlement.Participant{ID: id, Hole: d.DealN(2)}
		switch roll := rng.IntN(4); {
		case roll < 2:
			p.Status = settlement.Active
			p.Committed = top
		case roll == 2:
			p.Status = settlement.AllIn
			p.Committed = 1 + rng.IntN(top)
		default:
			p.Status = settlement.Folded
			p.Committed = rng.IntN(top + 1)
		}
		if p.Status.Contending() && p.Committed > maxContender {
			maxContender = p.Committed
		}
		participants[id] = p
	}

	if maxContender == 0 {
		participants[0].Status = settlement.Active
		participants[0].Committed = top
		maxContender = top
	}
	for i := range participants {
		p := &participants[i]
		if p.Status == settlement.Folded && p.Committed > maxContender {
			p.Committed = maxContender
		}
		p.RoundBet = rng.IntN(p.Committed + 1)
	}
	return community, participants
}
