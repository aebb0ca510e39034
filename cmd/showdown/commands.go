package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/fileutil"
	"github.com/lox/showdown/internal/report"
	"github.com/lox/showdown/internal/settlement"
	"github.com/lox/showdown/internal/simulate"
)

// EvalCmd evaluates a single hand.
type EvalCmd struct {
	Hole  string `required:"" help:"Hole cards (e.g. AsKd)"`
	Board string `help:"Community cards (e.g. Qh Jc Tc)"`
}

func (cmd *EvalCmd) Run(rc *runContext) error {
	hole, board, err := parseHand(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}
	hand, err := evaluator.Evaluate(hole, board)
	if err != nil {
		return err
	}
	rc.Logger.Debug("evaluated", "hole", hole, "board", board, "category", hand.Category.Key())
	return report.Hand(rc.Out, hole, board, hand)
}

// OutsCmd lists outs on the flop or turn.
type OutsCmd struct {
	Hole  string `required:"" help:"Hole cards (e.g. AhKh)"`
	Board string `required:"" help:"Three or four community cards"`
	JSON  bool   `name:"json" help:"Emit JSON keyed by category"`
}

func (cmd *OutsCmd) Run(rc *runContext) error {
	hole, board, err := parseHand(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}
	r, err := equity.OutsByCategory(hole, board)
	if err != nil {
		return err
	}
	rc.Logger.Debug("outs computed", "current", r.Hand.Category.Key(), "total", r.Total(), "unseen", r.Unseen)

	if cmd.JSON {
		enc := json.NewEncoder(rc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return report.Outs(rc.Out, r)
}

// PercentileCmd ranks a complete hand on the river.
type PercentileCmd struct {
	Hole  string `required:"" help:"Hole cards"`
	Board string `required:"" help:"All five community cards"`
}

func (cmd *PercentileCmd) Run(rc *runContext) error {
	hole, board, err := parseHand(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}
	p, err := equity.RiverPercentile(hole, board)
	if err != nil {
		return err
	}
	return report.Percentile(rc.Out, p)
}

// PreflopCmd looks up a starting hand.
type PreflopCmd struct {
	Hole string `arg:"" help:"Hole cards (e.g. AsKs)"`
}

func (cmd *PreflopCmd) Run(rc *runContext) error {
	hole, err := deck.ParseCards(cmd.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	key, err := equity.StartingHandKey(hole)
	if err != nil {
		return err
	}
	p, err := equity.PreflopPercentile(hole)
	if err != nil {
		return err
	}
	return report.Preflop(rc.Out, key, p)
}

// OddsCmd prints pot odds.
type OddsCmd struct {
	Call int `required:"" help:"Chips needed to call"`
	Pot  int `required:"" help:"Chips already in the pot"`
}

func (cmd *OddsCmd) Run(rc *runContext) error {
	odds, err := equity.PotOdds(cmd.Call, cmd.Pot)
	if err != nil {
		return err
	}
	return report.Odds(rc.Out, cmd.Call, cmd.Pot, odds)
}

// SettleCmd settles hands described in an HCL file.
type SettleCmd struct {
	File string `arg:"" type:"existingfile" help:"HCL hand file"`
	Hand string `help:"Settle only the named hand"`
}

func (cmd *SettleCmd) Run(rc *runContext) error {
	cfg, err := config.Load(cmd.File)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rc.useConfigLevel(cfg.LogLevel)

	hands := cfg.Hands
	if cmd.Hand != "" {
		hand := cfg.Hand(cmd.Hand)
		if hand == nil {
			return fmt.Errorf("no hand named %q in %s", cmd.Hand, cmd.File)
		}
		hands = []config.HandConfig{*hand}
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands in %s", cmd.File)
	}

	engine := settlement.New(rc.Logger)
	for i, hand := range hands {
		community, participants, err := hand.Build()
		if err != nil {
			return err
		}
		result, err := engine.Settle(participants, community)
		if err != nil {
			return fmt.Errorf("hand %s: %w", hand.Name, err)
		}
		rc.Logger.Info("settled hand", "hand", hand.Name, "pot", result.Total, "layers", len(result.Layers))

		if i > 0 {
			fmt.Fprintln(rc.Out)
		}
		fmt.Fprintf(rc.Out, "== %s ==\n", hand.Name)
		if err := report.Settlement(rc.Out, participants, community, result); err != nil {
			return err
		}
	}
	return nil
}

// SimulateCmd runs a batch of random settlements.
type SimulateCmd struct {
	Config  string `type:"path" help:"HCL config file with a simulation block"`
	Hands   int    `help:"Number of hands (overrides config)"`
	Players int    `help:"Players per hand (overrides config)"`
	Seed    *int64 `help:"Base seed (overrides config, 0 allowed)"`
	Workers int    `help:"Concurrent workers (overrides config)"`
	Output  string `type:"path" help:"Also write the stats as JSON to this file"`
}

type simulationSummary struct {
	Hands          int            `json:"hands"`
	Players        int            `json:"players"`
	Seed           int64          `json:"seed"`
	Chips          int            `json:"chips"`
	Layers         int            `json:"layers"`
	SplitLayers    int            `json:"split_layers"`
	Uncontested    int            `json:"uncontested"`
	WinsByCategory map[string]int `json:"wins_by_category"`
	ElapsedMillis  int64          `json:"elapsed_ms"`
}

func (cmd *SimulateCmd) Run(rc *runContext) error {
	cfg := config.Default()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	sim := cfg.Simulation
	if cmd.Hands != 0 {
		sim.Hands = cmd.Hands
	}
	if cmd.Players != 0 {
		sim.Players = cmd.Players
	}
	if cmd.Seed != nil {
		sim.Seed = cmd.Seed
	}
	if cmd.Workers != 0 {
		sim.Workers = cmd.Workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rc.useConfigLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rc.Logger.Info("starting simulation", "hands", sim.Hands, "players", sim.Players, "seed", *sim.Seed, "workers", sim.Workers)
	stats, err := simulate.New(simulate.Config{
		Hands:    sim.Hands,
		Players:  sim.Players,
		Seed:     *sim.Seed,
		Workers:  sim.Workers,
		MaxStack: sim.MaxStack,
		Logger:   rc.Logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	if cmd.Output != "" {
		summary := simulationSummary{
			Hands:          stats.Hands,
			Players:        sim.Players,
			Seed:           *sim.Seed,
			Chips:          stats.Chips,
			Layers:         stats.Layers,
			SplitLayers:    stats.SplitLayers,
			Uncontested:    stats.Uncontested,
			WinsByCategory: make(map[string]int),
			ElapsedMillis:  stats.Elapsed.Milliseconds(),
		}
		for _, c := range evaluator.Categories {
			if n := stats.WinsByCategory[c]; n > 0 {
				summary.WinsByCategory[c.Key()] = n
			}
		}
		if err := fileutil.WriteJSON(cmd.Output, summary); err != nil {
			return err
		}
		rc.Logger.Info("wrote simulation stats", "file", cmd.Output)
	}
	return report.Simulation(rc.Out, stats)
}

func parseHand(holeStr, boardStr string) ([]deck.Card, []deck.Card, error) {
	hole, err := deck.ParseCards(holeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("hole: %w", err)
	}
	board, err := deck.ParseCards(boardStr)
	if err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}
	return hole, board, nil
}
