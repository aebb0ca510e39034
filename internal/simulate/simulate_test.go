package simulate

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/settlement"
)

func testConfig(t *testing.T) Config {
	return Config{
		Hands:    300,
		Players:  6,
		Seed:     12345,
		Workers:  4,
		MaxStack: 500,
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
		Clock:    quartz.NewMock(t),
	}
}

func TestRun(t *testing.T) {
	stats, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 300, stats.Hands)
	assert.Positive(t, stats.Chips)
	assert.GreaterOrEqual(t, stats.Layers, stats.Hands)

	contested := 0
	for _, n := range stats.WinsByCategory {
		contested += n
	}
	assert.Positive(t, contested)
	// Mock clock never advances.
	assert.Zero(t, stats.Elapsed)
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workers = 1
	serial, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	cfg = testConfig(t)
	cfg.Workers = 8
	parallel, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRunSeedChangesOutcome(t *testing.T) {
	a, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Seed = 999
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a.Chips, b.Chips)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(t)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no hands", func(c *Config) { c.Hands = 0 }},
		{"one player", func(c *Config) { c.Players = 1 }},
		{"too many players", func(c *Config) { c.Players = 11 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no stack", func(c *Config) { c.MaxStack = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.modify(&cfg)
			_, err := New(cfg).Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestDealInvariants(t *testing.T) {
	rng := randutil.New(3)
	for i := 0; i < 2000; i++ {
		community, participants := Deal(rng, 2+rng.IntN(9), 1+rng.IntN(1000))
		require.Len(t, community, 5)

		maxContender, contenders := 0, 0
		for _, p := range participants {
			require.Len(t, p.Hole, 2)
			require.LessOrEqual(t, p.RoundBet, p.Committed)
			if p.Status.Contending() {
				contenders++
				maxContender = max(maxContender, p.Committed)
			}
		}
		require.Positive(t, contenders)
		for _, p := range participants {
			if p.Status == settlement.Folded {
				require.LessOrEqual(t, p.Committed, maxContender)
			}
		}
	}
}

func TestAuditCatchesMisallocation(t *testing.T) {
	participants := []settlement.Participant{
		{ID: 1, Status: settlement.Active, Committed: 10},
		{ID: 2, Status: settlement.Folded, Committed: 10},
	}

	err := audit(&settlement.Result{Total: 20, Winnings: map[int]int{1: 10, 2: 10}}, participants)
	assert.ErrorContains(t, err, "folded participant 2")

	err = audit(&settlement.Result{Total: 20, Winnings: map[int]int{1: 19}}, participants)
	assert.ErrorContains(t, err, "not conserved")

	err = audit(&settlement.Result{Total: 20, Winnings: map[int]int{1: 20}}, participants)
	assert.NoError(t, err)
}
