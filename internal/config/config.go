// Package config loads showdown settings and hand files written in HCL.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/settlement"
)

// Config represents a complete showdown configuration file
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Hands      []HandConfig      `hcl:"hand,block"`
}

// SimulationConfig controls batch settlement runs
type SimulationConfig struct {
	Hands    int    `hcl:"hands,optional"`
	Players  int    `hcl:"players,optional"`
	Seed     *int64 `hcl:"seed,optional"` // Nil until defaulted; 0 is a valid seed
	Workers  int    `hcl:"workers,optional"`
	MaxStack int    `hcl:"max_stack,optional"`
}

// HandConfig describes one finished hand to settle
type HandConfig struct {
	Name         string              `hcl:"name,label"`
	Community    []string            `hcl:"community,optional"`
	Participants []ParticipantConfig `hcl:"participant,block"`
}

// ParticipantConfig describes one seat in a hand file
type ParticipantConfig struct {
	ID        int      `hcl:"id"`
	Hole      []string `hcl:"hole,optional"`
	Status    string   `hcl:"status,optional"`
	Committed int      `hcl:"committed"`
	RoundBet  int      `hcl:"round_bet,optional"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// DefaultSimulation returns default simulation settings
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		Hands:    10000,
		Players:  6,
		Seed:     seed(1),
		Workers:  runtime.NumCPU(),
		MaxStack: 1000,
	}
}

func seed(v int64) *int64 {
	return &v
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes configuration from HCL source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	defaults := DefaultSimulation()
	if c.Simulation == nil {
		c.Simulation = &defaults
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = defaults.Hands
	}
	if c.Simulation.Players == 0 {
		c.Simulation.Players = defaults.Players
	}
	if c.Simulation.Seed == nil {
		c.Simulation.Seed = defaults.Seed
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaults.Workers
	}
	if c.Simulation.MaxStack == 0 {
		c.Simulation.MaxStack = defaults.MaxStack
	}

	for i := range c.Hands {
		for j := range c.Hands[i].Participants {
			if c.Hands[i].Participants[j].Status == "" {
				c.Hands[i].Participants[j].Status = settlement.Active.String()
			}
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if s := c.Simulation; s != nil {
		if s.Hands <= 0 {
			return fmt.Errorf("simulation: hands must be positive")
		}
		if s.Players < 2 || s.Players > 10 {
			return fmt.Errorf("simulation: players must be between 2 and 10")
		}
		if s.Workers <= 0 {
			return fmt.Errorf("simulation: workers must be positive")
		}
		if s.MaxStack <= 0 {
			return fmt.Errorf("simulation: max stack must be positive")
		}
	}

	names := make(map[string]bool, len(c.Hands))
	for _, hand := range c.Hands {
		if names[hand.Name] {
			return fmt.Errorf("hand %s: defined more than once", hand.Name)
		}
		names[hand.Name] = true

		if _, _, err := hand.Build(); err != nil {
			return err
		}
	}

	return nil
}

// Hand returns a hand by name
func (c *Config) Hand(name string) *HandConfig {
	for i := range c.Hands {
		if c.Hands[i].Name == name {
			return &c.Hands[i]
		}
	}
	return nil
}

// Build parses the hand's cards and statuses into settlement inputs
func (h *HandConfig) Build() ([]deck.Card, []settlement.Participant, error) {
	community, err := deck.ParseCardList(h.Community)
	if err != nil {
		return nil, nil, fmt.Errorf("hand %s: community: %w", h.Name, err)
	}
	if len(community) > 5 {
		return nil, nil, fmt.Errorf("hand %s: %d community cards, at most 5 allowed", h.Name, len(community))
	}
	if len(h.Participants) == 0 {
		return nil, nil, fmt.Errorf("hand %s: no participants", h.Name)
	}

	participants := make([]settlement.Participant, 0, len(h.Participants))
	for _, pc := range h.Participants {
		hole, err := deck.ParseCardList(pc.Hole)
		if err != nil {
			return nil, nil, fmt.Errorf("hand %s: participant %d: %w", h.Name, pc.ID, err)
		}
		status, err := settlement.ParseStatus(pc.Status)
		if err != nil {
			return nil, nil, fmt.Errorf("hand %s: participant %d: %w", h.Name, pc.ID, err)
		}
		participants = append(participants, settlement.Participant{
			ID:        pc.ID,
			Hole:      hole,
			Status:    status,
			Committed: pc.Committed,
			RoundBet:  pc.RoundBet,
		})
	}

	return community, participants, nil
}
