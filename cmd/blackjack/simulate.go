package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/simulator"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type SimulateCmd struct {
	Rounds  int `help:"Number of rounds to play (default from config)"`
	Workers int `help:"Parallel workers (0 = GOMAXPROCS)"`
	StandOn int `name:"stand-on" help:"Player stands once their total reaches this value"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Rounds != 0 {
		cfg.Simulate.Rounds = c.Rounds
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.StandOn != 0 {
		cfg.Simulate.StandOn = c.StandOn
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg, "simulate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := g.seed(cfg)
	start := time.Now()
	sim := simulator.New(simulator.Config{
		Rounds:  cfg.Simulate.Rounds,
		Workers: cfg.Simulate.Workers,
		StandOn: cfg.Simulate.StandOn,
		Seed:    seed,
		Logger:  logger,
	})
	tally, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Debug("Simulation finished", "duration", time.Since(start).Round(time.Millisecond))

	fmt.Println(titleStyle.Render(fmt.Sprintf(" Blackjack simulation: stand on %d, seed %d ", cfg.Simulate.StandOn, seed)))
	fmt.Println(tally.Summary())
	return nil
}
