// Package simulator plays many automated blackjack rounds with a fixed
// player policy and tallies the outcomes.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	// StandOn is the total at which the simulated player stops hitting
	StandOn int
	Seed    int64
	Logger  *log.Logger
}

// DefaultStandOn mirrors the dealer's rule
const DefaultStandOn = game.DealerStandValue

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in defaults for unset fields
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.StandOn <= 0 {
		config.StandOn = DefaultStandOn
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds. Round i is always dealt from
// the same derived seed, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Tally, error) {
	if s.config.Rounds < 0 {
		return nil, fmt.Errorf("rounds must not be negative, got %d", s.config.Rounds)
	}

	workers := min(s.config.Workers, max(s.config.Rounds, 1))
	tallies := make([]statistics.Tally, workers)

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"workers", workers,
		"standOn", s.config.StandOn,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < s.config.Rounds; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				outcome, err := s.playRound(i)
				if err != nil {
					return fmt.Errorf("round %d: %w", i, err)
				}
				tallies[w].Add(outcome)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Tally{}
	for _, t := range tallies {
		total.Merge(t)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "rounds", total.Rounds, "winRate", fmt.Sprintf("%.2f%%", total.WinRate()))
	return total, nil
}

// playRound plays round i on its own engine and deck
func (s *Simulator) playRound(i int) (game.Outcome, error) {
	e := game.NewEngine(randutil.New(randutil.Derive(s.config.Seed, i)), s.config.Logger)

	r, err := e.StartRound()
	if err != nil {
		return game.OutcomeNone, err
	}

	for !r.IsTerminal() && r.PlayerValue() < s.config.StandOn {
		if _, err := e.Hit(r); err != nil {
			return r.Outcome(), err
		}
	}

	if r.IsTerminal() {
		return r.Outcome(), nil
	}
	return e.Stand(r)
}

// RunSimulation is a convenience wrapper around New(...).Run
func RunSimulation(ctx context.Context, rounds int, seed int64, logger *log.Logger) (*statistics.Tally, error) {
	return New(Config{Rounds: rounds, Seed: seed, Logger: logger}).Run(ctx)
}
