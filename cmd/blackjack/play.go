package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	AutoDeal *time.Duration `name:"auto-deal" help:"Deal the next round this long after one ends (0 waits for 'n')"`
	NoColor  bool           `name:"no-color" help:"Disable colors"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.AutoDeal != nil {
		cfg.Play.AutoDeal = c.AutoDeal.String()
	}
	if c.NoColor {
		cfg.Play.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	delay, err := cfg.AutoDealDelay()
	if err != nil {
		return err
	}

	if cfg.Play.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	logger := newLogger(logFile, cfg, "blackjack")
	defer func() {
		if err := logFile.Close(); err != nil {
			logger.Error("Failed to close debug file", "error", err)
		}
	}()

	seed := g.seed(cfg)
	logger.Info("Starting table", "seed", seed, "auto_deal", delay)

	engine := game.NewEngine(randutil.New(seed), logger)
	model := tui.NewModel(engine, logger, tui.Options{AutoDeal: delay})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run table: %w", err)
	}

	t := model.Tally()
	logger.Info("Table closed", "rounds", t.Rounds, "won", t.PlayerWins, "lost", t.DealerWins, "pushed", t.Pushes)
	if t.Rounds > 0 {
		fmt.Println(titleStyle.Render(" Session "))
		fmt.Println(t.Summary())
	}
	return nil
}
