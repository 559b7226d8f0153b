// Package statistics keeps an in-memory tally of round outcomes for a
// session or a simulation run.
package statistics

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// Tally counts finished rounds by outcome
type Tally struct {
	Rounds           int
	PlayerWins       int
	DealerWins       int
	Pushes           int
	PlayerBlackjacks int
	DealerBlackjacks int
	PlayerBusts      int
	DealerBusts      int
	Aborted          int
}

// Add records one finished round. Non-terminal outcomes are ignored.
func (t *Tally) Add(outcome game.Outcome) {
	if !outcome.IsTerminal() {
		return
	}
	t.Rounds++

	switch outcome.Winner() {
	case game.Player:
		t.PlayerWins++
	case game.Dealer:
		t.DealerWins++
	default:
		if outcome == game.OutcomeAborted {
			t.Aborted++
		} else {
			t.Pushes++
		}
	}

	switch outcome {
	case game.OutcomeBothBlackjack:
		t.PlayerBlackjacks++
		t.DealerBlackjacks++
	case game.OutcomePlayerBlackjack:
		t.PlayerBlackjacks++
	case game.OutcomeDealerBlackjack:
		t.DealerBlackjacks++
	case game.OutcomePlayerBust:
		t.PlayerBusts++
	case game.OutcomeDealerBust:
		t.DealerBusts++
	}
}

// OnEvent lets a Tally subscribe to an engine's event bus
func (t *Tally) OnEvent(event game.Event) {
	if end, ok := event.(game.RoundEndEvent); ok {
		t.Add(end.Outcome)
	}
}

// Merge adds the counts of other into t
func (t *Tally) Merge(other Tally) {
	t.Rounds += other.Rounds
	t.PlayerWins += other.PlayerWins
	t.DealerWins += other.DealerWins
	t.Pushes += other.Pushes
	t.PlayerBlackjacks += other.PlayerBlackjacks
	t.DealerBlackjacks += other.DealerBlackjacks
	t.PlayerBusts += other.PlayerBusts
	t.DealerBusts += other.DealerBusts
	t.Aborted += other.Aborted
}

// WinRate returns the share of rounds the player won, in percent
func (t *Tally) WinRate() float64 {
	return t.rate(t.PlayerWins)
}

// LossRate returns the share of rounds the dealer won, in percent
func (t *Tally) LossRate() float64 {
	return t.rate(t.DealerWins)
}

// PushRate returns the share of tied rounds, in percent
func (t *Tally) PushRate() float64 {
	return t.rate(t.Pushes)
}

func (t *Tally) rate(n int) float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(t.Rounds) * 100
}

// Validate checks that the counters are consistent with each other
func (t *Tally) Validate() error {
	if sum := t.PlayerWins + t.DealerWins + t.Pushes + t.Aborted; sum != t.Rounds {
		return fmt.Errorf("outcome counts (%d) do not add up to rounds (%d)", sum, t.Rounds)
	}
	if t.PlayerBusts > t.DealerWins {
		return fmt.Errorf("player busts (%d) exceed dealer wins (%d)", t.PlayerBusts, t.DealerWins)
	}
	if t.DealerBusts > t.PlayerWins {
		return fmt.Errorf("dealer busts (%d) exceed player wins (%d)", t.DealerBusts, t.PlayerWins)
	}
	return nil
}

// Summary renders the tally as a short multi-line report
func (t *Tally) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:      %d\n", t.Rounds)
	fmt.Fprintf(&b, "Player wins: %d (%.1f%%)\n", t.PlayerWins, t.WinRate())
	fmt.Fprintf(&b, "Dealer wins: %d (%.1f%%)\n", t.DealerWins, t.LossRate())
	fmt.Fprintf(&b, "Pushes:      %d (%.1f%%)\n", t.Pushes, t.PushRate())
	fmt.Fprintf(&b, "Blackjacks:  player %d, dealer %d\n", t.PlayerBlackjacks, t.DealerBlackjacks)
	fmt.Fprintf(&b, "Busts:       player %d, dealer %d", t.PlayerBusts, t.DealerBusts)
	if t.Aborted > 0 {
		fmt.Fprintf(&b, "\nAborted:     %d", t.Aborted)
	}
	return b.String()
}
