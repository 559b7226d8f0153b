package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestEngine(seed int64, opts ...Option) *Engine {
	return NewEngine(randutil.New(seed), quietLogger(), opts...)
}

// stackedRound builds an active round with fixed hands whose deck holds
// only remaining. Hand and deck cards are given as "KH 10S" style codes.
func stackedRound(t *testing.T, player, dealer, remaining string) *Round {
	t.Helper()
	r := newRound("test-round", deck.Stacked(randutil.New(1), deck.MustParseCards(remaining)...))
	r.player = append(r.player, deck.MustParseCards(player)...)
	r.dealer = append(r.dealer, deck.MustParseCards(dealer)...)
	r.dealerHidden = true
	return r
}

// recorder collects every event published on a bus
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(event Event) {
	r.events = append(r.events, event)
}

func (r *recorder) ofType(et EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
