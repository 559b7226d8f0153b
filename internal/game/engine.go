package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/roundid"
)

// ErrRoundOver is returned when hitting or standing on a terminal round
var ErrRoundOver = errors.New("round is over")

// Engine deals and resolves blackjack rounds. It keeps no per-round state;
// see Round.
type Engine struct {
	rng    *rand.Rand
	logger *log.Logger
	bus    EventBus
	ids    *roundid.Generator
	clock  quartz.Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithEventBus publishes round events to bus instead of a private bus
func WithEventBus(bus EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithIDGenerator sets the round ID generator
func WithIDGenerator(g *roundid.Generator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithClock sets the clock used to timestamp events
func WithClock(c quartz.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// NewEngine creates an engine drawing cards from rng. A nil rng uses the
// process-wide source and a nil logger discards output.
func NewEngine(rng *rand.Rand, logger *log.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		rng:    rng,
		logger: logger.WithPrefix("engine"),
		bus:    NewEventBus(),
		ids:    roundid.NewGenerator(nil),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EventBus returns the bus round events are published on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// CreateDeck returns a fresh 52-card deck
func (e *Engine) CreateDeck() *deck.Deck {
	return deck.New(e.rng)
}

// DealCard removes one random card from d. It returns
// deck.ErrDeckExhausted when d is empty.
func (e *Engine) DealCard(d *deck.Deck) (deck.Card, error) {
	return d.Deal()
}

// StartRound opens a fresh deck and deals two cards each, alternating
// player and dealer. If either side has 21 the returned round is already
// terminal and the dealer's hand is face up.
func (e *Engine) StartRound() (*Round, error) {
	r := newRound(e.ids.Generate(), e.CreateDeck())
	e.bus.Publish(RoundStartEvent{RoundID: r.id, timestamp: e.clock.Now()})

	for i := 0; i < 2; i++ {
		if err := e.dealTo(r, Player, false); err != nil {
			return r, fmt.Errorf("initial deal: %w", err)
		}
		if err := e.dealTo(r, Dealer, i == 1); err != nil {
			return r, fmt.Errorf("initial deal: %w", err)
		}
	}
	r.dealerHidden = true

	e.logger.Debug("Round started",
		"round", r.id,
		"player", r.player.String(),
		"playerValue", r.player.Value(),
		"dealerUp", r.dealer[0].Short())

	if outcome := CheckBlackjack(r); outcome != OutcomeNone {
		e.reveal(r)
		e.finish(r, outcome)
	}

	return r, nil
}

// CheckBlackjack looks for a 21 on the initial deal. It returns
// OutcomeNone when neither side has 21 and the round continues.
func CheckBlackjack(r *Round) Outcome {
	player := r.player.Value() == Blackjack
	dealer := r.dealer.Value() == Blackjack

	switch {
	case player && dealer:
		return OutcomeBothBlackjack
	case player:
		return OutcomePlayerBlackjack
	case dealer:
		return OutcomeDealerBlackjack
	default:
		return OutcomeNone
	}
}

// Hit deals one card to the player and reports whether the round is now
// over. Going over 21 ends the round with OutcomePlayerBust.
func (e *Engine) Hit(r *Round) (bool, error) {
	if r.IsTerminal() {
		return true, ErrRoundOver
	}

	if err := e.dealTo(r, Player, false); err != nil {
		e.abort(r, err)
		return true, fmt.Errorf("hit: %w", err)
	}

	value := r.player.Value()
	e.logger.Debug("Player hit", "round", r.id, "hand", r.player.String(), "value", value)

	if value > Blackjack {
		e.reveal(r)
		e.finish(r, OutcomePlayerBust)
		return true, nil
	}
	return false, nil
}

// Stand turns over the dealer's hidden card, lets the dealer draw while
// under 17 and compares the hands.
func (e *Engine) Stand(r *Round) (Outcome, error) {
	if r.IsTerminal() {
		return r.outcome, ErrRoundOver
	}

	e.reveal(r)

	for r.dealer.Value() < DealerStandValue {
		if err := e.dealTo(r, Dealer, false); err != nil {
			e.abort(r, err)
			return r.outcome, fmt.Errorf("stand: %w", err)
		}
	}

	outcome := Compare(r.player.Value(), r.dealer.Value())
	e.finish(r, outcome)
	return outcome, nil
}

// Compare resolves a stood hand against the dealer's final total
func Compare(player, dealer int) Outcome {
	switch {
	case dealer > Blackjack:
		return OutcomeDealerBust
	case player > dealer:
		return OutcomePlayerWin
	case player == dealer:
		return OutcomePush
	default:
		return OutcomeDealerWin
	}
}

func (e *Engine) dealTo(r *Round, to Side, hidden bool) error {
	card, err := e.DealCard(r.deck)
	if err != nil {
		return err
	}

	var total int
	if to == Player {
		r.player = append(r.player, card)
		total = r.player.Value()
	} else {
		r.dealer = append(r.dealer, card)
		total = r.dealer.Value()
	}

	e.bus.Publish(CardDealtEvent{
		RoundID:   r.id,
		To:        to,
		Card:      card,
		Hidden:    hidden,
		Total:     total,
		timestamp: e.clock.Now(),
	})
	return nil
}

// reveal turns the dealer's hole card face up, once per round
func (e *Engine) reveal(r *Round) {
	if !r.dealerHidden {
		return
	}
	r.dealerHidden = false
	if len(r.dealer) > 1 {
		e.bus.Publish(DealerRevealEvent{
			RoundID:   r.id,
			Card:      r.dealer[1],
			Total:     r.dealer.Value(),
			timestamp: e.clock.Now(),
		})
	}
}

func (e *Engine) abort(r *Round, err error) {
	e.logger.Error("Aborting round", "round", r.id, "error", err)
	e.reveal(r)
	e.finish(r, OutcomeAborted)
}

func (e *Engine) finish(r *Round, outcome Outcome) {
	r.outcome = outcome
	e.logger.Debug("Round finished",
		"round", r.id,
		"outcome", outcome,
		"player", r.player.Value(),
		"dealer", r.dealer.Value())

	e.bus.Publish(RoundEndEvent{
		RoundID:     r.id,
		Outcome:     outcome,
		PlayerTotal: r.player.Value(),
		DealerTotal: r.dealer.Value(),
		timestamp:   e.clock.Now(),
	})
}
