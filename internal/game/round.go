package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// Round is the state of a single blackjack round: both hands, the deck
// they were dealt from and the outcome once the round is over. Only the
// Engine mutates a Round; everything else reads it through accessors or a
// Snapshot.
type Round struct {
	id           string
	deck         *deck.Deck
	player       Hand
	dealer       Hand
	dealerHidden bool
	outcome      Outcome
}

func newRound(id string, d *deck.Deck) *Round {
	return &Round{
		id:     id,
		deck:   d,
		player: make(Hand, 0, 8),
		dealer: make(Hand, 0, 8),
	}
}

// ID returns the round identifier
func (r *Round) ID() string {
	return r.id
}

// Player returns a copy of the player's hand
func (r *Round) Player() Hand {
	return copyHand(r.player)
}

// Dealer returns a copy of the dealer's full hand, including a hidden card
func (r *Round) Dealer() Hand {
	return copyHand(r.dealer)
}

// PlayerValue returns the current value of the player's hand
func (r *Round) PlayerValue() int {
	return r.player.Value()
}

// DealerValue returns the value of the dealer's full hand
func (r *Round) DealerValue() int {
	return r.dealer.Value()
}

// DealerHidden reports whether the dealer's second card should be shown
// face down
func (r *Round) DealerHidden() bool {
	return r.dealerHidden
}

// Outcome returns the round outcome, OutcomeNone while the round is active
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// IsTerminal reports whether the round is over
func (r *Round) IsTerminal() bool {
	return r.outcome.IsTerminal()
}

// CardsRemaining returns how many cards are left in the round's deck
func (r *Round) CardsRemaining() int {
	return r.deck.Remaining()
}

// Snapshot is a read-only copy of a round for renderers
type Snapshot struct {
	RoundID        string
	Player         []deck.Card
	Dealer         []deck.Card
	DealerHidden   bool
	PlayerValue    int
	DealerValue    int // value of the visible dealer cards only
	PlayerSoft     bool
	Terminal       bool
	Outcome        Outcome
	CardsRemaining int
}

// VisibleDealer returns the dealer cards a renderer may show face up
func (s Snapshot) VisibleDealer() []deck.Card {
	if s.DealerHidden && len(s.Dealer) > 1 {
		return s.Dealer[:1]
	}
	return s.Dealer
}

// Snapshot copies the round state. While the dealer's second card is
// hidden, DealerValue only counts the up card.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		RoundID:        r.id,
		Player:         copyHand(r.player),
		Dealer:         copyHand(r.dealer),
		DealerHidden:   r.dealerHidden,
		PlayerValue:    r.player.Value(),
		PlayerSoft:     r.player.IsSoft(),
		Terminal:       r.IsTerminal(),
		Outcome:        r.outcome,
		CardsRemaining: r.deck.Remaining(),
	}
	s.DealerValue = HandValue(s.VisibleDealer())
	return s
}

func copyHand(h Hand) Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
