package deck

import (
	"errors"
	"math/rand/v2"
)

// Size is the number of cards in a fresh deck
const Size = 52

// ErrDeckExhausted is returned when dealing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a single 52-card deck. Cards leave the deck one at a time and
// are never put back; a new round gets a new Deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck drawing from rng. The cards are kept in
// suit-major order; randomness comes from Deal, not from a shuffle.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	return d
}

// Deal removes a uniformly random card from the deck and returns it.
// The chosen slot is filled with the last card, so a draw is O(1).
func (d *Deck) Deal() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}

	var i int
	if d.rng != nil {
		i = d.rng.IntN(n)
	} else {
		i = rand.IntN(n)
	}

	card := d.cards[i]
	d.cards[i] = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Dealt returns how many cards have left the deck
func (d *Deck) Dealt() int {
	return Size - len(d.cards)
}

// Cards returns a copy of the cards still in the deck
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether c is still in the deck
func (d *Deck) Contains(c Card) bool {
	for _, card := range d.cards {
		if card == c {
			return true
		}
	}
	return false
}

// Stacked builds a deck holding exactly cards, in that order. It exists
// for fixtures and replays that need to control what can be dealt; real
// rounds always start from New.
func Stacked(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}
