package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack is the best possible hand value
const Blackjack = 21

// DealerStandValue is the total at which the dealer stops drawing
const DealerStandValue = 17

// Hand is an ordered sequence of cards held by the player or the dealer
type Hand []deck.Card

// Value returns the blackjack value of the hand. See HandValue.
func (h Hand) Value() int {
	return HandValue(h)
}

// IsSoft reports whether an ace in the hand is still counted as 11
func (h Hand) IsSoft() bool {
	_, soft := valuate(h)
	return soft > 0
}

// IsBust reports whether the hand is over 21
func (h Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// String renders the hand as compact card codes, e.g. "A♠ K♥"
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

// HandValue computes the best value of cards: 2-10 at face value, face
// cards as 10, aces as 11 but reduced to 1 one at a time while the total
// would otherwise exceed 21. It is recomputed on every call.
func HandValue(cards []deck.Card) int {
	total, _ := valuate(cards)
	return total
}

// CardValue returns the value a single card adds before soft reduction
func CardValue(c deck.Card) int {
	switch {
	case c.IsAce():
		return 11
	case c.Rank.IsFace():
		return 10
	default:
		return int(c.Rank)
	}
}

// valuate returns the hand total and how many aces still count as 11
func valuate(cards []deck.Card) (total, softAces int) {
	for _, c := range cards {
		total += CardValue(c)
		if c.IsAce() {
			softAces++
		}
	}

	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}
