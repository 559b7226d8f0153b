package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestHandValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		value int
		soft  bool
	}{
		{"empty hand", "", 0, false},
		{"single ace", "AH", 11, true},
		{"two aces", "AH AS", 12, true},
		{"face cards and ace", "KH QS AC", 21, false},
		{"bust without aces", "10H 9S 5C", 24, false},
		{"blackjack", "AS KD", 21, true},
		{"soft seventeen", "AH 6D", 17, true},
		{"ace drops to one", "AH 9D 5C", 15, false},
		{"four aces", "AH AD AC AS", 14, true},
		{"four aces and ten", "AH AD AC AS 10S", 14, false},
		{"three aces and eight", "AH AD AC 8S", 21, true},
		{"number cards", "2C 3D 4H 5S", 14, false},
		{"jack queen", "JC QD", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := Hand(deck.MustParseCards(tt.cards))
			assert.Equal(t, tt.value, HandValue(hand))
			assert.Equal(t, tt.value, hand.Value())
			assert.Equal(t, tt.soft, hand.IsSoft())
			assert.Equal(t, tt.value > Blackjack, hand.IsBust())
		})
	}
}

func TestHandValueIsRecomputed(t *testing.T) {
	t.Parallel()
	hand := Hand(deck.MustParseCards("AH 5S"))
	assert.Equal(t, 16, hand.Value())

	hand = append(hand, deck.NewCard(deck.King, deck.Clubs))
	assert.Equal(t, 16, hand.Value())

	hand = append(hand, deck.NewCard(deck.Ace, deck.Spades))
	assert.Equal(t, 17, hand.Value())
}

func TestCardValue(t *testing.T) {
	t.Parallel()
	for _, rank := range deck.Ranks {
		c := deck.NewCard(rank, deck.Hearts)
		switch {
		case rank == deck.Ace:
			assert.Equal(t, 11, CardValue(c))
		case rank.IsFace():
			assert.Equal(t, 10, CardValue(c))
		default:
			assert.Equal(t, int(rank), CardValue(c))
		}
	}
}

func TestHandString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A♠ 10♥", Hand(deck.MustParseCards("AS 10H")).String())
	assert.Equal(t, "", Hand(nil).String())
}
