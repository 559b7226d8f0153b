package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in creation order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the suit name (e.g. "Hearts")
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the rank name: "2".."10", "Jack", "Queen", "King", "Ace"
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "Jack"
	case r == Queen:
		return "Queen"
	case r == King:
		return "King"
	case r == Ace:
		return "Ace"
	default:
		return "?"
	}
}

// Short returns the single-column rank label used in compact card text
func (r Rank) Short() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return r.String()
	}
}

// IsFace returns true for Jack, Queen and King
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Card is an immutable (rank, suit) pair. It carries no blackjack value;
// that is derived from the hand it sits in.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the long form, e.g. "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact form, e.g. "A♠"
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

var rankCodes = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven, "8": Eight,
	"9": Nine, "10": Ten, "T": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

var suitCodes = map[byte]Suit{'H': Hearts, 'D': Diamonds, 'C': Clubs, 'S': Spades}

// ParseCard parses a rank code followed by a suit letter: "AS", "10h", "Td".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rank, ok := rankCodes[s[:len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	suit, ok := suitCodes[s[len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace separated list of cards, e.g. "KH QS AC".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
