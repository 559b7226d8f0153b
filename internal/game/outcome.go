package game

// Side identifies a participant in a round
type Side int

const (
	Nobody Side = iota
	Player
	Dealer
)

// String returns the side name
func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	default:
		return "nobody"
	}
}

// Outcome is the result of a round. OutcomeNone means the round is still
// being played.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBothBlackjack
	OutcomePlayerBlackjack
	OutcomeDealerBlackjack
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
	// OutcomeAborted ends a round whose deck ran out of cards
	OutcomeAborted
)

// String returns a stable identifier for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBothBlackjack:
		return "both_blackjack"
	case OutcomePlayerBlackjack:
		return "player_blackjack"
	case OutcomeDealerBlackjack:
		return "dealer_blackjack"
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeDealerWin:
		return "dealer_win"
	case OutcomePush:
		return "push"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the outcome ends the round
func (o Outcome) IsTerminal() bool {
	return o != OutcomeNone
}

// IsBlackjack reports whether the round ended on the initial deal
func (o Outcome) IsBlackjack() bool {
	return o == OutcomeBothBlackjack || o == OutcomePlayerBlackjack || o == OutcomeDealerBlackjack
}

// Winner returns who won the round. Pushes and aborted rounds have no winner.
func (o Outcome) Winner() Side {
	switch o {
	case OutcomePlayerBlackjack, OutcomeDealerBust, OutcomePlayerWin:
		return Player
	case OutcomeDealerBlackjack, OutcomePlayerBust, OutcomeDealerWin:
		return Dealer
	default:
		return Nobody
	}
}

// Message returns the notification shown to the player
func (o Outcome) Message() string {
	switch o {
	case OutcomeBothBlackjack:
		return "It's a tie! Both you and the dealer got Blackjack."
	case OutcomePlayerBlackjack:
		return "Congratulations! You got Blackjack!"
	case OutcomeDealerBlackjack:
		return "Dealer got Blackjack. You lose."
	case OutcomePlayerBust:
		return "Bust! You lose."
	case OutcomeDealerBust:
		return "Dealer busts! You win!"
	case OutcomePlayerWin:
		return "Congratulations! You win!"
	case OutcomeDealerWin:
		return "Dealer wins."
	case OutcomePush:
		return "It's a tie!"
	case OutcomeAborted:
		return "Round aborted: the deck ran out of cards."
	default:
		return ""
	}
}
