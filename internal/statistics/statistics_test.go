package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestTallyAdd(t *testing.T) {
	var tally Tally
	for _, o := range []game.Outcome{
		game.OutcomePlayerBlackjack,
		game.OutcomeDealerBlackjack,
		game.OutcomeBothBlackjack,
		game.OutcomePlayerBust,
		game.OutcomeDealerBust,
		game.OutcomePlayerWin,
		game.OutcomeDealerWin,
		game.OutcomePush,
		game.OutcomeAborted,
		game.OutcomeNone,
	} {
		tally.Add(o)
	}

	assert.Equal(t, 9, tally.Rounds)
	assert.Equal(t, 3, tally.PlayerWins)
	assert.Equal(t, 3, tally.DealerWins)
	assert.Equal(t, 2, tally.Pushes)
	assert.Equal(t, 1, tally.Aborted)
	assert.Equal(t, 2, tally.PlayerBlackjacks)
	assert.Equal(t, 2, tally.DealerBlackjacks)
	assert.Equal(t, 1, tally.PlayerBusts)
	assert.Equal(t, 1, tally.DealerBusts)
	require.NoError(t, tally.Validate())
	assert.InDelta(t, 33.33, tally.WinRate(), 0.01)
	assert.Contains(t, tally.Summary(), "Aborted:     1")
}

func TestTallyRatesEmpty(t *testing.T) {
	var tally Tally
	assert.Zero(t, tally.WinRate())
	assert.Zero(t, tally.LossRate())
	assert.Zero(t, tally.PushRate())
	assert.NoError(t, tally.Validate())
	assert.NotContains(t, tally.Summary(), "Aborted")
}

func TestTallyMerge(t *testing.T) {
	a := Tally{Rounds: 2, PlayerWins: 1, DealerWins: 1, PlayerBusts: 1}
	b := Tally{Rounds: 3, PlayerWins: 1, Pushes: 2, DealerBusts: 1}
	a.Merge(b)

	assert.Equal(t, Tally{Rounds: 5, PlayerWins: 2, DealerWins: 1, Pushes: 2, PlayerBusts: 1, DealerBusts: 1}, a)
	assert.NoError(t, a.Validate())
}

func TestTallyValidateDetectsDrift(t *testing.T) {
	tally := Tally{Rounds: 3, PlayerWins: 1}
	assert.Error(t, tally.Validate())
}

func TestTallySubscribesToRoundEnd(t *testing.T) {
	var tally Tally
	bus := game.NewEventBus()
	bus.Subscribe(&tally)

	bus.Publish(game.RoundStartEvent{RoundID: "r1"})
	bus.Publish(game.RoundEndEvent{RoundID: "r1", Outcome: game.OutcomeDealerWin})

	assert.Equal(t, 1, tally.Rounds)
	assert.Equal(t, 1, tally.DealerWins)
}
