package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Rounds: 10})
	assert.Equal(t, DefaultStandOn, s.config.StandOn)
	assert.Positive(t, s.config.Workers)
	assert.NotNil(t, s.config.Logger)
}

func TestRun(t *testing.T) {
	s := New(Config{Rounds: 2000, Workers: 4, Seed: 12345, Logger: quietLogger()})

	tally, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, tally.Validate())

	assert.Equal(t, 2000, tally.Rounds)
	assert.Zero(t, tally.Aborted)
	assert.Positive(t, tally.PlayerWins)
	assert.Positive(t, tally.DealerWins)
	assert.Positive(t, tally.Pushes)
	assert.Positive(t, tally.PlayerBlackjacks)
	assert.Positive(t, tally.DealerBusts)
	// the house keeps its edge under a mimic-the-dealer policy
	assert.Greater(t, tally.DealerWins, tally.PlayerWins)
}

func TestRunIndependentOfWorkerCount(t *testing.T) {
	one, err := New(Config{Rounds: 500, Workers: 1, Seed: 7, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	many, err := New(Config{Rounds: 500, Workers: 8, Seed: 7, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, *one, *many)
}

func TestRunStandOnChangesPolicy(t *testing.T) {
	cautious, err := New(Config{Rounds: 1000, StandOn: 12, Seed: 3, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	reckless, err := New(Config{Rounds: 1000, StandOn: 21, Seed: 3, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	assert.Less(t, cautious.PlayerBusts, reckless.PlayerBusts)
}

func TestRunZeroRounds(t *testing.T) {
	tally, err := New(Config{Rounds: 0, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, tally.Rounds)
}

func TestRunNegativeRounds(t *testing.T) {
	_, err := New(Config{Rounds: -1}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Rounds: 100, Workers: 2, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSimulationConvenience(t *testing.T) {
	tally, err := RunSimulation(context.Background(), 50, 99, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 50, tally.Rounds)
}
