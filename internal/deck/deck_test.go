package deck

import (
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(1))

	require.Equal(t, Size, d.Remaining())

	seen := make(map[Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	assert.Len(t, seen, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.Equal(t, 1, seen[NewCard(rank, suit)], "card %s", NewCard(rank, suit))
		}
	}
}

func TestDealNeverRepeats(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(42))
	dealt := make(map[Card]bool)

	for i := 0; i < Size; i++ {
		before := d.Remaining()
		c, err := d.Deal()
		require.NoError(t, err)
		assert.False(t, dealt[c], "card %s dealt twice", c)
		assert.False(t, d.Contains(c))
		assert.Equal(t, before-1, d.Remaining())
		assert.Equal(t, i+1, d.Dealt())
		dealt[c] = true
	}

	assert.True(t, d.IsEmpty())
	assert.Len(t, dealt, Size)
}

func TestDealEmptyDeck(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(7))
	for !d.IsEmpty() {
		_, err := d.Deal()
		require.NoError(t, err)
	}

	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 0, d.Remaining())
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	t.Parallel()
	a := New(randutil.New(99))
	b := New(randutil.New(99))

	for i := 0; i < 10; i++ {
		ca, err := a.Deal()
		require.NoError(t, err)
		cb, err := b.Deal()
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestDealWithoutRNG(t *testing.T) {
	t.Parallel()
	d := New(nil)
	_, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, Size-1, d.Remaining())
}
