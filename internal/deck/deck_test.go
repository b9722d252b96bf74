package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
)

func TestDeckHoldsAllFiftyTwoCards(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[card.Card]bool)
	for i := 0; i < 52; i++ {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c], "duplicate card drawn: %s", c)
		seen[c] = true
	}

	assert.Equal(t, 0, d.Remaining())
	assert.Len(t, seen, 52)

	// The 53rd draw must fail.
	_, err := d.Draw()
	require.ErrorIs(t, err, ErrEmptyDeck)
}

func TestShuffleIsSeeded(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	for i := 0; i < 52; i++ {
		ca, err := a.Draw()
		require.NoError(t, err)
		cb, err := b.Draw()
		require.NoError(t, err)
		assert.Equal(t, ca, cb, "seeded decks diverged at draw %d", i)
	}
}

func TestDifferentSeedsPermuteDifferently(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)))
	b := New(rand.New(rand.NewSource(2)))

	same := true
	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds produced an identical permutation")
}

func TestNewStackedDrawsInOrder(t *testing.T) {
	first := card.Card{Rank: card.Ace, Suit: card.Spades}
	second := card.Card{Rank: card.Ten, Suit: card.Hearts}

	d := NewStacked(first, second)
	require.Equal(t, 2, d.Remaining())

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, first, c)

	c, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, second, c)

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}
