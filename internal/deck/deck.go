package deck

import (
	"errors"
	"math/rand"

	"github.com/arcanaland/blackjack/internal/card"
)

// ErrEmptyDeck is returned by Draw when no cards remain.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is a single 52-card deck. Cards are removed as they are drawn and
// never returned within a round.
type Deck struct {
	cards []card.Card
}

// New builds a full 52-card deck and shuffles it with the given source.
// Randomness is injected so a seeded source replays the same permutation.
func New(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}
}

// NewStacked builds a deck that draws the given cards in order. Intended for
// deterministic round setups.
func NewStacked(cards ...card.Card) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Draw removes and returns the top card, or ErrEmptyDeck if none remain
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}

	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
