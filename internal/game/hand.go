package game

import "github.com/arcanaland/blackjack/internal/card"

// Hand is the ordered sequence of cards held by one participant during a
// round. It only ever grows; the score is recomputed from the cards so it
// can never go stale.
type Hand struct {
	cards []card.Card
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in deal order
func (h *Hand) Cards() []card.Card {
	return h.cards
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// Score returns the best total for the hand. Aces start at 11 and are
// downgraded to 1 one at a time while the total exceeds 21. Which ace gets
// downgraded is irrelevant since every downgrade subtracts exactly 10.
func (h *Hand) Score() int {
	total := 0
	aces := 0

	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == card.Ace {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totaling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == 21
}

// IsBust reports whether the hand's score exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score() > 21
}
