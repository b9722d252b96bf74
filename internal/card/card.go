package card

import "fmt"

// Suit is one of the four French suits. Suits never affect scoring but are
// kept for display.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists all four suits in a stable order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the full suit name (e.g., "Hearts")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return "Unknown"
}

// Symbol returns the Unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Letter returns a single-letter fallback for terminals without Unicode
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

// Red reports whether the suit prints red on a table
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank from Ace through King.
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

// Ranks lists all thirteen ranks in a stable order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the full rank name (e.g., "Queen")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Label returns the short form used on the card face (A, 2-10, J, Q, K)
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// Value returns the blackjack value of the card. Face cards count 10 and
// aces count 11; ace adjustment happens at the hand level.
func (c Card) Value() int {
	switch c.Rank {
	case Jack, Queen, King:
		return 10
	case Ace:
		return 11
	default:
		return int(c.Rank)
	}
}

// String returns the long card name (e.g., "Ace of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
