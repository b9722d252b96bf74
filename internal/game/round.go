package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/deck"
)

// dealerStandsAt is the dealer's fixed drawing threshold. The dealer stands
// on any total of 17 or more, soft or hard.
const dealerStandsAt = 17

// ErrWrongPhase is returned when an operation is attempted outside the phase
// that allows it, e.g. hitting after the round has resolved.
var ErrWrongPhase = errors.New("operation not allowed in current phase")

// Phase is the round's position in the turn sequence.
type Phase int

const (
	PlayerTurn Phase = iota
	DealerTurn
	Resolved
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// Winner identifies who took the round.
type Winner int

const (
	PlayerWins Winner = iota
	DealerWins
	Push
)

// String returns the winner tag
func (w Winner) String() string {
	switch w {
	case PlayerWins:
		return "player"
	case DealerWins:
		return "dealer"
	case Push:
		return "push"
	}
	return "unknown"
}

// Reason explains how the round was decided.
type Reason int

const (
	Blackjack Reason = iota
	Bust
	HighScore
)

// String returns the reason tag
func (r Reason) String() string {
	switch r {
	case Blackjack:
		return "blackjack"
	case Bust:
		return "bust"
	case HighScore:
		return "high_score"
	}
	return "unknown"
}

// Outcome is the result of a resolved round.
type Outcome struct {
	Winner Winner
	Reason Reason
}

// Round owns one deck and two hands for the duration of a single round.
// Transitions are driven externally by Hit and Stand; everything else is
// deterministic given the deck's draw order.
type Round struct {
	ID     uuid.UUID
	deck   *deck.Deck
	player Hand
	dealer Hand

	phase   Phase
	outcome Outcome
}

// NewRound shuffles a fresh deck with the given source and deals two cards
// to each participant, player first. A player natural resolves the round
// immediately.
func NewRound(rng *rand.Rand) (*Round, error) {
	return NewRoundWithDeck(deck.New(rng))
}

// NewRoundWithDeck deals a round from an already-prepared deck
func NewRoundWithDeck(d *deck.Deck) (*Round, error) {
	r := &Round{
		ID:    uuid.New(),
		deck:  d,
		phase: PlayerTurn,
	}

	// Alternate player, dealer, player, dealer
	for i := 0; i < 2; i++ {
		if err := r.dealTo(&r.player); err != nil {
			return nil, fmt.Errorf("dealing opening hands: %w", err)
		}
		if err := r.dealTo(&r.dealer); err != nil {
			return nil, fmt.Errorf("dealing opening hands: %w", err)
		}
	}

	r.checkNaturals()

	return r, nil
}

// Hit draws one card into the player's hand. A bust resolves the round on
// the spot; otherwise the player may keep acting.
func (r *Round) Hit() error {
	if r.phase != PlayerTurn {
		return fmt.Errorf("hit in phase %s: %w", r.phase, ErrWrongPhase)
	}

	if err := r.dealTo(&r.player); err != nil {
		return fmt.Errorf("player hit: %w", err)
	}

	if r.player.IsBust() {
		r.resolve()
	}

	return nil
}

// Stand ends the player's turn and runs the dealer's fixed policy: draw
// while the score is below 17, stand on any total of 17 or more. The round
// is resolved when Stand returns nil.
func (r *Round) Stand() error {
	if r.phase != PlayerTurn {
		return fmt.Errorf("stand in phase %s: %w", r.phase, ErrWrongPhase)
	}

	r.phase = DealerTurn
	for r.dealer.Score() < dealerStandsAt {
		if err := r.dealTo(&r.dealer); err != nil {
			// A single round cannot run a 52-card deck dry; treat as fatal.
			return fmt.Errorf("dealer draw: %w", err)
		}
	}

	r.resolve()
	return nil
}

// Phase returns the round's current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the round's outcome. The second return is false until the
// round has resolved.
func (r *Round) Outcome() (Outcome, bool) {
	if r.phase != Resolved {
		return Outcome{}, false
	}
	return r.outcome, true
}

// Player returns the player's hand
func (r *Round) Player() *Hand {
	return &r.player
}

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand {
	return &r.dealer
}

func (r *Round) dealTo(h *Hand) error {
	c, err := r.deck.Draw()
	if err != nil {
		return err
	}
	h.AddCard(c)
	return nil
}

// checkNaturals resolves the round immediately when the player's opening
// hand is a two-card 21; there is no decision left to make. A lone dealer
// natural is not revealed early: the hole card stays down and the round
// plays out to the normal comparison.
func (r *Round) checkNaturals() {
	if !r.player.IsBlackjack() {
		return
	}

	r.phase = Resolved
	if r.dealer.IsBlackjack() {
		r.outcome = Outcome{Winner: Push, Reason: Blackjack}
		return
	}
	r.outcome = Outcome{Winner: PlayerWins, Reason: Blackjack}
}

// resolve applies the outcome precedence: player natural beats everything a
// dealer without a natural can hold, busts decide next, then the higher
// score wins with equal scores pushing.
func (r *Round) resolve() {
	r.phase = Resolved

	switch {
	case r.player.IsBlackjack() && !r.dealer.IsBlackjack():
		r.outcome = Outcome{Winner: PlayerWins, Reason: Blackjack}
	case r.player.IsBust():
		r.outcome = Outcome{Winner: DealerWins, Reason: Bust}
	case r.dealer.IsBust():
		r.outcome = Outcome{Winner: PlayerWins, Reason: Bust}
	case r.player.Score() > r.dealer.Score():
		r.outcome = Outcome{Winner: PlayerWins, Reason: HighScore}
	case r.player.Score() < r.dealer.Score():
		r.outcome = Outcome{Winner: DealerWins, Reason: HighScore}
	default:
		r.outcome = Outcome{Winner: Push, Reason: HighScore}
	}
}
