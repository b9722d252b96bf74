package game

import "fmt"

// Tally accumulates round outcomes across a session. It lives only in
// memory; nothing is persisted between invocations.
type Tally struct {
	Wins   int
	Losses int
	Pushes int
}

// Record counts one resolved outcome
func (t *Tally) Record(o Outcome) {
	switch o.Winner {
	case PlayerWins:
		t.Wins++
	case DealerWins:
		t.Losses++
	case Push:
		t.Pushes++
	}
}

// Rounds returns the total number of recorded rounds
func (t *Tally) Rounds() int {
	return t.Wins + t.Losses + t.Pushes
}

// String summarizes the tally (e.g., "3 won, 2 lost, 1 pushed")
func (t *Tally) String() string {
	return fmt.Sprintf("%d won, %d lost, %d pushed", t.Wins, t.Losses, t.Pushes)
}
