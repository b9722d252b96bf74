package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyRecordsOutcomes(t *testing.T) {
	var tally Tally

	tally.Record(Outcome{Winner: PlayerWins, Reason: Blackjack})
	tally.Record(Outcome{Winner: PlayerWins, Reason: HighScore})
	tally.Record(Outcome{Winner: DealerWins, Reason: Bust})
	tally.Record(Outcome{Winner: Push, Reason: HighScore})

	assert.Equal(t, 2, tally.Wins)
	assert.Equal(t, 1, tally.Losses)
	assert.Equal(t, 1, tally.Pushes)
	assert.Equal(t, 4, tally.Rounds())
	assert.Equal(t, "2 won, 1 lost, 1 pushed", tally.String())
}
