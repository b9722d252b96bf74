package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCardLines(t *testing.T) {
	disableColor(t)
	r := &Renderer{Width: 80}

	lines := r.cardLines(card.Card{Rank: card.Ace, Suit: card.Spades})
	require.Len(t, lines, cardHeight)
	assert.Equal(t, "┌─────────┐", lines[0])
	assert.Equal(t, "│A        │", lines[1])
	assert.Equal(t, "│    ♠    │", lines[3])
	assert.Equal(t, "│A        │", lines[5])
	assert.Equal(t, "└─────────┘", lines[6])

	// Ten is the only two-character rank.
	lines = r.cardLines(card.Card{Rank: card.Ten, Suit: card.Hearts})
	assert.Equal(t, "│10       │", lines[1])
}

func TestCardLinesPlainMode(t *testing.T) {
	disableColor(t)
	r := &Renderer{Width: 80, Plain: true}

	lines := r.cardLines(card.Card{Rank: card.Queen, Suit: card.Diamonds})
	assert.Equal(t, "│    D    │", lines[3])
}

func TestHiddenCardLines(t *testing.T) {
	lines := hiddenCardLines()
	require.Len(t, lines, cardHeight)
	assert.Equal(t, "┌─────────┐", lines[0])
	for i := 1; i < cardHeight-1; i++ {
		assert.Equal(t, "│░░░░░░░░░│", lines[i])
	}
	assert.Equal(t, "└─────────┘", lines[cardHeight-1])
}

func TestPrintHandShowsValue(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}

	cards := []card.Card{
		{Rank: card.Ten, Suit: card.Clubs},
		{Rank: card.Ace, Suit: card.Spades},
	}
	r.PrintHand("Your hand:", cards, 21, false)

	out := buf.String()
	assert.Contains(t, out, "Your hand:")
	assert.Contains(t, out, "Value: 21")
	assert.NotContains(t, out, "░")
}

func TestPrintHandHidesHoleCard(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}

	cards := []card.Card{
		{Rank: card.Ten, Suit: card.Clubs},
		{Rank: card.Nine, Suit: card.Spades},
	}
	r.PrintHand("Dealer's hand:", cards, 19, true)

	out := buf.String()
	assert.Contains(t, out, "░", "hole card should be face down")
	assert.NotContains(t, out, "Value:", "hidden hands must not reveal their value")
	assert.NotContains(t, out, "10", "hole card rank must not leak")
	assert.Contains(t, out, "9", "second card stays visible")
}

func TestPrintHandWrapsToTerminalWidth(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	// Room for two cards per row: indent 2 + 11 + gap 2 + 11 = 26.
	r := &Renderer{Out: &buf, Width: 30}

	cards := []card.Card{
		{Rank: card.Two, Suit: card.Clubs},
		{Rank: card.Three, Suit: card.Clubs},
		{Rank: card.Four, Suit: card.Clubs},
	}
	r.PrintHand("Your hand:", cards, 9, false)

	// Two rows of art plus title and value lines.
	lineCount := strings.Count(strings.TrimRight(buf.String(), "\n"), "\n") + 1
	assert.Equal(t, 2*cardHeight+2, lineCount)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 30)
	}
}

func TestNewDefaultsToEightyColumns(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	assert.Equal(t, 80, r.Width)
	assert.Equal(t, &buf, r.Out)
}
