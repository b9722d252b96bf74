package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
)

const (
	cardWidth  = 9 // interior columns between the borders
	cardHeight = 7 // lines of art per card
	cardGap    = 2 // spaces between cards in a row
)

var redInk = color.New(color.FgRed)

// Renderer draws hands as ASCII card art.
type Renderer struct {
	Out   io.Writer
	Width int  // terminal columns available for layout
	Plain bool // suit letters instead of unicode symbols
}

// New builds a renderer for the given writer, detecting the terminal width
// when the writer is a terminal and falling back to 80 columns otherwise.
func New(out io.Writer) *Renderer {
	width := 80
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &Renderer{Out: out, Width: width}
}

// PrintHand draws a titled hand. With hideHole set the first card is drawn
// face down and the value line is withheld, matching how the dealer's hand
// is shown during the player's turn.
func (r *Renderer) PrintHand(title string, cards []card.Card, score int, hideHole bool) {
	fmt.Fprintf(r.Out, "%s\n", title)

	art := make([][]string, 0, len(cards))
	for i, c := range cards {
		if hideHole && i == 0 {
			art = append(art, hiddenCardLines())
			continue
		}
		art = append(art, r.cardLines(c))
	}

	// Lay cards out side by side, wrapping to the terminal width. Each card
	// is cardWidth+2 columns with its borders, after a 2-column indent.
	perRow := (r.Width - 2 + cardGap) / (cardWidth + 2 + cardGap)
	if perRow < 1 {
		perRow = 1
	}

	for start := 0; start < len(art); start += perRow {
		end := start + perRow
		if end > len(art) {
			end = len(art)
		}
		row := art[start:end]

		for line := 0; line < cardHeight; line++ {
			parts := make([]string, 0, len(row))
			for _, cardArt := range row {
				parts = append(parts, cardArt[line])
			}
			fmt.Fprintf(r.Out, "  %s\n", strings.Join(parts, strings.Repeat(" ", cardGap)))
		}
	}

	if !hideHole {
		fmt.Fprintf(r.Out, "  Value: %d\n", score)
	}
}

// cardLines renders one face-up card as cardHeight lines of equal visible
// width. The rank sits in the top-left and bottom-left corners with the suit
// centered, as on the printed deck.
func (r *Renderer) cardLines(c card.Card) []string {
	suit := c.Suit.Symbol()
	if r.Plain {
		suit = c.Suit.Letter()
	}

	rank := c.Rank.Label()
	rankPad := strings.Repeat(" ", cardWidth-len(rank))
	suitPad := strings.Repeat(" ", (cardWidth-1)/2)

	if c.Suit.Red() {
		rank = redInk.Sprint(rank)
		suit = redInk.Sprint(suit)
	}

	blank := "│" + strings.Repeat(" ", cardWidth) + "│"
	return []string{
		"┌" + strings.Repeat("─", cardWidth) + "┐",
		"│" + rank + rankPad + "│",
		blank,
		"│" + suitPad + suit + suitPad + "│",
		blank,
		"│" + rank + rankPad + "│",
		"└" + strings.Repeat("─", cardWidth) + "┘",
	}
}

// hiddenCardLines renders the face-down card used for the dealer's hole card
func hiddenCardLines() []string {
	fill := "│" + strings.Repeat("░", cardWidth) + "│"
	lines := make([]string, 0, cardHeight)
	lines = append(lines, "┌"+strings.Repeat("─", cardWidth)+"┐")
	for i := 0; i < cardHeight-2; i++ {
		lines = append(lines, fill)
	}
	return append(lines, "└"+strings.Repeat("─", cardWidth)+"┘")
}
