package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/game"
	"github.com/arcanaland/blackjack/internal/render"
)

var playSeed int64

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds of blackjack interactively",
	Long: `Play deals a fresh shuffled deck each round. Hit or stand with 'h' and 's';
after you stand the dealer draws until reaching 17 or higher. The dealer's
first card stays face down until the round resolves.

A non-zero seed (--seed flag or the 'seed' config key) pins the shuffle so a
session can be replayed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg.Color)

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = playSeed
		}

		r := render.New(os.Stdout)
		r.Plain = cfg.PlainCards

		return runSession(newRNG(seed), r, bufio.NewScanner(os.Stdin), os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "shuffle seed (0 uses the clock)")
}

// runSession plays rounds until the player declines to continue or input
// closes, then prints the session tally.
func runSession(rng *rand.Rand, r *render.Renderer, in *bufio.Scanner, out io.Writer) error {
	var tally game.Tally

	for {
		round, err := game.NewRound(rng)
		if err != nil {
			return err
		}
		log := logrus.WithField("round_id", round.ID)
		log.WithField("phase", round.Phase()).Debug("round dealt")

		fmt.Fprintln(out)
		r.PrintHand("Dealer's hand:", round.Dealer().Cards(), round.Dealer().Score(), round.Phase() != game.Resolved)
		fmt.Fprintln(out)
		r.PrintHand("Your hand:", round.Player().Cards(), round.Player().Score(), false)

		for round.Phase() == game.PlayerTurn {
			// At 21 there is nothing left to gain by hitting.
			if round.Player().Score() == 21 {
				if err := round.Stand(); err != nil {
					return err
				}
				break
			}

			choice, err := promptChoice(in, out, "\nWould you like to (h)it or (s)tand? ", "h", "s")
			if err != nil {
				// Input closed mid-round; end the session quietly.
				return nil
			}

			switch choice {
			case "h":
				if err := round.Hit(); err != nil {
					return err
				}
				log.WithField("player_score", round.Player().Score()).Debug("player hit")
				fmt.Fprintln(out)
				r.PrintHand("Your hand:", round.Player().Cards(), round.Player().Score(), false)
			case "s":
				if err := round.Stand(); err != nil {
					return err
				}
				log.WithField("dealer_score", round.Dealer().Score()).Debug("player stood")
			}
		}

		outcome, _ := round.Outcome()
		tally.Record(outcome)
		log.WithFields(logrus.Fields{
			"winner": outcome.Winner,
			"reason": outcome.Reason,
		}).Debug("round resolved")

		fmt.Fprintln(out)
		r.PrintHand("Dealer's hand:", round.Dealer().Cards(), round.Dealer().Score(), false)
		fmt.Fprintln(out)
		fmt.Fprintln(out, outcomeMessage(outcome, round.Player().Score(), round.Dealer().Score()))

		again, err := promptChoice(in, out, "\nPlay again? (y/n) ", "y", "n")
		if err != nil || again != "y" {
			fmt.Fprintf(out, "\nSession: %s. Thanks for playing!\n", tally.String())
			return nil
		}
	}
}

// promptChoice keeps prompting until the player enters one of the accepted
// answers. It returns an error only when input is closed.
func promptChoice(in *bufio.Scanner, out io.Writer, prompt string, choices ...string) (string, error) {
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		answer := strings.ToLower(strings.TrimSpace(in.Text()))
		for _, c := range choices {
			if answer == c {
				return answer, nil
			}
		}

		fmt.Fprintf(out, "Invalid choice. Please enter '%s'.\n", strings.Join(choices, "' or '"))
	}
}

// outcomeMessage formats the end-of-round banner
func outcomeMessage(o game.Outcome, playerScore, dealerScore int) string {
	switch o.Winner {
	case game.PlayerWins:
		switch o.Reason {
		case game.Blackjack:
			return color.GreenString("Blackjack! You win!")
		case game.Bust:
			return color.GreenString("Dealer busts! You win!")
		default:
			return color.GreenString("You win! (%d vs %d)", playerScore, dealerScore)
		}
	case game.DealerWins:
		if o.Reason == game.Bust {
			return color.RedString("Bust! You lose.")
		}
		return color.RedString("Dealer wins! (%d vs %d)", dealerScore, playerScore)
	default:
		return color.YellowString("It's a push! (%d)", playerScore)
	}
}

// applyColorMode maps the config color mode onto the color package. "auto"
// keeps its built-in terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// newRNG seeds a dedicated source so shuffles never depend on ambient
// global state. A zero seed falls back to the clock.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
