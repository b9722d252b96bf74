package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/game"
)

var (
	simRounds int
	simSeed   int64
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play rounds and report the tally",
	Long: `Simulate deals rounds with the player mirroring the dealer's own policy,
hitting below 17 and standing on any 17 or higher, then prints the
aggregate tally. Combine with --verbose to trace every round.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg.Color)

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = simSeed
		}
		rng := newRNG(seed)

		var tally game.Tally
		for i := 0; i < simRounds; i++ {
			round, err := game.NewRound(rng)
			if err != nil {
				return err
			}

			for round.Phase() == game.PlayerTurn {
				if round.Player().Score() < 17 {
					if err := round.Hit(); err != nil {
						return err
					}
					continue
				}
				if err := round.Stand(); err != nil {
					return err
				}
			}

			outcome, _ := round.Outcome()
			tally.Record(outcome)
			logrus.WithFields(logrus.Fields{
				"round_id":     round.ID,
				"winner":       outcome.Winner,
				"reason":       outcome.Reason,
				"player_score": round.Player().Score(),
				"dealer_score": round.Dealer().Score(),
			}).Debug("round resolved")
		}

		fmt.Printf("Played %d rounds: %s\n", tally.Rounds(), tally.String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simRounds, "rounds", "n", 100, "number of rounds to play")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "shuffle seed (0 uses the clock)")
}
