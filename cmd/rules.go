package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the house rules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("House rules:")
		fmt.Println("------------")
		fmt.Println("- Single 52-card deck, freshly shuffled every round.")
		fmt.Println("- Two cards each to start; the dealer's first card stays face down.")
		fmt.Println("- Aces count 11, dropping to 1 one at a time while the hand is over 21.")
		fmt.Println("- An opening two-card 21 is a natural and wins the round on the spot.")
		fmt.Println("- The dealer hits below 17 and stands on any 17 or higher, soft or hard.")
		fmt.Println("- Going over 21 busts the hand and loses the round outright.")
		fmt.Println("- Otherwise the higher total wins; equal totals push.")
		fmt.Println("- No betting, splitting or doubling down at this table.")
	},
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}
