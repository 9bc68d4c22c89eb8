package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dominionizer",
	Short: "Dominion kingdom randomizer",
	Long: `Dominionizer generates random Dominion kingdoms from a card catalog.
It supports weighted or fixed per-set distributions, card inclusion and exclusion,
type filtering, and drawing Events and Landmarks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
