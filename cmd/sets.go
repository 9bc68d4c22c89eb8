package cmd

import (
	"fmt"

	"dominionizer/internal/card"

	"github.com/spf13/cobra"
)

// setsCmd represents the sets command
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the game sets available for kingdom generation",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available game sets (use the argument form with the kingdom command):")
		for _, g := range card.CompleteSets() {
			fmt.Printf("  %-12s %s\n", g.Arg(), g.FullName())
		}
		fmt.Println("  all          every complete set")
	},
}

func init() {
	RootCmd.AddCommand(setsCmd)
}
