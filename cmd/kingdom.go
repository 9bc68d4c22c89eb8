package cmd

import (
	"fmt"
	"strings"

	"dominionizer/internal/card"
	"dominionizer/internal/catalog"
	"dominionizer/internal/config"
	"dominionizer/internal/randomizer"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// kingdomCmd represents the kingdom command
var kingdomCmd = &cobra.Command{
	Use:   "kingdom [sets...]",
	Short: "Generate a random kingdom from the given game sets",
	Long: `Kingdom picks random cards from the given game sets, or from every complete
set when "all" is given. Weights (-w) or fixed per-set counts (-c) control how the
total is distributed across sets; specific cards can be included (-i) or excluded
(-x), card types filtered out (-f), and Events (-e) and Landmarks (-l) drawn.

Examples:
  dominionizer kingdom base2e intrigue2e
  dominionizer kingdom seaside prosperity -w 2 1
  dominionizer kingdom all -n 10 -e 2 -l 1 -i "Black Market"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		catalogPath := cfg.CatalogPath
		if dataFlag, _ := cmd.Flags().GetString("data"); dataFlag != "" {
			catalogPath = dataFlag
		}

		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		opts := randomizer.Options{Sets: args}
		opts.Number, _ = cmd.Flags().GetInt("number")
		if !cmd.Flags().Changed("number") {
			opts.Number = cfg.DefaultNumber
		}
		opts.Weights, _ = cmd.Flags().GetFloat64Slice("weights")
		opts.Counts, _ = cmd.Flags().GetIntSlice("counts")
		opts.Include, _ = cmd.Flags().GetStringArray("include")
		opts.Exclude, _ = cmd.Flags().GetStringArray("exclude")
		opts.FilterTypes, _ = cmd.Flags().GetStringSlice("filter-types")
		opts.Events, _ = cmd.Flags().GetInt("events")
		opts.Landmarks, _ = cmd.Flags().GetInt("landmarks")

		r, err := randomizer.New(cat, opts)
		if err != nil {
			return err
		}
		kingdom, err := r.Randomize()
		if err != nil {
			return err
		}

		printKingdom(kingdom)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(kingdomCmd)

	kingdomCmd.Flags().IntP("number", "n", 10, "Number of cards to pick")
	kingdomCmd.Flags().Float64SliceP("weights", "w", nil, "Weights to be applied to each set when randomly picking cards")
	kingdomCmd.Flags().IntSliceP("counts", "c", nil, "Counts of cards to pick from each set")
	kingdomCmd.Flags().StringArrayP("include", "i", nil, "Specific cards to include")
	kingdomCmd.Flags().StringArrayP("exclude", "x", nil, "Specific cards to exclude")
	kingdomCmd.Flags().StringSliceP("filter-types", "f",
		nil, "Card types to filter out before randomly picking cards ("+strings.Join(card.FilterableTypes(), ", ")+")")
	kingdomCmd.Flags().IntP("events", "e", 0, "Number of events to pick")
	kingdomCmd.Flags().IntP("landmarks", "l", 0, "Number of landmarks to pick")
	kingdomCmd.Flags().StringP("data", "d", "", "Path to the cards.json catalog")
}

// printKingdom renders the selection grouped by set, then the Events and
// Landmarks sections.
func printKingdom(k *randomizer.Kingdom) {
	for _, sel := range k.Sets {
		fmt.Println(colorize.CyanString(sel.Name))
		for _, c := range sel.Cards {
			fmt.Printf("- %s (%s), %s\n", c.Name, strings.Join(c.Types, ", "), c.Cost)
		}
	}
	printNonCards(k.Events, "Events", true)
	printNonCards(k.Landmarks, "Landmarks", false)
}

// printNonCards renders a labeled non-card section; Landmarks have no cost.
func printNonCards(cards []*card.Card, label string, withCost bool) {
	if len(cards) == 0 {
		return
	}
	fmt.Println(colorize.CyanString(label))
	for _, c := range cards {
		if withCost {
			fmt.Printf("- %s, %s, %s\n", c.Name, c.Set, c.Cost)
		} else {
			fmt.Printf("- %s, %s\n", c.Name, c.Set)
		}
	}
}
