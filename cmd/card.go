package cmd

import (
	"fmt"
	"os"
	"strings"

	"dominionizer/internal/card"
	"dominionizer/internal/catalog"
	"dominionizer/internal/config"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card [name]",
	Short: "Show details for a single card",
	Long: `Card looks a card up by name (case, spaces, and apostrophes are ignored)
and prints its set, types, cost, and rules text.

Examples:
  dominionizer card "Black Market"
  dominionizer card kingscourt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFlag, _ := cmd.Flags().GetString("data")
		catalogPath, err := config.ResolveCatalogPath(dataFlag)
		if err != nil {
			return err
		}

		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		c, ok := cat.FindByName(args[0])
		if !ok {
			return fmt.Errorf("card not found: %s", args[0])
		}

		displayCard(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)

	cardCmd.Flags().StringP("data", "d", "", "Path to the cards.json catalog")
}

// displayCard prints the card's details with the rules text wrapped to the
// terminal width.
func displayCard(c *card.Card) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	fmt.Println(colorize.CyanString("Card:     ") + colorize.HiWhiteString(c.Name))
	fmt.Println(colorize.CyanString("Set:      ") + colorize.HiWhiteString(c.Set.FullName()))
	fmt.Println(colorize.CyanString("Category: ") + colorize.HiWhiteString(string(c.Category)))
	fmt.Println(colorize.CyanString("Types:    ") + colorize.HiWhiteString(strings.Join(c.Types, ", ")))
	fmt.Println(colorize.CyanString("Cost:     ") + colorize.HiWhiteString(c.Cost.String()))

	if c.Text != "" {
		fmt.Println(colorize.CyanString("Text:"))
		for _, line := range wrapText(c.Text, width-2) {
			fmt.Println("  " + line)
		}
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
