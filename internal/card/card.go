package card

import (
	"fmt"
	"strings"
)

// supplyExemptMarker appears in the rules text of cards that never occupy a
// supply pile despite their category and types.
const supplyExemptMarker = "This is not in the Supply"

// Card represents a Dominion card, including non-card entries like Events and
// Landmarks. The derived fields are always recomputed from the source fields,
// never read from persisted data.
type Card struct {
	Name     string
	Category Category
	Types    []string
	Set      GameSet
	Cost     Cost
	Text     string

	// Derived at construction.
	InSupply    bool
	IsBasic     bool
	CanPick     bool
	EncodedName string
}

// New constructs a card and computes its derived flags.
func New(name string, category Category, types []string, set GameSet, cost Cost, text string) *Card {
	return newCard(name, category, types, set, cost, text, false)
}

func newCard(name string, category Category, types []string, set GameSet, cost Cost, text string, specialCanPick bool) *Card {
	c := &Card{
		Name:     name,
		Category: category,
		Types:    types,
		Set:      set,
		Cost:     cost,
		Text:     text,
	}
	c.InSupply = category == CategoryCard && !strings.Contains(text, supplyExemptMarker) && allTypesInSupply(types)
	c.IsBasic = IsBasicName(name)
	c.CanPick = specialCanPick || (c.InSupply && !c.IsBasic)
	c.EncodedName = encodeName(name)
	return c
}

func allTypesInSupply(types []string) bool {
	for _, t := range types {
		if !TypeInSupply(t) {
			return false
		}
	}
	return true
}

// encodeName converts a card name into its wiki file form.
func encodeName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "'", "%27")
	return r.Replace(name)
}

// HasAnyType reports whether the card has any of the given lowercased types.
func (c *Card) HasAnyType(types map[string]bool) bool {
	for _, t := range c.Types {
		if types[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// String formats the card like "Cellar (Card), Base, (Action), Cost(2C, 0P, 0D)".
func (c *Card) String() string {
	return fmt.Sprintf("%s (%s), %s, (%s), %s",
		c.Name, c.Category, c.Set, strings.Join(c.Types, ", "), c.Cost)
}

// Normalize standardizes a card name for matching: lowercase with spaces and
// apostrophes removed. Every name comparison goes through this function.
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}
